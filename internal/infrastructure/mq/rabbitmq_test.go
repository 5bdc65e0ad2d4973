package mq

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"cloudvault-api/config"
)

func TestTryPublish_Enqueues(t *testing.T) {
	r := New(config.MQ{}, zap.NewNop())

	e := Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Kind:   KindFileUploaded,
		UserID: uuid.NewString(),
	}
	r.TryPublish(e)

	select {
	case got := <-r.GetInputChan():
		assert.Equal(t, e.Id, got.Id)
		assert.Equal(t, KindFileUploaded, got.Kind)
	default:
		t.Fatal("event was not buffered")
	}
}

// a full buffer drops instead of stalling the request path
func TestTryPublish_FullBufferDrops(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r := New(config.MQ{}, zap.New(core))

	for i := 0; i < bufferSize; i++ {
		r.TryPublish(Event{Id: uuid.New(), Kind: KindFileTrashed})
	}
	require.Zero(t, logs.Len())

	r.TryPublish(Event{Id: uuid.New(), Kind: KindFileTrashed})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "mq buffer full, event dropped", logs.All()[0].Message)
	assert.Len(t, r.GetInputChan(), bufferSize)
}
