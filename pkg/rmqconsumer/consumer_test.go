package rmqconsumer

import (
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"cloudvault-api/config"
	"cloudvault-api/internal/infrastructure/mq"
)

func Test_delivery_LogsEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := New(config.MQ{}, zap.New(core))

	ts := time.Unix(1700000000, 0)
	c.delivery(amqp091.Delivery{
		RoutingKey: mq.KindFileUploaded,
		MessageId:  "msg-1",
		Timestamp:  ts,
		Body:       []byte(`{"id":"f1"}`),
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "file event", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, mq.KindFileUploaded, fields["kind"])
	assert.Equal(t, "msg-1", fields["message_id"])
	assert.Equal(t, `{"id":"f1"}`, fields["payload"].(string))
}

func TestConnect_InvalidDSN(t *testing.T) {
	c := New(config.MQ{}, zap.NewNop())

	err := c.Connect("amqp://bad:://dsn")
	require.Error(t, err)
	require.Nil(t, c.chConsume)
}
