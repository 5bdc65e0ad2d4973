package ports

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"cloudvault-api/internal/infrastructure/mq"
)

type RabbitMQ interface {
	Connect(ctx context.Context, dsn string) error
	Init() error
	TryPublish(e mq.Event)
	PublisherWorker(ctx context.Context)
	GetConn() *amqp091.Connection
}
