package notify

import (
	"context"

	"github.com/rabbitmq/amqp091-go"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Sink . Sink
type Sink interface {
	Name() string
	Publish(ctx context.Context, event Event) error
}

// Publisher is the part of *nats.Conn the NATS sink uses.
//
//counterfeiter:generate -o fake -fake-name Publisher . Publisher
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Channel is the part of *amqp091.Channel the AMQP sink uses.
//
//counterfeiter:generate -o fake -fake-name Channel . Channel
type Channel interface {
	PublishWithContext(ctx context.Context, exchange string, key string, mandatory bool, immediate bool, msg amqp091.Publishing) error
}
