package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var ErrSinkClosed error = errors.New("sink closed")

type LogSink struct {
	logs *zap.SugaredLogger
}

func NewLogSink(logger *zap.SugaredLogger) *LogSink {
	return &LogSink{logs: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Publish(_ context.Context, event Event) error {
	s.logs.Infow("transaction added",
		"event_id", event.ID,
		"owner", event.Owner,
		"transaction_id", event.TransactionID,
		"kind", event.Kind,
		"category", event.Category,
		"created_at", event.CreatedAt,
	)
	return nil
}

type NATSSink struct {
	conn    Publisher
	subject string
	close   func()
}

// DialNATS connects to the server at url and publishes on subject.
func DialNATS(url, subject string) (*NATSSink, error) {
	nc, err := nats.Connect(url, nats.Name("financeguard"))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	s := NewNATSSink(nc, subject)
	s.close = nc.Close
	return s, nil
}

func NewNATSSink(conn Publisher, subject string) *NATSSink {
	return &NATSSink{conn: conn, subject: subject}
}

func (s *NATSSink) Name() string { return "nats" }

func (s *NATSSink) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := s.conn.Publish(s.subject+"."+event.Type, body); err != nil {
		if errors.Is(err, nats.ErrConnectionClosed) {
			return ErrSinkClosed
		}
		return fmt.Errorf("publish to nats: %w", err)
	}
	return nil
}

func (s *NATSSink) Close() {
	if s.close != nil {
		s.close()
	}
}

type AMQPSink struct {
	channel  Channel
	exchange string
	close    func() error
}

// DialAMQP connects to the broker at url and declares a durable topic exchange.
func DialAMQP(url, exchange string) (*AMQPSink, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	s := NewAMQPSink(ch, exchange)
	s.close = func() error {
		ch.Close()
		return conn.Close()
	}
	return s, nil
}

func NewAMQPSink(channel Channel, exchange string) *AMQPSink {
	return &AMQPSink{channel: channel, exchange: exchange}
}

func (s *AMQPSink) Name() string { return "amqp" }

func (s *AMQPSink) Publish(ctx context.Context, event Event) error {
	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = s.channel.PublishWithContext(
		ctx,
		s.exchange,
		event.Type,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.ID,
			Timestamp:    event.CreatedAt,
			Body:         body,
		},
	)
	if err != nil {
		if errors.Is(err, amqp091.ErrClosed) {
			return ErrSinkClosed
		}
		return fmt.Errorf("publish to amqp: %w", err)
	}
	return nil
}

func (s *AMQPSink) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
