package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"financeguard/internal/ledger"
	"financeguard/internal/notify"
	"financeguard/internal/notify/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/oklog/ulid/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var _ = Describe("Notify", func() {
	var (
		ctx     context.Context
		added   ledger.TransactionAdded
		fakeErr error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		added = ledger.TransactionAdded{
			Owner:         common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
			TransactionID: 7,
			Kind:          ledger.Expense,
			Description:   "Groceries",
			Category:      "Food",
			CreatedAt:     time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC),
			IsEncrypted:   true,
		}
	})

	Describe("NewEvent", func() {
		It("should carry the metadata under a fresh ULID", func() {
			now := time.Date(2025, time.March, 4, 10, 0, 1, 0, time.UTC)
			event := notify.NewEvent(added, now)

			id, err := ulid.Parse(event.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ulid.Time(id.Time())).To(BeTemporally("~", now, time.Millisecond))

			Expect(event.Type).To(Equal(notify.TypeTransactionAdded))
			Expect(event.Owner).To(Equal(added.Owner.Hex()))
			Expect(event.TransactionID).To(Equal(uint64(7)))
			Expect(event.Kind).To(Equal("expense"))
			Expect(notify.NewEvent(added, now).ID).NotTo(Equal(event.ID))
		})

		It("should never serialize an amount", func() {
			body, err := notify.NewEvent(added, time.Now()).ToJSON()
			Expect(err).NotTo(HaveOccurred())

			var fields map[string]any
			Expect(json.Unmarshal(body, &fields)).To(Succeed())
			Expect(fields).NotTo(HaveKey("amount"))
			Expect(fields).NotTo(HaveKey("amountHandle"))
		})
	})

	Describe("Dispatcher", func() {
		var (
			first      *fake.Sink
			second     *fake.Sink
			dispatcher *notify.Dispatcher
		)

		BeforeEach(func() {
			first = new(fake.Sink)
			first.NameReturns("first")
			second = new(fake.Sink)
			second.NameReturns("second")
			dispatcher = notify.NewDispatcher(zap.NewNop().Sugar(), 2, first, second)
		})

		It("should deliver the same event to every sink", func() {
			dispatcher.Notify(ctx, added)
			dispatcher.Close()

			Expect(first.PublishCallCount()).To(Equal(1))
			Expect(second.PublishCallCount()).To(Equal(1))
			_, a := first.PublishArgsForCall(0)
			_, b := second.PublishArgsForCall(0)
			Expect(a).To(Equal(b))
			Expect(a.TransactionID).To(Equal(added.TransactionID))
		})

		It("should keep delivering when one sink fails", func() {
			first.PublishReturns(fakeErr)

			dispatcher.Notify(ctx, added)
			dispatcher.Notify(ctx, added)
			dispatcher.Close()

			Expect(first.PublishCallCount()).To(Equal(2))
			Expect(second.PublishCallCount()).To(Equal(2))
		})

		It("should outlive the caller's context", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			dispatcher.Notify(cctx, added)
			dispatcher.Close()

			Expect(first.PublishCallCount()).To(Equal(1))
			pctx, _ := first.PublishArgsForCall(0)
			Expect(pctx.Err()).NotTo(HaveOccurred())
		})
	})

	Describe("NATSSink", func() {
		var (
			conn *fake.Publisher
			sink *notify.NATSSink
		)

		BeforeEach(func() {
			conn = new(fake.Publisher)
			sink = notify.NewNATSSink(conn, "financeguard.ledger")
		})

		It("should publish JSON on the event subject", func() {
			event := notify.NewEvent(added, time.Now())
			Expect(sink.Publish(ctx, event)).To(Succeed())

			subject, body := conn.PublishArgsForCall(0)
			Expect(subject).To(Equal("financeguard.ledger.transaction.added"))
			var got notify.Event
			Expect(json.Unmarshal(body, &got)).To(Succeed())
			Expect(got.ID).To(Equal(event.ID))
		})

		It("should wrap publish failures", func() {
			conn.PublishReturns(fakeErr)
			Expect(sink.Publish(ctx, notify.NewEvent(added, time.Now()))).To(MatchError(fakeErr))
		})
	})

	Describe("AMQPSink", func() {
		var (
			channel *fake.Channel
			sink    *notify.AMQPSink
		)

		BeforeEach(func() {
			channel = new(fake.Channel)
			sink = notify.NewAMQPSink(channel, "financeguard")
		})

		It("should publish a persistent message routed by event type", func() {
			event := notify.NewEvent(added, time.Now())
			Expect(sink.Publish(ctx, event)).To(Succeed())

			_, exchange, key, mandatory, immediate, msg := channel.PublishWithContextArgsForCall(0)
			Expect(exchange).To(Equal("financeguard"))
			Expect(key).To(Equal(notify.TypeTransactionAdded))
			Expect(mandatory).To(BeFalse())
			Expect(immediate).To(BeFalse())
			Expect(msg.DeliveryMode).To(Equal(amqp091.Persistent))
			Expect(msg.MessageId).To(Equal(event.ID))
			Expect(msg.ContentType).To(Equal("application/json"))
		})

		It("should report a closed channel", func() {
			channel.PublishWithContextReturns(amqp091.ErrClosed)
			Expect(sink.Publish(ctx, notify.NewEvent(added, time.Now()))).To(MatchError(notify.ErrSinkClosed))
		})
	})

	Describe("LogSink", func() {
		It("should never fail", func() {
			sink := notify.NewLogSink(zap.NewNop().Sugar())
			Expect(sink.Publish(ctx, notify.NewEvent(added, time.Now()))).To(Succeed())
		})
	})
})
