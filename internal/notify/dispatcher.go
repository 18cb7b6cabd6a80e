package notify

import (
	"context"
	"time"

	"financeguard/internal/ledger"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
)

const (
	DefaultWorkers = 4
	publishTimeout = 5 * time.Second
)

var TimeNow = time.Now

// Dispatcher fans ledger events out to every sink on a bounded worker pool.
// Delivery is best effort: failures are logged and dropped.
type Dispatcher struct {
	logs  *zap.SugaredLogger
	pool  pond.Pool
	sinks []Sink
}

func NewDispatcher(logger *zap.SugaredLogger, workers int, sinks ...Sink) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Dispatcher{
		logs:  logger,
		pool:  pond.NewPool(workers),
		sinks: sinks,
	}
}

// Notify implements ledger.Notifier.
func (d *Dispatcher) Notify(ctx context.Context, tx ledger.TransactionAdded) {
	event := NewEvent(tx, TimeNow())
	// the request that produced the event may finish before delivery
	base := context.WithoutCancel(ctx)

	for _, sink := range d.sinks {
		d.pool.Submit(func() {
			ctx, cancel := context.WithTimeout(base, publishTimeout)
			defer cancel()

			if err := sink.Publish(ctx, event); err != nil {
				d.logs.Errorw("failed to publish event",
					"sink", sink.Name(),
					"event_id", event.ID,
					"transaction_id", event.TransactionID,
					"error", err,
				)
				return
			}
			d.logs.Debugw("event published",
				"sink", sink.Name(),
				"event_id", event.ID,
			)
		})
	}
}

// Close waits for queued deliveries to finish.
func (d *Dispatcher) Close() {
	d.logs.Infow("stopping notification pool",
		"submitted", d.pool.SubmittedTasks(),
		"waiting", d.pool.WaitingTasks(),
		"failed", d.pool.FailedTasks(),
	)
	d.pool.StopAndWait()
}
