package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/baharkarakas/fitgroups-api/internal/metrics"
)

type submitter interface {
	TrySubmit(func()) bool
}

type Dispatcher struct {
	pool    submitter
	sinks   []Publisher
	log     *slog.Logger
	timeout time.Duration
}

func NewDispatcher(pool submitter, log *slog.Logger, sinks ...Publisher) *Dispatcher {
	return &Dispatcher{pool: pool, sinks: sinks, log: log, timeout: 5 * time.Second}
}

// Emit hands e to the pool without waiting. When the queue is full or the
// pool is stopped the event is dropped and counted.
func (d *Dispatcher) Emit(e Event) {
	if d.pool.TrySubmit(func() { d.deliver(e) }) {
		return
	}
	metrics.EventsPublished.WithLabelValues("dispatcher", "dropped").Inc()
	d.log.Warn("event dropped", "type", e.Type, "event_id", e.ID)
}

func (d *Dispatcher) deliver(e Event) {
	for _, sink := range d.sinks {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err := sink.Publish(ctx, e)
		cancel()
		if err != nil {
			metrics.EventsPublished.WithLabelValues(sink.Name(), "error").Inc()
			d.log.Error("event publish failed", "sink", sink.Name(), "type", e.Type, "event_id", e.ID, "err", err)
			continue
		}
		metrics.EventsPublished.WithLabelValues(sink.Name(), "ok").Inc()
	}
}
