package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizlink/portal-api/internal/api/metrics"
	"github.com/bizlink/portal-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
	drainTimeout   = 5 * time.Second
)

// Dispatcher fans auth events out to a fixed set of workers using
// consistent hashing on the account email, so events for one account are
// recorded in the order they happened. Publishing never blocks an
// identity operation: when a worker's buffer is full the event is
// dropped and counted instead.
type Dispatcher struct {
	workers  []chan ports.AuthEvent
	recorder ports.AuditRecorder
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder ports.AuditRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.AuthEvent, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. On cancellation each worker
// drains what is still buffered before exiting, so accepted events are
// not lost to shutdown.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish sends an event to the worker responsible for its email shard.
// A full buffer drops the event rather than stalling the caller.
func (d *Dispatcher) Publish(event ports.AuthEvent) {
	metrics.AuthAttemptsTotal.WithLabelValues(event.Type, event.Outcome).Inc()
	idx := d.shardIndex(event.Email)
	select {
	case d.workers[idx] <- event:
	default:
		metrics.AuditEventsDroppedTotal.Inc()
		d.log.Warn().
			Str("event_type", event.Type).
			Int("worker_id", idx).
			Msg("audit buffer full, event dropped")
		return
	}
	metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps an email deterministically to a worker index. Events
// without an email (logout, rejected input) all land on shard 0, which
// keeps their relative order too.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuthEvent) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			d.drain(id, label, ch)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.record(ctx, id, label, event, ch)
		}
	}
}

// drain records whatever is still buffered once the worker context is
// cancelled. The worker's own context is already done, so recording
// runs under a bounded shutdown context instead.
func (d *Dispatcher) drain(id int, label string, ch <-chan ports.AuthEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.record(ctx, id, label, event, ch)
		default:
			return
		}
	}
}

func (d *Dispatcher) record(ctx context.Context, id int, label string, event ports.AuthEvent, ch <-chan ports.AuthEvent) {
	start := time.Now()
	if err := d.recorder.Record(ctx, event); err != nil {
		d.log.Error().Err(err).
			Str("event_type", event.Type).
			Int("worker_id", id).
			Msg("audit recording failed")
	}
	metrics.AuditProcessingDuration.Observe(time.Since(start).Seconds())
	metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
}
