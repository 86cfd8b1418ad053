package queue

import (
	"context"
	"strings"
	"sync"
	"time"

	"horatime-api/internal/timezone"

	"go.uber.org/zap"
)

const lookupRoutingPrefix = "timezone.lookup."

// Publisher is the subset of Client used for events.
type Publisher interface {
	PublishJSON(ctx context.Context, exchange, routingKey string, payload any) error
}

type LookupEvent struct {
	Location   *string   `json:"location"`
	Timezone   *string   `json:"timezone"`
	UTCOffset  *string   `json:"utcOffset"`
	Status     string    `json:"status"`
	RequestID  string    `json:"requestId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewLookupEvent(resp timezone.Response, requestID string, at time.Time) LookupEvent {
	return LookupEvent{
		Location:   resp.Location,
		Timezone:   resp.Timezone,
		UTCOffset:  resp.UTCOffset,
		Status:     string(resp.Status),
		RequestID:  requestID,
		OccurredAt: at.UTC(),
	}
}

func (e LookupEvent) RoutingKey() string {
	return lookupRoutingPrefix + strings.ToLower(e.Status)
}

const defaultEventBuffer = 256

// LookupEvents publishes one event per lookup from a single background
// goroutine, so a stalled broker never holds up a request. Events that do not
// fit in the buffer are dropped. A nil *LookupEvents is a no-op.
type LookupEvents struct {
	pub      Publisher
	exchange string
	logger   *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan LookupEvent
	done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
}

func NewLookupEvents(pub Publisher, exchange string, logger *zap.Logger) *LookupEvents {
	return newLookupEvents(pub, exchange, logger, defaultEventBuffer)
}

func newLookupEvents(pub Publisher, exchange string, logger *zap.Logger, buffer int) *LookupEvents {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	e := &LookupEvents{
		pub:      pub,
		exchange: exchange,
		logger:   logger,
		queue:    make(chan LookupEvent, buffer),
		done:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
	go e.run()
	return e
}

// Publish enqueues an event and returns immediately.
func (e *LookupEvents) Publish(resp timezone.Response, requestID string) {
	if e == nil || e.pub == nil {
		return
	}
	evt := NewLookupEvent(resp, requestID, time.Now())

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return
	}
	select {
	case e.queue <- evt:
	default:
		e.logger.Warn("lookup event dropped",
			zap.String("routingKey", evt.RoutingKey()),
			zap.Int("buffer", cap(e.queue)),
		)
	}
}

// Close stops accepting events and waits for queued ones to be sent, or for
// ctx to end.
func (e *LookupEvents) Close(ctx context.Context) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		close(e.queue)
	}
	e.mu.Unlock()

	select {
	case <-e.done:
		return nil
	case <-ctx.Done():
		e.cancel()
		return ctx.Err()
	}
}

func (e *LookupEvents) run() {
	defer close(e.done)
	defer e.cancel()
	for evt := range e.queue {
		if err := e.pub.PublishJSON(e.ctx, e.exchange, evt.RoutingKey(), evt); err != nil {
			e.logger.Warn("lookup event publish failed",
				zap.String("exchange", e.exchange),
				zap.String("routingKey", evt.RoutingKey()),
				zap.Error(err),
			)
		}
	}
}
