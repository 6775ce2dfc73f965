package publisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	id "github.com/tfalohun/olera-sub001/pkg/domain"
	audit "github.com/tfalohun/olera-sub001/pkg/platform/audit"
	"github.com/tfalohun/olera-sub001/pkg/platform/circuit"
	"github.com/tfalohun/olera-sub001/pkg/platform/sentinel"
)

var (
	ErrBufferFull  = errors.New("audit buffer full")
	ErrClosed      = errors.New("audit publisher closed")
	ErrCircuitOpen = fmt.Errorf("audit sink circuit open: %w", sentinel.ErrUnavailable)
	errNotListable = errors.New("audit store does not support listing")
)

// Publisher stamps events and forwards them to a store, either inline or
// through a bounded buffer drained by a background goroutine.
type Publisher struct {
	store   audit.Store
	logger  *slog.Logger
	breaker *circuit.Breaker

	bufferSize int
	queue      chan audit.Event
	wg         sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithAsyncBuffer enables asynchronous delivery with a buffer of n events.
func WithAsyncBuffer(n int) Option {
	return func(p *Publisher) {
		p.bufferSize = n
	}
}

// WithLogger sets the logger used for delivery failures in async mode.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithBreaker stops calling the store while it keeps failing.
func WithBreaker(b *circuit.Breaker) Option {
	return func(p *Publisher) {
		p.breaker = b
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.bufferSize > 0 {
		p.queue = make(chan audit.Event, p.bufferSize)
		p.wg.Add(1)
		go p.drain()
	}
	return p
}

// Emit stamps the event and delivers it. In async mode it never blocks on
// the store; a full buffer returns ErrBufferFull.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}

	if p.queue == nil {
		return p.write(ctx, event)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	select {
	case p.queue <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrBufferFull
	}
}

// List reads events back when the underlying store supports it.
func (p *Publisher) List(ctx context.Context, userID id.UserID) ([]audit.Event, error) {
	lister, ok := p.store.(audit.Lister)
	if !ok {
		return nil, errNotListable
	}
	return lister.ListByUser(ctx, userID)
}

// Close stops accepting events and waits for the buffer to drain.
func (p *Publisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	if p.queue != nil {
		close(p.queue)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	for event := range p.queue {
		if err := p.write(context.Background(), event); err != nil && p.logger != nil {
			p.logger.Warn("audit event dropped",
				"action", event.Action,
				"error", err,
			)
		}
	}
}

func (p *Publisher) write(ctx context.Context, event audit.Event) error {
	if p.breaker != nil && !p.breaker.Allow() {
		return ErrCircuitOpen
	}
	err := p.store.Append(ctx, event)
	if p.breaker != nil {
		if err != nil {
			if _, change := p.breaker.RecordFailure(); change.Opened && p.logger != nil {
				p.logger.Warn("audit sink circuit opened", "breaker", p.breaker.Name())
			}
		} else {
			p.breaker.RecordSuccess()
		}
	}
	return err
}
