package handler

import (
	"context"
	"memberbot/internal/core/domain"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type MessageHandler interface {
	OnMessage(ctx context.Context, message *domain.Message) error
}

// Event is a queued message together with the logger carrying its correlation fields.
type Event struct {
	Message *domain.Message
	Logger  zerolog.Logger
}

// Dispatcher feeds queued messages to a fixed pool of workers.
type Dispatcher struct {
	handler MessageHandler
	queue   chan Event
	workers int
	timeout time.Duration
}

func NewDispatcher(handler MessageHandler, workers, queueSize int, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		handler: handler,
		queue:   make(chan Event, queueSize),
		workers: workers,
		timeout: timeout,
	}
}

// Enqueue queues an event without blocking. It reports false when the queue is full.
func (d *Dispatcher) Enqueue(ev Event) bool {
	select {
	case d.queue <- ev:
		return true
	default:
		return false
	}
}

// Run starts the workers and blocks until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	for i := range d.workers {
		g.Go(func() error {
			log.Debug().Int("worker", i).Msg("dispatch worker started")
			d.work(gCtx)
			log.Debug().Int("worker", i).Msg("dispatch worker stopped")
			return nil
		})
	}

	return g.Wait()
}

func (d *Dispatcher) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-d.queue:
			d.handle(ctx, ev)
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, ev Event) {
	ctx = ev.Logger.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := d.handler.OnMessage(ctx, ev.Message)
	if err != nil {
		ev.Logger.Err(err).Msg("failed to handle message")
	}
}
