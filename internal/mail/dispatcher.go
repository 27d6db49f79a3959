package mail

import (
	"context"
	"errors"
	"sync"

	"github.com/sbilibin2017/teaflask/internal/logger"
)

// Dispatch errors.
var (
	ErrQueueFull = errors.New("mail: queue full")
	ErrStopped   = errors.New("mail: dispatcher stopped")
)

// Deliverer sends a single message synchronously.
type Deliverer interface {
	Configured() bool
	Send(ctx context.Context, msg Message) error
}

// Dispatcher sends mail on background workers. Dispatch never blocks and
// failed deliveries are logged, not retried.
type Dispatcher struct {
	deliverer Deliverer
	queue     chan Message

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with a queue of the given size.
func NewDispatcher(d Deliverer, size int) *Dispatcher {
	if size < 1 {
		size = 1
	}
	return &Dispatcher{
		deliverer: d,
		queue:     make(chan Message, size),
	}
}

// Start launches the workers. They exit once Stop drains the queue.
func (d *Dispatcher) Start(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for msg := range d.queue {
				d.deliver(ctx, msg)
			}
		}()
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) {
	if err := d.deliverer.Send(ctx, msg); err != nil {
		logger.Log.Errorw("failed to send email", "to", msg.To, "template", msg.Template, "error", err)
		return
	}
	logger.Log.Infow("email sent", "to", msg.To, "template", msg.Template)
}

// Dispatch queues msg for delivery. It fails immediately when mail is not
// configured, the queue is full or the dispatcher is stopped.
func (d *Dispatcher) Dispatch(msg Message) error {
	if !d.deliverer.Configured() {
		return ErrNotConfigured
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop rejects new messages and waits for queued ones to be sent.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}
