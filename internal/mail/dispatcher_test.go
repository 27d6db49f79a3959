package mail

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeliverer struct {
	configured bool
	err        error
	block      chan struct{}

	mu   sync.Mutex
	sent []Message
}

func (f *fakeDeliverer) Configured() bool { return f.configured }

func (f *fakeDeliverer) Send(ctx context.Context, msg Message) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.err
}

func TestDispatcher_DeliversQueuedMessages(t *testing.T) {
	f := &fakeDeliverer{configured: true}
	d := NewDispatcher(f, 10)
	d.Start(context.Background(), 2)

	for i := 0; i < 5; i++ {
		require.NoError(t, d.Dispatch(Message{To: "earl@example.com", Template: TemplateConfirm}))
	}
	d.Stop()

	assert.Len(t, f.sent, 5)
}

func TestDispatcher_FailuresAreNotRetried(t *testing.T) {
	f := &fakeDeliverer{configured: true, err: errors.New("relay down")}
	d := NewDispatcher(f, 1)
	d.Start(context.Background(), 1)

	require.NoError(t, d.Dispatch(Message{To: "earl@example.com"}))
	d.Stop()

	assert.Len(t, f.sent, 1)
}

func TestDispatcher_NotConfigured(t *testing.T) {
	d := NewDispatcher(&fakeDeliverer{}, 1)
	assert.ErrorIs(t, d.Dispatch(Message{}), ErrNotConfigured)
}

func TestDispatcher_QueueFull(t *testing.T) {
	f := &fakeDeliverer{configured: true}
	d := NewDispatcher(f, 1)

	// No workers started, so the single slot stays taken.
	require.NoError(t, d.Dispatch(Message{To: "a@example.com"}))
	assert.ErrorIs(t, d.Dispatch(Message{To: "b@example.com"}), ErrQueueFull)

	d.Start(context.Background(), 1)
	d.Stop()
	assert.Len(t, f.sent, 1)
}

func TestDispatcher_Stopped(t *testing.T) {
	d := NewDispatcher(&fakeDeliverer{configured: true}, 1)
	d.Start(context.Background(), 1)
	d.Stop()
	d.Stop()

	assert.ErrorIs(t, d.Dispatch(Message{}), ErrStopped)
}
