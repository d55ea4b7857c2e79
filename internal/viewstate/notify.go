package viewstate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification is a one-shot message meant to be shown once, such as a
// toast.
type Notification struct {
	ID      uuid.UUID
	Message string
	At      time.Time
}

type listener struct {
	ch   chan Notification
	done chan struct{}
}

// notifier broadcasts without buffering: a notification reaches only the
// listeners attached when it is emitted and is dropped when there are none.
type notifier struct {
	logger *slog.Logger

	mu        sync.Mutex
	listeners map[*listener]struct{}
}

func newNotifier(logger *slog.Logger) *notifier {
	return &notifier{
		logger:    logger,
		listeners: make(map[*listener]struct{}),
	}
}

// subscribe registers a listener that stays attached until ctx or scope is
// done. The returned channel is never closed.
func (n *notifier) subscribe(ctx, scope context.Context) <-chan Notification {
	l := &listener{
		ch:   make(chan Notification),
		done: make(chan struct{}),
	}

	n.mu.Lock()
	n.listeners[l] = struct{}{}
	n.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-scope.Done():
		}
		n.mu.Lock()
		delete(n.listeners, l)
		n.mu.Unlock()
		close(l.done)
	}()

	return l.ch
}

// emit hands the notification to each attached listener in turn, waiting
// until it is received, the listener detaches or ctx ends.
func (n *notifier) emit(ctx context.Context, message string, at time.Time) {
	n.mu.Lock()
	targets := make([]*listener, 0, len(n.listeners))
	for l := range n.listeners {
		targets = append(targets, l)
	}
	n.mu.Unlock()

	if len(targets) == 0 {
		n.logger.Debug("notification dropped, no listeners", "message", message)
		return
	}

	note := Notification{ID: uuid.New(), Message: message, At: at}
	for _, l := range targets {
		select {
		case l.ch <- note:
		case <-l.done:
		case <-ctx.Done():
			return
		}
	}
}

func (n *notifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}
