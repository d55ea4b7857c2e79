// Package viewstate holds the per-screen state containers. Each container
// keeps one state value, reacts to intents and broadcasts one-shot
// notifications to whoever is listening at that moment.
package viewstate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shopeasy/internal/domain"
	"shopeasy/internal/repository"
)

const unknownError = "Unknown error"

const (
	msgAddedToFavorites     = "Added to favorites"
	msgAddFavoriteFailed    = "Failed to add to favorites"
	msgRemoveFavoriteFailed = "Failed to remove from favorites"
)

// session scopes the work of one container. Intent handlers run on their
// own goroutines and are cancelled together when the session is closed.
type session struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool

	notes  *notifier
	logger *slog.Logger
	now    func() time.Time
}

func newSession(ctx context.Context, logger *slog.Logger) *session {
	ctx, cancel := context.WithCancel(ctx)
	return &session{
		ctx:    ctx,
		cancel: cancel,
		notes:  newNotifier(logger),
		logger: logger,
		now:    time.Now,
	}
}

// spawn runs fn on the session context. It does nothing once the session is
// closed.
func (s *session) spawn(fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

// Notifications attaches a listener until ctx is done or the session ends.
// Notifications emitted while nobody is attached are lost.
func (s *session) Notifications(ctx context.Context) <-chan Notification {
	return s.notes.subscribe(ctx, s.ctx)
}

// Wait blocks until every dispatched intent has finished.
func (s *session) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight work and waits for it to return.
func (s *session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

// addToFavorites saves product stamped with the current time and tells the
// listeners how it went.
func (s *session) addToFavorites(ctx context.Context, repo repository.FavoritesRepository, product domain.Product) bool {
	fav := domain.NewFavorite(product, s.now())
	if err := repo.SaveFavorite(ctx, fav); err != nil {
		s.logger.Error("failed to save favorite", "id", product.ID, "error", err)
		s.notes.emit(ctx, msgAddFavoriteFailed, s.now())
		return false
	}
	s.notes.emit(ctx, msgAddedToFavorites, s.now())
	return true
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownError
}
