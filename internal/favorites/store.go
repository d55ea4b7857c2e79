package favorites

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"shopeasy/internal/domain"
)

const tracerName = "shopeasy/internal/favorites"

// Snapshot is the full ordered favorites list at one point in time. A
// snapshot with a non-nil Err is the last value of its stream.
type Snapshot struct {
	Favorites []domain.Favorite
	Err       error
}

type observer struct {
	dirty chan struct{}
}

func (o *observer) invalidate() {
	select {
	case o.dirty <- struct{}{}:
	default:
	}
}

// Store owns the favorites table and pushes a fresh snapshot to every
// observer after each committed change.
type Store struct {
	table  Table
	logger *slog.Logger
	tracer trace.Tracer

	// Writes share commit and may run in parallel. A snapshot read holds it
	// exclusively, so the list it sees matches version exactly.
	commit  sync.RWMutex
	version atomic.Uint64

	mu        sync.Mutex
	observers map[*observer]struct{}
}

func NewStore(table Table, logger *slog.Logger) *Store {
	return &Store{
		table:     table,
		logger:    logger.With("component", "favorites_store"),
		tracer:    otel.Tracer(tracerName),
		observers: make(map[*observer]struct{}),
	}
}

// ObserveAll returns a stream that yields the current favorites right away
// and again after every change, newest first. The channel holds at most one
// pending snapshot; an unread snapshot is replaced by a newer one. The
// stream is closed when ctx is done or after a snapshot carrying Err.
func (s *Store) ObserveAll(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	obs := &observer{dirty: make(chan struct{}, 1)}

	// Registered before the first read so no change can slip between the
	// initial snapshot and the subscription.
	s.attach(obs)
	obs.invalidate()

	go func() {
		defer close(out)
		defer s.detach(obs)

		var (
			emitted bool
			last    uint64
		)
		for {
			select {
			case <-ctx.Done():
				return
			case <-obs.dirty:
			}

			favs, version, err := s.list(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.Error("favorites snapshot failed", "error", err)
				offer(out, Snapshot{Err: err})
				return
			}
			// A change committed during the previous read was already in it.
			if emitted && version == last {
				continue
			}
			emitted, last = true, version
			offer(out, Snapshot{Favorites: favs})
		}
	}()

	return out
}

// offer puts snap into out, discarding a snapshot the reader has not taken
// yet. out must have capacity 1 and a single sender.
func offer(out chan Snapshot, snap Snapshot) {
	select {
	case out <- snap:
		return
	default:
	}
	select {
	case <-out:
	default:
	}
	out <- snap
}

func (s *Store) Upsert(ctx context.Context, fav domain.Favorite) error {
	ctx, span := s.tracer.Start(ctx, "favorites.Upsert",
		trace.WithAttributes(attribute.Int64("favorite.id", fav.ID)))
	defer span.End()

	s.commit.RLock()
	err := s.table.Upsert(ctx, fav)
	if err == nil {
		s.version.Add(1)
	}
	s.commit.RUnlock()
	if err != nil {
		return fail(span, domain.StorageFault(fmt.Sprintf("upsert favorite %d", fav.ID), err))
	}

	s.logger.Debug("favorite saved", "id", fav.ID)
	s.notify()
	return nil
}

// Delete removes the favorite with id. Deleting an absent id is a no-op and
// does not notify observers.
func (s *Store) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "favorites.Delete",
		trace.WithAttributes(attribute.Int64("favorite.id", id)))
	defer span.End()

	s.commit.RLock()
	removed, err := s.table.Delete(ctx, id)
	if removed && err == nil {
		s.version.Add(1)
	}
	s.commit.RUnlock()
	if err != nil {
		return fail(span, domain.StorageFault(fmt.Sprintf("delete favorite %d", id), err))
	}
	span.SetAttributes(attribute.Bool("favorite.removed", removed))
	if !removed {
		return nil
	}

	s.logger.Debug("favorite deleted", "id", id)
	s.notify()
	return nil
}

// Count returns 1 when a favorite with id exists and 0 otherwise.
func (s *Store) Count(ctx context.Context, id int64) (int, error) {
	ctx, span := s.tracer.Start(ctx, "favorites.Count",
		trace.WithAttributes(attribute.Int64("favorite.id", id)))
	defer span.End()

	n, err := s.table.Count(ctx, id)
	if err != nil {
		return 0, fail(span, domain.StorageFault(fmt.Sprintf("count favorite %d", id), err))
	}
	return n, nil
}

// list reads the table together with the version of the last write it
// reflects.
func (s *Store) list(ctx context.Context) ([]domain.Favorite, uint64, error) {
	ctx, span := s.tracer.Start(ctx, "favorites.List")
	defer span.End()

	s.commit.Lock()
	version := s.version.Load()
	favs, err := s.table.List(ctx)
	s.commit.Unlock()
	if err != nil {
		return nil, 0, fail(span, domain.StorageFault("list favorites", err))
	}
	span.SetAttributes(
		attribute.Int("favorites.count", len(favs)),
		attribute.Int64("favorites.version", int64(version)),
	)
	return favs, version, nil
}

func (s *Store) attach(obs *observer) {
	s.mu.Lock()
	s.observers[obs] = struct{}{}
	s.mu.Unlock()
}

func (s *Store) detach(obs *observer) {
	s.mu.Lock()
	delete(s.observers, obs)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for obs := range s.observers {
		obs.invalidate()
	}
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
