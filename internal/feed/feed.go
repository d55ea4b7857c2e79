// Package feed forwards every favorites snapshot to an outside publisher.
package feed

import (
	"context"
	"fmt"
	"log/slog"
)

type Feed struct {
	source    Source
	publisher Publisher
	logger    *slog.Logger
}

func New(source Source, publisher Publisher, logger *slog.Logger) *Feed {
	return &Feed{
		source:    source,
		publisher: publisher,
		logger:    logger.With("component", "feed"),
	}
}

// Run publishes snapshots until ctx is done or the stream fails. A failed
// publish is logged and the next snapshot is still sent.
func (f *Feed) Run(ctx context.Context) error {
	f.logger.Info("favorites feed started")

	for snap := range f.source.GetAllFavorites(ctx) {
		if snap.Err != nil {
			return fmt.Errorf("favorites stream: %w", snap.Err)
		}
		if err := f.publisher.PublishFavorites(ctx, snap.Favorites); err != nil {
			f.logger.Error("failed to publish favorites", "count", len(snap.Favorites), "error", err)
			continue
		}
		f.logger.Debug("favorites forwarded", "count", len(snap.Favorites))
	}

	f.logger.Info("favorites feed stopped")
	return ctx.Err()
}
