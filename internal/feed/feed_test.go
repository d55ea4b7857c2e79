package feed

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shopeasy/internal/domain"
	"shopeasy/internal/favorites"
	"shopeasy/internal/feed/mocks"
)

type FeedTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	source    *mocks.MockSource
	publisher *mocks.MockPublisher
	feed      *Feed
}

func (s *FeedTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = mocks.NewMockSource(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	s.feed = New(s.source, s.publisher, logger)
}

func (s *FeedTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeedTestSuite(t *testing.T) {
	suite.Run(t, new(FeedTestSuite))
}

func stream(snaps ...favorites.Snapshot) <-chan favorites.Snapshot {
	ch := make(chan favorites.Snapshot, len(snaps))
	for _, snap := range snaps {
		ch <- snap
	}
	close(ch)
	return ch
}

func (s *FeedTestSuite) TestRun_PublishesEverySnapshot() {
	ctx, cancel := context.WithCancel(context.Background())
	first := []domain.Favorite{{ID: 1}}
	second := []domain.Favorite{{ID: 2}, {ID: 1}}

	s.source.EXPECT().GetAllFavorites(ctx).Return(stream(
		favorites.Snapshot{Favorites: first},
		favorites.Snapshot{Favorites: second},
	))
	gomock.InOrder(
		s.publisher.EXPECT().PublishFavorites(ctx, first).Return(nil),
		s.publisher.EXPECT().PublishFavorites(ctx, second).DoAndReturn(func(context.Context, []domain.Favorite) error {
			cancel()
			return nil
		}),
	)

	s.ErrorIs(s.feed.Run(ctx), context.Canceled)
}

func (s *FeedTestSuite) TestRun_PublishFailureContinues() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.source.EXPECT().GetAllFavorites(ctx).Return(stream(
		favorites.Snapshot{Favorites: []domain.Favorite{{ID: 1}}},
		favorites.Snapshot{},
	))
	gomock.InOrder(
		s.publisher.EXPECT().PublishFavorites(ctx, gomock.Any()).Return(errors.New("channel closed")),
		s.publisher.EXPECT().PublishFavorites(ctx, gomock.Any()).Return(nil),
	)

	s.NoError(s.feed.Run(ctx))
}

func (s *FeedTestSuite) TestRun_StreamFaultStops() {
	ctx := context.Background()
	fault := domain.StorageFault("list favorites", errors.New("io"))

	s.source.EXPECT().GetAllFavorites(ctx).Return(stream(
		favorites.Snapshot{Err: fault},
		favorites.Snapshot{Favorites: []domain.Favorite{{ID: 1}}},
	))

	err := s.feed.Run(ctx)
	s.ErrorIs(err, domain.ErrStorage)
}
