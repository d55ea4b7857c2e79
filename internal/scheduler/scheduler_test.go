package scheduler

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type countingTarget struct {
	calls atomic.Int32
}

func (c *countingTarget) Refresh() {
	c.calls.Add(1)
}

type SchedulerTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *SchedulerTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) TestStart_ZeroIntervalRefreshesOnce() {
	a, b := &countingTarget{}, &countingTarget{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- NewScheduler(0, s.logger, a, b).Start(ctx) }()

	s.Eventually(func() bool { return a.calls.Load() == 1 && b.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	s.Equal(int32(1), a.calls.Load())

	cancel()
	s.ErrorIs(<-done, context.Canceled)
}

func (s *SchedulerTestSuite) TestStart_PeriodicRefresh() {
	target := &countingTarget{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- NewScheduler(10*time.Millisecond, s.logger, target).Start(ctx) }()

	s.Eventually(func() bool { return target.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	s.ErrorIs(<-done, context.Canceled)
}
