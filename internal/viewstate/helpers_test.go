package viewstate

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	waitTimeout = 2 * time.Second
	tick        = 10 * time.Millisecond
	quietPeriod = 100 * time.Millisecond
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func receive(s *suite.Suite, ch <-chan Notification) Notification {
	s.T().Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(waitTimeout):
		s.FailNow("no notification received")
	}
	return Notification{}
}

func expectNoNotification(s *suite.Suite, ch <-chan Notification) {
	s.T().Helper()
	select {
	case n := <-ch:
		s.Failf("unexpected notification", "got %q", n.Message)
	case <-time.After(quietPeriod):
	}
}

// gate returns a channel to close and a func that blocks until it is closed
// or ctx ends.
func gate() (chan struct{}, func(ctx context.Context) error) {
	open := make(chan struct{})
	return open, func(ctx context.Context) error {
		select {
		case <-open:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
