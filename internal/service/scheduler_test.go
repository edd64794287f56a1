package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSchedulerAdd(t *testing.T) {
	s := NewScheduler(time.UTC, zap.NewNop())
	noop := func(context.Context) error { return nil }
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "prefetch", "5 0 * * *", noop))
	require.NoError(t, s.Add(ctx, "announce", "", noop))
	assert.Error(t, s.Add(ctx, "sweep", "every minute", noop))

	assert.Equal(t, []string{"prefetch"}, s.Jobs())
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	s := NewScheduler(nil, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
