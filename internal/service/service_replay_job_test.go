package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyReplayService counts Replay calls.
type spyReplayService struct {
	calls atomic.Int64
	err   error
}

func (s *spyReplayService) Replay(_ context.Context) (int, error) {
	s.calls.Add(1)
	return 0, s.err
}

func TestNewReplayJob_ReturnsInterface(t *testing.T) {
	spy := &spyReplayService{}
	job := NewReplayJob(spy)
	require.NotNil(t, job)

	var _ ReplayJob = job
}

func TestReplayJob_Start_CallsReplay(t *testing.T) {
	spy := &spyReplayService{}
	job := NewReplayJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Replay should have ticked several times, got: %d", got)
}

func TestReplayJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyReplayService{}
	job := NewReplayJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "no new calls expected after Stop")
}

func TestReplayJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	spy := &spyReplayService{}
	job := NewReplayJob(spy)

	assert.NotPanics(t, func() { job.Stop() })
}

func TestReplayJob_Restart(t *testing.T) {
	spy := &spyReplayService{}
	job := NewReplayJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	job.Start(ctx, 10*time.Millisecond) // restarts without leaking the first loop
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Positive(t, spy.calls.Load())
}

func TestReplayJob_ContextCancelStopsLoop(t *testing.T) {
	spy := &spyReplayService{}
	job := NewReplayJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(25 * time.Millisecond)

	callsAfterCancel := spy.calls.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, callsAfterCancel, spy.calls.Load())

	job.Stop()
}
