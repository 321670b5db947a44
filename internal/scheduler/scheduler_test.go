package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"eurobot-backend/internal/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	mu          sync.Mutex
	calls       int
	hadDeadline bool
	err         error
}

func (r *countingRunner) Run(ctx context.Context) (*ingest.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	_, r.hadDeadline = ctx.Deadline()
	if r.err != nil {
		return nil, r.err
	}
	return &ingest.Report{SeriesWritten: 1}, nil
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	_, err := New("every tuesday", &countingRunner{}, time.Minute)

	assert.ErrorContains(t, err, "invalid reseed schedule")
}

func TestTickRunsWithTimeout(t *testing.T) {
	runner := &countingRunner{}
	s, err := New("0 3 * * *", runner, time.Minute)
	require.NoError(t, err)

	s.tick()

	assert.Equal(t, 1, runner.calls)
	assert.True(t, runner.hadDeadline)
}

func TestTickSurvivesRunnerError(t *testing.T) {
	runner := &countingRunner{err: errors.New("discover: missing")}
	s, err := New("0 3 * * *", runner, 0)
	require.NoError(t, err)

	assert.NotPanics(t, s.tick)
	assert.Equal(t, 5*time.Minute, s.timeout)
}

func TestStartComputesNextRun(t *testing.T) {
	s, err := New("*/5 * * * *", &countingRunner{}, time.Minute)
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return !s.Next().IsZero() }, 2*time.Second, 10*time.Millisecond)
	next := s.Next()
	assert.True(t, next.After(time.Now().Add(-time.Second)))
	assert.True(t, next.Before(time.Now().Add(5*time.Minute+time.Second)))
	assert.Equal(t, 0, next.Minute()%5)
}
