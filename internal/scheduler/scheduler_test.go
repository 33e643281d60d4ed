package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cleanExpiredSlots "github.com/m04kA/SMC-CourtService/internal/usecase/clean_expired_slots"
	generateSlots "github.com/m04kA/SMC-CourtService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeGenerator struct {
	mu   sync.Mutex
	reqs []generateSlots.Request
	err  error
}

func (g *fakeGenerator) Execute(_ context.Context, req *generateSlots.Request) (*generateSlots.Response, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reqs = append(g.reqs, *req)
	if g.err != nil {
		return nil, g.err
	}
	return &generateSlots.Response{StartDate: req.StartDate, EndDate: req.StartDate.AddDays(req.DaysToGenerate - 1)}, nil
}

type fakeCleaner struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (c *fakeCleaner) Execute(context.Context) (*cleanExpiredSlots.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &cleanExpiredSlots.Response{DeletedCount: 3}, nil
}

func TestGenerationJob_UsesVenueToday(t *testing.T) {
	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	// 2025-06-01 18:00 UTC это уже 2 июня в Тайбэе
	now := time.Date(2025, time.June, 1, 18, 0, 0, 0, time.UTC)
	gen := &fakeGenerator{}
	job := GenerationJob(gen, fixedTime{now}, taipei, 14, time.Hour, logger.Nop())

	require.NoError(t, job.Run(context.Background()))

	require.Len(t, gen.reqs, 1)
	assert.Equal(t, types.NewDate(2025, time.June, 2), gen.reqs[0].StartDate)
	assert.Equal(t, 14, gen.reqs[0].DaysToGenerate)
}

func TestGenerationJob_EmptyVenueIsNotFailure(t *testing.T) {
	for _, cause := range []error{generateSlots.ErrNoActiveCourts, generateSlots.ErrNoBusinessHours, generateSlots.ErrNoTemplates} {
		gen := &fakeGenerator{err: fmt.Errorf("%w: %w", generateSlots.ErrNothingToGenerate, cause)}
		job := GenerationJob(gen, fixedTime{time.Now()}, time.UTC, 7, time.Hour, logger.Nop())

		assert.NoError(t, job.Run(context.Background()))
	}

	gen := &fakeGenerator{err: generateSlots.ErrInternal}
	job := GenerationJob(gen, fixedTime{time.Now()}, time.UTC, 7, time.Hour, logger.Nop())
	assert.ErrorIs(t, job.Run(context.Background()), generateSlots.ErrInternal)
}

func TestScheduler_RunsJobsUntilCancelled(t *testing.T) {
	gen := &fakeGenerator{}
	cleaner := &fakeCleaner{err: errors.New("db down")}

	s := New(logger.Nop(),
		GenerationJob(gen, fixedTime{time.Now()}, time.UTC, 7, 20*time.Millisecond, logger.Nop()),
		RetentionJob(cleaner, 20*time.Millisecond, logger.Nop()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancel")
	}

	gen.mu.Lock()
	assert.GreaterOrEqual(t, len(gen.reqs), 1)
	gen.mu.Unlock()

	cleaner.mu.Lock()
	assert.GreaterOrEqual(t, cleaner.calls, 1)
	cleaner.mu.Unlock()
}

func TestScheduler_RunsJobsImmediatelyOnStart(t *testing.T) {
	gen := &fakeGenerator{}
	cleaner := &fakeCleaner{}

	s := New(logger.Nop(),
		GenerationJob(gen, fixedTime{time.Now()}, time.UTC, 14, 168*time.Hour, logger.Nop()),
		RetentionJob(cleaner, 720*time.Hour, logger.Nop()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	s.Start(ctx)

	gen.mu.Lock()
	assert.Len(t, gen.reqs, 1)
	gen.mu.Unlock()

	cleaner.mu.Lock()
	assert.Equal(t, 1, cleaner.calls)
	cleaner.mu.Unlock()
}

func TestScheduler_SkipsJobWithoutInterval(t *testing.T) {
	cleaner := &fakeCleaner{}
	s := New(logger.Nop(), RetentionJob(cleaner, 0, logger.Nop()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	s.Start(ctx)

	assert.Equal(t, 0, cleaner.calls)
}
