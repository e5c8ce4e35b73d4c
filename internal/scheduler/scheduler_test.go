package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/recipecost-backend/internal/usecase/recipe"
)

// MockRepricer is a mock implementation of Repricer for testing
type MockRepricer struct {
	mock.Mock
}

func (m *MockRepricer) RepriceAll(ctx context.Context) (recipe.RepriceReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(recipe.RepriceReport), args.Error(1)
}

func TestRunOnce_AppliesTimeout(t *testing.T) {
	repricer := new(MockRepricer)
	s := NewScheduler(repricer, "@hourly", time.Minute, nil)

	repricer.On("RepriceAll", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(recipe.RepriceReport{Priced: 3}, nil)

	report, err := s.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, report.Priced)
	repricer.AssertExpectations(t)
}

func TestRunOnce_PropagatesError(t *testing.T) {
	repricer := new(MockRepricer)
	s := NewScheduler(repricer, "@hourly", 0, nil)

	repricer.On("RepriceAll", mock.Anything).Return(recipe.RepriceReport{}, errors.New("db unavailable"))

	_, err := s.RunOnce(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 2*time.Minute, s.timeout, "non-positive timeout falls back to the default")
}

func TestStart_InvalidSchedule(t *testing.T) {
	s := NewScheduler(new(MockRepricer), "every now and then", time.Minute, nil)

	err := s.Start(context.Background())

	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(new(MockRepricer), "*/15 * * * *", time.Minute, nil)

	require.NoError(t, s.Start(context.Background()))
	assert.Len(t, s.cron.Entries(), 1)
	assert.NoError(t, s.Stop(context.Background()))
}

// blockUntilCancelled makes RepriceAll signal started and then wait for its context
func blockUntilCancelled(repricer *MockRepricer, started chan struct{}) {
	var once sync.Once
	repricer.On("RepriceAll", mock.Anything).Run(func(args mock.Arguments) {
		once.Do(func() { close(started) })
		<-args.Get(0).(context.Context).Done()
	}).Return(recipe.RepriceReport{}, context.Canceled)
}

func TestStop_CancelsRunningJob(t *testing.T) {
	repricer := new(MockRepricer)
	s := NewScheduler(repricer, "@hourly", time.Hour, nil)
	started := make(chan struct{})
	blockUntilCancelled(repricer, started)

	require.NoError(t, s.Start(context.Background()))

	finished := make(chan struct{})
	go func() {
		s.repriceRecipes()
		close(finished)
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("repricing job ignored Stop")
	}
}

func TestStart_ParentCancellationReachesJob(t *testing.T) {
	repricer := new(MockRepricer)
	s := NewScheduler(repricer, "@hourly", time.Hour, nil)
	started := make(chan struct{})
	blockUntilCancelled(repricer, started)

	parent, cancelParent := context.WithCancel(context.Background())
	require.NoError(t, s.Start(parent))
	t.Cleanup(func() { _ = s.Stop(context.Background()) })

	finished := make(chan struct{})
	go func() {
		s.repriceRecipes()
		close(finished)
	}()
	<-started

	cancelParent()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("repricing job outlived its parent context")
	}
}

func TestStop_GivesUpAtDeadline(t *testing.T) {
	repricer := new(MockRepricer)
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	repricer.On("RepriceAll", mock.Anything).Run(func(mock.Arguments) {
		once.Do(func() { close(started) })
		<-release
	}).Return(recipe.RepriceReport{}, nil)
	t.Cleanup(func() { close(release) })

	s := NewScheduler(repricer, "@every 1s", time.Minute, nil)
	require.NoError(t, s.Start(context.Background()))

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("cron never ran the job")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.Stop(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
