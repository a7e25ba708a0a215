package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/scheduler/mocks"
)

func inactiveFlagStore() *mocks.FlagStoreMock {
	return &mocks.FlagStoreMock{
		SchedulerActiveFunc:    func(ctx context.Context) (bool, error) { return false, nil },
		SetSchedulerActiveFunc: func(ctx context.Context, active bool) error { return nil },
	}
}

func TestScheduler_StartFiresCatchUpRun(t *testing.T) {
	fired := make(chan struct{}, 10)
	trigger := &mocks.TriggerMock{
		CheckAndFetchNewsFunc: func(ctx context.Context) domain.FetchNewsResult {
			fired <- struct{}{}
			return domain.FetchNewsResult{Success: true, Message: "ok"}
		},
	}

	flags := inactiveFlagStore()
	s := New(flags, trigger, 6*time.Hour)
	tick := make(chan time.Time)
	s.SetClock(time.Now, func(time.Duration) <-chan time.Time { return tick })

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("catch-up run did not fire")
	}

	// guard flag persisted as active
	calls := flags.SetSchedulerActiveCalls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Active)
}

func TestScheduler_RearmsAfterEveryRun(t *testing.T) {
	fired := make(chan struct{}, 10)
	runs := 0
	trigger := &mocks.TriggerMock{
		CheckAndFetchNewsFunc: func(ctx context.Context) domain.FetchNewsResult {
			runs++
			fired <- struct{}{}
			if runs == 2 {
				// a failing run must not stop the chain
				return domain.FetchNewsResult{Success: false, Message: "provider down"}
			}
			return domain.FetchNewsResult{Success: true, Message: "ok"}
		},
	}

	s := New(inactiveFlagStore(), trigger, 6*time.Hour)
	tick := make(chan time.Time)
	s.SetClock(time.Now, func(time.Duration) <-chan time.Time { return tick })

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	waitFire := func() {
		t.Helper()
		select {
		case <-fired:
		case <-time.After(2 * time.Second):
			t.Fatal("expected scheduled run did not fire")
		}
	}

	waitFire() // catch-up run

	tick <- time.Now() // scheduled run, fails
	waitFire()

	tick <- time.Now() // still re-armed after the failure
	waitFire()

	assert.Equal(t, 3, runs)
}

func TestScheduler_StartIdempotentWhenFlagActive(t *testing.T) {
	flags := &mocks.FlagStoreMock{
		SchedulerActiveFunc:    func(ctx context.Context) (bool, error) { return true, nil },
		SetSchedulerActiveFunc: func(ctx context.Context, active bool) error { return nil },
	}
	trigger := &mocks.TriggerMock{
		CheckAndFetchNewsFunc: func(ctx context.Context) domain.FetchNewsResult {
			return domain.FetchNewsResult{Success: true}
		},
	}

	s := New(flags, trigger, 6*time.Hour)
	require.NoError(t, s.Start(context.Background()))

	// no second chain armed, no flag write, no run fired
	assert.Empty(t, flags.SetSchedulerActiveCalls())
	assert.Empty(t, trigger.CheckAndFetchNewsCalls())
}

func TestScheduler_StartArmsWhenFlagUnreadable(t *testing.T) {
	fired := make(chan struct{}, 1)
	flags := &mocks.FlagStoreMock{
		SchedulerActiveFunc:    func(ctx context.Context) (bool, error) { return false, errors.New("db locked") },
		SetSchedulerActiveFunc: func(ctx context.Context, active bool) error { return nil },
	}
	trigger := &mocks.TriggerMock{
		CheckAndFetchNewsFunc: func(ctx context.Context) domain.FetchNewsResult {
			select {
			case fired <- struct{}{}:
			default:
			}
			return domain.FetchNewsResult{Success: true}
		},
	}

	s := New(flags, trigger, 6*time.Hour)
	tick := make(chan time.Time)
	s.SetClock(time.Now, func(time.Duration) <-chan time.Time { return tick })

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler should arm despite unreadable flag")
	}
}

func TestScheduler_StopClearsFlag(t *testing.T) {
	trigger := &mocks.TriggerMock{
		CheckAndFetchNewsFunc: func(ctx context.Context) domain.FetchNewsResult {
			return domain.FetchNewsResult{Success: true}
		},
	}

	flags := inactiveFlagStore()
	s := New(flags, trigger, 6*time.Hour)
	tick := make(chan time.Time)
	s.SetClock(time.Now, func(time.Duration) <-chan time.Time { return tick })

	require.NoError(t, s.Start(context.Background()))
	s.Stop()

	calls := flags.SetSchedulerActiveCalls()
	require.Len(t, calls, 2)
	assert.True(t, calls[0].Active)
	assert.False(t, calls[1].Active)
}

func TestDelayUntilNext(t *testing.T) {
	runAt := 6 * time.Hour // 06:00

	tests := []struct {
		name     string
		now      time.Time
		expected time.Duration
	}{
		{
			name:     "before today's run",
			now:      time.Date(2026, 8, 31, 5, 0, 0, 0, time.UTC),
			expected: time.Hour,
		},
		{
			name:     "after today's run waits for tomorrow",
			now:      time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC),
			expected: 23 * time.Hour,
		},
		{
			name:     "exactly at the run time goes to tomorrow",
			now:      time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC),
			expected: 24 * time.Hour,
		},
		{
			name:     "midnight",
			now:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			expected: 6 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, delayUntilNext(tt.now, runAt))
		})
	}
}
