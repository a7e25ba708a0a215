// Package scheduler arms a daily fetch at a fixed local time. On arming it
// fires an immediate catch-up run, then re-arms itself after every run whether
// the run succeeded or not.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdigest/pkg/domain"
)

//go:generate moq -out mocks/flag_store.go -pkg mocks -skip-ensure -fmt goimports . FlagStore
//go:generate moq -out mocks/trigger.go -pkg mocks -skip-ensure -fmt goimports . Trigger

// FlagStore persists the scheduler-active guard flag
type FlagStore interface {
	SchedulerActive(ctx context.Context) (bool, error)
	SetSchedulerActive(ctx context.Context, active bool) error
}

// Trigger is the gated fetch entry point invoked on every run
type Trigger interface {
	CheckAndFetchNews(ctx context.Context) domain.FetchNewsResult
}

// Scheduler manages the daily fetch chain
type Scheduler struct {
	store   FlagStore
	trigger Trigger
	runAt   time.Duration // offset from local midnight

	nowFn     func() time.Time
	timeAfter func(time.Duration) <-chan time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New creates a scheduler firing daily at the given offset from local midnight
func New(store FlagStore, trigger Trigger, runAt time.Duration) *Scheduler {
	return &Scheduler{
		store:     store,
		trigger:   trigger,
		runAt:     runAt,
		nowFn:     time.Now,
		timeAfter: time.After,
	}
}

// SetClock overrides the time source and timer, used by tests
func (s *Scheduler) SetClock(nowFn func() time.Time, timeAfter func(time.Duration) <-chan time.Time) {
	s.nowFn = nowFn
	s.timeAfter = timeAfter
}

// Start arms the daily chain. Idempotent: a second call while the persisted
// guard flag is set does nothing, so a restart within the same store scope
// can't spawn a duplicate timer chain.
func (s *Scheduler) Start(ctx context.Context) error {
	active, err := s.store.SchedulerActive(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't read scheduler flag, arming anyway: %v", err)
	}
	if active {
		lgr.Printf("[INFO] scheduler already active")
		return nil
	}

	if err := s.store.SetSchedulerActive(ctx, true); err != nil {
		return err
	}

	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.run(ctx)

	lgr.Printf("[INFO] daily news fetch scheduled at %s from midnight", s.runAt)
	return nil
}

// Stop halts the chain and releases the guard flag
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()

	// release with a fresh context, the run context is already cancelled
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.SetSchedulerActive(ctx, false); err != nil {
		lgr.Printf("[WARN] failed to clear scheduler flag: %v", err)
	}
	lgr.Printf("[INFO] scheduler stopped")
}

// run fires the catch-up fetch, then loops on the daily timer. Reschedules
// unconditionally, one bad day must not stop future days.
func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	// immediate run covers the case where the process was down at the
	// scheduled time, the gate inside the trigger prevents over-fetching
	s.fire(ctx)

	for {
		delay := delayUntilNext(s.nowFn(), s.runAt)
		lgr.Printf("[INFO] next news fetch scheduled in %v", delay.Round(time.Minute))

		select {
		case <-ctx.Done():
			return
		case <-s.timeAfter(delay):
			s.fire(ctx)
		}
	}
}

// fire invokes the trigger once and logs the outcome
func (s *Scheduler) fire(ctx context.Context) {
	res := s.trigger.CheckAndFetchNews(ctx)
	if !res.Success {
		lgr.Printf("[ERROR] scheduled news fetch failed: %s", res.Message)
		return
	}
	if res.NewArticlesCount != nil {
		lgr.Printf("[INFO] scheduled news fetch completed: %s (%d new)", res.Message, *res.NewArticlesCount)
		return
	}
	lgr.Printf("[INFO] scheduled news fetch completed: %s", res.Message)
}

// delayUntilNext computes the time until the next occurrence of the daily run
// offset, today if still ahead, tomorrow otherwise
func delayUntilNext(now time.Time, runAt time.Duration) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(runAt)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
