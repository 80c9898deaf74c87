// Package scheduler maintains one recurring daily timer per registered
// user and hands each firing off to a delivery callback.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bekzodov/jadval-bot/internal/model"
)

// ErrBadClock marks a notify time that is not a strict HH:MM.
var ErrBadClock = errors.New("notify time must be HH:MM")

var clockRe = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// ParseClock validates a strict HH:MM (00:00–23:59) string.
func ParseClock(s string) (hour, minute int, err error) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, nil
}

// DeliverFunc is invoked on each firing with the canonical name of the
// following calendar day. Failures inside the callback must not affect
// later firings, so it returns nothing.
type DeliverFunc func(ctx context.Context, chatID int64, day string)

type job struct {
	stop   chan struct{}
	hour   int
	minute int
}

// Scheduler owns the per-user timers. Installing a timer for a user
// always cancels the previous one first: at most one live timer per
// user exists at any time.
type Scheduler struct {
	mu      sync.Mutex
	jobs    map[int64]*job
	loc     *time.Location
	deliver DeliverFunc
	log     *zap.Logger
	now     func() time.Time
}

func New(loc *time.Location, deliver DeliverFunc, log *zap.Logger) *Scheduler {
	return &Scheduler{
		jobs:    make(map[int64]*job),
		loc:     loc,
		deliver: deliver,
		log:     log,
		now:     time.Now,
	}
}

// Schedule validates clock and installs a recurring daily timer firing
// at that wall-clock time in the scheduler's location, replacing any
// existing timer for chatID.
func (s *Scheduler) Schedule(chatID int64, clock string) error {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return err
	}

	j := &job{stop: make(chan struct{}), hour: hour, minute: minute}

	s.mu.Lock()
	if prev, ok := s.jobs[chatID]; ok {
		close(prev.stop)
	}
	s.jobs[chatID] = j
	s.mu.Unlock()

	go s.run(chatID, j)

	s.log.Info("reminder scheduled",
		zap.Int64("chat_id", chatID),
		zap.String("at", clock))
	return nil
}

// Cancel removes the user's timer. No-op if none exists.
func (s *Scheduler) Cancel(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[chatID]; ok {
		close(j.stop)
		delete(s.jobs, chatID)
	}
}

// Stop cancels every timer (shutdown).
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for chatID, j := range s.jobs {
		close(j.stop)
		delete(s.jobs, chatID)
	}
}

// Restore installs timers for every user with a valid persisted notify
// time. Users with an absent or invalid time get no reminder.
func (s *Scheduler) Restore(users []model.User) {
	for _, u := range users {
		if u.NotifyTime == "" {
			continue
		}
		if err := s.Schedule(u.ChatID, u.NotifyTime); err != nil {
			s.log.Warn("skipping reminder with invalid persisted time",
				zap.Int64("chat_id", u.ChatID),
				zap.String("notify_time", u.NotifyTime))
		}
	}
}

// Active returns the number of live timers.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// At returns the installed clock for chatID, if a timer exists.
func (s *Scheduler) At(chatID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[chatID]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", j.hour, j.minute), true
}

func (s *Scheduler) run(chatID int64, j *job) {
	for {
		now := s.now().In(s.loc)
		timer := time.NewTimer(NextFireAt(now, j.hour, j.minute).Sub(now))
		select {
		case <-j.stop:
			timer.Stop()
			return
		case <-timer.C:
			day := model.Tomorrow(s.now().In(s.loc))
			s.deliver(context.Background(), chatID, day)
		}
	}
}

// NextFireAt returns the next occurrence of hour:minute strictly after
// now, in now's location.
func NextFireAt(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
