package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestScheduler() *Scheduler {
	return New(time.UTC, func(context.Context, int64, string) {}, zap.NewNop())
}

func TestParseClock(t *testing.T) {
	cases := map[string][2]int{
		"00:00": {0, 0},
		"7:30":  {7, 30},
		"07:30": {7, 30},
		"23:59": {23, 59},
	}
	for in, want := range cases {
		h, m, err := ParseClock(in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", in, err)
		}
		if h != want[0] || m != want[1] {
			t.Fatalf("ParseClock(%q) = %d:%d, want %d:%d", in, h, m, want[0], want[1])
		}
	}
}

func TestParseClockRejects(t *testing.T) {
	for _, in := range []string{"", "25:61", "24:00", "12:60", "7.30", "07:30 ", "soat yetti"} {
		if _, _, err := ParseClock(in); !errors.Is(err, ErrBadClock) {
			t.Fatalf("ParseClock(%q) = %v, want ErrBadClock", in, err)
		}
	}
}

func TestScheduleReplacesExistingTimer(t *testing.T) {
	s := newTestScheduler()
	defer s.Stop()

	if err := s.Schedule(42, "07:30"); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if err := s.Schedule(42, "08:00"); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	if n := s.Active(); n != 1 {
		t.Fatalf("Active() = %d, want 1", n)
	}
	at, ok := s.At(42)
	if !ok || at != "08:00" {
		t.Fatalf("At(42) = %q, %v", at, ok)
	}
}

func TestScheduleRejectsBadClock(t *testing.T) {
	s := newTestScheduler()
	defer s.Stop()

	if err := s.Schedule(42, "25:61"); !errors.Is(err, ErrBadClock) {
		t.Fatalf("Schedule = %v, want ErrBadClock", err)
	}
	if n := s.Active(); n != 0 {
		t.Fatalf("Active() = %d after rejected install", n)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	s := newTestScheduler()
	defer s.Stop()

	if err := s.Schedule(7, "09:00"); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	s.Cancel(7)
	s.Cancel(7)
	s.Cancel(999)

	if n := s.Active(); n != 0 {
		t.Fatalf("Active() = %d, want 0", n)
	}
	if _, ok := s.At(7); ok {
		t.Fatal("At(7) still reports a timer after Cancel")
	}
}

func TestTimerFiresAndDelivers(t *testing.T) {
	fired := make(chan string, 1)
	s := New(time.UTC, func(_ context.Context, chatID int64, day string) {
		if chatID == 1 {
			fired <- day
		}
	}, zap.NewNop())
	defer s.Stop()

	// Freeze "now" just before 10:00 on a known Monday so the timer
	// fires almost immediately.
	monday := time.Date(2026, 8, 31, 9, 59, 59, 900_000_000, time.UTC)
	base := time.Now()
	s.now = func() time.Time { return monday.Add(time.Since(base)) }

	if err := s.Schedule(1, "10:00"); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	select {
	case day := <-fired:
		if day != "Seshanba" {
			t.Fatalf("delivered day = %q, want Seshanba", day)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestNextFireAt(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

	later := NextFireAt(now, 9, 30)
	if !later.Equal(time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("NextFireAt future = %v", later)
	}

	passed := NextFireAt(now, 7, 0)
	if !passed.Equal(time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)) {
		t.Fatalf("NextFireAt passed = %v", passed)
	}

	exact := NextFireAt(now, 8, 0)
	if !exact.Equal(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("NextFireAt exact = %v", exact)
	}
}
