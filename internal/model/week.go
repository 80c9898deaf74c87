package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownDay   = errors.New("unknown day name")
	ErrMissingDay   = errors.New("weekday key missing")
	ErrEmptyWeekend = errors.New("weekend key present but empty")
)

// Week is the shared weekly schedule keyed by canonical day names.
//
// Invariants: all five weekday keys are always present (an empty list
// means "confirmed no classes"); weekend keys exist only while their
// list is non-empty; an absent weekend key means "no data supplied",
// which renders differently from an explicit empty weekday.
type Week map[string][]Entry

// NewWeek returns a week with the five weekday keys and empty lists.
func NewWeek() Week {
	w := make(Week, len(Weekdays))
	for _, d := range Weekdays {
		w[d] = []Entry{}
	}
	return w
}

// Validate checks the Week invariants.
func (w Week) Validate() error {
	for day, entries := range w {
		if !IsDay(day) {
			return fmt.Errorf("%w: %q", ErrUnknownDay, day)
		}
		if IsWeekend(day) && len(entries) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyWeekend, day)
		}
	}
	for _, day := range Weekdays {
		if _, ok := w[day]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingDay, day)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can read without holding locks.
func (w Week) Clone() Week {
	out := make(Week, len(w))
	for day, entries := range w {
		cp := make([]Entry, len(entries))
		copy(cp, entries)
		out[day] = cp
	}
	return out
}
