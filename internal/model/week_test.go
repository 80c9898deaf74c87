package model

import (
	"errors"
	"testing"
)

func TestNewWeekIsValid(t *testing.T) {
	w := NewWeek()
	if err := w.Validate(); err != nil {
		t.Fatalf("NewWeek().Validate() = %v", err)
	}
	if len(w) != len(Weekdays) {
		t.Fatalf("NewWeek has %d keys, want %d", len(w), len(Weekdays))
	}
	for _, d := range Weekdays {
		entries, ok := w[d]
		if !ok {
			t.Fatalf("weekday %q missing", d)
		}
		if entries == nil || len(entries) != 0 {
			t.Fatalf("weekday %q should start as an empty list", d)
		}
	}
}

func TestValidateRejectsUnknownDay(t *testing.T) {
	w := NewWeek()
	w["Holiday"] = []Entry{{Time: "09:00", Subject: "X"}}
	if err := w.Validate(); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("Validate() = %v, want ErrUnknownDay", err)
	}
}

func TestValidateRejectsMissingWeekday(t *testing.T) {
	w := NewWeek()
	delete(w, "Juma")
	if err := w.Validate(); !errors.Is(err, ErrMissingDay) {
		t.Fatalf("Validate() = %v, want ErrMissingDay", err)
	}
}

func TestValidateRejectsEmptyWeekendKey(t *testing.T) {
	w := NewWeek()
	w["Shanba"] = []Entry{}
	if err := w.Validate(); !errors.Is(err, ErrEmptyWeekend) {
		t.Fatalf("Validate() = %v, want ErrEmptyWeekend", err)
	}

	w["Shanba"] = []Entry{{Time: "10:00", Subject: "Sport"}}
	if err := w.Validate(); err != nil {
		t.Fatalf("Validate() with populated weekend = %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	w := NewWeek()
	w["Dushanba"] = []Entry{{Time: "09:00", Subject: "Matematika"}}

	cp := w.Clone()
	cp["Dushanba"][0].Subject = "Fizika"
	cp["Seshanba"] = append(cp["Seshanba"], Entry{Time: "11:00", Subject: "Tarix"})

	if w["Dushanba"][0].Subject != "Matematika" {
		t.Fatal("mutating the clone changed the original entry")
	}
	if len(w["Seshanba"]) != 0 {
		t.Fatal("mutating the clone changed the original lists")
	}
}
