package model

import (
	"strings"
	"time"
)

// Days is the canonical week order used for every view and for the
// schedule document keys. Rendering never relies on map iteration order.
var Days = []string{
	"Dushanba",
	"Seshanba",
	"Chorshanba",
	"Payshanba",
	"Juma",
	"Shanba",
	"Yakshanba",
}

// Weekdays are the five keys that must always be present in a Week.
var Weekdays = Days[:5]

// foreignDays maps day names admins commonly paste from English or
// Russian spreadsheets to the canonical Uzbek names.
var foreignDays = map[string]string{
	"monday":      "Dushanba",
	"tuesday":     "Seshanba",
	"wednesday":   "Chorshanba",
	"thursday":    "Payshanba",
	"friday":      "Juma",
	"saturday":    "Shanba",
	"sunday":      "Yakshanba",
	"понедельник": "Dushanba",
	"вторник":     "Seshanba",
	"среда":       "Chorshanba",
	"четверг":     "Payshanba",
	"пятница":     "Juma",
	"суббота":     "Shanba",
	"воскресенье": "Yakshanba",
}

// IsDay reports whether name is one of the canonical day names.
func IsDay(name string) bool {
	for _, d := range Days {
		if d == name {
			return true
		}
	}
	return false
}

// IsWeekend reports whether day is Shanba or Yakshanba.
func IsWeekend(day string) bool {
	return day == "Shanba" || day == "Yakshanba"
}

// ResolveDay matches a free-form cell value to a canonical day name.
// Canonical names are tried first (case-insensitive substring), then the
// foreign-name table. Returns false if nothing matches.
func ResolveDay(cell string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(cell))
	if v == "" {
		return "", false
	}
	for _, d := range Days {
		if strings.Contains(v, strings.ToLower(d)) {
			return d, true
		}
	}
	for foreign, d := range foreignDays {
		if strings.Contains(v, foreign) {
			return d, true
		}
	}
	return "", false
}

// DayAt returns the canonical name of the day t falls on.
// time.Weekday counts Sunday as 0, our week starts on Dushanba.
func DayAt(t time.Time) string {
	idx := int(t.Weekday())
	if idx == 0 {
		return "Yakshanba"
	}
	return Days[idx-1]
}

// Tomorrow returns the canonical name of the day after t.
func Tomorrow(t time.Time) string {
	return DayAt(t.Add(24 * time.Hour))
}
