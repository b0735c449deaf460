package utils

import (
	"fmt"
	"time"
)

// DayKeyLayout formats a calendar day as YYYY-MM-DD.
const DayKeyLayout = "2006-01-02"

// Clock returns the current time. Tests swap it for a fixed one.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

// DayKey returns the local calendar day of t, whatever location t
// carries.
func DayKey(t time.Time) string {
	return t.In(time.Local).Format(DayKeyLayout)
}

func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// ParseDay accepts YYYY-MM-DD or DD/MM/YY.
func ParseDay(s string) (string, error) {
	if t, err := time.ParseInLocation(DayKeyLayout, s, time.Local); err == nil {
		return DayKey(t), nil
	}
	t, err := time.ParseInLocation("02/01/06", s, time.Local)
	if err != nil {
		return "", fmt.Errorf("failed to parse day %q", s)
	}
	return DayKey(t), nil
}

// DaysBetween counts local calendar days from a to b, ignoring clock
// time.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// StartOfDay returns midnight of t in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
