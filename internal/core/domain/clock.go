package domain

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	dateLayout      = "2006-01-02"
	timeLayoutShort = "15:04"
	timeLayoutLong  = "15:04:05"
)

func secondsOfDay(t civil.Time) int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// CompareTime orders two times of day, ignoring nanoseconds.
func CompareTime(a, b civil.Time) int {
	sa, sb := secondsOfDay(a), secondsOfDay(b)

	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}

	return 0
}

func Before(a, b civil.Time) bool {
	return CompareTime(a, b) < 0
}

func CompareDate(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}

	return 0
}

func ParseDate(s string) (civil.Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return civil.Date{}, fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}

	return civil.DateOf(t), nil
}

// ParseTime accepts "15:04" and "15:04:05".
func ParseTime(s string) (civil.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range []string{timeLayoutShort, timeLayoutLong} {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.TimeOf(t), nil
		}
	}

	return civil.Time{}, fmt.Errorf("expected HH:MM or HH:MM:SS, got %q", s)
}
