package serper

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeDate = regexp.MustCompile(`^(\d+)\s*(minute|minutes|min|mins|hour|hours|day|days|week|weeks|분|시간|일|주)\s*(ago|전)$`)

var absoluteLayouts = []string{
	"Jan 2, 2006",
	"2 Jan 2006",
	"2006. 1. 2.",
	"2006-01-02",
}

// parseDate understands the relative ("3 hours ago", "3시간 전") and absolute dates Serper
// returns. Unknown formats yield nil.
func parseDate(s string, now time.Time) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if m := relativeDate.FindStringSubmatch(strings.ToLower(s)); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}

		var unit time.Duration
		switch m[2] {
		case "minute", "minutes", "min", "mins", "분":
			unit = time.Minute
		case "hour", "hours", "시간":
			unit = time.Hour
		case "day", "days", "일":
			unit = 24 * time.Hour
		default:
			unit = 7 * 24 * time.Hour
		}

		t := now.Add(-time.Duration(n) * unit)
		return &t
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	return nil
}
