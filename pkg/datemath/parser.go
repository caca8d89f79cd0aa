package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Resolver converts relative day phrases and numeric dates to absolute
// calendar dates.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "America/New_York".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ResolveRelative converts a relative day phrase to an absolute date.
// Supported phrases: today, tomorrow, this week, next week, and weekday
// names. A weekday name resolves to its next occurrence strictly after the
// base day: "monday" said on a Monday means next Monday, not today.
// Returns false when the phrase is not recognized.
func (r *Resolver) ResolveRelative(phrase string, base time.Time) (time.Time, bool) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	phrase = strings.Join(strings.Fields(phrase), " ")

	switch phrase {
	case "today":
		return r.StartOfDay(base), true
	case "tomorrow":
		return r.StartOfDay(base.AddDate(0, 0, 1)), true
	case "next week", "this week":
		return r.StartOfDay(base.AddDate(0, 0, 7)), true
	}

	target, ok := weekdays[phrase]
	if !ok {
		return time.Time{}, false
	}

	daysUntil := int(target - base.In(r.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return r.StartOfDay(base.AddDate(0, 0, daysUntil)), true
}

// ResolveNumeric parses numeric dates in M/D/YY, M/D/YYYY, M-D-YY or
// M-D-YYYY form. Two-digit years are taken as 20YY.
// Returns false for malformed or out-of-range components.
func (r *Resolver) ResolveNumeric(text string) (time.Time, bool) {
	sep := "/"
	if strings.Contains(text, "-") {
		sep = "-"
	}

	parts := strings.Split(strings.TrimSpace(text), sep)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, r.location), true
}

// StartOfDay returns midnight at the start of the given day in the
// resolver's timezone.
func (r *Resolver) StartOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (r *Resolver) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
