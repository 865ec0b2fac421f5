// Package datemath turns the due dates people type into calendar days.
package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrEmpty        = errors.New("date is empty")
	ErrUnrecognized = errors.New("date not recognized")
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser resolves absolute and relative day expressions in one location.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for an IANA timezone name. An empty name means
// the local timezone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves input to the start of a day. It accepts YYYY-MM-DD,
// today/tomorrow/yesterday, "in N days|weeks|months" and "next <weekday>",
// all relative to base.
func (p *Parser) Parse(input string, base time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return time.Time{}, ErrEmpty
	}

	if t, err := time.ParseInLocation(DateLayout, s, p.location); err == nil {
		return t, nil
	}

	switch s {
	case "today":
		return p.startOfDay(base), nil
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(base.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(s, "in ") {
		return p.parseInDuration(s, base)
	}
	if strings.HasPrefix(s, "next ") {
		return p.parseNextWeekday(s, base)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, input)
}

// WithClock keeps the calendar day of day and the time of day of clock.
func (p *Parser) WithClock(day, clock time.Time) time.Time {
	clock = clock.In(p.location)
	h, m, s := clock.Clock()
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, s, 0, p.location)
}

// Format renders t as YYYY-MM-DD in the parser's timezone.
func (p *Parser) Format(t time.Time) string {
	return t.In(p.location).Format(DateLayout)
}

// maxDurationAmount bounds "in N units" so N weeks cannot overflow.
const maxDurationAmount = 10000

func (p *Parser) parseInDuration(s string, base time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(s)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, s)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount > maxDurationAmount {
		return time.Time{}, fmt.Errorf("%w: amount out of range in %q", ErrUnrecognized, s)
	}
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(base.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday returns the first matching weekday strictly after base.
func (p *Parser) parseNextWeekday(s string, base time.Time) (time.Time, error) {
	name := strings.TrimPrefix(s, "next ")
	target, ok := weekdays[name]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, name)
	}

	base = base.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(base.AddDate(0, 0, daysUntil)), nil
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
