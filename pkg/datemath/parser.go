package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser converts date strings to absolute time.Time values in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
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

// ParseDue parses a due-date string: a calendar date ("2025-12-14") or an
// ISO-8601 timestamp. When the full value does not parse, only its first ten
// characters are tried as a calendar date. ok is false when nothing parses.
func (p *Parser) ParseDue(value string) (ParseResult, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ParseResult{}, false
	}

	if len(value) == dateOnlyLen {
		if d, err := time.ParseInLocation(DateFormatISO, value, p.location); err == nil {
			return ParseResult{AbsoluteTime: d, IsAllDay: true}, true
		}
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return ParseResult{AbsoluteTime: ts.In(p.location)}, true
		}
	}

	if len(value) > dateOnlyLen {
		if d, err := time.ParseInLocation(DateFormatISO, value[:dateOnlyLen], p.location); err == nil {
			return ParseResult{AbsoluteTime: d, IsAllDay: true}, true
		}
	}

	return ParseResult{}, false
}

// Resolve accepts either an absolute due date or a relative phrase such as
// "tomorrow" or "in 3 days". Relative phrases resolve to all-day dates.
func (p *Parser) Resolve(value string, baseTime time.Time) (ParseResult, error) {
	if res, ok := p.ParseDue(value); ok {
		return res, nil
	}
	if !isRelative(value) {
		return ParseResult{}, fmt.Errorf("unrecognized date %q", value)
	}
	t, err := p.Parse(value, baseTime)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{AbsoluteTime: t, IsAllDay: true}, nil
}

func isRelative(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "today", "tomorrow", "yesterday":
		return true
	}
	return strings.HasPrefix(v, "in ") || strings.HasPrefix(v, "next ")
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.StartOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// AtHour returns the given day at hour:00 in the parser's timezone.
func (p *Parser) AtHour(t time.Time, hour int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// DaysBetween counts calendar days from `from` to `to` in the parser's timezone.
// DST transitions do not affect the count.
func (p *Parser) DaysBetween(from, to time.Time) int {
	f := from.In(p.location)
	t := to.In(p.location)
	fd := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	td := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(td.Sub(fd).Hours() / 24)
}
