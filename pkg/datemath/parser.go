package datemath

import (
	"fmt"
	"strings"
	"time"
)

// ISODate is the wire format for resolved dates.
const ISODate = "2006-01-02"

// Parser converts relative date words and calendar fragments to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Stockholm"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative date word to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
// Both Swedish and English day words are accepted.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "idag", "today":
		return p.StartOfDay(baseTime), nil
	case "igår", "igar", "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "i förrgår", "förrgår", "forrgar", "day before yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -2)), nil
	case "imorgon", "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	}

	return baseTime, fmt.Errorf("unknown relative date: %q", relative)
}

// Date builds a calendar date in the parser's timezone. Year 0 means the base
// year. Returns false for impossible dates such as month 13 or February 30.
func (p *Parser) Date(year, month, day int, baseTime time.Time) (time.Time, bool) {
	if year == 0 {
		year = baseTime.In(p.location).Year()
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	// time.Date normalizes overflow (Feb 30 → Mar 2); reject anything that moved.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
