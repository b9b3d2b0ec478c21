package datemath

import "time"

// ParseResult holds the result of parsing a date string.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
}

// MaxDate is the sentinel used for "no due date". It orders after every real date.
var MaxDate = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

const (
	DateFormatISO = "2006-01-02"
	dateOnlyLen   = len(DateFormatISO)
)

// timestampLayouts are tried in order before falling back to the date prefix.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}
