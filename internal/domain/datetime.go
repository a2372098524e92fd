package domain

import (
	"strings"
	"time"
)

// Layouts for the fixed textual date formats.
const (
	StorageLayout = "2006-01-02 1504"
	DateLayout    = "2006-01-02"
	DisplayLayout = "Jan 02 2006 15:04"

	StoragePattern = "yyyy-MM-dd HHmm"
	DatePattern    = "yyyy-MM-dd"
)

// ParseDateTime parses text in the storage format into a wall-clock value.
// Wall-clock values carry no zone and are represented in UTC.
func ParseDateTime(field, text string) (time.Time, error) {
	t, err := time.Parse(StorageLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, &DateFormatError{
			Field:   field,
			Input:   text,
			Pattern: StoragePattern,
			Example: "2019-12-02 1800",
			Err:     err,
		}
	}
	return t, nil
}

// ParseDate parses a bare yyyy-MM-dd date at midnight.
func ParseDate(field, text string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, &DateFormatError{
			Field:   field,
			Input:   text,
			Pattern: DatePattern,
			Example: "2025-02-13",
			Err:     err,
		}
	}
	return t, nil
}

// FormatStorage renders t in the storage format.
func FormatStorage(t time.Time) string {
	return t.Format(StorageLayout)
}

// FormatDisplay renders t for humans, e.g. "Jan 01 2030 18:00".
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// WallClock drops the zone of t, keeping the local date and time to the minute.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// DateRange is an inclusive [Start, End] window used by date searches.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DayRange covers a whole day, from 00:00 to 23:59.
func DayRange(day time.Time) DateRange {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return DateRange{
		Start: start,
		End:   start.Add(23*time.Hour + 59*time.Minute),
	}
}

// InstantRange collapses the range to a single instant.
func InstantRange(t time.Time) DateRange {
	return DateRange{Start: t, End: t}
}

// Contains reports whether t lies within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Overlaps reports whether [from, to] intersects the range.
func (r DateRange) Overlaps(from, to time.Time) bool {
	return !to.Before(r.Start) && !from.After(r.End)
}
