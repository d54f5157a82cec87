package daterange

import (
	"fmt"
	"time"

	apperrors "pdxcli/internal/errors"
)

// DateLayout is the accepted format for range boundaries
const DateLayout = "2006-01-02"

// Range is an inclusive calendar-date range used as a filter predicate.
// Start is midnight UTC of the start day. End is the last instant of the
// end day (23:59:59.999999999 UTC), so a timestamp anywhere on the end
// date is in range. Both boundaries are inclusive.
type Range struct {
	Start time.Time
	End   time.Time
}

// Parse builds a Range from YYYY-MM-DD boundary strings. It returns a
// PARSING error for malformed dates and a VALIDATION error when start is
// after end.
func Parse(start, end string) (Range, error) {
	s, err := time.ParseInLocation(DateLayout, start, time.UTC)
	if err != nil {
		return Range{}, apperrors.NewParsingError(
			fmt.Sprintf("invalid start date %q, expected YYYY-MM-DD", start), err)
	}

	e, err := time.ParseInLocation(DateLayout, end, time.UTC)
	if err != nil {
		return Range{}, apperrors.NewParsingError(
			fmt.Sprintf("invalid end date %q, expected YYYY-MM-DD", end), err)
	}

	if s.After(e) {
		return Range{}, apperrors.NewValidationError(
			fmt.Sprintf("start date %s is after end date %s", start, end), nil)
	}

	return Range{
		Start: s,
		End:   endOfDay(e),
	}, nil
}

// endOfDay returns the last representable instant of t's day
func endOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Contains reports whether t falls within the range, boundaries included
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// StartDate returns the start boundary formatted as YYYY-MM-DD
func (r Range) StartDate() string {
	return r.Start.Format(DateLayout)
}

// EndDate returns the end boundary formatted as YYYY-MM-DD
func (r Range) EndDate() string {
	return r.End.Format(DateLayout)
}

// String returns the range in "start to end" form for logs and filenames
func (r Range) String() string {
	return fmt.Sprintf("%s to %s", r.StartDate(), r.EndDate())
}
