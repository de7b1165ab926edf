package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// reviewDateLayout is the wire format for calendar dates: dd/mm/yyyy.
const reviewDateLayout = "02/01/2006"

// neverLiteral marks a card that has not been reviewed yet.
const neverLiteral = "never"

// ReviewDate is a calendar date with day granularity, or the explicit
// "never" value for cards that have no review history. Scheduling decisions
// compare whole days, so the time-of-day component is always midnight UTC.
type ReviewDate struct {
	Time  time.Time
	Never bool
}

// NewReviewDate returns the ReviewDate for the calendar day containing t,
// evaluated in UTC.
func NewReviewDate(t time.Time) ReviewDate {
	t = t.UTC()
	return ReviewDate{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// NeverReviewed returns the explicit "never" review date.
func NeverReviewed() ReviewDate {
	return ReviewDate{Never: true}
}

// ParseReviewDate parses the wire representation: "never" or dd/mm/yyyy.
func ParseReviewDate(s string) (ReviewDate, error) {
	if s == neverLiteral {
		return NeverReviewed(), nil
	}
	t, err := time.ParseInLocation(reviewDateLayout, s, time.UTC)
	if err != nil {
		return ReviewDate{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return ReviewDate{Time: t}, nil
}

// AddDays returns the date n days after d. Adding days to "never" is
// meaningless and returns "never" unchanged.
func (d ReviewDate) AddDays(n int) ReviewDate {
	if d.Never {
		return d
	}
	return ReviewDate{Time: d.Time.AddDate(0, 0, n)}
}

// Before reports whether d falls on an earlier calendar day than other.
func (d ReviewDate) Before(other ReviewDate) bool {
	return d.Time.Before(other.Time)
}

// String renders the wire representation.
func (d ReviewDate) String() string {
	if d.Never {
		return neverLiteral
	}
	return d.Time.Format(reviewDateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d ReviewDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *ReviewDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedDate, data)
	}
	parsed, err := ParseReviewDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
