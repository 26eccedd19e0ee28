// Package dateutil handles the tracker's calendar dates. Dates are stored as
// ISO YYYY-MM-DD strings, which compare lexicographically in date order, and
// rendered for responses in the weekday form ("Thu May 04 2023").
package dateutil

import "time"

const (
	ISOLayout   = "2006-01-02"
	humanLayout = "Mon Jan 02 2006"
)

// EpochDay is the lower bound used when a log query has no "from" date.
const EpochDay = "1970-01-01"

// Today returns the current UTC calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format(ISOLayout)
}

// Valid reports whether s is a well-formed ISO calendar date.
func Valid(s string) bool {
	_, err := time.Parse(ISOLayout, s)
	return err == nil
}

// Human renders an ISO date in weekday form. Malformed input is returned
// unchanged so a stored value never becomes less readable than it was.
func Human(iso string) string {
	t, err := time.Parse(ISOLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(humanLayout)
}
