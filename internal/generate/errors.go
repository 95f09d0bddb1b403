package generate

import (
	"errors"
	"time"
)

// ErrEmptyPool is returned when a generator is asked to draw from, or to
// create, an empty population. It is a configuration error, not a
// per-record failure.
var ErrEmptyPool = errors.New("empty pool")

// Window is the generation time range. End doubles as "now" for every
// relative timestamp so runs are reproducible.
type Window struct {
	Start time.Time
	End   time.Time
}

func daysBefore(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, -days)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
