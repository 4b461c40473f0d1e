package adapters

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock with the wall clock in a fixed location.
type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock whose Now is expressed in loc.
func NewSystemClock(loc *time.Location) adapter.Clock {
	if loc == nil {
		loc = time.Local
	}
	return &systemClock{loc: loc}
}

// Now returns the current time in the configured location.
func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
