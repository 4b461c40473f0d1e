package adapter

import "time"

// Clock supplies the current time. The location of Now is the calendar used
// for every month boundary.
type Clock interface {
	Now() time.Time
}
