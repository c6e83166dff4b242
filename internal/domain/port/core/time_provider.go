package core

import "time"

// TimeProvider abstracts the clock so purchase timestamps are deterministic in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
