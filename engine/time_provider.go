package engine

import "time"

// Clock supplies tick timestamps to the game loop
type Clock interface {
	Now() time.Time
}

// TimeProvider reads the system monotonic clock
type TimeProvider struct{}

// NewTimeProvider creates a monotonic clock for real-time play
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns elapsed time from a previous tick start, never negative
func Since(c Clock, prev time.Time) time.Duration {
	d := c.Now().Sub(prev)
	if d < 0 {
		return 0
	}
	return d
}
