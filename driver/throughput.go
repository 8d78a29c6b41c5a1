package driver

import "time"

// ThroughputCounter counts submissions per wall-clock second.
// It is not safe for concurrent use; a driver run owns exactly one.
type ThroughputCounter struct {
	now func() time.Time

	// unix second of the open window
	window int64
	count  int
	last   int
}

// NewThroughputCounter opens a window at the current second of now.
func NewThroughputCounter(now func() time.Time) *ThroughputCounter {
	if now == nil {
		now = time.Now
	}
	return &ThroughputCounter{
		now:    now,
		window: now().Unix(),
	}
}

// Inc counts one submission in the open window.
func (c *ThroughputCounter) Inc() {
	c.count++
}

// Roll closes the open window if the wall-clock second has moved on, keeping its
// count as the latest rate, and returns the latest rate.
// Before the first window closes the rate is 0.
func (c *ThroughputCounter) Roll() int {
	sec := c.now().Unix()
	if sec != c.window {
		c.last = c.count
		c.count = 0
		c.window = sec
	}
	return c.last
}
