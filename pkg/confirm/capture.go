package confirm

import "sync"

// Capture carries an assertion failure out of a goroutine. Each worker gets
// its own Capture and runs its assertions under Guard; once the workers are
// joined, the body calls RaiseIfPresent (or RaiseFirst) to fail with the
// recorded reason and line.
//
// A Capture holds at most one failure; a later record replaces an earlier
// one.
type Capture struct {
	mu      sync.Mutex
	failure *Failure
}

// Record stores a failure at line.
func (c *Capture) Record(line int, reason string) {
	c.store(&Failure{Reason: reason, Line: line})
}

func (c *Capture) store(f *Failure) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failure = f
}

// Guard runs fn and records an assertion failure instead of letting it
// unwind the goroutine. Other panics are propagated.
func (c *Capture) Guard(fn func()) {
	if f := Check(fn); f != nil {
		c.store(f)
	}
}

// Failure returns the recorded failure, or nil.
func (c *Capture) Failure() *Failure {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failure
}

// Pending reports whether a failure has been recorded.
func (c *Capture) Pending() bool {
	return c.Failure() != nil
}

// RaiseIfPresent fails the calling body with the recorded failure, keeping
// the line it was recorded at.
func (c *Capture) RaiseIfPresent() {
	if f := c.Failure(); f != nil {
		panic(f)
	}
}

// RaiseFirst raises the failure of the first capture that holds one.
func RaiseFirst(captures []*Capture) {
	for _, c := range captures {
		c.RaiseIfPresent()
	}
}
