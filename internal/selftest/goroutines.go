package selftest

import (
	"sync"
	"sync/atomic"

	"verity/pkg/confirm"
	"verity/pkg/match"
	"verity/pkg/unit"
)

const increments = 100_000

// countInWorkers starts one worker per capture. Each worker bumps the shared
// counter and its own count, then checks its own count against want.
func countInWorkers(captures []*confirm.Capture, count *atomic.Int64, want int) {
	var wg sync.WaitGroup
	for _, c := range captures {
		wg.Add(1)
		go func(c *confirm.Capture) {
			defer wg.Done()
			c.Guard(func() {
				local := 0
				for i := 0; i < increments; i++ {
					count.Add(1)
					local++
				}
				confirm.Equal(want, local)
			})
		}(c)
	}
	wg.Wait()
}

func registerGoroutines(reg *unit.Registry) {
	reg.Test("Test can use additional goroutines", func(t *unit.T) {
		captures := []*confirm.Capture{{}, {}}
		var count atomic.Int64

		countInWorkers(captures, &count, increments)

		confirm.RaiseFirst(captures)
		confirm.That(count.Load(), match.Equals[int64](2*increments))
	})

	reg.Test("Test goroutine failure reaches the case", func(t *unit.T) {
		t.ExpectFailure("\tExpected: 100001\n\tActual: 100000")
		captures := []*confirm.Capture{{}, {}}
		var count atomic.Int64

		countInWorkers(captures, &count, increments+1)

		confirm.RaiseFirst(captures)
	})
}
