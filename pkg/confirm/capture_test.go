package confirm

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verity/pkg/match"
)

func TestCaptureCarriesFailureAcrossGoroutines(t *testing.T) {
	var count atomic.Int64
	captures := []*Capture{{}, {}}
	line := here() + 12

	f := Check(func() {
		var wg sync.WaitGroup
		for _, c := range captures {
			wg.Add(1)
			go func(c *Capture) {
				defer wg.Done()
				c.Guard(func() {
					for i := 0; i < 100_000; i++ {
						count.Add(1)
					}
					That(count.Load(), match.Equals[int64](200_001))
				})
			}(c)
		}
		wg.Wait()

		RaiseFirst(captures)
		That(count.Load(), match.Equals[int64](200_000))
	})

	require.NotNil(t, f)
	assert.Equal(t, line, f.Line)
	assert.True(t, strings.HasPrefix(f.Reason, "\tExpected: 200001\n\tActual: "))
	assert.Equal(t, int64(200_000), count.Load())
}

func TestCapturePassesWhenWorkersSucceed(t *testing.T) {
	var count atomic.Int64
	captures := make([]*Capture, 4)

	f := Check(func() {
		var wg sync.WaitGroup
		for i := range captures {
			captures[i] = &Capture{}
			wg.Add(1)
			go func(c *Capture) {
				defer wg.Done()
				c.Guard(func() {
					local := 0
					for j := 0; j < 1000; j++ {
						local++
						count.Add(1)
					}
					Equal(1000, local)
				})
			}(captures[i])
		}
		wg.Wait()

		RaiseFirst(captures)
		Equal(int64(4000), count.Load())
	})

	assert.Nil(t, f)
}

func TestCaptureKeepsLastFailure(t *testing.T) {
	var c Capture
	assert.False(t, c.Pending())
	c.RaiseIfPresent()

	c.Record(12, "first")
	c.Guard(func() { Fail("second") })
	c.Record(30, "third")

	require.True(t, c.Pending())
	assert.Equal(t, 30, c.Failure().Line)
	assert.Equal(t, "third", c.Failure().Reason)

	f := Check(c.RaiseIfPresent)
	require.NotNil(t, f)
	assert.Equal(t, 30, f.Line)
}

func TestCaptureGuardPropagatesOtherPanics(t *testing.T) {
	var c Capture
	assert.Panics(t, func() {
		c.Guard(func() { panic(1) })
	})
	assert.False(t, c.Pending())
}
