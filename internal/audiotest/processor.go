// SPDX-License-Identifier: EPL-2.0

package audiotest

import "sync"

// Counter is a processor whose output is the running frame index, so tests
// can check that frames arrive in order and none are skipped.
type Counter struct {
	mu     sync.Mutex
	next   int
	calls  int
	frames int
}

func (c *Counter) Process(out []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range out {
		out[i] = float32(c.next)
		c.next++
	}
	c.calls++
	c.frames += len(out)
}

// Calls is the number of Process invocations.
func (c *Counter) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls
}

// Frames is the total number of frames produced.
func (c *Counter) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.frames
}

// Constant fills every frame with Value.
type Constant struct {
	Value float32
}

func (c Constant) Process(out []float32) {
	for i := range out {
		out[i] = c.Value
	}
}
