// SPDX-License-Identifier: EPL-2.0

package voice

import "sync"

// Trigger is a one-shot release signal. Release may be called any number
// of times from any goroutine; only the first call has an effect.
type Trigger struct {
	once sync.Once
	c    chan struct{}
}

func newTrigger() *Trigger {
	return &Trigger{c: make(chan struct{})}
}

// Release asks the voice to enter its release phase. It never blocks.
func (t *Trigger) Release() {
	t.once.Do(func() { close(t.c) })
}

// Released reports whether Release has been called.
func (t *Trigger) Released() bool {
	select {
	case <-t.c:
		return true
	default:
		return false
	}
}

// Done is closed once Release has been called.
func (t *Trigger) Done() <-chan struct{} { return t.c }
