// SPDX-License-Identifier: EPL-2.0

package engine

// State is the lifecycle position of a note's voice.
type State int

const (
	Idle State = iota
	Active
	Releasing
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Releasing:
		return "releasing"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}
