// SPDX-License-Identifier: EPL-2.0

package envelope

import "fmt"

// Phase is a stage of the envelope. Phases only move forward.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAttack
	PhaseDecay
	PhaseSustain
	PhaseRelease
	PhaseDone
)

var phaseNames = [...]string{"idle", "attack", "decay", "sustain", "release", "done"}

func (p Phase) String() string {
	if p < PhaseIdle || p > PhaseDone {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}
