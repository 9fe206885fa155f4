// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"fmt"
	"math"
	"time"
)

// Params describes the envelope shared by every voice of an engine.
type Params struct {
	Attack  time.Duration
	Decay   time.Duration
	Sustain float64 // fraction of peak, [0, 1]
	Release time.Duration
}

// DefaultParams returns a short attack, half-second decay to 0.8 and a
// one second release.
func DefaultParams() Params {
	return Params{
		Attack:  5 * time.Millisecond,
		Decay:   500 * time.Millisecond,
		Sustain: 0.8,
		Release: time.Second,
	}
}

func (p Params) Validate() error {
	switch {
	case p.Attack < 0:
		return fmt.Errorf("%w: negative attack %v", ErrInvalidParams, p.Attack)
	case p.Decay < 0:
		return fmt.Errorf("%w: negative decay %v", ErrInvalidParams, p.Decay)
	case p.Release < 0:
		return fmt.Errorf("%w: negative release %v", ErrInvalidParams, p.Release)
	case !(p.Sustain >= 0 && p.Sustain <= 1):
		return fmt.Errorf("%w: sustain %v outside [0, 1]", ErrInvalidParams, p.Sustain)
	}
	return nil
}

// Samples converts d to a sample count at sampleRate, rounded to nearest.
func Samples(d time.Duration, sampleRate int) int {
	return int(math.Round(d.Seconds() * float64(sampleRate)))
}

// Counts holds the per-phase sample counts of a Params at one sample rate.
type Counts struct {
	Attack  int
	Decay   int
	Chunk   int
	Release int
}

// Counts returns the phase lengths for sampleRate. chunk is the length of a
// single Sustain chunk; it is never less than one sample.
func (p Params) Counts(sampleRate int, chunk time.Duration) Counts {
	return Counts{
		Attack:  Samples(p.Attack, sampleRate),
		Decay:   Samples(p.Decay, sampleRate),
		Chunk:   max(1, Samples(chunk, sampleRate)),
		Release: Samples(p.Release, sampleRate),
	}
}
