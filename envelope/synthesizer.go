// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"fmt"
	"time"

	"github.com/ik5/tonegen/wave"
)

// Synthesizer renders envelope phases from a cycle table. It is not safe
// for concurrent use; each voice owns its own Synthesizer.
type Synthesizer struct {
	cycle   wave.Cycle
	sustain float64
	counts  Counts

	offset int // index into cycle where the next phase starts
	phase  Phase
}

// New creates a Synthesizer in PhaseIdle. chunk is the duration of one
// Sustain call.
func New(cycle wave.Cycle, p Params, sampleRate int, chunk time.Duration) (*Synthesizer, error) {
	if cycle.Len() < wave.MinCycleLen {
		return nil, fmt.Errorf("%w: got %d samples", ErrEmptyCycle, cycle.Len())
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidParams, sampleRate)
	}
	if chunk <= 0 {
		return nil, fmt.Errorf("%w: chunk duration %v", ErrInvalidParams, chunk)
	}

	return &Synthesizer{
		cycle:   cycle,
		sustain: p.Sustain,
		counts:  p.Counts(sampleRate, chunk),
	}, nil
}

// Counts reports the sample count of every phase.
func (s *Synthesizer) Counts() Counts { return s.counts }

// Offset is the cycle index the next phase will start reading at.
func (s *Synthesizer) Offset() int { return s.offset }

// Phase is the last phase rendered.
func (s *Synthesizer) Phase() Phase { return s.phase }

// Gain returns the envelope gain of sample n within phase p.
func (s *Synthesizer) Gain(p Phase, n int) float64 {
	switch p {
	case PhaseAttack:
		return ramp(0, 1, n, s.counts.Attack)
	case PhaseDecay:
		return ramp(1, s.sustain, n, s.counts.Decay)
	case PhaseSustain:
		return s.sustain
	case PhaseRelease:
		return ramp(s.sustain, 0, n, s.counts.Release)
	default:
		return 0
	}
}

// Attack appends the attack phase to dst.
func (s *Synthesizer) Attack(dst []float32) []float32 {
	return s.render(dst, PhaseAttack, s.counts.Attack)
}

// Decay appends the decay phase to dst.
func (s *Synthesizer) Decay(dst []float32) []float32 {
	return s.render(dst, PhaseDecay, s.counts.Decay)
}

// Sustain appends one chunk of the sustain phase to dst.
func (s *Synthesizer) Sustain(dst []float32) []float32 {
	return s.render(dst, PhaseSustain, s.counts.Chunk)
}

// Release appends the release phase to dst. The note is finished afterwards.
func (s *Synthesizer) Release(dst []float32) []float32 {
	dst = s.render(dst, PhaseRelease, s.counts.Release)
	s.phase = PhaseDone
	return dst
}

func (s *Synthesizer) render(dst []float32, p Phase, count int) []float32 {
	s.phase = p
	return s.segment(dst, count, func(n int) float64 { return s.Gain(p, n) })
}

// segment appends count samples and moves the offset past them.
func (s *Synthesizer) segment(dst []float32, count int, gain func(n int) float64) []float32 {
	size := s.cycle.Len()
	idx := s.offset
	for n := range count {
		dst = append(dst, s.cycle[idx]*float32(gain(n)))
		idx++
		if idx == size {
			idx = 0
		}
	}
	s.offset = (s.offset + count) % size
	return dst
}

func ramp(from, to float64, n, count int) float64 {
	if count <= 0 {
		return to
	}
	return from + (to-from)*float64(n)/float64(count)
}
