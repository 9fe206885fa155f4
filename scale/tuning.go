// SPDX-License-Identifier: EPL-2.0

package scale

import "math"

// Tuning maps a note to its frequency in Hz.
type Tuning interface {
	Frequency(n Note) float64
}

// EqualTemperament spaces every semitone by the same Ratio.
type EqualTemperament struct {
	Reference     Note
	ReferenceFreq float64
	Ratio         float64
}

// Standard returns twelve-tone equal temperament with A4 = 440 Hz.
func Standard() EqualTemperament {
	return EqualTemperament{
		Reference:     Note{Letter: A, Octave: 4},
		ReferenceFreq: 440.0,
		Ratio:         math.Pow(2, 1.0/SemitonesPerOctave),
	}
}

func (t EqualTemperament) Frequency(n Note) float64 {
	return t.ReferenceFreq * math.Pow(t.Ratio, float64(n.Index()-t.Reference.Index()))
}
