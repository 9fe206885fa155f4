// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"math"
)

// MinCycleLen is the shortest table NewCycle will build.
const MinCycleLen = 2

// Cycle is one period of a tone. It is never modified after NewCycle
// returns, so it may be shared read-only between goroutines.
type Cycle []float32

// NewCycle samples one period of a sine at freq Hz with peak amp.
// The table length is round(sampleRate / freq).
func NewCycle(freq, amp float64, sampleRate int) (Cycle, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if !(freq > 0) || math.IsInf(freq, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrequency, freq)
	}
	if !(amp >= 0 && amp <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmplitude, amp)
	}

	length := int(math.Round(float64(sampleRate) / freq))
	if length < MinCycleLen {
		return nil, fmt.Errorf("%w: %v Hz at %d Hz gives %d samples",
			ErrDegenerateCycle, freq, sampleRate, length)
	}

	c := make(Cycle, length)
	step := 2 * math.Pi / float64(length)
	for n := range c {
		c[n] = float32(math.Sin(step*float64(n)) * amp)
	}

	return c, nil
}

// Len returns the number of samples in one period.
func (c Cycle) Len() int { return len(c) }

// At returns the sample at i, wrapping around the period.
func (c Cycle) At(i int) float32 {
	return c[i%len(c)]
}

// Peak returns the largest absolute sample value.
func (c Cycle) Peak() float32 {
	var peak float32
	for _, s := range c {
		if s < 0 {
			s = -s
		}
		peak = max(peak, s)
	}
	return peak
}
