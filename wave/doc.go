// SPDX-License-Identifier: EPL-2.0

// Package wave builds single-period waveform tables.
//
// A Cycle holds exactly one period of a sine tone, sampled at a fixed
// sample rate and scaled by a peak amplitude. Longer tones are produced by
// reading the table cyclically:
//
//	c, err := wave.NewCycle(440, 0.8, 48000)
//	if err != nil {
//	    // ErrInvalidFrequency, ErrInvalidAmplitude or ErrDegenerateCycle
//	}
//	s := c.At(1000) // same as c[1000 % c.Len()]
//
// Frequencies close to the sample rate yield tables of one sample or less.
// Such tables cannot represent a period and are rejected with
// ErrDegenerateCycle instead of being indexed modulo zero.
package wave
