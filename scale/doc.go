// SPDX-License-Identifier: EPL-2.0

// Package scale maps note names and MIDI note numbers to pitches.
//
// A Note is identified by its pitch class (Letter) and octave. Notes are
// comparable values and are used as map keys by the engine:
//
//	n, err := scale.ParseNote("A4")
//	freq := scale.Standard().Frequency(n) // 440
//
// # MIDI Numbers
//
// MIDI note number 60 is C4. Numbers outside [0, 127] are rejected with
// ErrNoteOutOfRange:
//
//	n, err := scale.FromMIDI(69) // A4
//
// # Tuning
//
// EqualTemperament computes frequencies from a reference note, its frequency
// and the ratio between adjacent semitones. Standard returns the usual
// A4 = 440 Hz twelve-tone tuning.
package scale
