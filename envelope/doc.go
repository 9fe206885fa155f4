// SPDX-License-Identifier: EPL-2.0

// Package envelope shapes a cycle table with an attack-decay-sustain-release
// (ADSR) envelope.
//
// A Synthesizer produces one envelope phase at a time. Every output sample
// is the cycle table read at the running phase offset, multiplied by the
// phase gain:
//
//	out[n] = cycle[(offset + n) % len(cycle)] * gain(n)
//
// The offset is carried from one phase to the next, so the waveform never
// jumps back to the start of the table at a phase boundary:
//
//	syn, _ := envelope.New(cycle, params, 48000, 10*time.Millisecond)
//	buf := syn.Attack(nil)
//	buf = syn.Decay(buf)
//	buf = syn.Sustain(buf) // one chunk, repeat while the note is held
//	buf = syn.Release(buf)
//
// # Gains
//
//   - Attack: linear ramp 0 → 1
//   - Decay: linear ramp 1 → Sustain
//   - Sustain: constant Sustain, one chunk per call
//   - Release: linear ramp Sustain → 0
//
// Phase lengths are round(duration * sampleRate) samples. A zero-length
// phase emits nothing.
package envelope
