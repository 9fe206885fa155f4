// SPDX-License-Identifier: EPL-2.0

// Package tonegen is a polyphonic tone generator: sine voices shaped by an
// attack, decay, sustain, release envelope, mixed for real-time playback or
// rendered offline.
//
// The packages build on one another:
//
//   - scale names notes and maps them to frequencies
//   - wave samples one period of a sine for a frequency
//   - envelope cuts that period into ADSR-shaped segments
//   - voice runs one note as a producer goroutine feeding a bounded queue
//   - engine tracks sounding notes and mixes them per audio tick
//   - output connects the engine to beep, oto or a headless ticker
//
// # Offline Rendering
//
// This package renders a list of timed notes without a sound device. The
// result matches what the engine would play for the same presses and
// releases, sample for sample:
//
//	events := []tonegen.NoteEvent{
//	    {Note: scale.Note{Letter: scale.C, Octave: 4}, Hold: 500 * time.Millisecond, Pressure: 127},
//	    {Note: scale.Note{Letter: scale.E, Octave: 4}, Start: 250 * time.Millisecond, Hold: time.Second, Pressure: 100},
//	}
//	samples, err := tonegen.Render(engine.DefaultConfig(), events)
//
// RenderToMono16 additionally resamples to a target rate and converts to
// 16-bit PCM, ready for wav.WriteMono16.
//
// # Events On The Command Line
//
// ParseEvent reads the NOTE:START:HOLD[:PRESSURE] form used by the render
// command, such as "A4:0s:1s" or "CS5:250ms:2s:90".
//
// The tonegen command in cmd/tonegen wires everything together: play runs
// the engine on a sound card with keyboard or MIDI input, render writes
// events to a file, and inspect, convert and freq are small helpers.
package tonegen
