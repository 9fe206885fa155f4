// SPDX-License-Identifier: EPL-2.0

// Package engine tracks sounding notes and mixes them into an output buffer.
//
// An Engine is driven from two sides. Control events (note-on, note-off,
// MIDI messages) create and release voices; the audio callback calls
// Process once per tick to fill its buffer:
//
//	eng, err := engine.New(engine.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	eng.NoteOn(scale.Note{Letter: scale.A, Octave: 4}, 127)
//	buf := make([]float32, 512)
//	eng.Process(buf) // from the audio callback
//
// # Voice States
//
// Each note moves through Idle → Active → Releasing → Terminated. Note-on
// makes a note Active, note-off makes it Releasing, and the voice itself
// decides when its release is over by closing its stream. Process notices
// the closed stream and retires the voice.
//
// Pressing a note that is already sounding replaces its registry entry. The
// previous voice is released and keeps playing until its release ends, so
// the two briefly overlap.
//
// # Mixing
//
// Process sums one sample per live voice per frame. A voice whose producer
// has not caught up contributes silence for that frame. There is no gain
// compensation, so many loud voices can exceed [-1, 1].
//
// # Concurrency
//
// Control methods and Process may be called from different goroutines.
// Voices are built outside the registry lock, so the lock is only ever held
// for constant-time updates on the control side.
package engine
