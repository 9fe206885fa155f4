// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"log/slog"

	"gitlab.com/gomidi/midi/v2"

	"github.com/ik5/tonegen/scale"
)

// ccAllNotesOff is the channel mode message that releases every note.
const ccAllNotesOff = 123

// checkData rejects channel messages whose data bytes have the high bit
// set. gomidi masks such bytes to 7 bits, which would play another key.
func checkData(msg midi.Message) error {
	if len(msg) == 0 || msg[0] < 0x80 || msg[0] >= 0xF0 {
		return nil
	}
	for _, b := range msg[1:min(len(msg), 3)] {
		if b > 0x7F {
			return fmt.Errorf("%w: % X", ErrInvalidEvent, []byte(msg))
		}
	}
	return nil
}

// HandleMIDI applies a MIDI message. Note-on, note-off and all-notes-off
// are understood; anything else is ignored. Channel messages with a data
// byte above 0x7F are rejected with ErrInvalidEvent.
func (e *Engine) HandleMIDI(msg midi.Message) error {
	if err := checkData(msg); err != nil {
		e.log.Warn("rejected MIDI message", slog.Any("error", err))
		return err
	}

	var ch, key, vel, cc, val uint8

	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		note, err := scale.FromMIDI(int(key))
		if err != nil {
			return err
		}
		return e.NoteOn(note, vel)

	case msg.GetNoteEnd(&ch, &key):
		note, err := scale.FromMIDI(int(key))
		if err != nil {
			return err
		}
		e.NoteOff(note)
		return nil

	case msg.GetControlChange(&ch, &cc, &val) && cc == ccAllNotesOff:
		e.ReleaseAll()
		return nil
	}

	e.log.Debug("ignoring MIDI message", slog.String("msg", msg.String()))
	return nil
}

// HandleEvent applies a raw three-byte channel message. Key or pressure
// bytes above 127 reject the event with ErrInvalidEvent.
func (e *Engine) HandleEvent(status, key, pressure byte) error {
	return e.HandleMIDI(midi.Message{status, key, pressure})
}
