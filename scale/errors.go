// SPDX-License-Identifier: EPL-2.0

package scale

import "errors"

var (
	// ErrInvalidNote indicates a note name that cannot be parsed
	ErrInvalidNote = errors.New("invalid note")

	// ErrInvalidLetter indicates an unknown pitch class name
	ErrInvalidLetter = errors.New("invalid note letter")

	// ErrNoteOutOfRange indicates a MIDI note number outside [0, 127]
	ErrNoteOutOfRange = errors.New("MIDI note number out of range")
)
