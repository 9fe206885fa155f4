// SPDX-License-Identifier: EPL-2.0

package scale

import (
	"fmt"
	"strconv"
	"strings"
)

// Letter is one of the twelve pitch classes, C = 0 through B = 11.
type Letter int

const (
	C Letter = iota
	CS
	D
	DS
	E
	F
	FS
	G
	GS
	A
	AS
	B
)

// SemitonesPerOctave is the number of pitch classes in an octave.
const SemitonesPerOctave = 12

var letterNames = [SemitonesPerOctave]string{"C", "CS", "D", "DS", "E", "F", "FS", "G", "GS", "A", "AS", "B"}

func (l Letter) String() string {
	if l < C || l > B {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return letterNames[l]
}

// ParseLetter accepts the names used by String as well as '#' for sharps
// ("C#" is the same as "CS"). Matching is case-insensitive.
func ParseLetter(s string) (Letter, error) {
	name := strings.ToUpper(strings.ReplaceAll(s, "#", "S"))
	for i, n := range letterNames {
		if n == name {
			return Letter(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
}

// Note identifies a pitch by class and octave. Two notes are equal iff
// their letter and octave match.
type Note struct {
	Letter Letter
	Octave int
}

// Index counts semitones from C0.
func (n Note) Index() int {
	return n.Octave*SemitonesPerOctave + int(n.Letter)
}

// MIDI returns the MIDI note number (C4 = 60). The result may fall outside
// [0, 127] for notes that MIDI cannot address.
func (n Note) MIDI() int {
	return n.Index() + SemitonesPerOctave
}

func (n Note) String() string {
	return n.Letter.String() + strconv.Itoa(n.Octave)
}

// FromMIDI converts a MIDI note number into a Note.
func FromMIDI(num int) (Note, error) {
	if num < 0 || num > 127 {
		return Note{}, fmt.Errorf("%w: %d", ErrNoteOutOfRange, num)
	}
	return Note{
		Letter: Letter(num % SemitonesPerOctave),
		Octave: num/SemitonesPerOctave - 1,
	}, nil
}

// ParseNote parses names such as "C4", "CS4", "c#4" or "A-1".
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)

	// The octave starts at the first digit or minus sign after the letter.
	split := strings.IndexFunc(s, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	if split <= 0 {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, s)
	}

	letter, err := ParseLetter(s[:split])
	if err != nil {
		return Note{}, fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}

	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return Note{}, fmt.Errorf("%w: bad octave in %q", ErrInvalidNote, s)
	}

	return Note{Letter: letter, Octave: octave}, nil
}
