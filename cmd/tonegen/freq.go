// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ik5/tonegen/scale"
)

// maxFreqRows bounds a --to range.
const maxFreqRows = 128

func (a *app) freqCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "freq [NOTE...]",
		Short: "Print note frequencies",
		Long: `Print the frequency of each note under the current tuning. With --to,
every semitone from the first note up to and including --to is printed.
Without arguments C4 and C5 are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"C4", "C5"}
			}
			notes, err := parseNotes(args)
			if err != nil {
				return err
			}
			if to != "" {
				last, err := scale.ParseNote(to)
				if err != nil {
					return err
				}
				if notes, err = noteRange(notes[0], last); err != nil {
					return err
				}
			}

			cfg, err := a.engineConfig()
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NOTE", "MIDI", "HZ")
			for _, n := range notes {
				t.Row(n.String(), strconv.Itoa(n.MIDI()), fmt.Sprintf("%.3f", cfg.Tuning.Frequency(n)))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Last note of a chromatic range")
	return cmd
}

func parseNotes(args []string) ([]scale.Note, error) {
	notes := make([]scale.Note, 0, len(args))
	for _, s := range args {
		n, err := scale.ParseNote(s)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// noteRange lists every semitone from first to last inclusive.
func noteRange(first, last scale.Note) ([]scale.Note, error) {
	lo, hi := first.Index(), last.Index()
	if hi < lo {
		return nil, fmt.Errorf("range %s..%s runs backwards", first, last)
	}
	if hi-lo+1 > maxFreqRows {
		return nil, fmt.Errorf("range %s..%s exceeds %d notes", first, last, maxFreqRows)
	}

	notes := make([]scale.Note, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		notes = append(notes, noteAt(i))
	}
	return notes, nil
}

// noteAt inverts Note.Index.
func noteAt(index int) scale.Note {
	octave := index / scale.SemitonesPerOctave
	letter := index % scale.SemitonesPerOctave
	if letter < 0 {
		letter += scale.SemitonesPerOctave
		octave--
	}
	return scale.Note{Letter: scale.Letter(letter), Octave: octave}
}
