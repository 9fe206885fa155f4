// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ik5/tonegen/engine"
	"github.com/ik5/tonegen/scale"
)

// Two chromatic rows, C to B: the lower row plays the current octave and
// the upper row the one above it.
const (
	lowerRow = "zsxdcvgbhnjm"
	upperRow = "w3e4rt6y7u8i"
)

const (
	minOctave     = 0
	maxOctave     = 8
	pressureStep  = 16
	refreshPeriod = 50 * time.Millisecond
)

// keyNote maps a key to a note relative to octave.
func keyNote(key string, octave int) (scale.Note, bool) {
	if len(key) != 1 {
		return scale.Note{}, false
	}
	if i := strings.Index(lowerRow, key); i >= 0 {
		return noteAt(octave*scale.SemitonesPerOctave + i), true
	}
	if i := strings.Index(upperRow, key); i >= 0 {
		return noteAt((octave+1)*scale.SemitonesPerOctave + i), true
	}
	return scale.Note{}, false
}

type refreshMsg time.Time

func refresh() tea.Cmd {
	return tea.Tick(refreshPeriod, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// keyboard is a terminal piano. Terminals report presses but not releases,
// so each key toggles its note.
type keyboard struct {
	eng      *engine.Engine
	octave   int
	pressure uint8

	sounding map[scale.Note]bool
	voices   int
	playing  bool
	status   string
}

func newKeyboard(eng *engine.Engine, octave int) keyboard {
	k := keyboard{
		eng:      eng,
		octave:   min(max(octave, minOctave), maxOctave),
		pressure: engine.MaxPressure,
	}
	k.sync()
	return k
}

func (k keyboard) Init() tea.Cmd { return refresh() }

func (k keyboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		k.sync()
		return k, refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			return k, tea.Quit
		case tea.KeySpace:
			k.eng.ReleaseAll()
			k.status = "all notes released"
			k.sync()
			return k, nil
		}

		switch key := msg.String(); key {
		case "q":
			return k, tea.Quit
		case "p":
			if k.eng.TogglePlayback() {
				k.status = "playing"
			} else {
				k.status = "paused"
			}
		case "+", "=":
			k.octave = min(k.octave+1, maxOctave)
			k.status = ""
		case "-":
			k.octave = max(k.octave-1, minOctave)
			k.status = ""
		case "]":
			k.pressure = uint8(min(int(k.pressure)+pressureStep, engine.MaxPressure))
		case "[":
			k.pressure = uint8(max(int(k.pressure)-pressureStep, 1))
		default:
			if note, ok := keyNote(key, k.octave); ok {
				k.toggle(note)
			}
		}
		k.sync()
	}
	return k, nil
}

func (k *keyboard) toggle(note scale.Note) {
	if k.eng.State(note) == engine.Active {
		k.eng.NoteOff(note)
		k.status = "off " + note.String()
		return
	}
	if err := k.eng.NoteOn(note, k.pressure); err != nil {
		k.status = err.Error()
		return
	}
	k.status = "on " + note.String()
}

// sync copies the engine state shown by View.
func (k *keyboard) sync() {
	k.sounding = make(map[scale.Note]bool)
	for _, n := range k.eng.Notes() {
		k.sounding[n] = k.eng.State(n) == engine.Active
	}
	k.voices = k.eng.Voices()
	k.playing = k.eng.Playing()
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00E6C3"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00E6C3")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#AAAAAA")).
			Width(5).
			Align(lipgloss.Center)

	activeKeyStyle = keyStyle.
			BorderForeground(lipgloss.Color("#00E6C3")).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#00E6C3")).
			Bold(true)

	releasingKeyStyle = keyStyle.
				BorderForeground(lipgloss.Color("#6272A4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

func (k keyboard) row(keys string, octave int) string {
	cells := make([]string, 0, len(keys))
	for i, r := range keys {
		note := noteAt(octave*scale.SemitonesPerOctave + i)
		label := fmt.Sprintf("%s\n%c", note, r)

		style := keyStyle
		if active, ok := k.sounding[note]; ok {
			style = releasingKeyStyle
			if active {
				style = activeKeyStyle
			}
		}
		cells = append(cells, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (k keyboard) View() string {
	state := "playing"
	if !k.playing {
		state = "paused"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("tonegen"),
		infoStyle.Render(fmt.Sprintf("octave %d  pressure %d  voices %d  %s",
			k.octave, k.pressure, k.voices, state)),
	)

	keys := lipgloss.JoinVertical(lipgloss.Left,
		k.row(upperRow, k.octave+1),
		k.row(lowerRow, k.octave),
	)

	help := helpStyle.Render("KEY: toggle note  +/-: octave  [/]: pressure  SPACE: release all  P: pause  Q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, keys, k.status, help) + "\n"
}
