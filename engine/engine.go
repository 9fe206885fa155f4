// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/ik5/tonegen/scale"
	"github.com/ik5/tonegen/voice"
)

// MaxPressure is the pressure that plays a note at full amplitude.
const MaxPressure = 127

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for voice lifecycle events. The default
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Engine is a polyphonic note registry and mixer.
type Engine struct {
	cfg    Config
	voice  *voice.Voice
	log    *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	registry map[scale.Note]*entry
	active   []*entry // every voice still producing, including replaced ones
	playing  bool
	closed   bool
}

type entry struct {
	note   scale.Note
	stream *voice.Stream
	trig   *voice.Trigger
	state  State
}

// New builds an Engine that starts in the playing state.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	v, err := voice.New(cfg.Voice)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		cfg:      cfg,
		voice:    v,
		log:      slog.New(slog.DiscardHandler),
		ctx:      ctx,
		cancel:   cancel,
		registry: make(map[scale.Note]*entry),
		playing:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Config() Config { return e.cfg }

// SampleRate is the rate every voice renders at.
func (e *Engine) SampleRate() int { return e.cfg.Voice.SampleRate }

// NoteOn starts note at the given pressure. Zero pressure is a NoteOff.
// If note is already sounding, the old voice is released and replaced.
func (e *Engine) NoteOn(note scale.Note, pressure uint8) error {
	if pressure == 0 {
		e.NoteOff(note)
		return nil
	}
	if e.ctx.Err() != nil {
		return ErrClosed
	}

	freq := e.cfg.Tuning.Frequency(note)
	amp := min(float64(pressure)/MaxPressure, 1)

	stream, trig, err := e.voice.Press(e.ctx, freq, amp)
	if err != nil {
		e.log.Warn("voice failed to start",
			slog.String("note", note.String()),
			slog.Float64("freq", freq),
			slog.Any("error", err),
		)
		return fmt.Errorf("note %s: %w", note, err)
	}

	ent := &entry{note: note, stream: stream, trig: trig, state: Active}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		trig.Release()
		return ErrClosed
	}

	if old, ok := e.registry[note]; ok {
		old.trig.Release()
		old.state = Releasing
		e.log.Debug("voice replaced", slog.String("note", note.String()))
	}
	e.registry[note] = ent
	e.active = append(e.active, ent)

	e.log.Debug("note on",
		slog.String("note", note.String()),
		slog.Float64("freq", freq),
		slog.Int("pressure", int(pressure)),
	)
	return nil
}

// NoteOff starts the release of note. Notes that are not sounding are
// ignored.
func (e *Engine) NoteOff(note scale.Note) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.registry[note]
	if !ok {
		return
	}
	ent.trig.Release()
	ent.state = Releasing
	e.log.Debug("note off", slog.String("note", note.String()))
}

// ReleaseAll releases every sounding note.
func (e *Engine) ReleaseAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.releaseAll()
}

func (e *Engine) releaseAll() {
	for _, ent := range e.registry {
		ent.trig.Release()
		ent.state = Releasing
	}
}

// Process overwrites out with the next len(out) mixed frames and retires
// voices whose stream has ended. While paused, out is silence and no voice
// is read.
func (e *Engine) Process(out []float32) {
	clear(out)

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.playing {
		return
	}

	live := e.active[:0]
	for _, ent := range e.active {
		if ent.mix(out) {
			live = append(live, ent)
			continue
		}
		e.retire(ent)
	}
	clear(e.active[len(live):])
	e.active = live
}

// mix adds the voice into out and reports whether it is still live.
func (ent *entry) mix(out []float32) bool {
	for i := range out {
		s, status := ent.stream.TryRead()
		switch status {
		case voice.Ready:
			out[i] += s
		case voice.Closed:
			return false
		}
	}
	return true
}

func (e *Engine) retire(ent *entry) {
	ent.state = Terminated
	if e.registry[ent.note] == ent {
		delete(e.registry, ent.note)
	}
	e.log.Debug("voice finished", slog.String("note", ent.note.String()))
}

// Len is the number of notes in the registry.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.registry)
}

// Voices is the number of voices being mixed. It can exceed Len while a
// replaced voice finishes its release.
func (e *Engine) Voices() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.active)
}

// Notes lists the registered notes from lowest to highest.
func (e *Engine) Notes() []scale.Note {
	e.mu.Lock()
	notes := make([]scale.Note, 0, len(e.registry))
	for n := range e.registry {
		notes = append(notes, n)
	}
	e.mu.Unlock()

	slices.SortFunc(notes, func(a, b scale.Note) int { return a.Index() - b.Index() })
	return notes
}

// State reports where note is in its lifecycle. Unregistered notes are Idle.
func (e *Engine) State(note scale.Note) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	if ent, ok := e.registry[note]; ok {
		return ent.state
	}
	return Idle
}

func (e *Engine) SetPlaying(playing bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.playing = playing
}

// TogglePlayback flips between playing and paused and returns the new
// state.
func (e *Engine) TogglePlayback() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.playing = !e.playing
	return e.playing
}

func (e *Engine) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.playing
}

// Close releases every note and stops all voice producers. Process keeps
// working and drains whatever was already queued.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	e.releaseAll()
	e.cancel()
	return nil
}
