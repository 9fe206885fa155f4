// SPDX-License-Identifier: EPL-2.0

package tonegen

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/tonegen/audio"
	"github.com/ik5/tonegen/engine"
	"github.com/ik5/tonegen/envelope"
	"github.com/ik5/tonegen/scale"
	"github.com/ik5/tonegen/utils"
	"github.com/ik5/tonegen/wave"
)

// NoteEvent is a note pressed at Start and released Hold later.
type NoteEvent struct {
	Note     scale.Note
	Start    time.Duration
	Hold     time.Duration
	Pressure uint8
}

// ParseEvent reads NOTE:START:HOLD[:PRESSURE]. Pressure defaults to full.
func ParseEvent(s string) (NoteEvent, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return NoteEvent{}, fmt.Errorf("%w: %q, want NOTE:START:HOLD[:PRESSURE]", ErrInvalidEvent, s)
	}

	note, err := scale.ParseNote(parts[0])
	if err != nil {
		return NoteEvent{}, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}

	ev := NoteEvent{Note: note, Pressure: engine.MaxPressure}
	if ev.Start, err = time.ParseDuration(parts[1]); err != nil || ev.Start < 0 {
		return NoteEvent{}, fmt.Errorf("%w: start %q", ErrInvalidEvent, parts[1])
	}
	if ev.Hold, err = time.ParseDuration(parts[2]); err != nil || ev.Hold < 0 {
		return NoteEvent{}, fmt.Errorf("%w: hold %q", ErrInvalidEvent, parts[2])
	}

	if len(parts) == 4 {
		p, err := strconv.ParseUint(parts[3], 10, 8)
		if err != nil || p > engine.MaxPressure {
			return NoteEvent{}, fmt.Errorf("%w: pressure %q", ErrInvalidEvent, parts[3])
		}
		ev.Pressure = uint8(p)
	}
	return ev, nil
}

// sustainChunks is how many sustain chunks a live voice emits before a
// release at hold: one per chunk boundary strictly before it.
func sustainChunks(p envelope.Params, chunk, hold time.Duration) int {
	held := hold - p.Attack - p.Decay
	if held <= 0 {
		return 0
	}
	return int((held + chunk - 1) / chunk)
}

// Render mixes events into one mono buffer at cfg.Voice.SampleRate. The
// buffer ends when the last release does. Events with zero pressure are
// skipped.
func Render(cfg engine.Config, events []NoteEvent) ([]float32, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vc := cfg.Voice
	var out []float32

	for _, ev := range events {
		if ev.Pressure == 0 {
			continue
		}

		amp := min(float64(ev.Pressure)/engine.MaxPressure, 1)
		cycle, err := wave.NewCycle(cfg.Tuning.Frequency(ev.Note), amp, vc.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", ev.Note, err)
		}
		syn, err := envelope.New(cycle, vc.Envelope, vc.SampleRate, vc.ChunkDuration)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", ev.Note, err)
		}

		voice := syn.Decay(syn.Attack(nil))
		for range sustainChunks(vc.Envelope, vc.ChunkDuration, ev.Hold) {
			voice = syn.Sustain(voice)
		}
		voice = syn.Release(voice)

		at := envelope.Samples(ev.Start, vc.SampleRate)
		if end := at + len(voice); end > len(out) {
			out = append(out, make([]float32, end-len(out))...)
		}
		for i, v := range voice {
			out[at+i] += v
		}
	}

	return out, nil
}

// ResampleToMono16 reads src to the end, resampled to targetRate, folded
// to mono and converted to 16-bit PCM.
func ResampleToMono16(src audio.Source, targetRate, bufferSize int) ([]int16, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	bufferSize = max(bufferSize, 1)
	buf := make([]float32, bufferSize)
	pcm := make([]int16, 0, targetRate)

	for {
		n, err := mono.ReadSamples(buf)
		pcm = utils.AppendInt16(pcm, buf[:n])

		if err == io.EOF {
			return pcm, nil
		}
		if err != nil {
			return pcm, fmt.Errorf("resample: %w", err)
		}
	}
}

// RenderToMono16 renders events and converts them to 16-bit PCM at
// targetRate.
func RenderToMono16(cfg engine.Config, events []NoteEvent, targetRate int) ([]int16, error) {
	samples, err := Render(cfg, events)
	if err != nil {
		return nil, err
	}

	if targetRate == cfg.Voice.SampleRate {
		return utils.AppendInt16(nil, samples), nil
	}
	return ResampleToMono16(audio.NewSliceSource(samples, cfg.Voice.SampleRate, 1), targetRate, 4096)
}
