// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"context"
	"fmt"
	"time"

	"github.com/ik5/tonegen/envelope"
	"github.com/ik5/tonegen/wave"
)

// Voice presses notes that share one Config.
type Voice struct {
	cfg Config
}

func New(cfg Config) (*Voice, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Voice{cfg: cfg}, nil
}

// Config returns the configuration every pressed note uses.
func (v *Voice) Config() Config { return v.cfg }

// Press starts a note at freq Hz with peak amplitude amp in [0, 1].
// Invalid or degenerate tones are rejected before any goroutine starts.
func (v *Voice) Press(ctx context.Context, freq, amp float64) (*Stream, *Trigger, error) {
	cycle, err := wave.NewCycle(freq, amp, v.cfg.SampleRate)
	if err != nil {
		return nil, nil, fmt.Errorf("press %.2f Hz: %w", freq, err)
	}

	syn, err := envelope.New(cycle, v.cfg.Envelope, v.cfg.SampleRate, v.cfg.ChunkDuration)
	if err != nil {
		return nil, nil, fmt.Errorf("press %.2f Hz: %w", freq, err)
	}

	blocks := make(chan []float32, v.cfg.QueueDepth)
	trig := newTrigger()
	p := &producer{
		cfg:    v.cfg,
		syn:    syn,
		out:    blocks,
		trig:   trig,
		start:  time.Now(),
		buffer: make([]float32, 0, v.cfg.BlockSize),
	}
	go p.run(ctx)

	return &Stream{blocks: blocks}, trig, nil
}

type producer struct {
	cfg   Config
	syn   *envelope.Synthesizer
	out   chan<- []float32
	trig  *Trigger
	start time.Time

	buffer []float32 // scratch space, reused for every phase
}

func (p *producer) run(ctx context.Context) {
	defer close(p.out)

	if !p.emit(ctx, p.syn.Attack(p.buffer[:0])) {
		return
	}
	if !p.emit(ctx, p.syn.Decay(p.buffer[:0])) {
		return
	}

	if !p.sustain(ctx) {
		return
	}

	p.emit(ctx, p.syn.Release(p.buffer[:0]))
}

// sustain renders chunks on schedule until the trigger fires. It returns
// false if ctx ended.
func (p *producer) sustain(ctx context.Context) bool {
	next := p.start.Add(p.cfg.Envelope.Attack + p.cfg.Envelope.Decay)
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		if p.trig.Released() {
			return true
		}
		if ctx.Err() != nil {
			return false
		}

		if wait := time.Until(next); wait > 0 {
			timer.Reset(wait)
			select {
			case <-p.trig.Done():
				return true
			case <-ctx.Done():
				return false
			case <-timer.C:
			}
			continue
		}

		if !p.emit(ctx, p.syn.Sustain(p.buffer[:0])) {
			return false
		}
		next = next.Add(p.cfg.ChunkDuration)
	}
}

// emit hands samples to the consumer in BlockSize blocks. It returns false
// if ctx ended before everything was queued.
func (p *producer) emit(ctx context.Context, samples []float32) bool {
	p.buffer = samples[:0]

	for len(samples) > 0 {
		n := min(len(samples), p.cfg.BlockSize)
		block := make([]float32, n)
		copy(block, samples[:n])
		samples = samples[n:]

		select {
		case p.out <- block:
		case <-ctx.Done():
			return false
		}
	}
	return true
}
