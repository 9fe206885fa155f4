// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/ik5/tonegen/envelope"
	"github.com/ik5/tonegen/wave"
)

func testConfig() Config {
	return Config{
		SampleRate: 8000,
		Envelope: envelope.Params{
			Attack:  2 * time.Millisecond, // 16 samples
			Decay:   4 * time.Millisecond, // 32 samples
			Sustain: 0.5,
			Release: 5 * time.Millisecond, // 40 samples
		},
		ChunkDuration: 2 * time.Millisecond, // 16 samples
		BlockSize:     10,
		QueueDepth:    64,
	}
}

func newTestVoice(t *testing.T, cfg Config) *Voice {
	t.Helper()

	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return v
}

func collect(t *testing.T, s *Stream) []float32 {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	out, err := s.Collect(ctx)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return out
}

// reference renders the same note synchronously with the given number of
// sustain chunks.
func reference(t *testing.T, cfg Config, freq, amp float64, chunks int) []float32 {
	t.Helper()

	cycle, err := wave.NewCycle(freq, amp, cfg.SampleRate)
	if err != nil {
		t.Fatalf("NewCycle() error = %v", err)
	}
	syn, err := envelope.New(cycle, cfg.Envelope, cfg.SampleRate, cfg.ChunkDuration)
	if err != nil {
		t.Fatalf("envelope.New() error = %v", err)
	}

	out := syn.Attack(nil)
	out = syn.Decay(out)
	for range chunks {
		out = syn.Sustain(out)
	}
	return syn.Release(out)
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"chunk", func(c *Config) { c.ChunkDuration = 0 }},
		{"block size", func(c *Config) { c.BlockSize = 0 }},
		{"queue depth", func(c *Config) { c.QueueDepth = -1 }},
		{"envelope", func(c *Config) { c.Envelope.Sustain = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestPress_RejectsBadTone(t *testing.T) {
	t.Parallel()

	v := newTestVoice(t, testConfig())

	tests := []struct {
		name      string
		freq, amp float64
		want      error
	}{
		{"zero frequency", 0, 1, wave.ErrInvalidFrequency},
		{"negative frequency", -1, 1, wave.ErrInvalidFrequency},
		{"degenerate", 6000, 1, wave.ErrDegenerateCycle},
		{"loud", 440, 2, wave.ErrInvalidAmplitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stream, trig, err := v.Press(t.Context(), tt.freq, tt.amp)
			if !errors.Is(err, tt.want) {
				t.Errorf("Press() error = %v, want %v", err, tt.want)
			}
			if stream != nil || trig != nil {
				t.Error("Press() returned a stream for a rejected tone")
			}
		})
	}
}

func TestPress_ImmediateRelease(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	v := newTestVoice(t, cfg)

	stream, trig, err := v.Press(t.Context(), 440, 0.8)
	if err != nil {
		t.Fatalf("Press() error = %v", err)
	}
	trig.Release()

	got := collect(t, stream)
	want := reference(t, cfg, 440, 0.8, 0)

	if len(got) != 16+32+40 {
		t.Errorf("len(samples) = %d, want %d", len(got), 16+32+40)
	}
	if !slices.Equal(got, want) {
		t.Error("samples differ from the synchronous rendering")
	}
}

func TestPress_ReleaseDuringSustain(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	v := newTestVoice(t, cfg)

	stream, trig, err := v.Press(t.Context(), 440, 0.8)
	if err != nil {
		t.Fatalf("Press() error = %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	trig.Release()

	got := collect(t, stream)

	counts := cfg.Envelope.Counts(cfg.SampleRate, cfg.ChunkDuration)
	sustained := len(got) - counts.Attack - counts.Decay - counts.Release
	if sustained <= 0 || sustained%counts.Chunk != 0 {
		t.Fatalf("sustain samples = %d, want a positive multiple of %d", sustained, counts.Chunk)
	}

	want := reference(t, cfg, 440, 0.8, sustained/counts.Chunk)
	if !slices.Equal(got, want) {
		t.Error("samples differ from the synchronous rendering")
	}
}

func TestPress_ReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	v := newTestVoice(t, cfg)

	once, trigOnce, err := v.Press(t.Context(), 330, 0.5)
	if err != nil {
		t.Fatalf("Press() error = %v", err)
	}
	twice, trigTwice, err := v.Press(t.Context(), 330, 0.5)
	if err != nil {
		t.Fatalf("Press() error = %v", err)
	}

	trigOnce.Release()
	trigTwice.Release()
	trigTwice.Release()

	if !trigTwice.Released() {
		t.Error("Released() = false after Release()")
	}
	if a, b := collect(t, once), collect(t, twice); !slices.Equal(a, b) {
		t.Errorf("double release changed output: %d vs %d samples", len(a), len(b))
	}
}

func TestPress_HeldNoteNeverEnds(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	v := newTestVoice(t, cfg)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	stream, _, err := v.Press(ctx, 440, 1)
	if err != nil {
		t.Fatalf("Press() error = %v", err)
	}

	deadline := time.Now().Add(40 * time.Millisecond)
	read := 0
	for time.Now().Before(deadline) {
		_, status := stream.TryRead()
		switch status {
		case Ready:
			read++
		case Closed:
			t.Fatalf("stream closed after %d samples without a release", read)
		case Empty:
			time.Sleep(time.Millisecond)
		}
	}

	counts := cfg.Envelope.Counts(cfg.SampleRate, cfg.ChunkDuration)
	if read <= counts.Attack+counts.Decay {
		t.Errorf("read %d samples, want sustain beyond %d", read, counts.Attack+counts.Decay)
	}

	// Wall-clock pacing: 40 ms of holding can't produce much more than
	// 40 ms of sustain.
	limit := counts.Attack + counts.Decay + (40/2+10)*counts.Chunk
	if read > limit {
		t.Errorf("read %d samples, want at most %d", read, limit)
	}

	cancel()
	if _, err := stream.Collect(context.Background()); err != nil {
		t.Errorf("Collect() after cancel error = %v", err)
	}
	if !stream.Closed() {
		t.Error("stream still open after the context was cancelled")
	}
}

func TestPress_SmallQueueAppliesBackpressure(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.QueueDepth = 1
	cfg.BlockSize = 3
	cfg.Envelope.Decay = 100 * time.Millisecond
	v := newTestVoice(t, cfg)

	stream, trig, err := v.Press(t.Context(), 440, 0.8)
	if err != nil {
		t.Fatalf("Press() error = %v", err)
	}
	trig.Release()

	// Nothing is read for a while; the producer must wait, not drop.
	time.Sleep(10 * time.Millisecond)

	got := collect(t, stream)
	if want := reference(t, cfg, 440, 0.8, 0); !slices.Equal(got, want) {
		t.Errorf("len(samples) = %d, want %d", len(got), len(want))
	}
}

func TestPress_CancelledContextClosesStream(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.QueueDepth = 1
	cfg.BlockSize = 1
	v := newTestVoice(t, cfg)

	ctx, cancel := context.WithCancel(t.Context())
	stream, _, err := v.Press(ctx, 440, 0.8)
	if err != nil {
		t.Fatalf("Press() error = %v", err)
	}
	cancel()

	got := collect(t, stream)
	counts := cfg.Envelope.Counts(cfg.SampleRate, cfg.ChunkDuration)
	if len(got) >= counts.Attack+counts.Decay+counts.Release {
		t.Errorf("len(samples) = %d, want an early stop", len(got))
	}
}

func TestVoice_Config(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	if got := newTestVoice(t, cfg).Config(); got != cfg {
		t.Errorf("Config() = %+v, want %+v", got, cfg)
	}
}
