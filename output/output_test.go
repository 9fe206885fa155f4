// SPDX-License-Identifier: EPL-2.0

package output

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ik5/tonegen/audio"
	"github.com/ik5/tonegen/formats/wav"
	"github.com/ik5/tonegen/internal/audiotest"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	opts, err := Options{SampleRate: 48000}.withDefaults()
	if err != nil {
		t.Fatalf("withDefaults() error = %v", err)
	}
	if opts.Latency != DefaultLatency {
		t.Errorf("Latency = %v, want %v", opts.Latency, DefaultLatency)
	}
	if opts.Logger == nil {
		t.Error("Logger = nil, want a discard logger")
	}
	if got := opts.frames(); got != 960 {
		t.Errorf("frames() = %d, want 960", got)
	}
}

func TestOptions_Invalid(t *testing.T) {
	t.Parallel()

	for _, opts := range []Options{
		{SampleRate: 0},
		{SampleRate: -1},
		{SampleRate: 48000, Latency: -time.Millisecond},
	} {
		if _, err := opts.withDefaults(); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("withDefaults(%+v) error = %v, want ErrInvalidOptions", opts, err)
		}
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := Open("jack", &audiotest.Counter{}, Options{SampleRate: 48000})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(jack) error = %v, want ErrUnknownBackend", err)
	}
}

func TestOpen_Headless(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		blocks int
	)
	c := &audiotest.Counter{}
	b, err := Open("headless", c, Options{
		SampleRate: 8000,
		Latency:    time.Millisecond,
		Sink: func([]float32) {
			mu.Lock()
			blocks++
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("Open(headless) error = %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for c.Calls() < 5 {
		if time.Now().After(deadline) {
			t.Fatal("headless backend never ticked")
		}
		time.Sleep(time.Millisecond)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	calls := c.Calls()
	if c.Frames() != calls*8 {
		t.Errorf("Frames() = %d, want %d calls × 8", c.Frames(), calls)
	}
	mu.Lock()
	defer mu.Unlock()
	if blocks != calls {
		t.Errorf("sink saw %d blocks, want %d", blocks, calls)
	}

	time.Sleep(5 * time.Millisecond)
	if c.Calls() != calls {
		t.Error("processor still called after Close()")
	}
}

func TestHeadless_Tick(t *testing.T) {
	t.Parallel()

	var got []float32
	h, err := NewHeadless(&audiotest.Counter{}, Options{
		SampleRate: 1000,
		Latency:    4 * time.Millisecond,
		Sink:       func(b []float32) { got = append(got, b...) },
	})
	if err != nil {
		t.Fatalf("NewHeadless() error = %v", err)
	}
	if h.BlockSize() != 4 {
		t.Fatalf("BlockSize() = %d, want 4", h.BlockSize())
	}

	h.Tick()
	h.Tick()
	for i, v := range got {
		if v != float32(i) {
			t.Fatalf("frame %d = %v, want %d", i, v, i)
		}
	}
	if len(got) != 8 {
		t.Errorf("sink saw %d frames, want 8", len(got))
	}
}

func TestHeadless_RunStopsWithContext(t *testing.T) {
	t.Parallel()

	h, err := NewHeadless(&audiotest.Counter{}, Options{SampleRate: 8000, Latency: time.Millisecond})
	if err != nil {
		t.Fatalf("NewHeadless() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	if err := h.Run(ctx); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

func TestStreamer_DuplicatesMono(t *testing.T) {
	t.Parallel()

	s := NewStreamer(&audiotest.Counter{})
	samples := make([][2]float64, 6)

	n, ok := s.Stream(samples)
	if n != 6 || !ok {
		t.Fatalf("Stream() = %d, %v, want 6, true", n, ok)
	}
	for i, frame := range samples {
		if frame[0] != float64(i) || frame[1] != float64(i) {
			t.Errorf("frame %d = %v, want [%d %d]", i, frame, i, i)
		}
	}

	n, _ = s.Stream(samples[:2])
	if n != 2 || samples[0][0] != 6 {
		t.Errorf("second Stream() = %d starting at %v, want 2 starting at 6", n, samples[0][0])
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v, want nil", s.Err())
	}
}

func TestFloatReader(t *testing.T) {
	t.Parallel()

	r := &floatReader{p: audiotest.Constant{Value: -0.25}}
	b := make([]byte, 4*3+2)

	n, err := r.Read(b)
	if err != nil || n != 12 {
		t.Fatalf("Read() = %d, %v, want 12, nil", n, err)
	}
	for i := range 3 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
		if v != -0.25 {
			t.Errorf("frame %d = %v, want -0.25", i, v)
		}
	}
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	rec := NewRecorder(&audiotest.Counter{}, 8000, 10)
	out := make([]float32, 4)

	for range 4 {
		rec.Process(out)
	}
	if out[3] != 15 {
		t.Errorf("pass-through frame = %v, want 15", out[3])
	}

	got := rec.Samples()
	if len(got) != 10 {
		t.Fatalf("len(Samples()) = %d, want 10", len(got))
	}
	for i, v := range got {
		if v != float32(i) {
			t.Errorf("Samples()[%d] = %v, want %d", i, v, i)
		}
	}
	if rec.Dropped() != 6 {
		t.Errorf("Dropped() = %d, want 6", rec.Dropped())
	}

	rec.Reset()
	if len(rec.Samples()) != 0 || rec.Dropped() != 0 {
		t.Error("Reset() kept recorded state")
	}
}

func TestRecorder_ZeroLimit(t *testing.T) {
	t.Parallel()

	rec := NewRecorder(audiotest.Constant{Value: 1}, 8000, -5)
	rec.Process(make([]float32, 16))
	if len(rec.Samples()) != 0 || rec.Dropped() != 16 {
		t.Errorf("recorded %d, dropped %d, want 0, 16", len(rec.Samples()), rec.Dropped())
	}
}

func TestRecorder_Save(t *testing.T) {
	t.Parallel()

	rec := NewRecorder(audiotest.Constant{Value: 0.5}, 8000, 100)
	rec.Process(make([]float32, 64))

	path := filepath.Join(t.TempDir(), "take.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := rec.Save(f, wav.Encode, 16); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	f.Close()

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer in.Close()

	src, err := wav.Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, err := audio.ReadAll(src, 32)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 64 || math.Abs(float64(got[0]-0.5)) > 1e-4 {
		t.Errorf("saved %d samples starting at %v, want 64 at 0.5", len(got), got[0])
	}
}

func TestProcessorFunc(t *testing.T) {
	t.Parallel()

	var seen int
	var p Processor = ProcessorFunc(func(out []float32) { seen = len(out) })
	p.Process(make([]float32, 7))
	if seen != 7 {
		t.Errorf("ProcessorFunc saw %d frames, want 7", seen)
	}
}
