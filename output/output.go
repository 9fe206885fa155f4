// SPDX-License-Identifier: EPL-2.0

package output

import (
	"fmt"
	"log/slog"
	"time"
)

// Processor overwrites out with the next len(out) mono frames.
type Processor interface {
	Process(out []float32)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(out []float32)

func (f ProcessorFunc) Process(out []float32) { f(out) }

// Backend is an open audio output.
type Backend interface {
	Close() error
}

// Options configures a backend.
type Options struct {
	SampleRate int
	// Latency is the device buffer length, or the tick period for the
	// headless backend.
	Latency time.Duration
	// Sink receives every block rendered by the headless backend.
	Sink   func(block []float32)
	Logger *slog.Logger
}

const DefaultLatency = 20 * time.Millisecond

func (o Options) withDefaults() (Options, error) {
	if o.SampleRate <= 0 {
		return o, fmt.Errorf("%w: sample rate %d", ErrInvalidOptions, o.SampleRate)
	}
	if o.Latency < 0 {
		return o, fmt.Errorf("%w: latency %v", ErrInvalidOptions, o.Latency)
	}
	if o.Latency == 0 {
		o.Latency = DefaultLatency
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o, nil
}

// frames converts the latency to a whole number of frames, at least one.
func (o Options) frames() int {
	return max(int(o.Latency*time.Duration(o.SampleRate)/time.Second), 1)
}

// Backends lists the names Open accepts.
func Backends() []string {
	return []string{"beep", "oto", "headless"}
}

// Open starts p on the named backend.
func Open(name string, p Processor, opts Options) (Backend, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	var b Backend
	switch name {
	case "beep":
		b, err = OpenSpeaker(p, opts)
	case "oto":
		b, err = OpenOto(p, opts)
	case "headless":
		b, err = StartHeadless(p, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	opts.Logger.Info("audio output open",
		slog.String("backend", name),
		slog.Int("sample_rate", opts.SampleRate),
		slog.Duration("latency", opts.Latency),
	)
	return b, nil
}
