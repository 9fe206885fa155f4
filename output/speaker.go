// SPDX-License-Identifier: EPL-2.0

package output

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Streamer exposes a Processor as a never-ending beep.Streamer, copying each
// mono frame to both channels.
type Streamer struct {
	p   Processor
	buf []float32
}

func NewStreamer(p Processor) *Streamer {
	return &Streamer{p: p}
}

func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	if cap(s.buf) < len(samples) {
		s.buf = make([]float32, len(samples))
	}
	buf := s.buf[:len(samples)]

	s.p.Process(buf)
	for i, v := range buf {
		samples[i][0] = float64(v)
		samples[i][1] = float64(v)
	}
	return len(samples), true
}

func (s *Streamer) Err() error { return nil }

type speakerBackend struct{}

// OpenSpeaker initialises the beep speaker and starts pulling from p.
func OpenSpeaker(p Processor, opts Options) (Backend, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	rate := beep.SampleRate(opts.SampleRate)
	if err := speaker.Init(rate, rate.N(opts.Latency)); err != nil {
		return nil, err
	}
	speaker.Play(NewStreamer(p))

	return speakerBackend{}, nil
}

func (speakerBackend) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}
