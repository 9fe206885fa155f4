// SPDX-License-Identifier: EPL-2.0

package output

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

const bytesPerFloat = 4

// floatReader renders p as little-endian float32 bytes for oto to pull.
type floatReader struct {
	p   Processor
	buf []float32
}

func (r *floatReader) Read(b []byte) (int, error) {
	frames := len(b) / bytesPerFloat
	if cap(r.buf) < frames {
		r.buf = make([]float32, frames)
	}
	buf := r.buf[:frames]

	r.p.Process(buf)
	for i, v := range buf {
		binary.LittleEndian.PutUint32(b[i*bytesPerFloat:], math.Float32bits(v))
	}
	return frames * bytesPerFloat, nil
}

type otoBackend struct {
	mu     sync.Mutex
	player *oto.Player
}

// OpenOto creates the oto context and starts a mono float32 player pulling
// from p.
func OpenOto(p Processor, opts Options) (Backend, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   opts.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   opts.Latency,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	player := ctx.NewPlayer(&floatReader{p: p})
	player.Play()

	return &otoBackend{player: player}, nil
}

func (b *otoBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.player == nil {
		return nil
	}
	err := b.player.Close()
	b.player = nil
	return err
}
