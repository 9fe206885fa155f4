// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/tonegen/utils"
)

// smoothing is the one-pole low-pass coefficient applied to input frames
// when downsampling.
const smoothing = 0.5

// Resampler streams src at a different sample rate, preserving channels.
//
// Output frame k sits at source position k*srcRate/dstRate, computed
// exactly in integers, and is interpolated from the four surrounding source
// frames. Edges are padded by repeating the first and last frame. A source
// of N frames yields ceil(N*dstRate/srcRate) output frames.
type Resampler struct {
	src      Source
	srcRate  int64
	rate     int64
	channels int

	window [4][]float32 // source frames base-1, base, base+1, base+2
	real   [4]bool      // false for padding past the end
	base   int64        // source index of window[1]
	k      int64        // next output frame
	primed bool

	in    []float32
	inPos int
	inLen int
	done  bool

	lowpass []float32 // filter state; nil when not downsampling
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		rate:     int64(max(dstRate, 1)),
		channels: channels,
		in:       make([]float32, 1024*channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	if r.srcRate > r.rate {
		r.lowpass = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return int(r.rate) }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("close resampler source: %w", err)
	}
	return nil
}

// ReadSamples fills dst, whose length must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		at := r.k * r.srcRate
		for r.base < at/r.rate {
			if err := r.advance(); err != nil {
				return written, err
			}
			r.base++
		}
		if !r.real[1] {
			return written, io.EOF
		}

		x := float32(float64(at%r.rate) / float64(r.rate))
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}
		written += r.channels
		r.k++
	}

	return written, nil
}

func (r *Resampler) prime() error {
	ok, err := r.next(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.window[0], r.window[1])
	r.real[0], r.real[1] = true, true

	for i := 2; i < 4; i++ {
		if r.real[i], err = r.next(r.window[i]); err != nil {
			return err
		}
		if !r.real[i] {
			copy(r.window[i], r.window[i-1])
		}
	}

	r.primed = true
	return nil
}

// advance slides the window forward by one source frame.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.real[:], r.real[1:])
	r.window[3] = first

	ok, err := r.next(r.window[3])
	if err != nil {
		return err
	}
	r.real[3] = ok
	if !ok {
		copy(r.window[3], r.window[2])
	}
	return nil
}

// next reads one source frame into frame and reports whether one existed.
func (r *Resampler) next(frame []float32) (bool, error) {
	for r.inPos >= r.inLen {
		if r.done {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels
		if err == io.EOF {
			r.done = true
		} else if err != nil {
			return false, fmt.Errorf("resample: %w", err)
		}
	}

	copy(frame, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.lowpass != nil {
		if !r.primed && !r.real[1] {
			copy(r.lowpass, frame)
		}
		for c, v := range frame {
			frame[c] = smoothing*v + (1-smoothing)*r.lowpass[c]
			r.lowpass[c] = frame[c]
		}
	}
	return true, nil
}
