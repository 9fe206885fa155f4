// SPDX-License-Identifier: EPL-2.0

// Package analysis measures decoded or rendered audio: level, clipping and
// an estimate of the fundamental frequency.
package analysis

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ik5/tonegen/audio"
)

// ClipLevel is the magnitude at or above which a sample counts as clipped.
const ClipLevel = 1.0

// Stats summarises a stream after it has been folded to mono.
type Stats struct {
	SampleRate int
	Channels   int
	Frames     int
	Peak       float32
	RMS        float64
	Clipped    int
	// Frequency estimated from zero crossings; 0 when there are too few.
	Frequency float64
}

func (s Stats) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(s.Frames) * time.Second / time.Duration(s.SampleRate)
}

// PeakDB is the peak level in dBFS.
func (s Stats) PeakDB() float64 {
	if s.Peak == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(float64(s.Peak))
}

func (s Stats) String() string {
	return fmt.Sprintf("%d Hz × %d, %v, peak %.3f (%.1f dBFS), rms %.3f, clipped %d, ~%.1f Hz",
		s.SampleRate, s.Channels, s.Duration(), s.Peak, s.PeakDB(), s.RMS, s.Clipped, s.Frequency)
}

// Analyze reads src to the end.
func Analyze(src audio.Source) (Stats, error) {
	st := Stats{SampleRate: src.SampleRate(), Channels: src.Channels()}
	mono := audio.NewMonoMixer(src)

	var (
		sumSquares float64
		crossings  int
		first      = -1
		last       int
		prev       float32
	)

	buf := make([]float32, 4096)
	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			a := float32(math.Abs(float64(v)))
			st.Peak = max(st.Peak, a)
			if a >= ClipLevel {
				st.Clipped++
			}
			sumSquares += float64(v) * float64(v)

			// Rising crossings only, so each period counts once.
			if prev < 0 && v >= 0 {
				if first < 0 {
					first = st.Frames
				} else {
					crossings++
				}
				last = st.Frames
			}
			prev = v
			st.Frames++
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, fmt.Errorf("analyze: %w", err)
		}
	}

	if st.Frames > 0 {
		st.RMS = math.Sqrt(sumSquares / float64(st.Frames))
	}
	if crossings > 0 && st.SampleRate > 0 {
		period := float64(last-first) / float64(crossings)
		st.Frequency = float64(st.SampleRate) / period
	}
	return st, nil
}
