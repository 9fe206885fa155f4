// SPDX-License-Identifier: EPL-2.0

package output

import (
	"io"
	"sync"
)

// EncodeFunc writes mono samples to a file format, as wav.Encode and
// aiff.Encode do.
type EncodeFunc func(w io.WriteSeeker, samples []float32, sampleRate, bitDepth int) error

// Recorder passes frames through from an upstream Processor and keeps a
// copy of up to a fixed number of them.
type Recorder struct {
	p          Processor
	sampleRate int

	mu      sync.Mutex
	samples []float32
	limit   int
	dropped int
}

// NewRecorder records at most limit frames of p at sampleRate. A limit of
// zero or less records nothing.
func NewRecorder(p Processor, sampleRate, limit int) *Recorder {
	return &Recorder{
		p:          p,
		sampleRate: sampleRate,
		samples:    make([]float32, 0, min(max(limit, 0), sampleRate*60)),
		limit:      max(limit, 0),
	}
}

func (r *Recorder) Process(out []float32) {
	r.p.Process(out)

	r.mu.Lock()
	defer r.mu.Unlock()

	room := min(r.limit-len(r.samples), len(out))
	r.samples = append(r.samples, out[:room]...)
	r.dropped += len(out) - room
}

// Samples returns a copy of everything recorded so far.
func (r *Recorder) Samples() []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]float32(nil), r.samples...)
}

// Dropped is the number of frames played after the limit was reached.
func (r *Recorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.dropped
}

// Reset discards the recording.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.samples = r.samples[:0]
	r.dropped = 0
}

// Save encodes the recording to w.
func (r *Recorder) Save(w io.WriteSeeker, encode EncodeFunc, bitDepth int) error {
	return encode(w, r.Samples(), r.sampleRate, bitDepth)
}
