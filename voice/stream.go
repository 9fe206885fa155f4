// SPDX-License-Identifier: EPL-2.0

package voice

import "context"

// Status is the outcome of a non-blocking read.
type Status int

const (
	Ready Status = iota
	Empty
	Closed
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Stream delivers a voice's samples in generation order.
// It must be read from a single goroutine.
type Stream struct {
	blocks <-chan []float32
	block  []float32
	pos    int
	closed bool
}

// TryRead returns the next sample without waiting.
func (s *Stream) TryRead() (float32, Status) {
	if s.pos < len(s.block) {
		v := s.block[s.pos]
		s.pos++
		return v, Ready
	}
	if s.closed {
		return 0, Closed
	}

	select {
	case b, ok := <-s.blocks:
		if !ok {
			s.closed = true
			s.block, s.pos = nil, 0
			return 0, Closed
		}
		s.block, s.pos = b, 1
		return b[0], Ready
	default:
		return 0, Empty
	}
}

// Closed reports whether TryRead has observed the end of the stream.
func (s *Stream) Closed() bool {
	return s.closed && s.pos >= len(s.block)
}

// Collect waits for the producer and returns every remaining sample.
// It returns ctx.Err() if ctx ends first, along with what was read so far.
func (s *Stream) Collect(ctx context.Context) ([]float32, error) {
	out := append([]float32(nil), s.block[s.pos:]...)
	s.block, s.pos = nil, 0
	if s.closed {
		return out, nil
	}

	for {
		select {
		case b, ok := <-s.blocks:
			if !ok {
				s.closed = true
				return out, nil
			}
			out = append(out, b...)
		case <-ctx.Done():
			return out, ctx.Err()
		}
	}
}
