// SPDX-License-Identifier: EPL-2.0

// Package pcmsource adapts the go-audio integer PCM decoders to
// audio.Source.
package pcmsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/tonegen/utils"
)

// Reader is the part of the go-audio wav and aiff decoders a Source uses.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer PCM to float32 in [-1, 1].
type Source struct {
	r         Reader
	format    *goaudio.Format
	fullScale float32
	buf       *goaudio.IntBuffer
	exhausted bool
}

func New(r Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		r:         r,
		format:    format,
		fullScale: utils.FullScale(bitDepth),
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return max(s.format.NumChannels, 1) }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.exhausted {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.Channels()
	if want == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < want {
		s.buf = &goaudio.IntBuffer{Format: s.format, Data: make([]int, want)}
	}
	s.buf.Data = s.buf.Data[:want]

	n, err := s.r.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) / s.fullScale
	}

	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.exhausted = true
	case err != nil:
		return n, fmt.Errorf("read pcm: %w", err)
	case n < want:
		s.exhausted = true
	}

	if s.exhausted {
		return n, io.EOF
	}
	return n, nil
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffer input: %w", err)
	}
	return bytes.NewReader(data), nil
}
