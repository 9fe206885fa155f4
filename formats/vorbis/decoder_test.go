// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/tonegen/audio"
)

type fakeReader struct {
	rate, channels int
	samples        []float32
	err            error
}

func (f *fakeReader) SampleRate() int { return f.rate }
func (f *fakeReader) Channels() int   { return f.channels }

func (f *fakeReader) Read(p []float32) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if len(f.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(p, f.samples)
	f.samples = f.samples[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("OggS but not really")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_PassesSamplesThrough(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src := &source{dec: &fakeReader{rate: 48000, channels: 2, samples: in}}

	if src.SampleRate() != 48000 || src.Channels() != 2 {
		t.Errorf("source is %d Hz × %d, want 48000 Hz × 2", src.SampleRate(), src.Channels())
	}

	got, err := audio.ReadAll(src, 5)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("read %v, want %v", got, in)
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], in[i])
		}
	}
}

func TestSource_SubFrameBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeReader{rate: 8000, channels: 2, samples: []float32{1, 1}}}
	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1) = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	errCorrupt := errors.New("bad packet")
	src := &source{dec: &fakeReader{rate: 8000, channels: 1, err: errCorrupt}}

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, errCorrupt) {
		t.Errorf("ReadSamples() error = %v, want %v", err, errCorrupt)
	}
}
