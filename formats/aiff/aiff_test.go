// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/tonegen/audio"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.aiff"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func readBack(t *testing.T, f *os.File) (audio.Source, []float32) {
	t.Helper()

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	samples, err := audio.ReadAll(src, 128)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return src, samples
}

func TestEncode_Decode(t *testing.T) {
	t.Parallel()

	in := make([]float32, 500)
	for i := range in {
		in[i] = float32(0.6 * math.Sin(2*math.Pi*float64(i)/50))
	}

	f := tempFile(t)
	if err := Encode(f, in, 44100, 16); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	src, got := readBack(t, f)
	if src.SampleRate() != 44100 || src.Channels() != 1 {
		t.Errorf("decoded %d Hz × %d, want 44100 Hz × 1", src.SampleRate(), src.Channels())
	}
	if len(got) != len(in) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(in))
	}
	for i := range in {
		if d := math.Abs(float64(got[i] - in[i])); d > 1.0/16384 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], in[i])
		}
	}
}

func TestWriteMono16(t *testing.T) {
	t.Parallel()

	f := tempFile(t)
	if err := WriteMono16(f, 8000, []int16{16384, -16384, 0}); err != nil {
		t.Fatalf("WriteMono16() error = %v", err)
	}

	_, got := readBack(t, f)
	want := []float32{0.5, -0.5, 0}
	if len(got) != len(want) {
		t.Fatalf("decoded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEncode_UnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	if err := Encode(tempFile(t), []float32{0}, 8000, 8); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestDecoder_NotAiff(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("RIFF....WAVEfmt definitely not aiff")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrNotAiffFile) {
			t.Errorf("Decode(%q) error = %v, want ErrNotAiffFile", data, err)
		}
	}
}
