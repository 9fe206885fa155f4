// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/tonegen/utils"
)

// Encode writes mono float samples as bitDepth integer PCM. Samples
// outside [-1, 1] are clipped.
func Encode(w io.WriteSeeker, samples []float32, sampleRate, bitDepth int) error {
	if !supported(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	return write(w, utils.IntBuffer(samples, sampleRate, bitDepth), sampleRate, bitDepth)
}

// WriteMono16 writes 16-bit mono PCM at sampleRate.
func WriteMono16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	return write(w, utils.Int16Buffer(samples, sampleRate), sampleRate, 16)
}

func write(w io.WriteSeeker, buf *goaudio.IntBuffer, sampleRate, bitDepth int) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, formatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finish wav: %w", err)
	}
	return nil
}
