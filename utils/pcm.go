// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"slices"

	goaudio "github.com/go-audio/audio"
)

// FullScale is the magnitude of the most negative integer sample at
// bitDepth. Unknown depths are treated as 16-bit.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 1 << 7
	case 24:
		return 1 << 23
	case 32:
		return 1 << 31
	}
	return 1 << 15
}

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM. NaN
// maps to 0.
func Float32ToInt16(x float32) int16 {
	return int16(clamp(x) * 32767)
}

// AppendInt16 converts src to 16-bit PCM and appends it to dst.
func AppendInt16(dst []int16, src []float32) []int16 {
	dst = slices.Grow(dst, len(src))
	for _, x := range src {
		dst = append(dst, Float32ToInt16(x))
	}
	return dst
}

// IntBuffer converts mono float samples to a go-audio buffer at bitDepth.
func IntBuffer(samples []float32, sampleRate, bitDepth int) *goaudio.IntBuffer {
	peak := FullScale(bitDepth) - 1
	data := make([]int, len(samples))
	for i, x := range samples {
		data[i] = int(clamp(x) * peak)
	}

	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

// Int16Buffer wraps 16-bit mono PCM in a go-audio buffer.
func Int16Buffer(samples []int16, sampleRate int) *goaudio.IntBuffer {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
}

// clamp limits x to [-1, 1]. NaN becomes silence.
func clamp(x float32) float32 {
	if x != x {
		return 0
	}
	return min(max(x, -1), 1)
}
