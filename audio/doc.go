// SPDX-License-Identifier: EPL-2.0

// Package audio provides the pull-based sample pipeline used for exporting
// rendered notes and for inspecting recordings.
//
// Everything is built around Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1, 1]. ReadSamples returns the number
// of values written (not frames) and io.EOF once the stream is exhausted,
// possibly together with a final partial read.
//
// # Building Blocks
//
//   - SliceSource plays back samples already in memory, such as the output
//     of an offline render.
//   - Resampler converts between sample rates with Catmull-Rom
//     interpolation, smoothing with a one-pole low-pass when downsampling.
//   - MonoMixer averages interleaved channels down to one.
//   - Registry maps format names to Decoders, which the formats
//     subpackages provide.
//
// A typical export chain renders at the engine rate and converts on the way
// out:
//
//	src := audio.NewSliceSource(samples, 48000, 1)
//	out, err := audio.ReadAll(audio.NewResampler(src, 16000), 4096)
package audio
