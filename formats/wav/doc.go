// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// Encode exports rendered or recorded mono audio as integer PCM:
//
//	f, _ := os.Create("take.wav")
//	defer f.Close()
//	err := wav.Encode(f, samples, 48000, 16)
//
// WriteMono16 does the same for samples already converted to 16-bit, as
// produced by tonegen.RenderToMono16.
//
// Decoder turns a 16 or 24-bit integer PCM file back into an audio.Source.
// Input that cannot seek is buffered in memory first, since the go-audio
// decoder walks the RIFF chunks with Seek.
package wav
