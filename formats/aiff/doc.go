// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes big-endian AIFF files through
// github.com/go-audio/aiff.
//
// It mirrors the wav package: Encode and WriteMono16 export mono integer
// PCM, and Decoder provides an audio.Source for 16 and 24-bit files.
//
//	f, _ := os.Create("take.aiff")
//	defer f.Close()
//	err := aiff.Encode(f, samples, 44100, 24)
package aiff
