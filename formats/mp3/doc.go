// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 recordings through github.com/hajimehoshi/go-mp3
// so they can be inspected next to rendered output.
//
// go-mp3 always produces interleaved 16-bit stereo, so every Source from
// this package reports two channels. Wrap it in audio.NewMonoMixer to
// compare it with the engine's mono signal.
package mp3
