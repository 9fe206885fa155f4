// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis recordings through
// github.com/jfreymuth/oggvorbis.
//
// The decoder already yields float32 samples in [-1, 1], so the Source is a
// thin pass-through that keeps reads aligned to whole frames.
package vorbis
