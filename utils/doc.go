// SPDX-License-Identifier: EPL-2.0

// Package utils holds the sample-level arithmetic shared by the format
// codecs, the resampler and the offline renderer: float/integer PCM
// conversion and cubic interpolation.
package utils
