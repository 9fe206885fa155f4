// SPDX-License-Identifier: EPL-2.0

package wave

import "errors"

var (
	ErrInvalidFrequency  = errors.New("frequency must be positive")
	ErrInvalidAmplitude  = errors.New("amplitude must be within [0, 1]")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrDegenerateCycle indicates a cycle shorter than two samples
	ErrDegenerateCycle = errors.New("degenerate cycle")
)
