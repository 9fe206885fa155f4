// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownFormat indicates no decoder is registered for a format
	ErrUnknownFormat = errors.New("unknown audio format")
)
