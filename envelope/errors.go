// SPDX-License-Identifier: EPL-2.0

package envelope

import "errors"

var (
	ErrInvalidParams = errors.New("invalid envelope parameters")

	// ErrEmptyCycle indicates a table too short to index cyclically
	ErrEmptyCycle = errors.New("cycle must hold at least two samples")
)
