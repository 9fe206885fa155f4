// SPDX-License-Identifier: EPL-2.0

package output

import "errors"

var (
	ErrUnknownBackend = errors.New("unknown output backend")

	// ErrInvalidOptions indicates a non-positive sample rate or buffer
	ErrInvalidOptions = errors.New("invalid output options")
)
