// SPDX-License-Identifier: EPL-2.0

package tonegen

import "errors"

// ErrInvalidEvent indicates a malformed or impossible note event
var ErrInvalidEvent = errors.New("invalid note event")
