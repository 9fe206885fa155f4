// SPDX-License-Identifier: EPL-2.0

package voice

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid voice configuration")
)
