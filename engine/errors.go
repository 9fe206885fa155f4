// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrClosed indicates the engine no longer accepts notes
	ErrClosed = errors.New("engine closed")

	ErrInvalidConfig = errors.New("invalid engine configuration")

	// ErrInvalidEvent indicates a MIDI message with a data byte above 0x7F
	ErrInvalidEvent = errors.New("invalid MIDI event")
)
