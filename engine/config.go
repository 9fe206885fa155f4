// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"

	"github.com/ik5/tonegen/scale"
	"github.com/ik5/tonegen/voice"
)

// Config holds everything an Engine needs to turn notes into voices.
type Config struct {
	Voice  voice.Config
	Tuning scale.Tuning
}

func DefaultConfig() Config {
	return Config{
		Voice:  voice.DefaultConfig(),
		Tuning: scale.Standard(),
	}
}

func (c Config) Validate() error {
	if c.Tuning == nil {
		return fmt.Errorf("%w: missing tuning", ErrInvalidConfig)
	}
	if err := c.Voice.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
