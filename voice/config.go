// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"fmt"
	"time"

	"github.com/ik5/tonegen/envelope"
)

// Config is shared read-only by every voice pressed from the same Voice.
type Config struct {
	SampleRate int
	Envelope   envelope.Params

	// ChunkDuration is the length of one Sustain chunk and the pacing step
	// of a held note.
	ChunkDuration time.Duration

	// BlockSize is the number of samples per block handed to the consumer.
	BlockSize int

	// QueueDepth is the number of blocks buffered before the producer waits.
	QueueDepth int
}

const (
	DefaultSampleRate = 48000
	DefaultChunk      = 10 * time.Millisecond
	DefaultBlockSize  = 480
	DefaultQueueDepth = 256
)

func DefaultConfig() Config {
	return Config{
		SampleRate:    DefaultSampleRate,
		Envelope:      envelope.DefaultParams(),
		ChunkDuration: DefaultChunk,
		BlockSize:     DefaultBlockSize,
		QueueDepth:    DefaultQueueDepth,
	}
}

func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.ChunkDuration <= 0 {
		return fmt.Errorf("%w: chunk duration %v", ErrInvalidConfig, c.ChunkDuration)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block size %d", ErrInvalidConfig, c.BlockSize)
	}
	if c.QueueDepth <= 0 {
		return fmt.Errorf("%w: queue depth %d", ErrInvalidConfig, c.QueueDepth)
	}
	if err := c.Envelope.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
