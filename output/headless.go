// SPDX-License-Identifier: EPL-2.0

package output

import (
	"context"
	"sync"
	"time"
)

// Headless drives a Processor from a ticker, one block per tick, as a sound
// card would.
type Headless struct {
	p      Processor
	period time.Duration
	block  []float32
	sink   func([]float32)
}

func NewHeadless(p Processor, opts Options) (*Headless, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	return &Headless{
		p:      p,
		period: opts.Latency,
		block:  make([]float32, opts.frames()),
		sink:   opts.Sink,
	}, nil
}

// BlockSize is the number of frames rendered per tick.
func (h *Headless) BlockSize() int { return len(h.block) }

// Run ticks until ctx ends.
func (h *Headless) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.Tick()
		}
	}
}

// Tick renders one block immediately.
func (h *Headless) Tick() {
	h.p.Process(h.block)
	if h.sink != nil {
		h.sink(h.block)
	}
}

type headlessBackend struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// StartHeadless runs a Headless in the background until Close.
func StartHeadless(p Processor, opts Options) (Backend, error) {
	h, err := NewHeadless(p, opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := &headlessBackend{cancel: cancel}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		_ = h.Run(ctx)
	}()
	return b, nil
}

func (b *headlessBackend) Close() error {
	b.cancel()
	b.wg.Wait()
	return nil
}
