// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"math"
	"testing"
)

func TestNewCycle_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		freq       float64
		sampleRate int
		want       int
	}{
		{"A4 at 48k", 440, 48000, 109},
		{"C4 at 48k", 261.6256, 48000, 183},
		{"A4 at 44.1k", 440, 44100, 100},
		{"1 kHz at 8k", 1000, 8000, 8},
		{"round up", 4000, 9000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewCycle(tt.freq, 1, tt.sampleRate)
			if err != nil {
				t.Fatalf("NewCycle() error = %v", err)
			}
			if c.Len() != tt.want {
				t.Errorf("NewCycle(%v, 1, %d).Len() = %d, want %d", tt.freq, tt.sampleRate, c.Len(), tt.want)
			}
		})
	}
}

func TestNewCycle_PeakWithinAmplitude(t *testing.T) {
	t.Parallel()

	for _, freq := range []float64{27.5, 110, 440, 1000, 4186} {
		for _, amp := range []float64{0, 0.1, 0.5, 0.8, 1} {
			c, err := NewCycle(freq, amp, 48000)
			if err != nil {
				t.Fatalf("NewCycle(%v, %v) error = %v", freq, amp, err)
			}
			if float64(c.Peak()) > amp+1e-6 {
				t.Errorf("NewCycle(%v, %v).Peak() = %v, want <= %v", freq, amp, c.Peak(), amp)
			}
		}
	}
}

func TestNewCycle_OnePeriod(t *testing.T) {
	t.Parallel()

	c, err := NewCycle(480, 1, 48000) // exactly 100 samples
	if err != nil {
		t.Fatalf("NewCycle() error = %v", err)
	}

	if c[0] != 0 {
		t.Errorf("c[0] = %v, want 0", c[0])
	}
	if math.Abs(float64(c[25])-1) > 1e-6 {
		t.Errorf("c[25] = %v, want 1 (quarter period)", c[25])
	}
	if math.Abs(float64(c[75])+1) > 1e-6 {
		t.Errorf("c[75] = %v, want -1 (three quarter period)", c[75])
	}

	// The sample after the table would be sin(2π) = 0, which is c[0].
	if c.At(100) != c[0] || c.At(125) != c[25] {
		t.Error("At() does not wrap around the period")
	}
}

func TestNewCycle_Degenerate(t *testing.T) {
	t.Parallel()

	for _, freq := range []float64{48000, 40000, 96000} {
		_, err := NewCycle(freq, 1, 48000)
		if !errors.Is(err, ErrDegenerateCycle) {
			t.Errorf("NewCycle(%v) error = %v, want ErrDegenerateCycle", freq, err)
		}
	}
}

func TestNewCycle_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		freq, amp  float64
		sampleRate int
		want       error
	}{
		{"zero frequency", 0, 1, 48000, ErrInvalidFrequency},
		{"negative frequency", -440, 1, 48000, ErrInvalidFrequency},
		{"NaN frequency", math.NaN(), 1, 48000, ErrInvalidFrequency},
		{"infinite frequency", math.Inf(1), 1, 48000, ErrInvalidFrequency},
		{"negative amplitude", 440, -0.1, 48000, ErrInvalidAmplitude},
		{"amplitude above one", 440, 1.5, 48000, ErrInvalidAmplitude},
		{"zero sample rate", 440, 1, 0, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCycle(tt.freq, tt.amp, tt.sampleRate)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewCycle() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func BenchmarkNewCycle(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		_, _ = NewCycle(261.6256, 0.8, 48000)
	}
}
