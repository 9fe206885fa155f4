// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/tonegen/audio"
	"github.com/ik5/tonegen/internal/audiotest"
)

// Example_resampler converts one second at 44.1 kHz down to 16 kHz.
func Example_resampler() {
	src := audiotest.NewSineSource(44100, 1, 44100, 440)
	r := audio.NewResampler(src, 16000)

	out, err := audio.ReadAll(r, 4096)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("rate: %d Hz\n", r.SampleRate())
	fmt.Printf("samples: %d\n", len(out))
	// Output:
	// rate: 16000 Hz
	// samples: 16000
}

// Example_monoMixer folds a stereo stream into one channel.
func Example_monoMixer() {
	src := audiotest.NewMockSource(8000, 2, 4, func(_, ch int) float32 {
		return float32(ch)
	})
	mono := audio.NewMonoMixer(src)

	out, _ := audio.ReadAll(mono, 64)
	fmt.Println(mono.Channels(), out)
	// Output:
	// 1 [0.5 0.5 0.5 0.5]
}

// Example_sliceSource replays a rendered buffer through the pipeline.
func Example_sliceSource() {
	rendered := []float32{0, 0.5, 1, 0.5, 0, -0.5, -1, -0.5}
	src := audio.NewSliceSource(rendered, 8000, 1)

	out, _ := audio.ReadAll(audio.NewResampler(src, 4000), 16)
	fmt.Println(len(out))
	// Output:
	// 4
}
