// SPDX-License-Identifier: EPL-2.0

// Package output connects a Processor, normally an *engine.Engine, to
// something that consumes audio on a schedule.
//
// Three backends are available through Open:
//
//   - "beep" plays through github.com/gopxl/beep/v2/speaker
//   - "oto" plays through github.com/ebitengine/oto/v3 as 32-bit float
//   - "headless" drives the processor from a ticker without a sound
//     device, handing each block to an optional sink
//
// All of them pull mono frames; the beep backend copies each frame to both
// speaker channels. A Recorder can sit between the backend and the engine
// to capture what was played:
//
//	rec := output.NewRecorder(eng, 48000, 48000*60*10)
//	out, err := output.Open("beep", rec, output.Options{SampleRate: 48000})
//	...
//	out.Close()
//	rec.Save(f, wav.Encode, 16)
//
// The beep and oto backends own process-wide audio state, so only one of
// them can be open at a time.
package output
