// SPDX-License-Identifier: EPL-2.0

// Command tonegen plays, renders and inspects envelope-shaped sine tones.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/tonegen/engine"
	"github.com/ik5/tonegen/envelope"
	"github.com/ik5/tonegen/scale"
	"github.com/ik5/tonegen/voice"
)

var version = "0.1.0"

// settings are the persistent flags shared by every command.
type settings struct {
	debug      bool
	sampleRate int
	attack     time.Duration
	decay      time.Duration
	sustain    float64
	release    time.Duration
	chunk      time.Duration
	blockSize  int
	queueDepth int
	a4         float64
}

func defaultSettings() settings {
	vc := voice.DefaultConfig()
	return settings{
		sampleRate: vc.SampleRate,
		attack:     vc.Envelope.Attack,
		decay:      vc.Envelope.Decay,
		sustain:    vc.Envelope.Sustain,
		release:    vc.Envelope.Release,
		chunk:      vc.ChunkDuration,
		blockSize:  vc.BlockSize,
		queueDepth: vc.QueueDepth,
		a4:         scale.Standard().ReferenceFreq,
	}
}

// engineConfig builds and validates the engine configuration.
func (s settings) engineConfig() (engine.Config, error) {
	tuning := scale.Standard()
	tuning.ReferenceFreq = s.a4

	cfg := engine.Config{
		Voice: voice.Config{
			SampleRate: s.sampleRate,
			Envelope: envelope.Params{
				Attack:  s.attack,
				Decay:   s.decay,
				Sustain: s.sustain,
				Release: s.release,
			},
			ChunkDuration: s.chunk,
			BlockSize:     s.blockSize,
			QueueDepth:    s.queueDepth,
		},
		Tuning: tuning,
	}
	if s.a4 <= 0 {
		return cfg, fmt.Errorf("%w: reference frequency %v", engine.ErrInvalidConfig, s.a4)
	}
	return cfg, cfg.Validate()
}

// app carries state shared between the commands of one invocation.
type app struct {
	settings
	logger *slog.Logger
}

// initLogger configures the shared slog logger and makes it the default.
func (a *app) initLogger(w io.Writer) {
	level := slog.LevelInfo
	if a.debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: a.debug,
	})
	a.logger = slog.New(h)
	slog.SetDefault(a.logger)
}

func newRootCmd() *cobra.Command {
	a := &app{settings: defaultSettings(), logger: slog.Default()}

	root := &cobra.Command{
		Use:   "tonegen",
		Short: "Polyphonic ADSR tone generator",
		Long: `tonegen mixes sine voices shaped by an attack, decay, sustain and
release envelope. Notes can be played live from the keyboard or a MIDI
port, or rendered offline to a file.

Examples:
  tonegen play
  tonegen play --backend oto --midi-in "USB Keyboard" --record take.wav
  tonegen render -o chord.wav C4:0s:1s E4:0s:1s G4:0s:1s
  tonegen inspect take.wav
  tonegen freq C4 C5`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.initLogger(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&a.debug, "debug", false, "Verbose logging with source locations")
	pf.IntVar(&a.sampleRate, "sample-rate", a.sampleRate, "Engine sample rate in Hz")
	pf.DurationVar(&a.attack, "attack", a.attack, "Envelope attack time")
	pf.DurationVar(&a.decay, "decay", a.decay, "Envelope decay time")
	pf.Float64Var(&a.sustain, "sustain", a.sustain, "Envelope sustain level, 0 to 1")
	pf.DurationVar(&a.release, "release", a.release, "Envelope release time")
	pf.DurationVar(&a.chunk, "chunk", a.chunk, "Sustain chunk length")
	pf.IntVar(&a.blockSize, "block-size", a.blockSize, "Samples per voice block")
	pf.IntVar(&a.queueDepth, "queue-depth", a.queueDepth, "Blocks buffered per voice")
	pf.Float64Var(&a.a4, "a4", a.a4, "Reference frequency of A4 in Hz")

	root.AddCommand(
		a.playCmd(),
		a.renderCmd(),
		a.inspectCmd(),
		a.convertCmd(),
		a.freqCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tonegen:", err)
		os.Exit(1)
	}
}
