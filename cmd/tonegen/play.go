// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ik5/tonegen/engine"
	"github.com/ik5/tonegen/output"
)

type playOptions struct {
	backend     string
	latency     time.Duration
	record      string
	recordLimit time.Duration
	bits        int
	midiIn      string
	listMIDI    bool
	keyboard    bool
	octave      int
	notes       []string
	duration    time.Duration
}

func (a *app) playCmd() *cobra.Command {
	opts := playOptions{
		backend:     "beep",
		recordLimit: 5 * time.Minute,
		bits:        16,
		keyboard:    true,
		octave:      4,
	}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play notes live from the keyboard or a MIDI port",
		Long: `Open an audio backend and play notes as they arrive. By default an
interactive keyboard is shown; use --keyboard=false to take notes from
--midi-in or --note only.

Backends: ` + strings.Join(output.Backends(), ", ") + `. The headless backend
renders on a timer without a sound card, which is useful with --record.

Examples:
  tonegen play
  tonegen play --midi-in "USB Keyboard" --keyboard=false
  tonegen play --backend headless --keyboard=false --note C4 --note E4 --duration 3s --record chord.wav`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.listMIDI {
				names, err := listMIDIInputs()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			return a.play(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.backend, "backend", opts.backend, "Audio backend: "+strings.Join(output.Backends(), ", "))
	f.DurationVar(&opts.latency, "latency", output.DefaultLatency, "Output buffer length")
	f.StringVar(&opts.record, "record", "", "Record the output to this .wav or .aiff file")
	f.DurationVar(&opts.recordLimit, "record-limit", opts.recordLimit, "Longest recording kept")
	f.IntVar(&opts.bits, "bits", opts.bits, "Bits per sample of the recording (16 or 24)")
	f.StringVar(&opts.midiIn, "midi-in", "", "MIDI input port name, or part of it")
	f.BoolVar(&opts.listMIDI, "list-midi", false, "List MIDI input ports and exit")
	f.BoolVar(&opts.keyboard, "keyboard", opts.keyboard, "Show the interactive keyboard")
	f.IntVar(&opts.octave, "octave", opts.octave, "Keyboard octave of the lower row")
	f.StringArrayVar(&opts.notes, "note", nil, "Note to press at start, repeatable")
	f.DurationVar(&opts.duration, "duration", 0, "Stop after this long (0 runs until interrupted)")
	return cmd
}

func (a *app) play(ctx context.Context, stdout io.Writer, opts playOptions) error {
	cfg, err := a.engineConfig()
	if err != nil {
		return err
	}
	notes, err := parseNotes(opts.notes)
	if err != nil {
		return err
	}

	var fw fileWriter
	if opts.record != "" {
		if fw, err = writerFor(opts.record); err != nil {
			return err
		}
	}

	eng, err := engine.New(cfg, engine.WithLogger(a.logger))
	if err != nil {
		return err
	}
	defer eng.Close()

	var (
		proc output.Processor = eng
		rec  *output.Recorder
	)
	if opts.record != "" {
		limit := int(opts.recordLimit * time.Duration(cfg.Voice.SampleRate) / time.Second)
		rec = output.NewRecorder(eng, cfg.Voice.SampleRate, limit)
		proc = rec
	}

	out, err := output.Open(opts.backend, proc, output.Options{
		SampleRate: cfg.Voice.SampleRate,
		Latency:    opts.latency,
		Logger:     a.logger,
	})
	if err != nil {
		return err
	}
	a.logger.Info("output open",
		slog.String("backend", opts.backend),
		slog.Int("sample_rate", cfg.Voice.SampleRate),
	)

	if opts.midiIn != "" {
		stop, err := listenMIDI(opts.midiIn, eng.HandleMIDI, a.logger)
		if err != nil {
			return errors.Join(err, out.Close())
		}
		defer stop()
	}

	for _, n := range notes {
		if err := eng.NoteOn(n, engine.MaxPressure); err != nil {
			a.logger.Warn("note rejected", slog.String("note", n.String()), slog.Any("error", err))
		}
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if opts.duration > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, opts.duration)
		defer cancelTimeout()
	}

	runErr := a.wait(ctx, eng, opts)

	eng.ReleaseAll()
	if err := out.Close(); err != nil {
		runErr = errors.Join(runErr, err)
	}

	if rec != nil {
		err := createFile(opts.record, func(w io.WriteSeeker) error {
			return rec.Save(w, fw.encode, opts.bits)
		})
		if err != nil {
			return errors.Join(runErr, err)
		}
		if dropped := rec.Dropped(); dropped > 0 {
			a.logger.Warn("recording truncated", slog.Int("dropped_frames", dropped))
		}
		fmt.Fprintln(stdout, "Wrote:", opts.record)
	}
	return runErr
}

// wait blocks until ctx ends or the keyboard quits.
func (a *app) wait(ctx context.Context, eng *engine.Engine, opts playOptions) error {
	if !opts.keyboard {
		<-ctx.Done()
		return nil
	}

	p := tea.NewProgram(newKeyboard(eng, opts.octave), tea.WithContext(ctx))
	_, err := p.Run()
	if ctx.Err() != nil {
		return nil
	}
	return err
}
