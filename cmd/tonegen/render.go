// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/tonegen"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		out      string
		rate     int
		bitDepth int
	)

	cmd := &cobra.Command{
		Use:   "render -o FILE EVENT...",
		Short: "Render timed notes to a WAV or AIFF file",
		Long: `Render note events offline. Each event is NOTE:START:HOLD[:PRESSURE],
for example A4:0s:1s or CS5:250ms:2s:90. The note is pressed at START,
released HOLD later and rings for the release time after that.

With --rate the result is resampled and written as 16-bit PCM at that
rate; otherwise it is written at the engine rate with --bits per sample.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("missing --output")
			}
			events, err := parseEvents(args)
			if err != nil {
				return err
			}
			cfg, err := a.engineConfig()
			if err != nil {
				return err
			}
			fw, err := writerFor(out)
			if err != nil {
				return err
			}

			var frames, sampleRate int
			if rate > 0 && rate != cfg.Voice.SampleRate {
				pcm, err := tonegen.RenderToMono16(cfg, events, rate)
				if err != nil {
					return err
				}
				frames, sampleRate = len(pcm), rate
				err = createFile(out, func(w io.WriteSeeker) error {
					return fw.mono16(w, rate, pcm)
				})
				if err != nil {
					return err
				}
			} else {
				samples, err := tonegen.Render(cfg, events)
				if err != nil {
					return err
				}
				frames, sampleRate = len(samples), cfg.Voice.SampleRate
				err = createFile(out, func(w io.WriteSeeker) error {
					return fw.encode(w, samples, sampleRate, bitDepth)
				})
				if err != nil {
					return err
				}
			}

			length := time.Duration(frames) * time.Second / time.Duration(sampleRate)
			a.logger.Info("rendered",
				slog.String("file", out),
				slog.Int("events", len(events)),
				slog.Int("sample_rate", sampleRate),
				slog.Duration("length", length),
			)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s (%v)\n", out, length)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (.wav or .aiff)")
	cmd.Flags().IntVar(&rate, "rate", 0, "Resample to this rate and write 16-bit PCM")
	cmd.Flags().IntVar(&bitDepth, "bits", 16, "Bits per sample at the engine rate (16 or 24)")
	return cmd
}

func parseEvents(args []string) ([]tonegen.NoteEvent, error) {
	events := make([]tonegen.NoteEvent, 0, len(args))
	for _, s := range args {
		ev, err := tonegen.ParseEvent(s)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
