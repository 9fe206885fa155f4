// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/tonegen/analysis"
	"github.com/ik5/tonegen/audio"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Print level and pitch statistics of audio files",
		Long: `Decode each file (WAV, AIFF, MP3 or Ogg Vorbis) and print its length,
peak and RMS level, clipped sample count and an estimate of the
fundamental frequency. Useful for checking a recording made with
play --record.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := newDecoders()

			var errs []error
			for _, path := range args {
				st, err := inspectFile(reg, path)
				if err != nil {
					a.logger.Error("inspect failed", slog.String("file", path), slog.Any("error", err))
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, st)
			}
			return errors.Join(errs...)
		},
	}
}

func inspectFile(reg *audio.Registry, path string) (analysis.Stats, error) {
	src, closeSrc, err := openSource(reg, path)
	if err != nil {
		return analysis.Stats{}, err
	}
	st, err := analysis.Analyze(src)
	return st, errors.Join(err, closeSrc())
}
