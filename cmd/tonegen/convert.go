// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/tonegen"
)

// convertBufferSize is 512ms of mono audio at 8 kHz.
const convertBufferSize = 4096

func (a *app) convertCmd() *cobra.Command {
	var rate int

	cmd := &cobra.Command{
		Use:   "convert INPUT OUTPUT",
		Short: "Resample an audio file to 16-bit mono",
		Long: `Decode INPUT (WAV, AIFF, MP3 or Ogg Vorbis), fold it to mono, resample
it to --rate and write it as 16-bit PCM. The output container follows
the OUTPUT extension (.wav or .aiff).

Examples:
  tonegen convert take.wav take-8k.wav
  tonegen convert --rate 16000 song.mp3 song.aiff`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, outPath := args[0], args[1]
			if rate <= 0 {
				return fmt.Errorf("invalid --rate %d", rate)
			}

			fw, err := writerFor(outPath)
			if err != nil {
				return err
			}

			src, closeSrc, err := openSource(newDecoders(), inPath)
			if err != nil {
				return err
			}
			pcm, err := tonegen.ResampleToMono16(src, rate, convertBufferSize)
			if err = errors.Join(err, closeSrc()); err != nil {
				return err
			}

			err = createFile(outPath, func(w io.WriteSeeker) error {
				return fw.mono16(w, rate, pcm)
			})
			if err != nil {
				return err
			}

			a.logger.Debug("converted",
				slog.String("in", inPath),
				slog.String("out", outPath),
				slog.Int("rate", rate),
				slog.Int("samples", len(pcm)),
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Wrote:", outPath)
			return err
		},
	}

	cmd.Flags().IntVar(&rate, "rate", 8000, "Output sample rate in Hz")
	return cmd
}
