// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/tonegen/audio"
	"github.com/ik5/tonegen/formats/aiff"
	"github.com/ik5/tonegen/formats/mp3"
	"github.com/ik5/tonegen/formats/vorbis"
	"github.com/ik5/tonegen/formats/wav"
	"github.com/ik5/tonegen/output"
)

// fileWriter encodes mono audio in one container format.
type fileWriter struct {
	encode output.EncodeFunc
	mono16 func(w io.WriteSeeker, sampleRate int, samples []int16) error
}

var writers = map[string]fileWriter{
	"wav":  {encode: wav.Encode, mono16: wav.WriteMono16},
	"aiff": {encode: aiff.Encode, mono16: aiff.WriteMono16},
}

// writerFor picks the encoder from the file extension.
func writerFor(path string) (fileWriter, error) {
	format, ok := audio.FormatFromPath(path)
	if !ok {
		return fileWriter{}, fmt.Errorf("%w: %s", audio.ErrUnknownFormat, path)
	}
	w, ok := writers[format]
	if !ok {
		return fileWriter{}, fmt.Errorf("%w: cannot write %s", audio.ErrUnknownFormat, format)
	}
	return w, nil
}

func newDecoders() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("vorbis", vorbis.Decoder{})
	return reg
}

// openSource decodes path with the decoder matching its extension. The
// returned close func releases both the source and the file.
func openSource(reg *audio.Registry, path string) (audio.Source, func() error, error) {
	format, ok := audio.FormatFromPath(path)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", audio.ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	src, err := reg.Decode(format, f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	closer := func() error {
		return errors.Join(src.Close(), f.Close())
	}
	return src, closer, nil
}

// createFile runs write against a new file at path.
func createFile(path string, write func(io.WriteSeeker) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
