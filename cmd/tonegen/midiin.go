// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// midiHandler consumes incoming messages. engine.Engine.HandleMIDI is one.
type midiHandler func(midi.Message) error

func listMIDIInputs() ([]string, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("open MIDI driver: %w", err)
	}
	defer drv.Close()

	ins, err := drv.Ins()
	if err != nil {
		return nil, fmt.Errorf("list MIDI inputs: %w", err)
	}
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names, nil
}

// pickPort returns the index of the port called want, or failing that the
// first one whose name contains it, ignoring case.
func pickPort(names []string, want string) (int, bool) {
	for i, name := range names {
		if name == want {
			return i, true
		}
	}
	lower := strings.ToLower(want)
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			return i, true
		}
	}
	return -1, false
}

// listenMIDI opens the input port matching name and feeds every message to
// handle until the returned stop func is called.
func listenMIDI(name string, handle midiHandler, logger *slog.Logger) (func(), error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("open MIDI driver: %w", err)
	}

	ins, err := drv.Ins()
	if err != nil {
		closeAll(logger, drv)
		return nil, fmt.Errorf("list MIDI inputs: %w", err)
	}

	names := make([]string, len(ins))
	for i, in := range ins {
		names[i] = in.String()
	}
	idx, ok := pickPort(names, name)
	if !ok {
		closeAll(logger, drv)
		return nil, fmt.Errorf("MIDI input %q not found", name)
	}

	var in drivers.In = ins[idx]
	if err := in.Open(); err != nil {
		closeAll(logger, drv)
		return nil, fmt.Errorf("open MIDI input %q: %w", names[idx], err)
	}

	stopListen, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		if err := handle(msg); err != nil {
			logger.Warn("MIDI message rejected", slog.String("msg", msg.String()), slog.Any("error", err))
		}
	}, midi.HandleError(func(err error) {
		logger.Warn("MIDI listener error", slog.String("device", names[idx]), slog.Any("error", err))
	}))
	if err != nil {
		closeAll(logger, in, drv)
		return nil, fmt.Errorf("listen on %q: %w", names[idx], err)
	}

	logger.Info("MIDI input connected", slog.String("device", names[idx]))

	return func() {
		stopListen()
		closeAll(logger, in, drv)
	}, nil
}

// closeAll closes every closer in order and logs what failed.
func closeAll(logger *slog.Logger, closers ...io.Closer) {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c.Close())
	}
	if err := errors.Join(errs...); err != nil {
		logger.Warn("closing MIDI input", slog.Any("error", err))
	}
}
