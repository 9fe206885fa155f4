// SPDX-License-Identifier: EPL-2.0

// Package voice runs the life of a single note.
//
// Press builds the note's cycle table and starts a producer goroutine that
// renders the envelope into a Stream. The caller keeps the returned Trigger
// and fires it when the note is let go:
//
//	v, _ := voice.New(voice.DefaultConfig())
//	stream, trig, err := v.Press(ctx, 440, 0.8)
//	...
//	trig.Release()
//
// # Pacing
//
// Attack and Decay are rendered as soon as the producer starts. Sustain is
// rendered in chunks of Config.ChunkDuration, each one only once its
// scheduled wall-clock start has passed, so a held note never runs ahead of
// real time by more than Attack + Decay. The trigger is checked at the start
// of every chunk. Once released, the producer renders Release exactly once
// and closes the stream.
//
// Samples travel in blocks of Config.BlockSize through a queue holding at
// most Config.QueueDepth blocks. A producer facing a full queue waits for
// the consumer.
//
// # Reading
//
// Stream.TryRead never blocks and reports one of three outcomes:
//
//	s, status := stream.TryRead()
//	switch status {
//	case voice.Ready:  // s is the next sample
//	case voice.Empty:  // producer has not caught up; play silence
//	case voice.Closed: // note finished; stop reading
//	}
//
// A Stream has a single consumer. Cancelling the context passed to Press
// stops the producer and closes the stream early.
package voice
