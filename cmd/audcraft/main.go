// SPDX-License-Identifier: EPL-2.0

// Command audcraft decodes audio files into resampled signal records.
//
//	audcraft craft --rate 16000 a.wav b.mp3
//	audcraft resample --rate 8000 in.flac out.wav
//	audcraft config
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
