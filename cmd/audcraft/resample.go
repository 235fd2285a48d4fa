// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audcraft"
	"github.com/ik5/audcraft/formats/wav"
	"github.com/ik5/audcraft/utils"
)

func resampleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resample <input> <output.wav>",
		Short: "Resample an audio file into a 16-bit PCM WAV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resample(args[0], args[1])
		},
	}
}

func (a *app) resample(in, out string) error {
	cfg := a.settings.Crafter

	sig, origRate, err := audcraft.Load(in, audcraft.LoadOptions{
		TargetRate: cfg.TargetSampleRate,
		Mono:       cfg.Mono,
		Resampler:  cfg.Resampler,
		BufferSize: cfg.BufferSize,
	})
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", in, err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	pcm := utils.Float32sToInt16s(sig.Interleave())
	if err := wav.WriteWAV16(f, cfg.TargetSampleRate, sig.Channels(), pcm); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", out, err)
	}

	a.logger.Info("resampled",
		"input", in,
		"output", out,
		"from_rate", origRate,
		"to_rate", cfg.TargetSampleRate,
		"channels", sig.Channels(),
		"frames", sig.Frames())

	return nil
}
