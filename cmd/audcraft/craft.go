// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audcraft/audio"
	"github.com/ik5/audcraft/crafter"
)

// craftLine is one line of craft output.
type craftLine struct {
	ID         int          `json:"id"`
	Path       string       `json:"path"`
	Offset     int          `json:"offset"`
	Weight     float64      `json:"weight"`
	SampleRate int          `json:"sample_rate"`
	Channels   int          `json:"channels"`
	Frames     int          `json:"frames"`
	Signal     audio.Signal `json:"signal,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func craftCommand(a *app) *cobra.Command {
	var (
		startID    int
		withSignal bool
	)

	cmd := &cobra.Command{
		Use:   "craft <file>...",
		Short: "Craft a record for each audio file and print it as a JSON line",
		Long: `Craft decodes every file, resamples it to the target rate and prints one
JSON object per file, in argument order. Identifiers count up from --start-id.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.craft(cmd.Context(), args, startID, withSignal)
		},
	}

	cmd.Flags().IntVar(&startID, "start-id", 0, "Identifier of the first file")
	cmd.Flags().BoolVar(&withSignal, "signal", false, "Include the full signal in the output")

	return cmd
}

func (a *app) craft(ctx context.Context, paths []string, startID int, withSignal bool) error {
	reader := crafter.NewAudioReader(a.settings.Crafter, crafter.WithLogger(a.logger))
	lines := make([]craftLine, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.settings.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			id := startID + i
			line := craftLine{ID: id, Path: path, SampleRate: a.settings.Crafter.TargetSampleRate}

			rec, err := reader.Craft([]byte(path), id)
			if err != nil {
				a.logger.Error("craft failed", "id", id, "path", path, "error", err)
				line.Error = err.Error()
				lines[i] = line
				return nil
			}

			line.Offset = rec.Offset
			line.Weight = rec.Weight
			line.Channels = rec.Signal.Channels()
			line.Frames = rec.Signal.Frames()
			if withSignal {
				line.Signal = rec.Signal
			}
			lines[i] = line

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(a.out)
	failed := 0
	for _, line := range lines {
		if line.Error != "" {
			failed++
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}

	return nil
}
