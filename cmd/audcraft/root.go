// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/audcraft/internal/config"
	"github.com/ik5/audcraft/internal/logging"
)

// app is the state shared by all subcommands once the root pre-run finished.
type app struct {
	v          *viper.Viper
	configFile string
	settings   *config.Settings
	logger     *slog.Logger
	runID      string
	out        io.Writer
	errOut     io.Writer
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      config.New(),
		out:    out,
		errOut: errOut,
	}

	rootCmd := &cobra.Command{
		Use:          "audcraft",
		Short:        "Decode and resample audio files into signal records",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize()
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	if err := setupFlags(rootCmd, a); err != nil {
		// Flag names are static; a failure here is a programming error.
		panic(err)
	}

	rootCmd.AddCommand(
		craftCommand(a),
		resampleCommand(a),
		configCommand(a),
	)

	return rootCmd
}

// setupFlags defines the global flags and binds them to their config keys.
func setupFlags(rootCmd *cobra.Command, a *app) error {
	flags := rootCmd.PersistentFlags()
	def := a.v

	flags.StringVarP(&a.configFile, "config", "c", "", "Path to a YAML config file")
	flags.IntP("rate", "r", def.GetInt(config.KeyTargetSampleRate), "Target sample rate in Hz")
	flags.Bool("mono", def.GetBool(config.KeyMono), "Downmix every file to one channel")
	flags.String("resampler", def.GetString(config.KeyResampler), "Resampling engine: cubic or hq")
	flags.Int("buffer-size", def.GetInt(config.KeyBufferSize), "Pipeline read buffer in samples")
	flags.IntP("workers", "w", def.GetInt(config.KeyWorkers), "Files processed concurrently")
	flags.BoolP("debug", "d", def.GetBool(config.KeyDebug), "Enable debug output")
	flags.String("log-level", def.GetString(config.KeyLogLevel), "Log level: debug, info, warn, error")
	flags.String("log-format", def.GetString(config.KeyLogFormat), "Log format: text or json")

	bindings := map[string]string{
		config.KeyTargetSampleRate: "rate",
		config.KeyMono:             "mono",
		config.KeyResampler:        "resampler",
		config.KeyBufferSize:       "buffer-size",
		config.KeyWorkers:          "workers",
		config.KeyDebug:            "debug",
		config.KeyLogLevel:         "log-level",
		config.KeyLogFormat:        "log-format",
	}
	for key, name := range bindings {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("error binding flag %s: %w", name, err)
		}
	}

	return nil
}

// initialize loads the configuration and builds the logger.
func (a *app) initialize() error {
	settings, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(settings.Log.Level)
	if err != nil {
		return err
	}
	if settings.Crafter.Debug {
		level = slog.LevelDebug
	}

	logger, err := logging.New(a.errOut, level, settings.Log.Format)
	if err != nil {
		return err
	}

	a.settings = settings
	a.runID = uuid.NewString()
	a.logger = logger.With("run_id", a.runID)

	a.logger.Debug("configuration loaded",
		"config_file", a.v.ConfigFileUsed(),
		"target_sample_rate", settings.Crafter.TargetSampleRate,
		"resampler", settings.Crafter.Resampler,
		"workers", settings.Workers)

	return nil
}
