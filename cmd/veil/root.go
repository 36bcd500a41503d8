package main

import (
	"github.com/spf13/cobra"

	"github.com/IoTIVP/data-veil/adapters/excel"
	"github.com/IoTIVP/data-veil/adapters/profiles"
	"github.com/IoTIVP/data-veil/adapters/registry"
	"github.com/IoTIVP/data-veil/adapters/rng"
	"github.com/IoTIVP/data-veil/app"
	"github.com/IoTIVP/data-veil/internal"
	"github.com/IoTIVP/data-veil/internal/config"
	"github.com/IoTIVP/data-veil/internal/testkit"
	"github.com/IoTIVP/data-veil/ports"
)

// cliApp carries the wired service and the shared flag values.
type cliApp struct {
	service *app.VeilService
	source  ports.RandomSource
	reader  ports.SampleReader
	writer  ports.SampleWriter
	logger  *internal.Logger

	strength float64
	profile  string
	seed     int64
	out      string
	samples  int
}

func newCLIApp() *cliApp {
	cfg := config.Load()
	logger := internal.NewLogger(internal.ParseLevel(cfg.Veil.LogLevel))
	source := rng.NewSource()

	service := app.NewVeilService(
		registry.NewRegistry(),
		profiles.NewResolver(cfg.Veil.ProfilesFile, logger),
		source,
		testkit.NewInMemoryRecorder(),
		logger,
		cfg.Veil.DefaultProfile,
	)

	return &cliApp{
		service: service,
		source:  source,
		reader:  excel.NewReader(),
		writer:  excel.NewWriter(),
		logger:  logger,
	}
}

func newRootCommand() *cobra.Command {
	a := newCLIApp()

	cmd := &cobra.Command{
		Use:   "veil",
		Short: "Synthesize plausible but corrupted variants of sensor logs",
		Long: `veil takes trusted sensor time-series (barometer, magnetometer, RF power,
ultrasonic range, IMU) and produces statistically corrupted variants: slow
drift, injected anomaly events, and adaptive noise scaled to each log's own
statistics. A fusion mode corrupts several streams against shared latent
processes so the distortions correlate across sensors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Float64Var(&a.strength, "strength", 1.0, "explicit veil strength, overrides --profile")
	cmd.PersistentFlags().StringVar(&a.profile, "profile", "", "strength profile (light, privacy, ghost, chaos)")
	cmd.PersistentFlags().Int64Var(&a.seed, "seed", 0, "fixed seed for reproducible runs")
	cmd.PersistentFlags().StringVar(&a.out, "out", "", "output path (directory for demo, file for run and fusion)")

	cmd.AddCommand(
		newDemoCmd(a),
		newRunCmd(a),
		newFusionCmd(a),
		newProfilesCmd(a),
	)
	return cmd
}

// strengthPtr returns the explicit strength only when the flag was set, so
// profile resolution stays in charge otherwise.
func (a *cliApp) strengthPtr(cmd *cobra.Command) *float64 {
	if cmd.Flags().Changed("strength") {
		s := a.strength
		return &s
	}
	return nil
}

func (a *cliApp) seedPtr(cmd *cobra.Command) *int64 {
	if cmd.Flags().Changed("seed") {
		s := a.seed
		return &s
	}
	return nil
}
