package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IoTIVP/data-veil/app"
	"github.com/IoTIVP/data-veil/domain/sensor"
)

func newFusionCmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "fusion <file>",
		Short: "Veil the aligned columns of one file together",
		Long: `fusion corrupts every non-time column of the file against the same latent
processes, so the distortions correlate across columns the way a common
environmental disturbance would. Columns are truncated to the shortest one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFusionFile(cmd, args[0])
		},
	}
}

func (a *cliApp) runFusionFile(cmd *cobra.Command, path string) error {
	channels, err := a.reader.Read(path)
	if err != nil {
		return err
	}

	streams := make(map[string][]float64, len(channels))
	for name, series := range channels {
		if name == sensor.ChanTime {
			continue
		}
		streams[name] = series
	}

	res, err := a.service.FuseStreams(cmd.Context(), app.FusionRequest{
		Streams:  streams,
		Strength: a.strengthPtr(cmd),
		Profile:  a.profile,
		Seed:     a.seedPtr(cmd),
	})
	if err != nil {
		return err
	}

	fused := make(sensor.Channels, len(res.Streams)+1)
	for name, series := range res.Streams {
		fused[name] = series
	}
	if t, ok := channels[sensor.ChanTime]; ok {
		n := min(len(t), res.Run.Samples)
		fused[sensor.ChanTime] = t[:n]
	}

	out := a.out
	if out == "" {
		out = veiledPath(path)
	}
	if err := a.writer.Write(out, fused); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "fused %d streams: %d samples, strength %.2f, residual %.4f -> %s\n",
		len(res.Streams), res.Run.Samples, res.Run.Strength, res.Run.Residual, out)
	return nil
}
