package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IoTIVP/data-veil/app"
)

func newRunCmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "run <sensor> <file>",
		Short: "Veil one sensor log read from an xlsx or csv file",
		Long: `run reads a channel table (header row of channel names, one sample per
row), corrupts it with the named sensor's veil, and writes the result next to
the input unless --out names a different file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVeilFile(cmd, args[0], args[1])
		},
	}
}

func (a *cliApp) runVeilFile(cmd *cobra.Command, sensorName, path string) error {
	channels, err := a.reader.Read(path)
	if err != nil {
		return err
	}

	res, err := a.service.Veil(cmd.Context(), app.VeilRequest{
		Sensor:   sensorName,
		Channels: channels,
		Strength: a.strengthPtr(cmd),
		Profile:  a.profile,
		Seed:     a.seedPtr(cmd),
	})
	if err != nil {
		return err
	}

	out := a.out
	if out == "" {
		out = veiledPath(path)
	}
	if err := a.writer.Write(out, res.Channels); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "veiled %s: %d samples, strength %.2f, residual %.4f -> %s\n",
		res.Run.Sensor, res.Run.Samples, res.Run.Strength, res.Run.Residual, out)
	return nil
}

// veiledPath derives the default output name: log.xlsx -> log.veiled.xlsx.
func veiledPath(path string) string {
	if i := strings.LastIndex(path, "."); i > 0 {
		return path[:i] + ".veiled" + path[i:]
	}
	return path + ".veiled.xlsx"
}
