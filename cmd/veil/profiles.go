package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newProfilesCmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List profiles with their resolved per-sensor strengths",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProfiles(cmd)
		},
	}
}

func (a *cliApp) runProfiles(cmd *cobra.Command) error {
	sensors := a.service.Sensors()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	header := "PROFILE"
	for _, name := range sensors {
		header += "\t" + name
	}
	fmt.Fprintln(w, header)

	for _, profile := range a.service.Profiles() {
		row := profile
		for _, sensorName := range sensors {
			strength, err := a.service.ProfileStrength(profile, sensorName)
			if err != nil {
				return err
			}
			row += fmt.Sprintf("\t%.2f", strength)
		}
		fmt.Fprintln(w, row)
	}
	return w.Flush()
}
