package commands

import (
	"fmt"

	"github.com/Conceptual-Machines/sightread-api/internal/services"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets, err := services.BuiltinPresets()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range presets {
				cfg := p.GenerationConfig()
				fmt.Fprintf(out, "%-18s %-4s %2d bars  %-11s %s\n",
					p.Name, cfg.TimeSignature, cfg.NumMeasures, cfg.Mode(), p.Description)
			}
			return nil
		},
	}
}
