package commands

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/sightread-api/internal/theory"
	"github.com/spf13/cobra"
)

func newWindowCmd() *cobra.Command {
	var (
		center string
		above  int
		below  int
	)

	cmd := &cobra.Command{
		Use:   "window <treble|bass>",
		Short: "Preview the pitch window a range selection resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voice, err := theory.ParseVoice(args[0])
			if err != nil {
				return err
			}
			if above < 0 || below < 0 {
				return fmt.Errorf("above and below must be non-negative")
			}

			window := theory.ResolveWindow(voice, theory.PitchName(center), above, below)
			names := make([]string, window.Len())
			for i, p := range window.Pitches() {
				names[i] = string(p)
			}

			out := cmd.OutOrStdout()
			if theory.ScaleFor(voice).IndexOf(theory.PitchName(center)) < 0 {
				fmt.Fprintf(out, "center %q is not on the %s scale, using the full scale\n", center, voice)
			}
			fmt.Fprintln(out, strings.Join(names, " "))
			return nil
		},
	}

	cmd.Flags().StringVar(&center, "center", "", "center pitch, e.g. c/4")
	cmd.Flags().IntVar(&above, "above", 0, "scale steps above the center")
	cmd.Flags().IntVar(&below, "below", 0, "scale steps below the center")
	return cmd
}
