package commands

import (
	"fmt"

	"github.com/Conceptual-Machines/sightread-api/internal/theory"
	"github.com/spf13/cobra"
)

func newScalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "scales [treble|bass]",
		Short:     "List the pitch table of a voice",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(theory.Treble), string(theory.Bass)},
		RunE: func(cmd *cobra.Command, args []string) error {
			voices := []theory.Voice{theory.Treble, theory.Bass}
			if len(args) == 1 {
				voice, err := theory.ParseVoice(args[0])
				if err != nil {
					return err
				}
				voices = []theory.Voice{voice}
			}

			out := cmd.OutOrStdout()
			for _, voice := range voices {
				scale := theory.ScaleFor(voice)
				fmt.Fprintf(out, "%s (%d pitches, rests at %s)\n", voice, scale.Len(), theory.RestDisplayPitch(voice))
				for _, p := range scale.Pitches() {
					midi := theory.MustMIDI(p)
					fmt.Fprintf(out, "  %-4s %3d  stem %s\n", p, midi, theory.StemForMIDI(voice, midi))
				}
			}
			return nil
		},
	}
}
