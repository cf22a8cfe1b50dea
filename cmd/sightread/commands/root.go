package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sightread",
		Short: "Two-staff sight-reading exercise generator",
		Long: `sightread generates random piano sight-reading exercises for a treble
and a bass staff.

Examples:
  # Four measures of 4/4 with default ranges
  sightread generate

  # A reproducible phrase in 3/4, written as YAML
  sightread generate --time 3/4 --measures 8 --phrase --seed 42 --format yaml

  # Settings from a file, with the bass staff hidden
  sightread generate -f warmup.yaml --hide-bass

  # Start from a built-in preset
  sightread generate --preset waltz-phrase --seed 7

  # Preview a treble window
  sightread window treble --center c/4 --above 4 --below 2
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newScalesCmd())
	rootCmd.AddCommand(newWindowCmd())
	rootCmd.AddCommand(newPresetsCmd())
	return rootCmd
}

// Execute runs the CLI with os.Args
func Execute() error {
	return NewRootCmd().Execute()
}
