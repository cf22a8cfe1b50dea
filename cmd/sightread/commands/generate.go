package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Conceptual-Machines/sightread-api/internal/config"
	"github.com/Conceptual-Machines/sightread-api/internal/generator"
	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/internal/render"
	"github.com/Conceptual-Machines/sightread-api/internal/services"
	"github.com/Conceptual-Machines/sightread-api/internal/theory"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	preset     string
	inputFile  string
	outputFile string
	format     string
	seed       int64

	timeSignature string
	measures      int
	trebleCenter  string
	trebleAbove   int
	trebleBelow   int
	bassCenter    string
	bassAbove     int
	bassBelow     int
	phrase        bool
	independent   bool
	hideTreble    bool
	hideBass      bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sight-reading exercise",
		Long: `Generate a two-staff exercise and print it as text, JSON or YAML.

Settings start from the defaults or a built-in preset (--preset), are
overlaid by the settings file (-f) and finally by any flags given on the
command line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := opts.generationConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}

			format, err := render.ParseFormat(opts.format)
			if err != nil {
				return err
			}

			seed := opts.seed
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			out, err := openOutput(cmd, opts.outputFile)
			if err != nil {
				return err
			}
			defer closeOutput(out, &err)

			sink, err := render.NewSink(format, out, seed)
			if err != nil {
				return err
			}
			_, err = generator.Run(generator.StaticConfig(cfg), sink, generator.NewSource(seed))
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.preset, "preset", "p", "", "start from a built-in preset (see 'sightread presets')")
	f.StringVarP(&opts.inputFile, "file", "f", "", "settings file (YAML or JSON)")
	f.StringVarP(&opts.outputFile, "output", "o", "", "output file (default: stdout)")
	f.StringVar(&opts.format, "format", "text", "output format: text, json or yaml")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (default: time based)")
	f.StringVar(&opts.timeSignature, "time", "", "time signature, e.g. 3/4")
	f.IntVarP(&opts.measures, "measures", "n", 0, "number of measures")
	f.StringVar(&opts.trebleCenter, "treble-center", "", "treble window center, e.g. c/4")
	f.IntVar(&opts.trebleAbove, "treble-above", 0, "treble scale steps above the center")
	f.IntVar(&opts.trebleBelow, "treble-below", 0, "treble scale steps below the center")
	f.StringVar(&opts.bassCenter, "bass-center", "", "bass window center, e.g. c/3")
	f.IntVar(&opts.bassAbove, "bass-above", 0, "bass scale steps above the center")
	f.IntVar(&opts.bassBelow, "bass-below", 0, "bass scale steps below the center")
	f.BoolVar(&opts.phrase, "phrase", false, "phrase-coherent mode (melody over root/fifth bass)")
	f.BoolVar(&opts.independent, "independent", false, "fully independent rhythms per voice")
	f.BoolVar(&opts.hideTreble, "hide-treble", false, "hide the treble staff")
	f.BoolVar(&opts.hideBass, "hide-bass", false, "hide the bass staff")

	return cmd
}

// generationConfig layers defaults, the settings file and changed flags
func (o *generateOptions) generationConfig(cmd *cobra.Command) (models.GenerationConfig, error) {
	cfg := config.Load().DefaultGenerationConfig()

	if o.preset != "" {
		store, err := services.NewBuiltinPresetStore()
		if err != nil {
			return cfg, err
		}
		preset, err := store.Get(o.preset)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s", err, o.preset)
		}
		cfg = preset.GenerationConfig()
	}

	if o.inputFile != "" {
		if err := loadRequest(o.inputFile, &cfg); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("time") {
		cfg.TimeSignature = o.timeSignature
	}
	if flags.Changed("measures") {
		cfg.NumMeasures = o.measures
	}
	if flags.Changed("treble-center") {
		cfg.Treble.Center = theory.PitchName(o.trebleCenter)
	}
	if flags.Changed("treble-above") {
		cfg.Treble.Above = o.trebleAbove
	}
	if flags.Changed("treble-below") {
		cfg.Treble.Below = o.trebleBelow
	}
	if flags.Changed("bass-center") {
		cfg.Bass.Center = theory.PitchName(o.bassCenter)
	}
	if flags.Changed("bass-above") {
		cfg.Bass.Above = o.bassAbove
	}
	if flags.Changed("bass-below") {
		cfg.Bass.Below = o.bassBelow
	}
	if flags.Changed("phrase") {
		cfg.PhraseCoherent = o.phrase
	}
	if flags.Changed("independent") {
		cfg.FullyIndependent = o.independent
	}
	if flags.Changed("hide-treble") {
		cfg.ShowTreble = !o.hideTreble
	}
	if flags.Changed("hide-bass") {
		cfg.ShowBass = !o.hideBass
	}
	return cfg, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// closeOutput closes out and reports its error unless *err is already set
func closeOutput(out io.Closer, err *error) {
	if cerr := out.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close output: %w", cerr)
	}
}
