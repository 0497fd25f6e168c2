package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"almanac-resolver/internal/almanac"
	"almanac-resolver/internal/config"
	"almanac-resolver/internal/logging"
	"almanac-resolver/internal/pipeline"
	"almanac-resolver/internal/rangemap"
)

// rootOptions holds persistent flags and the configuration they resolve to.
type rootOptions struct {
	verbosity  int
	configPath string
	workers    int
	overlap    string
	logToFile  bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "almanac",
		Short: "Resolve identifiers through chained category maps",
		Long: `almanac reads a seed almanac (text, YAML or TOML), chains its map sections
by category and resolves seeds to their final category, e.g. seed -> location.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd); err != nil {
				return err
			}

			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default is "+config.DefaultPath()+")")
	flags.IntVar(&opts.workers, "workers", 1, "concurrent workers for minimum queries")
	flags.StringVar(&opts.overlap, "overlap", "", `overlapping rules: "reject" or "first-match"`)
	flags.BoolVar(&opts.logToFile, "log", false, "also write logs to "+logging.DefaultLogPath())

	cmd.AddCommand(
		newLowestCmd(opts),
		newResolveCmd(opts),
		newCheckCmd(opts),
		newConvertCmd(opts),
		newDumpCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// load merges configuration with the flags the user actually set and
// initializes logging.
func (o *rootOptions) load(cmd *cobra.Command) error {
	overrides := map[string]any{}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		overrides["log.verbosity"] = o.verbosity
	}

	if flags.Changed("workers") {
		overrides["engine.workers"] = o.workers
	}

	if flags.Changed("overlap") {
		overrides["engine.overlap"] = o.overlap
	}

	cfg, err := config.Load(config.LoadOptions{Path: o.configPath, Overrides: overrides})
	if err != nil {
		return err
	}

	if o.logToFile && cfg.Log.File == "" {
		cfg.Log.File = logging.DefaultLogPath()
	}

	logging.SetupLogger(logging.Options{
		Verbosity: cfg.Log.Verbosity,
		File:      cfg.Log.File,
		Out:       cmd.ErrOrStderr(),
	})

	o.cfg = cfg

	return nil
}

func (o *rootOptions) policy() rangemap.OverlapPolicy {
	// Validated by config.Load.
	p, _ := o.cfg.OverlapPolicy()
	return p
}

// build loads an almanac and builds the pipeline between from and to.
func (o *rootOptions) build(path, from, to string) (*almanac.File, *pipeline.Pipeline, error) {
	logger := logging.GetLogger("cli")
	done := logging.LogOperationStart(logger, "build "+path)
	defer done()

	f, err := almanac.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	p, err := almanac.Build(f, almanac.BuildOptions{From: from, To: to, Policy: o.policy()})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Info().
		Str("file", path).
		Str("source", p.Source()).
		Str("target", p.Target()).
		Int("stages", len(p.Stages())).
		Msg("Pipeline ready")

	return f, p, nil
}
