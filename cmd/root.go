package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"perfgen/internal/config"
	"perfgen/internal/observability"
	"perfgen/internal/ui"
	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	configFile string
	verbose    bool
	quiet      bool
	logLevel   string
	logFormat  string
}

// deps are the collaborators tests replace
type deps struct {
	asker ui.Asker
}

// NewRootCmd builds the perfgen command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{})
}

func newRootCmd(d deps) *cobra.Command {
	g := &globalOptions{}
	gen := &generateOptions{}

	root := &cobra.Command{
		Use:   "perfgen",
		Short: "Generate a synthetic enterprise performance dataset",
		Long: `perfgen synthesizes a star-schema dataset of enterprise performance data:
date, region, team and product dimensions with revenue, cost, SLA and risk
facts. Running perfgen with no command generates the default dataset and
writes Enterprise_Performance_Data.xlsx to the working directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, gen)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configFile, "config", "c", "", "config file (default ./perfgen.yaml or ~/.perfgen/perfgen.yaml)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&g.quiet, "quiet", "q", false, "suppress progress and summary output")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&g.logFormat, "log-format", "", "log format: text or json")

	addGenerateFlags(root.Flags(), gen)

	root.AddCommand(
		newGenerateCmd(g),
		newLoadCmd(g),
		newInitCmd(g, d),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		ui.ShowError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads the configuration and installs the logger it describes.
// Logs go to the command's error stream.
func loadConfig(cmd *cobra.Command, g *globalOptions) (*models.Config, *slog.Logger, error) {
	cfg, err := config.Load(g.configFile)
	if err != nil {
		return nil, nil, err
	}

	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Logging.Format = g.logFormat
	}
	if g.verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := observability.Setup(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, errors.ConfigError(err.Error(), "logging")
	}
	return cfg, logger, nil
}
