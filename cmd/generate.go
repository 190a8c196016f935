package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"perfgen/internal/config"
	"perfgen/internal/pipeline"
	"perfgen/internal/sink"
	"perfgen/internal/ui"
	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

func newGenerateCmd(g *globalOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the dataset and write it to a workbook or CSV files",
		Long: `Generate runs the eight generator stages (four dimensions, four facts),
verifies referential integrity and writes every table to the configured
output: one sheet per table in an xlsx workbook, or one CSV file per table.`,
		Example: `  perfgen generate
  perfgen generate --seed 7 --start 2023-01-01 --end 2023-12-31
  perfgen generate --format csv --output exports --compress`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, opts)
		},
	}
	addGenerateFlags(cmd.Flags(), opts)
	return cmd
}

func runGenerate(cmd *cobra.Command, g *globalOptions, opts *generateOptions) error {
	cfg, logger, err := loadConfig(cmd, g)
	if err != nil {
		return err
	}
	opts.apply(cmd.Flags(), cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	ctx := cmd.Context()
	u := ui.NewUIWithWriter(cmd.OutOrStdout(), g.verbose, g.quiet)

	ds, fingerprint, err := buildDataset(ctx, cfg, u, logger)
	if err != nil {
		return err
	}

	out, err := sink.NewFile(cfg.Output)
	if err != nil {
		return err
	}

	message := "Saving data to Excel..."
	if cfg.Output.Format == config.FormatCSV {
		message = "Saving data to CSV..."
	}
	u.Println()
	u.StartProgress(message)
	err = pipeline.Export(ctx, ds, out)
	u.StopProgress(err == nil, "Saved")
	if err != nil {
		return err
	}

	summary := ds.Summarize()
	summary.Fingerprint = fingerprint
	switch s := out.(type) {
	case *sink.XLSXSink:
		summary.Destination = s.Path()
	case *sink.CSVSink:
		summary.Destination = s.Dir()
		summary.DestinationLabel = "Files saved"
	}
	if !g.quiet {
		ui.RenderSummary(u.Writer(), summary)
	}

	logger.Info("dataset written", "records", summary.Total, "destination", summary.Destination)
	return nil
}

// buildDataset runs the generator, verifies the result and fingerprints it
func buildDataset(ctx context.Context, cfg *models.Config, u *ui.UI, logger *slog.Logger) (*pipeline.Dataset, string, error) {
	u.Println("Generating Enterprise Executive Performance Data...")
	if cfg.Seed == 0 {
		u.Warning("seed 0 selects a random seed; this run cannot be reproduced")
	}

	gen := pipeline.NewGenerator(cfg, pipeline.WithReporter(u), pipeline.WithLogger(logger))
	ds, err := gen.Run(ctx)
	if err != nil {
		return nil, "", err
	}
	if err := pipeline.Verify(ds); err != nil {
		return nil, "", err
	}

	fingerprint, err := pipeline.Fingerprint(ds.Tables())
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeInternal, "failed to fingerprint dataset")
	}
	logger.Debug("dataset verified", "fingerprint", fingerprint)
	return ds, fingerprint, nil
}
