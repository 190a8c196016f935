package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"perfgen/internal/config"
	"perfgen/internal/pipeline"
	"perfgen/internal/security"
	"perfgen/internal/sink"
	"perfgen/internal/ui"
	"perfgen/pkg/errors"
)

type loadOptions struct {
	driver    string
	host      string
	account   string
	database  string
	username  string
	batchSize int
}

func newLoadCmd(g *globalOptions) *cobra.Command {
	gen := &generateOptions{}
	opts := &loadOptions{}
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Generate the dataset and load it into a SQL warehouse",
		Long: `Load generates the same dataset as 'generate' and writes each table into a
MySQL or Snowflake database. Every table is dropped, recreated and filled
inside a single transaction.

The password is read from warehouse.password, PERFGEN_WAREHOUSE_PASSWORD or
the system keyring entry written by 'perfgen init'.`,
		Example: `  perfgen load --driver mysql --host localhost --username loader
  perfgen load --driver snowflake --account xy12345.us-east-1 --username LOADER`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, g, gen, opts)
		},
	}

	fs := cmd.Flags()
	fs.Int64Var(&gen.seed, "seed", config.DefaultSeed, "random seed")
	fs.StringVar(&gen.start, "start", "", "first day of the range, YYYY-MM-DD")
	fs.StringVar(&gen.end, "end", "", "last day of the range, YYYY-MM-DD")
	fs.StringVarP(&opts.driver, "driver", "d", "", "warehouse driver: mysql or snowflake")
	fs.StringVar(&opts.host, "host", "", "mysql host")
	fs.StringVar(&opts.account, "account", "", "snowflake account identifier")
	fs.StringVar(&opts.database, "database", "", "target database")
	fs.StringVarP(&opts.username, "username", "u", "", "warehouse user")
	fs.IntVar(&opts.batchSize, "batch-size", 0, "rows per INSERT statement")
	return cmd
}

func runLoad(cmd *cobra.Command, g *globalOptions, gen *generateOptions, opts *loadOptions) error {
	cfg, logger, err := loadConfig(cmd, g)
	if err != nil {
		return err
	}
	gen.apply(cmd.Flags(), cfg)

	fs := cmd.Flags()
	w := &cfg.Warehouse
	if fs.Changed("driver") {
		w.Driver = opts.driver
	}
	if fs.Changed("host") {
		w.Host = opts.host
	}
	if fs.Changed("account") {
		w.Account = opts.account
	}
	if fs.Changed("database") {
		w.Database = opts.database
	}
	if fs.Changed("username") {
		w.Username = opts.username
	}
	if fs.Changed("batch-size") {
		w.BatchSize = opts.batchSize
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.ValidateWarehouse(*w); err != nil {
		return err
	}

	warehouse, err := security.NewCredentialStore().ResolvePassword(*w)
	if err != nil {
		if errors.GetErrorCode(err) != errors.ErrCodeCredentialsMissing {
			return err
		}
		logger.Warn("no warehouse password found, connecting without one", "account", security.AccountKey(*w))
	}

	dialect, err := sink.DialectFor(warehouse.Driver)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	u := ui.NewUIWithWriter(cmd.OutOrStdout(), g.verbose, g.quiet)

	ds, fingerprint, err := buildDataset(ctx, cfg, u, logger)
	if err != nil {
		return err
	}

	db, err := sink.Open(ctx, warehouse)
	if err != nil {
		return err
	}

	u.Println()
	u.StartProgress(fmt.Sprintf("Loading data into %s...", warehouse.Driver))
	err = pipeline.Export(ctx, ds, sink.NewSQL(ctx, db, dialect, warehouse.BatchSize))
	u.StopProgress(err == nil, "Loaded")
	if err != nil {
		return err
	}

	summary := ds.Summarize()
	summary.Fingerprint = fingerprint
	summary.Destination = fmt.Sprintf("%s database %s", warehouse.Driver, warehouse.Database)
	summary.DestinationLabel = "Loaded into"
	if !g.quiet {
		ui.RenderSummary(u.Writer(), summary)
	}
	return nil
}
