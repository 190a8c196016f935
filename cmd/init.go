package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"perfgen/internal/config"
	"perfgen/internal/security"
	"perfgen/internal/ui"
	"perfgen/pkg/errors"
)

type initOptions struct {
	path  string
	force bool
}

func newInitCmd(g *globalOptions, d deps) *cobra.Command {
	opts := &initOptions{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Init walks through the generation, output and warehouse settings and
writes them to a YAML configuration file. A warehouse password, if given, is
stored in the system keyring rather than in the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, g, d, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.path, "output", "o", config.GetConfigFile(), "where to write the configuration")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing configuration file")
	return cmd
}

func runInit(cmd *cobra.Command, g *globalOptions, d deps, opts *initOptions) error {
	if config.Exists(opts.path) && !opts.force {
		return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("configuration file %s already exists", opts.path)).
			WithSuggestions("Pass --force to overwrite it", "Use --output to write somewhere else")
	}

	u := ui.NewUIWithWriter(cmd.OutOrStdout(), g.verbose, g.quiet)
	result, err := ui.NewConfigWizardWithAsker(u.Writer(), d.asker).Run(config.Default())
	if err != nil {
		return err
	}
	if !result.Save {
		u.Info("Configuration not saved")
		return nil
	}

	cfg := result.Config
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if cfg.Warehouse.Username != "" {
		if err := config.ValidateWarehouse(cfg.Warehouse); err != nil {
			return err
		}
	}

	if err := config.Save(opts.path, cfg); err != nil {
		return err
	}
	if result.Password != "" {
		if err := security.NewCredentialStore().StorePassword(cfg.Warehouse, result.Password); err != nil {
			return err
		}
		u.Info("Warehouse password stored in the system keyring")
	}

	u.Success(fmt.Sprintf("Configuration saved to %s", opts.path))
	return nil
}
