// Package config loads perfgen settings from compiled-in defaults, an
// optional YAML file and PERFGEN_* environment variables using Viper.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"perfgen/internal/common"
	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

const (
	configName = "perfgen"
	envPrefix  = "PERFGEN"
)

// GetConfigPath returns the per-user config directory
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".perfgen")
}

// GetConfigFile returns the default config file written by 'perfgen init'
func GetConfigFile() string {
	return filepath.Join(GetConfigPath(), configName+".yaml")
}

// Load builds the configuration. When path is empty, perfgen.yaml is looked up
// in the working directory and then in ~/.perfgen; a missing file is not an
// error. An explicit path must exist. Environment variables override file
// values (PERFGEN_SEED, PERFGEN_OUTPUT_PATH, PERFGEN_WAREHOUSE_HOST, ...).
// Catalogues left empty by the file fall back to the defaults.
func Load(path string) (*models.Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		cleaned, err := common.CleanPath(path)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid config file path").
				WithContext("path", path)
		}
		if _, err := os.Stat(cleaned); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigNotFound, "config file not found").
				WithContext("path", cleaned)
		}
		v.SetConfigFile(cleaned)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(GetConfigPath())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
				WithContext("path", v.ConfigFileUsed())
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg models.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
	}

	if len(cfg.Regions) == 0 {
		cfg.Regions = DefaultRegions()
	}
	if len(cfg.Departments) == 0 {
		cfg.Departments = DefaultDepartments()
	}
	if len(cfg.Products) == 0 {
		cfg.Products = DefaultProducts()
	}

	return &cfg, nil
}

// setDefaults registers every scalar key so AutomaticEnv can override it.
// Catalogue slices are filled after Unmarshal instead; mapstructure would
// merge a shorter file list into the default slice element by element.
func setDefaults(v *viper.Viper, d *models.Config) {
	v.SetDefault("seed", d.Seed)
	v.SetDefault("start_date", d.StartDate)
	v.SetDefault("end_date", d.EndDate)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("output.compress", d.Output.Compress)

	v.SetDefault("warehouse.driver", d.Warehouse.Driver)
	v.SetDefault("warehouse.host", d.Warehouse.Host)
	v.SetDefault("warehouse.port", d.Warehouse.Port)
	v.SetDefault("warehouse.account", d.Warehouse.Account)
	v.SetDefault("warehouse.username", d.Warehouse.Username)
	v.SetDefault("warehouse.password", d.Warehouse.Password)
	v.SetDefault("warehouse.database", d.Warehouse.Database)
	v.SetDefault("warehouse.schema", d.Warehouse.Schema)
	v.SetDefault("warehouse.warehouse", d.Warehouse.Warehouse)
	v.SetDefault("warehouse.role", d.Warehouse.Role)
	v.SetDefault("warehouse.batch_size", d.Warehouse.BatchSize)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Save writes cfg as YAML to path, creating the parent directory
func Save(path string, cfg *models.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), common.DirPermissionSecure); err != nil {
		return errors.IOError(errors.ErrCodeConfigPermission, "failed to create config directory", path, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, common.FilePermissionSecure); err != nil {
		return errors.IOError(errors.ErrCodeFileWrite, "failed to write config file", path, err)
	}

	return nil
}

// Exists reports whether a file exists at path
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
