package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"perfgen/internal/config"
	"perfgen/pkg/models"
)

// generateOptions are the dataset and output overrides accepted by the
// root and generate commands
type generateOptions struct {
	seed     int64
	output   string
	format   string
	compress bool
	start    string
	end      string
}

func addGenerateFlags(fs *pflag.FlagSet, o *generateOptions) {
	fs.Int64Var(&o.seed, "seed", config.DefaultSeed, "random seed; the same seed reproduces the same dataset, 0 picks one at random")
	fs.StringVarP(&o.output, "output", "o", "", "output file (xlsx) or directory (csv)")
	fs.StringVarP(&o.format, "format", "f", "", "output format: xlsx or csv")
	fs.BoolVar(&o.compress, "compress", false, "snappy-compress csv output")
	fs.StringVar(&o.start, "start", "", "first day of the range, YYYY-MM-DD")
	fs.StringVar(&o.end, "end", "", "last day of the range, YYYY-MM-DD")
}

// apply copies the flags that were set on the command line into cfg.
// Selecting csv without an explicit output turns the default workbook name
// into a directory name.
func (o *generateOptions) apply(fs *pflag.FlagSet, cfg *models.Config) {
	if fs.Changed("seed") {
		cfg.Seed = o.seed
	}
	if fs.Changed("start") {
		cfg.StartDate = o.start
	}
	if fs.Changed("end") {
		cfg.EndDate = o.end
	}
	if fs.Changed("format") {
		cfg.Output.Format = strings.ToLower(o.format)
	}
	if fs.Changed("compress") {
		cfg.Output.Compress = o.compress
	}
	if fs.Changed("output") {
		cfg.Output.Path = o.output
	} else if cfg.Output.Format == config.FormatCSV && cfg.Output.Path == config.DefaultOutputFile {
		cfg.Output.Path = strings.TrimSuffix(cfg.Output.Path, filepath.Ext(cfg.Output.Path))
	}
}
