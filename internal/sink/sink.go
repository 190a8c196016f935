// Package sink writes generated tables to their destination: an xlsx
// workbook, a directory of CSV files, or a SQL warehouse.
package sink

import (
	"fmt"
	"strconv"
	"time"

	"perfgen/internal/config"
	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

// Sink accepts named tables one at a time. Close releases the destination
// and must be called on every path; writes after Close fail.
type Sink interface {
	WriteTable(name string, columns []string, rows [][]interface{}) error
	Close() error
}

// NewFile opens the file sink selected by out.Format
func NewFile(out models.Output) (Sink, error) {
	switch out.Format {
	case config.FormatXLSX, "":
		return NewXLSX(out.Path)
	case config.FormatCSV:
		return NewCSV(out.Path, out.Compress)
	default:
		return nil, errors.New(errors.ErrCodeUnknownFormat, fmt.Sprintf("unknown output format %q", out.Format)).
			WithSuggestions("Use one of: xlsx, csv")
	}
}

func closedError(name string) error {
	return errors.New(errors.ErrCodeSinkClosed, "sink is closed").WithContext("table", name)
}

// formatCell renders a value as text for text-based sinks
func formatCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(models.DateLayout)
	default:
		return fmt.Sprint(x)
	}
}
