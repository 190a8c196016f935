package sink

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"

	"perfgen/internal/common"
	"perfgen/pkg/errors"
)

// CSVSink writes every table to <dir>/<name>.csv, or to <name>.csv.sz using
// the snappy framing format when compression is enabled.
type CSVSink struct {
	dir      string
	compress bool
	written  []string
	closed   bool
}

// NewCSV creates the output directory and returns a sink writing into it
func NewCSV(dir string, compress bool) (*CSVSink, error) {
	clean, err := common.CleanPath(dir)
	if err != nil {
		return nil, errors.IOError(errors.ErrCodeFileCreate, "invalid output directory", dir, err)
	}
	if err := common.EnsureDir(clean); err != nil {
		return nil, errors.IOError(errors.ErrCodeFileCreate, "failed to create output directory", clean, err)
	}
	return &CSVSink{dir: clean, compress: compress}, nil
}

// Dir returns the output directory
func (s *CSVSink) Dir() string {
	return s.dir
}

// Files returns the paths written so far, in table order
func (s *CSVSink) Files() []string {
	return s.written
}

func (s *CSVSink) WriteTable(name string, columns []string, rows [][]interface{}) error {
	if s.closed {
		return closedError(name)
	}

	path := filepath.Join(s.dir, name+".csv")
	if s.compress {
		path += ".sz"
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, common.FilePermissionNormal)
	if err != nil {
		return errors.IOError(errors.ErrCodeFileCreate, "failed to create csv file", path, err)
	}

	if err := writeCSV(f, s.compress, columns, rows); err != nil {
		f.Close()
		return errors.IOError(errors.ErrCodeFileWrite, "failed to write csv file", path, err).
			WithContext("table", name)
	}
	if err := f.Close(); err != nil {
		return errors.IOError(errors.ErrCodeFileWrite, "failed to close csv file", path, err)
	}

	s.written = append(s.written, path)
	return nil
}

func writeCSV(f io.Writer, compress bool, columns []string, rows [][]interface{}) error {
	var out io.Writer = f
	var sz *snappy.Writer
	if compress {
		sz = snappy.NewBufferedWriter(f)
		out = sz
	}

	w := csv.NewWriter(out)
	if err := w.Write(columns); err != nil {
		return err
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, v := range row {
			record[i] = formatCell(v)
		}
		if err := w.Write(record[:len(row)]); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if sz != nil {
		return sz.Close()
	}
	return nil
}

func (s *CSVSink) Close() error {
	s.closed = true
	return nil
}
