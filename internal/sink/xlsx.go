package sink

import (
	"time"

	"github.com/xuri/excelize/v2"

	"perfgen/internal/common"
	"perfgen/pkg/errors"
)

// dateNumFmt is the built-in "m/d/yy" number format
const dateNumFmt = 14

// XLSXSink writes each table to its own worksheet: a header row followed by
// the data rows, without an index column. The workbook is only saved by
// Close, and only when every write succeeded.
type XLSXSink struct {
	path      string
	file      *excelize.File
	dateStyle int
	sheets    int
	failed    bool
	closed    bool
}

// NewXLSX prepares a workbook that will be saved to path
func NewXLSX(path string) (*XLSXSink, error) {
	clean, err := common.CleanPath(path)
	if err != nil {
		return nil, errors.IOError(errors.ErrCodeFileCreate, "invalid output path", path, err)
	}

	f := excelize.NewFile()
	style, err := f.NewStyle(&excelize.Style{NumFmt: dateNumFmt})
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create date style")
	}

	return &XLSXSink{path: clean, file: f, dateStyle: style}, nil
}

// Path returns the file the workbook is saved to
func (s *XLSXSink) Path() string {
	return s.path
}

func (s *XLSXSink) WriteTable(name string, columns []string, rows [][]interface{}) error {
	if s.closed {
		return closedError(name)
	}
	if err := s.writeSheet(name, columns, rows); err != nil {
		s.failed = true
		return errors.IOError(errors.ErrCodeFileWrite, "failed to write sheet "+name, s.path, err).
			WithContext("table", name)
	}
	return nil
}

func (s *XLSXSink) writeSheet(name string, columns []string, rows [][]interface{}) error {
	// A new workbook starts with one default sheet; reuse it for the first table.
	if s.sheets == 0 {
		if err := s.file.SetSheetName("Sheet1", name); err != nil {
			return err
		}
	} else if _, err := s.file.NewSheet(name); err != nil {
		return err
	}
	s.sheets++

	sw, err := s.file.NewStreamWriter(name)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			if t, ok := v.(time.Time); ok {
				values[j] = excelize.Cell{StyleID: s.dateStyle, Value: t}
				continue
			}
			values[j] = v
		}
		if err := sw.SetRow(cell, values); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// Close saves the workbook if every table was written and releases it
func (s *XLSXSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var saveErr error
	if !s.failed && s.sheets > 0 {
		if err := common.EnsureParentDir(s.path); err != nil {
			saveErr = errors.IOError(errors.ErrCodeFileCreate, "failed to create output directory", s.path, err)
		} else if err := s.file.SaveAs(s.path); err != nil {
			saveErr = errors.IOError(errors.ErrCodeFileWrite, "failed to save workbook", s.path, err).
				WithSuggestions("Close the workbook if it is open in another program")
		}
	}

	if err := s.file.Close(); err != nil && saveErr == nil {
		saveErr = errors.IOError(errors.ErrCodeFileWrite, "failed to release workbook", s.path, err)
	}
	return saveErr
}
