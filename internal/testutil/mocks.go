package testutil

import (
	"fmt"
)

// RecordedTable is one WriteTable call captured by RecordingSink
type RecordedTable struct {
	Name    string
	Columns []string
	Rows    [][]interface{}
}

// RecordingSink keeps every table it receives in memory
type RecordingSink struct {
	Tables []RecordedTable
	Closed int

	// FailOn makes WriteTable fail for the named table
	FailOn string
	// CloseErr is returned from Close
	CloseErr error
}

func (s *RecordingSink) WriteTable(name string, columns []string, rows [][]interface{}) error {
	if s.Closed > 0 {
		return fmt.Errorf("write to closed sink: %s", name)
	}
	if name == s.FailOn {
		return fmt.Errorf("disk full writing %s", name)
	}
	s.Tables = append(s.Tables, RecordedTable{Name: name, Columns: columns, Rows: rows})
	return nil
}

func (s *RecordingSink) Close() error {
	s.Closed++
	return s.CloseErr
}

// Names returns the recorded table names in write order
func (s *RecordingSink) Names() []string {
	names := make([]string, len(s.Tables))
	for i, t := range s.Tables {
		names[i] = t.Name
	}
	return names
}
