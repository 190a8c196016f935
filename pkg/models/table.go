package models

// Row is implemented by every dimension and fact row type
type Row interface {
	Values() []interface{}
}

// Table is the format-neutral form of a generated table handed to sinks.
// Rows hold values in Columns order.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]interface{}
}

// NewTable flattens typed rows into a Table
func NewTable[R Row](name string, columns []string, rows []R) Table {
	values := make([][]interface{}, len(rows))
	for i, r := range rows {
		values[i] = r.Values()
	}
	return Table{Name: name, Columns: columns, Rows: values}
}

// Len returns the number of data rows
func (t Table) Len() int {
	return len(t.Rows)
}
