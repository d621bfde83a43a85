package csvconv

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// Kind is the inferred type of a column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindTime
)

// String returns the lowercase kind name used in logs and errors.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	default:
		return "string"
	}
}

// Raw holds CSV records before type inference.
type Raw struct {
	Header  []string
	Records [][]string
}

// Column is a typed column. Only the slice matching Kind is populated;
// Valid marks which rows hold a value (false = null).
type Column struct {
	Name    string
	Kind    Kind
	Times   []time.Time
	Ints    []int64
	Floats  []float64
	Strings []string
	Valid   []bool
}

// Float64At returns the value at row i as a float64. The second return is
// false when the cell is null or the column is not numeric. Int columns are
// widened to float64.
func (c *Column) Float64At(i int) (float64, bool) {
	if !c.Valid[i] {
		return math.NaN(), false
	}
	switch c.Kind {
	case KindFloat:
		return c.Floats[i], true
	case KindInt:
		return float64(c.Ints[i]), true
	default:
		return math.NaN(), false
	}
}

// Table is a fully converted CSV file: ordered typed columns of equal length.
type Table struct {
	Columns []Column
	Rows    int
}

// Column returns the column with the given name (case-insensitive),
// or nil if the table has no such column.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if strings.EqualFold(t.Columns[i].Name, name) {
			return &t.Columns[i]
		}
	}
	return nil
}

// Read parses CSV from r into a Raw table. The first record is the header;
// all records must have the same number of fields.
func Read(r io.Reader) (*Raw, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}
	if len(records) == 1 {
		return nil, fmt.Errorf("csv has a header but no data rows")
	}

	return &Raw{Header: records[0], Records: records[1:]}, nil
}
