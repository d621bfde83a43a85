package csvconv

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/quantcheck/quantcheck/sampledata"
)

// Convert runs type inference over raw records and coerces every cell,
// producing a typed Table.
func Convert(raw *Raw) (*Table, error) {
	for i, rec := range raw.Records {
		if len(rec) != len(raw.Header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i+1, len(rec), len(raw.Header))
		}
	}

	rows := len(raw.Records)
	t := &Table{Rows: rows, Columns: make([]Column, len(raw.Header))}

	for ci, name := range raw.Header {
		cells := make([]string, rows)
		for ri, rec := range raw.Records {
			cells[ri] = rec[ci]
		}

		col := Column{
			Name:  strings.TrimSpace(name),
			Kind:  InferKind(strings.TrimSpace(name), cells),
			Valid: make([]bool, rows),
		}
		if err := coerce(&col, cells); err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}
		t.Columns[ci] = col
	}

	return t, nil
}

// ConvertFile reads and converts a CSV file.
func ConvertFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source csv: %w", err)
	}
	defer f.Close()
	return convertReader(f)
}

func convertReader(r io.Reader) (*Table, error) {
	raw, err := Read(r)
	if err != nil {
		return nil, err
	}
	return Convert(raw)
}

func coerce(col *Column, cells []string) error {
	switch col.Kind {
	case KindTime:
		col.Times = make([]time.Time, len(cells))
	case KindInt:
		col.Ints = make([]int64, len(cells))
	case KindFloat:
		col.Floats = make([]float64, len(cells))
	default:
		col.Strings = make([]string, len(cells))
	}

	for i, cell := range cells {
		if IsNull(cell) {
			if col.Kind == KindFloat {
				col.Floats[i] = math.NaN()
			}
			continue
		}
		v := strings.TrimSpace(cell)
		col.Valid[i] = true

		switch col.Kind {
		case KindTime:
			ts, ok := ParseTime(v)
			if !ok {
				return fmt.Errorf("row %d: %q is not a timestamp", i+1, v)
			}
			col.Times[i] = ts
		case KindInt:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("row %d: %q is not an int", i+1, v)
			}
			col.Ints[i] = n
		case KindFloat:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("row %d: %q is not a float", i+1, v)
			}
			col.Floats[i] = f
		default:
			col.Strings[i] = v
		}
	}
	return nil
}

// Canonical OHLCV column names, first match wins.
var (
	timeCandidates   = []string{"time", "timestamp", "date", "datetime", "ts"}
	volumeCandidates = []string{"volume", "vol"}
)

// Candles maps a canonically-shaped table (timestamp plus open/high/low/
// close, optional volume) to candles. Missing numeric cells become NaN;
// a missing timestamp is an error.
func (t *Table) Candles() ([]sampledata.Candle, error) {
	timeCol := t.firstColumn(timeCandidates)
	if timeCol == nil || timeCol.Kind != KindTime {
		return nil, fmt.Errorf("no timestamp column (want one of %s)", strings.Join(timeCandidates, ", "))
	}

	priceCols := make(map[string]*Column, 4)
	for _, name := range []string{"open", "high", "low", "close"} {
		col := t.Column(name)
		if col == nil {
			return nil, fmt.Errorf("missing required column %q", name)
		}
		if col.Kind != KindInt && col.Kind != KindFloat {
			return nil, fmt.Errorf("column %q is %s, want numeric", name, col.Kind)
		}
		priceCols[name] = col
	}
	volCol := t.firstColumn(volumeCandidates)

	candles := make([]sampledata.Candle, t.Rows)
	for i := 0; i < t.Rows; i++ {
		if !timeCol.Valid[i] {
			return nil, fmt.Errorf("row %d: missing timestamp", i+1)
		}
		c := sampledata.Candle{Time: timeCol.Times[i], Volume: math.NaN()}
		c.Open, _ = priceCols["open"].Float64At(i)
		c.High, _ = priceCols["high"].Float64At(i)
		c.Low, _ = priceCols["low"].Float64At(i)
		c.Close, _ = priceCols["close"].Float64At(i)
		if volCol != nil {
			if v, ok := volCol.Float64At(i); ok {
				c.Volume = v
			}
		}
		candles[i] = c
	}
	return candles, nil
}

func (t *Table) firstColumn(candidates []string) *Column {
	for _, name := range candidates {
		if col := t.Column(name); col != nil {
			return col
		}
	}
	return nil
}
