package dataset

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/quantcheck/quantcheck/internal/csvconv"
)

// ValidateSource checks a dataset's source CSV against its registry entry:
// the file exists and is non-empty, converts cleanly, matches the declared
// row count, has strictly increasing timestamps, and every fully-priced row
// satisfies high >= max(open, close) and low <= min(open, close).
//
// A failure is terminal for the dataset and does not affect others.
func (r *Registry) ValidateSource(m Metadata) error {
	path := r.SourcePath(m)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("source %s: %w", m.Source, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("source %s is empty", m.Source)
	}

	table, err := csvconv.ConvertFile(path)
	if err != nil {
		return fmt.Errorf("source %s: %w", m.Source, err)
	}
	if table.Rows != m.Rows {
		return fmt.Errorf("source %s has %d rows, registry declares %d", m.Source, table.Rows, m.Rows)
	}

	candles, err := table.Candles()
	if err != nil {
		return fmt.Errorf("source %s: %w", m.Source, err)
	}

	var prev time.Time
	for i, c := range candles {
		if i > 0 && !c.Time.After(prev) {
			return fmt.Errorf("row %d: timestamp %s not after %s", i+1, c.Time.Format(time.RFC3339), prev.Format(time.RFC3339))
		}
		prev = c.Time

		// Price sanity only when all prices are present.
		if math.IsNaN(c.Open) || math.IsNaN(c.High) || math.IsNaN(c.Low) || math.IsNaN(c.Close) {
			continue
		}
		if c.High < math.Max(c.Open, c.Close) {
			return fmt.Errorf("row %d: high %v below open/close", i+1, c.High)
		}
		if c.Low > math.Min(c.Open, c.Close) {
			return fmt.Errorf("row %d: low %v above open/close", i+1, c.Low)
		}
	}
	return nil
}
