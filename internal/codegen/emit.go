package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"math"
	"strconv"
	"strings"

	"github.com/quantcheck/quantcheck/internal/dataset"
	"github.com/quantcheck/quantcheck/sampledata"
)

const header = "// Code generated by samplegen. DO NOT EDIT."

// EmitDataset renders one dataset as a Go source file declaring an exported
// *Dataset var. Null floats are emitted as math.NaN().
func EmitDataset(pkg string, m dataset.Metadata, candles []sampledata.Candle) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "%s\n//\n// Source: %s (%d rows).\n\n", header, m.Source, len(candles))
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	if hasNaN(candles) {
		b.WriteString("import (\n\t\"math\"\n\t\"time\"\n)\n\n")
	} else {
		b.WriteString("import \"time\"\n\n")
	}

	fmt.Fprintf(&b, "// %s is the %q dataset: %s %s candles.\n", m.Ident, m.Name, m.Timeframe, m.Symbol)
	fmt.Fprintf(&b, "var %s = &Dataset{\n", m.Ident)
	b.WriteString("\tMeta: Meta{\n")
	fmt.Fprintf(&b, "\t\tName:        %q,\n", m.Name)
	fmt.Fprintf(&b, "\t\tSymbol:      %q,\n", m.Symbol)
	fmt.Fprintf(&b, "\t\tTimeframe:   %q,\n", m.Timeframe)
	fmt.Fprintf(&b, "\t\tRows:        %d,\n", len(candles))
	fmt.Fprintf(&b, "\t\tLicense:     %q,\n", m.License)
	fmt.Fprintf(&b, "\t\tDescription: %q,\n", m.Description)
	b.WriteString("\t},\n")
	b.WriteString("\tCandles: []Candle{\n")
	for _, c := range candles {
		fmt.Fprintf(&b, "\t\t{Time: time.Unix(%d, 0).UTC(), Open: %s, High: %s, Low: %s, Close: %s, Volume: %s},\n",
			c.Time.Unix(), lit(c.Open), lit(c.High), lit(c.Low), lit(c.Close), lit(c.Volume))
	}
	b.WriteString("\t},\n}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source for %s: %w", m.Name, err)
	}
	return src, nil
}

// EmitRegistry renders the datasets_gen.go lookup map. Entries are emitted
// in the order given (registry order).
func EmitRegistry(pkg string, metas []dataset.Metadata) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "%s\n\n", header)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("var datasets = map[string]*Dataset{\n")
	for _, m := range metas {
		fmt.Fprintf(&b, "\t%q: %s,\n", m.Name, m.Ident)
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated registry: %w", err)
	}
	return src, nil
}

// FileName returns the generated file name for a dataset name:
// "btc-daily" -> "btc_daily.go".
func FileName(name string) string {
	return strings.ReplaceAll(name, "-", "_") + ".go"
}

func hasNaN(candles []sampledata.Candle) bool {
	for _, c := range candles {
		if !c.Complete() {
			return true
		}
	}
	return false
}

// lit renders a float64 as a Go literal; NaN renders as math.NaN().
func lit(v float64) string {
	if math.IsNaN(v) {
		return "math.NaN()"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
