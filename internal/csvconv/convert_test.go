package csvconv

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestInferKind(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cells  []string
		want   Kind
	}{
		{"all ints", "volume", []string{"1", "2", "30"}, KindInt},
		{"all floats", "close", []string{"1.5", "2", "30.25"}, KindFloat},
		{"mixed numeric degrades to float", "open", []string{"1", "2.5"}, KindFloat},
		{"non-numeric degrades to string", "note", []string{"1", "two"}, KindString},
		{"rfc3339 is time", "whatever", []string{"2024-01-01T00:00:00Z"}, KindTime},
		{"date only is time", "d", []string{"2024-01-01", "2024-01-02"}, KindTime},
		{"unix seconds need a time-like name", "timestamp", []string{"1706745600"}, KindTime},
		{"unix seconds in a plain column stay int", "count", []string{"1706745600"}, KindInt},
		{"nulls are ignored for inference", "close", []string{"", "1.5", "NaN"}, KindFloat},
		{"all null is string", "empty", []string{"", "null", "na"}, KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferKind(tt.header, tt.cells); got != tt.want {
				t.Errorf("InferKind(%q, %v) = %s, want %s", tt.header, tt.cells, got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	csv := `date,open,high,low,close,volume
2024-01-01T00:00:00Z,10,12,9,11,100.5
2024-01-02T00:00:00Z,11,13,10,12,
2024-01-03T00:00:00Z,12,14,11,13,NaN
`
	table, err := convertReader(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	if table.Rows != 3 {
		t.Fatalf("Rows = %d, want 3", table.Rows)
	}

	date := table.Column("date")
	if date == nil || date.Kind != KindTime {
		t.Fatalf("date column kind = %v, want time", date)
	}
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if !date.Times[1].Equal(want) {
		t.Errorf("date[1] = %v, want %v", date.Times[1], want)
	}

	open := table.Column("open")
	if open.Kind != KindInt {
		t.Errorf("open kind = %s, want int", open.Kind)
	}
	if v, ok := open.Float64At(0); !ok || v != 10 {
		t.Errorf("open[0] = %v, %v; want 10, true", v, ok)
	}

	vol := table.Column("volume")
	if vol.Kind != KindFloat {
		t.Errorf("volume kind = %s, want float", vol.Kind)
	}
	if vol.Valid[1] || vol.Valid[2] {
		t.Errorf("volume nulls not tracked: valid = %v", vol.Valid)
	}
	if v, ok := vol.Float64At(1); ok || !math.IsNaN(v) {
		t.Errorf("null volume Float64At = %v, %v; want NaN, false", v, ok)
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{"empty", "", "empty"},
		{"header only", "a,b,c\n", "no data rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := convertReader(strings.NewReader(tt.csv))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestCandles(t *testing.T) {
	csv := `Timestamp,Open,High,Low,Close,Volume
1706745600,10,12,9,11,100.5
1706749200,11,13,10,12,
`
	table, err := convertReader(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	candles, err := table.Candles()
	if err != nil {
		t.Fatalf("Candles failed: %v", err)
	}
	if len(candles) != 2 {
		t.Fatalf("got %d candles, want 2", len(candles))
	}

	if got := candles[0].Time.Unix(); got != 1706745600 {
		t.Errorf("candles[0].Time = %d, want 1706745600", got)
	}
	if candles[0].Close != 11 {
		t.Errorf("candles[0].Close = %v, want 11", candles[0].Close)
	}
	if !math.IsNaN(candles[1].Volume) {
		t.Errorf("candles[1].Volume = %v, want NaN", candles[1].Volume)
	}
	if candles[1].Complete() {
		t.Error("candles[1].Complete() = true, want false")
	}
}

func TestCandlesMissingColumn(t *testing.T) {
	csv := `date,open,high,low
2024-01-01,1,2,0.5
`
	table, err := convertReader(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if _, err := table.Candles(); err == nil || !strings.Contains(err.Error(), `"close"`) {
		t.Errorf("Candles error = %v, want missing close column", err)
	}
}
