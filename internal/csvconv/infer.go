package csvconv

import (
	"strconv"
	"strings"
	"time"
)

// Null literals recognized in source CSVs (case-insensitive, after trimming).
var nullLiterals = map[string]bool{
	"":     true,
	"nan":  true,
	"null": true,
	"na":   true,
}

// Column names treated as timestamp columns when their cells are plain
// integers (unix seconds). Textual timestamps are recognized by value alone.
var timeNames = map[string]bool{
	"time":      true,
	"timestamp": true,
	"date":      true,
	"datetime":  true,
	"ts":        true,
}

// Textual timestamp layouts tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// IsNull reports whether a raw cell represents a missing value.
func IsNull(cell string) bool {
	return nullLiterals[strings.ToLower(strings.TrimSpace(cell))]
}

// InferKind determines the kind of a column from its header name and raw
// cells. Every non-null cell must fit the inferred kind; mixed int/float
// degrades to float, anything non-numeric degrades to string. A column with
// no values at all is a string column.
func InferKind(name string, cells []string) Kind {
	sawValue := false
	allInt, allFloat, allTime, allUnix := true, true, true, true

	for _, cell := range cells {
		if IsNull(cell) {
			continue
		}
		sawValue = true
		v := strings.TrimSpace(cell)

		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			allInt = false
			allUnix = false
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			allFloat = false
		}
		if _, ok := parseTextTime(v); !ok {
			allTime = false
		}
	}

	if !sawValue {
		return KindString
	}
	if allTime {
		return KindTime
	}
	if allUnix && timeNames[strings.ToLower(name)] {
		return KindTime
	}
	if allInt {
		return KindInt
	}
	if allFloat {
		return KindFloat
	}
	return KindString
}

func parseTextTime(v string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseTime parses a timestamp cell: textual layouts first, then unix
// seconds. Returns the zero time and false for anything else.
func ParseTime(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if t, ok := parseTextTime(v); ok {
		return t, true
	}
	if sec, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), true
	}
	return time.Time{}, false
}
