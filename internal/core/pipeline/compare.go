package pipeline

import (
	"fmt"
	"reflect"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/colonyops/gridcore/internal/core/grid"
)

// collator backs the string fallback comparison. The engine is
// single-threaded, so sharing one collator is safe.
var collator = collate.New(language.Und)

// compareValues orders two raw cell values: numerically when both are
// numeric, chronologically when both carry or parse as dates, otherwise by
// locale-aware string comparison.
func compareValues(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if at, aok := toTime(a); aok {
		if bt, bok := toTime(b); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	return collator.CompareString(stringify(a), stringify(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// dateLayouts are the string shapes accepted as chronological values.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// sameInputs reports whether two input sets are referentially identical:
// same slice headers for rows and columns, equal scalar states, and deeply
// equal filter/group maps.
func sameInputs[T any](a, b Inputs[T]) bool {
	if !sameSlice(a.Rows, b.Rows) {
		return false
	}
	if !sameSlice(a.Columns, b.Columns) {
		return false
	}
	if a.Sort != b.Sort || a.Page != b.Page {
		return false
	}
	return reflect.DeepEqual(a.Filters, b.Filters) && reflect.DeepEqual(a.Group, b.Group)
}

func sameSlice[E any](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// CellTextOf is a convenience lookup used by callers that need the rendered
// text of a row's field in display terms (filter option harvesting, group
// labels).
func CellTextOf[T any](cols []grid.Column[T], key string, row T) (string, bool) {
	col := columnByKey(cols, key)
	if col == nil {
		return "", false
	}
	return grid.CellText(*col, row), true
}
