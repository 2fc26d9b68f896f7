package table

import (
	"fmt"
	"sort"
	"strings"
)

// Direction is the sort direction of the active column.
type Direction int

const (
	DirNone Direction = iota
	DirAsc
	DirDesc
)

// SortState is the table's sort position: at most one active column.
// Invariant: Dir == DirNone exactly when Key is empty.
type SortState struct {
	Key string
	Dir Direction
}

// Toggle advances the sort state for a click on the given column key.
//
// A different column always starts its own cycle at ascending. Repeated
// clicks on the active column walk the strict three-state cycle
// unsorted -> asc -> desc -> unsorted; desc never flips straight to asc.
func (s SortState) Toggle(key string) SortState {
	if s.Key != key {
		return SortState{Key: key, Dir: DirAsc}
	}
	switch s.Dir {
	case DirAsc:
		return SortState{Key: key, Dir: DirDesc}
	case DirDesc:
		return SortState{}
	default:
		return SortState{Key: key, Dir: DirAsc}
	}
}

// Sort returns a new slice of rows ordered by col in the given direction.
// The input slice is never mutated. DirNone returns the rows in their
// original order.
//
// Descending order is produced by sorting ascending and reversing the
// result, so ties appear in the reverse of their ascending relative order.
// Callers that need full control over tie ordering supply col.Compare.
func Sort[R any](rows []R, col Column[R], dir Direction) []R {
	out := make([]R, len(rows))
	copy(out, rows)
	if dir == DirNone || len(out) < 2 {
		return out
	}

	cmp := col.Compare
	if cmp == nil {
		cmp = func(a, b R) int {
			return compareValues(col.sortValue(a), col.sortValue(b))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j]) < 0
	})
	if dir == DirDesc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// compareValues is the default total order for cell values:
// missing values sort after present ones, numbers compare numerically,
// everything else compares as case-insensitive text.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	if fa, aok := toFloat(a); aok {
		if fb, bok := toFloat(b); bok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}

	sa := strings.ToLower(fmt.Sprint(a))
	sb := strings.ToLower(fmt.Sprint(b))
	return strings.Compare(sa, sb)
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
	}
	return 0, false
}

// displayValue formats a raw cell value for display.
func displayValue(v any) string {
	if v == nil {
		return missingCell
	}
	s := fmt.Sprint(v)
	if s == "" {
		return missingCell
	}
	return s
}
