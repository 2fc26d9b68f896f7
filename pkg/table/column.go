// Package table provides a generic sortable table component for list views.
//
// A table is defined by column descriptors over an opaque row type. Sorting
// is a strict three-state cycle per column (unsorted, ascending, descending)
// and always derives a new row view; caller-owned data is never reordered
// in place.
package table

// Align positions cell content within its column.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column describes one table column over rows of type R.
//
// Render produces the display text for a cell. Value produces the raw value
// used for sorting; when absent, the Render output is used instead. A column
// participates in sorting only when Sortable is set. Compare, when present,
// has full authority over ordering, including ties.
type Column[R any] struct {
	Key      string
	Label    string
	Render   func(R) string
	Value    func(R) any
	Sortable bool
	Compare  func(a, b R) int
	Align    Align
	Width    int // fixed width hint; 0 means size to content
}

// cellText returns the display text for a cell, using the em-dash sentinel
// for missing values.
func (c Column[R]) cellText(row R) string {
	if c.Render != nil {
		if s := c.Render(row); s != "" {
			return s
		}
		return missingCell
	}
	if c.Value != nil {
		return displayValue(c.Value(row))
	}
	return missingCell
}

// sortValue returns the value a default comparison sorts this cell by.
// Returns nil when the column has no accessor at all.
func (c Column[R]) sortValue(row R) any {
	if c.Value != nil {
		return c.Value(row)
	}
	if c.Render != nil {
		return c.Render(row)
	}
	return nil
}

const missingCell = "—"
