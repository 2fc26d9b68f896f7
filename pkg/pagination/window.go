// Package pagination provides a page-number strip for paged list views.
//
// The windowing algorithm bounds the number of visible page buttons and
// stands in ellipsis markers for omitted runs, always keeping the first
// and last page reachable with a single click.
package pagination

// Item is one slot in the rendered page strip: either a concrete page
// number or an ellipsis standing in for an omitted run.
type Item struct {
	Page     int
	Ellipsis bool
}

// DefaultMaxVisible is the default width of the page window.
const DefaultMaxVisible = 7

// Clamp returns page forced into the valid range [1, total].
func Clamp(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Window computes the visible page strip for current/total.
//
// Rules:
//   - total <= 1 renders nothing.
//   - total <= maxVisible renders every page, no ellipses.
//   - Otherwise the strip always contains page 1 and page total. Near either
//     edge the window pins to a solid run of maxVisible pages; in the middle
//     a run centered on current is shown with an ellipsis on each side where
//     the gap to the edge page exceeds one page.
func Window(current, total, maxVisible int) []Item {
	if total <= 1 {
		return nil
	}
	if maxVisible < 1 {
		maxVisible = 1
	}
	current = Clamp(current, total)

	if total <= maxVisible {
		items := make([]Item, 0, total)
		for p := 1; p <= total; p++ {
			items = append(items, Item{Page: p})
		}
		return items
	}

	half := maxVisible / 2
	var start, end int
	switch {
	case current-1 <= half:
		// Pinned to the head: solid run [1, maxVisible].
		start, end = 1, maxVisible
	case total-current <= half:
		// Pinned to the tail: solid run [total-maxVisible+1, total].
		start, end = total-maxVisible+1, total
	default:
		// Centered run. The first and last page are appended separately,
		// so the inner run is two slots narrower than the pinned runs.
		inner := maxVisible - 2
		if inner < 1 {
			inner = 1
		}
		start = current - inner/2
		end = start + inner - 1
	}
	if start < 1 {
		start = 1
	}
	if end > total {
		end = total
	}

	var items []Item
	if start > 1 {
		items = append(items, Item{Page: 1})
		if start > 2 {
			items = append(items, Item{Ellipsis: true})
		}
	}
	for p := start; p <= end; p++ {
		items = append(items, Item{Page: p})
	}
	if end < total {
		if end < total-1 {
			items = append(items, Item{Ellipsis: true})
		}
		items = append(items, Item{Page: total})
	}
	return items
}
