package monitor

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

// rosterSource adapts player rows to the fuzzy matcher. Matches run
// against "name team position" so a query can narrow by any of them.
type rosterSource []playerRow

func (s rosterSource) String(i int) string {
	r := s[i]
	return fmt.Sprintf("%s %s %s", r.Name, r.TeamName, r.Position)
}

func (s rosterSource) Len() int { return len(s) }

// filterRoster returns the rows matching query ranked best-first, or all
// rows unchanged for an empty query.
func filterRoster(rows []playerRow, query string) []playerRow {
	if query == "" {
		return rows
	}

	matches := fuzzy.FindFrom(query, rosterSource(rows))
	filtered := make([]playerRow, len(matches))
	for i, m := range matches {
		filtered[i] = rows[m.Index]
	}
	return filtered
}
