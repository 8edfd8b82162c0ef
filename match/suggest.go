package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to n names close to what the user typed, nearest
// first. Names further than a third of the query length (at least 2
// edits) are not offered.
func Suggest(typed string, names []string, n int) []string {
	typed = strings.ToLower(strings.TrimSpace(typed))
	if typed == "" || n <= 0 {
		return nil
	}
	limit := len(typed) / 3
	if limit < 2 {
		limit = 2
	}

	type candidate struct {
		name string
		dist int
	}
	var cands []candidate
	seen := map[string]bool{}
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if d := levenshtein.ComputeDistance(typed, strings.ToLower(name)); d <= limit {
			cands = append(cands, candidate{name, d})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	if len(cands) > n {
		cands = cands[:n]
	}
	res := make([]string, len(cands))
	for i, c := range cands {
		res[i] = c.name
	}
	return res
}
