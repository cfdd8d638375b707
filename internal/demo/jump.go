package demo

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// closestTab resolves a typed name to the tab with the smallest edit
// distance. Prefix matches win outright. Names further than half their
// length away match nothing.
func closestTab(query string) (Tab, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", false
	}
	var (
		best     Tab
		bestDist = -1
	)
	for _, t := range allTabs {
		name := string(t)
		if strings.HasPrefix(name, query) {
			return t, true
		}
		dist := levenshtein.ComputeDistance(query, name)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = t, dist
		}
	}
	if float64(bestDist)/float64(max(len(query), len(best))) > 0.5 {
		return "", false
	}
	return best, true
}
