package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"league-catalog-service/internal/domain/leagues"
)

// FuzzySearch ranks leagues by fuzzy match quality against the term,
// considering both name and alternate name. An empty (or all-whitespace)
// term returns the full collection in load order. Ties keep load order so
// results stay stable across calls.
func (c *Catalog) FuzzySearch(term string) []leagues.League {
	needle := strings.TrimSpace(term)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if needle == "" {
		cp := make([]leagues.League, len(c.leagues))
		copy(cp, c.leagues)
		return cp
	}

	type ranked struct {
		league leagues.League
		rank   int
		pos    int
	}

	matches := make([]ranked, 0, len(c.leagues))
	for i, l := range c.leagues {
		rank := fuzzy.RankMatchNormalizedFold(needle, l.Name)
		if l.AlternateName != "" {
			if alt := fuzzy.RankMatchNormalizedFold(needle, l.AlternateName); alt >= 0 && (rank < 0 || alt < rank) {
				rank = alt
			}
		}
		if rank < 0 {
			continue
		}
		matches = append(matches, ranked{league: l, rank: rank, pos: i})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].pos < matches[j].pos
	})

	result := make([]leagues.League, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.league)
	}
	return result
}
