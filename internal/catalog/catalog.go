package catalog

import (
	"sort"
	"strings"
	"sync"

	"league-catalog-service/internal/domain/leagues"
)

// Catalog keeps a thread-safe snapshot of the league list plus the active
// filter inputs. Derived views (available sports, filtered leagues) are
// recomputed on demand rather than tracked reactively.
type Catalog struct {
	mu         sync.RWMutex
	leagues    []leagues.League
	searchTerm string
	sport      string
	sportSet   bool
}

// New constructs an empty Catalog.
func New() *Catalog {
	return &Catalog{}
}

// Load replaces the entire league collection with a new snapshot.
// The input order is preserved and duplicate ids are passed through
// untouched. Load never fails; callers supply an empty slice when the
// upstream fetch failed.
func (c *Catalog) Load(items []leagues.League) {
	cp := make([]leagues.League, len(items))
	copy(cp, items)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.leagues = cp
}

// SetSearchTerm stores the raw search term. Trimming and case folding
// happen at filter time, not at set time.
func (c *Catalog) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
}

// SetSport stores the active sport filter. A nil value clears it.
func (c *Catalog) SetSport(sport *string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sport == nil {
		c.sport = ""
		c.sportSet = false
		return
	}
	c.sport = *sport
	c.sportSet = true
}

// Len reports the number of loaded leagues, duplicates included.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.leagues)
}

// Leagues returns a copy of the full loaded collection.
func (c *Catalog) Leagues() []leagues.League {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cp := make([]leagues.League, len(c.leagues))
	copy(cp, c.leagues)
	return cp
}

// AvailableSports returns the distinct non-empty sport labels across all
// loaded leagues in ascending lexicographic order.
func (c *Catalog) AvailableSports() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{}, len(c.leagues))
	sports := make([]string, 0, len(c.leagues))
	for _, l := range c.leagues {
		if l.Sport == "" {
			continue
		}
		if _, ok := seen[l.Sport]; ok {
			continue
		}
		seen[l.Sport] = struct{}{}
		sports = append(sports, l.Sport)
	}
	sort.Strings(sports)
	return sports
}

// FilteredLeagues applies the sport filter and then the search filter and
// returns the matching leagues in their original load order. The result is
// always a subsequence of the loaded collection.
func (c *Catalog) FilteredLeagues() []leagues.League {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return filter(c.leagues, c.searchTerm, c.sport, c.sportSet)
}

// Filtered returns the leagues matching the given inputs without mutating
// the stored filter state. Used by handlers that carry filters per request.
func (c *Catalog) Filtered(term string, sport *string) []leagues.League {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if sport == nil {
		return filter(c.leagues, term, "", false)
	}
	return filter(c.leagues, term, *sport, true)
}

func filter(items []leagues.League, term, sport string, sportSet bool) []leagues.League {
	needle := strings.ToLower(strings.TrimSpace(term))

	result := make([]leagues.League, 0, len(items))
	for _, l := range items {
		if sportSet && l.Sport != sport {
			continue
		}
		if needle != "" && !matchesName(l, needle) {
			continue
		}
		result = append(result, l)
	}
	return result
}

// matchesName reports whether the lowercased needle is a substring of the
// league name or, when present, its alternate name.
func matchesName(l leagues.League, needle string) bool {
	if strings.Contains(strings.ToLower(l.Name), needle) {
		return true
	}
	if l.AlternateName == "" {
		return false
	}
	return strings.Contains(strings.ToLower(l.AlternateName), needle)
}
