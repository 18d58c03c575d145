package catalog

import (
	"testing"

	"league-catalog-service/internal/domain/leagues"
)

func sampleLeagues() []leagues.League {
	return []leagues.League{
		{ID: "1", Name: "English Premier League", AlternateName: "EPL", Sport: "Soccer"},
		{ID: "2", Name: "NBA", AlternateName: "", Sport: "Basketball"},
	}
}

func ids(items []leagues.League) []string {
	out := make([]string, 0, len(items))
	for _, l := range items {
		out = append(out, l.ID)
	}
	return out
}

func TestSearchMatchesAlternateNameCaseInsensitively(t *testing.T) {
	c := New()
	c.Load(sampleLeagues())
	c.SetSearchTerm("epl")

	got := c.FilteredLeagues()
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only league 1, got %v", ids(got))
	}
}

func TestSportFilterAndClear(t *testing.T) {
	c := New()
	c.Load(sampleLeagues())

	sport := "Basketball"
	c.SetSport(&sport)
	got := c.FilteredLeagues()
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected only league 2, got %v", ids(got))
	}

	c.SetSport(nil)
	got = c.FilteredLeagues()
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("expected both leagues in load order, got %v", ids(got))
	}
}

func TestFiltersComposeWithAnd(t *testing.T) {
	c := New()
	c.Load(sampleLeagues())

	sport := "Soccer"
	c.SetSport(&sport)
	c.SetSearchTerm("nba")

	if got := c.FilteredLeagues(); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
}

func TestSearchTermIsTrimmedAtFilterTime(t *testing.T) {
	c := New()
	c.Load(sampleLeagues())

	c.SetSearchTerm("   ")
	if got := c.FilteredLeagues(); len(got) != 2 {
		t.Fatalf("expected whitespace term to match everything, got %v", ids(got))
	}

	c.SetSearchTerm("  premier  ")
	got := c.FilteredLeagues()
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected league 1 for padded term, got %v", ids(got))
	}
}

func TestLeagueWithoutAlternateNameMatchesOnNameOnly(t *testing.T) {
	c := New()
	c.Load(sampleLeagues())
	c.SetSearchTerm("nb")

	got := c.FilteredLeagues()
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected league 2, got %v", ids(got))
	}
}

func TestFilteredPreservesLoadOrder(t *testing.T) {
	c := New()
	c.Load([]leagues.League{
		{ID: "a", Name: "La Liga", Sport: "Soccer"},
		{ID: "b", Name: "NBA", Sport: "Basketball"},
		{ID: "c", Name: "Serie A", Sport: "Soccer"},
		{ID: "d", Name: "Ligue 1", Sport: "Soccer"},
	})

	sport := "Soccer"
	c.SetSport(&sport)
	got := ids(c.FilteredLeagues())
	want := []string{"a", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestAvailableSportsSortedAndDeduped(t *testing.T) {
	c := New()
	c.Load([]leagues.League{
		{ID: "1", Name: "NBA", Sport: "Basketball"},
		{ID: "2", Name: "EPL", Sport: "Soccer"},
		{ID: "3", Name: "La Liga", Sport: "Soccer"},
		{ID: "4", Name: "Mystery", Sport: ""},
	})

	got := c.AvailableSports()
	if len(got) != 2 || got[0] != "Basketball" || got[1] != "Soccer" {
		t.Fatalf("expected [Basketball Soccer], got %v", got)
	}
}

func TestLoadReplacesWholesale(t *testing.T) {
	c := New()
	c.Load(sampleLeagues())
	c.Load([]leagues.League{{ID: "9", Name: "NHL", Sport: "Ice Hockey"}})

	got := c.FilteredLeagues()
	if len(got) != 1 || got[0].ID != "9" {
		t.Fatalf("expected replacement snapshot, got %v", ids(got))
	}
}

func TestLoadIsIdempotentForFixedFilters(t *testing.T) {
	c := New()
	c.SetSearchTerm("league")
	c.Load(sampleLeagues())
	first := ids(c.FilteredLeagues())

	c.Load(sampleLeagues())
	second := ids(c.FilteredLeagues())

	if len(first) != len(second) {
		t.Fatalf("expected identical results, got %v then %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical results, got %v then %v", first, second)
		}
	}
}

func TestDuplicateIDsPassThrough(t *testing.T) {
	c := New()
	c.Load([]leagues.League{
		{ID: "1", Name: "EPL", Sport: "Soccer"},
		{ID: "1", Name: "EPL", Sport: "Soccer"},
	})

	if got := c.FilteredLeagues(); len(got) != 2 {
		t.Fatalf("expected duplicates preserved, got %v", ids(got))
	}
}

func TestEmptyCatalogFiltersToEmpty(t *testing.T) {
	c := New()
	c.SetSearchTerm("anything")
	if got := c.FilteredLeagues(); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
	if got := c.AvailableSports(); len(got) != 0 {
		t.Fatalf("expected no sports, got %v", got)
	}
}

func TestLoadCopiesInput(t *testing.T) {
	input := sampleLeagues()
	c := New()
	c.Load(input)

	input[0].Name = "mutated"

	got := c.Leagues()
	if got[0].Name != "English Premier League" {
		t.Fatalf("expected catalog to be isolated from caller slice, got %q", got[0].Name)
	}
}

func TestFilteredDoesNotMutateStoredState(t *testing.T) {
	c := New()
	c.Load(sampleLeagues())

	sport := "Basketball"
	got := c.Filtered("", &sport)
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected league 2, got %v", ids(got))
	}

	// Stored filter state stays untouched.
	if got := c.FilteredLeagues(); len(got) != 2 {
		t.Fatalf("expected stored state unfiltered, got %v", ids(got))
	}
}
