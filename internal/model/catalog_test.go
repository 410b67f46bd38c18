package model

import "testing"

func TestBuildCatalog_Default(t *testing.T) {
	entries := BuildCatalog(DefaultLeagues, DefaultSeasons)
	if len(entries) != 660 {
		t.Fatalf("expected 660 entries, got %d", len(entries))
	}
	if entries[0] != (CatalogEntry{Code: "E0", Name: "English Premier League", Season: "93-94"}) {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	// league-major: the 31st entry starts the second league
	if entries[30].Code != "E1" || entries[30].Season != "93-94" {
		t.Errorf("unexpected entry 30: %+v", entries[30])
	}
	last := entries[len(entries)-1]
	if last.Code != "G1" || last.Season != "22-23" {
		t.Errorf("unexpected last entry: %+v", last)
	}
}

func TestLeagueByCode(t *testing.T) {
	l, ok := LeagueByCode("SP1")
	if !ok || l.Name != "La Liga" {
		t.Errorf("SP1: got %+v ok=%v", l, ok)
	}
	if _, ok := LeagueByCode("XX"); ok {
		t.Error("expected unknown code to be absent")
	}
}

func TestMatchValuesOrder(t *testing.T) {
	m := Match{League: "La Liga", Date: "14/08/22", HomeTeam: "TeamA", AwayTeam: "TeamB", HomeGoals: 2, AwayGoals: 1, Result: HomeWin}
	got := m.Values()
	want := []string{"La Liga", "14/08/22", "TeamA", "TeamB", "2", "1", "H"}
	cols := MatchColumns()
	if len(got) != len(cols) {
		t.Fatalf("values/columns length mismatch: %d vs %d", len(got), len(cols))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d (%s): got %q, want %q", i, cols[i], got[i], want[i])
		}
	}
}

func TestOutputColumn(t *testing.T) {
	cases := map[string]string{"FTHG": "HomeGoals", "FTAG": "AwayGoals", "FTR": "Result", "Date": "Date", "HomeTeam": "HomeTeam"}
	for in, want := range cases {
		if got := OutputColumn(in); got != want {
			t.Errorf("OutputColumn(%q) = %q, want %q", in, got, want)
		}
	}
}
