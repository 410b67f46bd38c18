package analyze

import (
	"sort"

	"github.com/gyeh/footstats/internal/model"
)

// DefaultTopN is the number of teams kept in each ranking.
const DefaultTopN = 10

// ResultShare is one slice of the result distribution.
type ResultShare struct {
	Code       model.Result `json:"code"`
	Label      string       `json:"label"`
	Count      int          `json:"count"`
	Proportion float64      `json:"proportion"`
}

// LeagueGoals holds the mean goals per match for one league.
type LeagueGoals struct {
	League       string  `json:"league"`
	Matches      int     `json:"matches"`
	AvgHomeGoals float64 `json:"avg_home_goals"`
	AvgAwayGoals float64 `json:"avg_away_goals"`
}

// TeamCount is a team's tally in one ranking.
type TeamCount struct {
	Team  string `json:"team"`
	Count int    `json:"count"`
}

var resultLabels = []struct {
	code  model.Result
	label string
}{
	{model.HomeWin, "Home Wins"},
	{model.AwayWin, "Away Wins"},
	{model.Draw, "Draws"},
}

// ResultDistribution counts rows per result code. Proportions are relative
// to the sum of the three counts, so unknown codes are left out.
func ResultDistribution(matches []model.Match) []ResultShare {
	counts := make(map[model.Result]int, 3)
	for i := range matches {
		counts[matches[i].Result]++
	}

	total := 0
	for _, rl := range resultLabels {
		total += counts[rl.code]
	}

	shares := make([]ResultShare, 0, len(resultLabels))
	for _, rl := range resultLabels {
		s := ResultShare{Code: rl.code, Label: rl.label, Count: counts[rl.code]}
		if total > 0 {
			s.Proportion = float64(s.Count) / float64(total)
		}
		shares = append(shares, s)
	}
	return shares
}

// AverageGoalsByLeague returns mean home and away goals per league, sorted
// by league name.
func AverageGoalsByLeague(matches []model.Match) []LeagueGoals {
	type acc struct{ n, home, away int }
	byLeague := make(map[string]*acc)
	for i := range matches {
		m := &matches[i]
		a, ok := byLeague[m.League]
		if !ok {
			a = &acc{}
			byLeague[m.League] = a
		}
		a.n++
		a.home += m.HomeGoals
		a.away += m.AwayGoals
	}

	out := make([]LeagueGoals, 0, len(byLeague))
	for league, a := range byLeague {
		out = append(out, LeagueGoals{
			League:       league,
			Matches:      a.n,
			AvgHomeGoals: float64(a.home) / float64(a.n),
			AvgAwayGoals: float64(a.away) / float64(a.n),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].League < out[j].League })
	return out
}

// WinCounts tallies home wins by HomeTeam plus away wins by AwayTeam.
func WinCounts(matches []model.Match) map[string]int {
	return tally(matches, model.HomeWin, model.AwayWin)
}

// DrawCounts tallies draws under both the home and the away team.
func DrawCounts(matches []model.Match) map[string]int {
	return tally(matches, model.Draw, model.Draw)
}

// LossCounts tallies home losses (result A) by HomeTeam plus away losses
// (result H) by AwayTeam.
func LossCounts(matches []model.Match) map[string]int {
	return tally(matches, model.AwayWin, model.HomeWin)
}

// tally counts HomeTeam on rows with result homeOn and AwayTeam on rows
// with result awayOn. Teams that never match are absent.
func tally(matches []model.Match, homeOn, awayOn model.Result) map[string]int {
	counts := make(map[string]int)
	for i := range matches {
		m := &matches[i]
		if m.Result == homeOn {
			counts[m.HomeTeam]++
		}
		if m.Result == awayOn {
			counts[m.AwayTeam]++
		}
	}
	return counts
}

// Top returns the n largest tallies, count descending, ties broken by team
// name ascending.
func Top(counts map[string]int, n int) []TeamCount {
	out := make([]TeamCount, 0, len(counts))
	for team, c := range counts {
		out = append(out, TeamCount{Team: team, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Team < out[j].Team
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopWins ranks teams by wins.
func TopWins(matches []model.Match, n int) []TeamCount {
	return Top(WinCounts(matches), n)
}

// TopDraws ranks teams by draws.
func TopDraws(matches []model.Match, n int) []TeamCount {
	return Top(DrawCounts(matches), n)
}

// TopLosses ranks teams by losses.
func TopLosses(matches []model.Match, n int) []TeamCount {
	return Top(LossCounts(matches), n)
}

// Report bundles the five views over one dataset.
type Report struct {
	Matches   int           `json:"matches"`
	Results   []ResultShare `json:"result_distribution"`
	Goals     []LeagueGoals `json:"average_goals_by_league"`
	TopWins   []TeamCount   `json:"top_wins"`
	TopDraws  []TeamCount   `json:"top_draws"`
	TopLosses []TeamCount   `json:"top_losses"`
}

// Analyze computes every view. Each view reads the dataset independently.
func Analyze(matches []model.Match, topN int) *Report {
	return &Report{
		Matches:   len(matches),
		Results:   ResultDistribution(matches),
		Goals:     AverageGoalsByLeague(matches),
		TopWins:   TopWins(matches, topN),
		TopDraws:  TopDraws(matches, topN),
		TopLosses: TopLosses(matches, topN),
	}
}
