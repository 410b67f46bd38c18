package model

import "strconv"

// Result is the full-time result code from the feed.
type Result string

const (
	HomeWin Result = "H"
	AwayWin Result = "A"
	Draw    Result = "D"
)

// Match is a cleaned match record: every field present, goals parsed.
type Match struct {
	League    string
	Date      string
	HomeTeam  string
	AwayTeam  string
	HomeGoals int
	AwayGoals int
	Result    Result
}

// Canonical output column names. Renamed from the feed's FTHG/FTAG/FTR.
const (
	ColLeague    = "League"
	ColHomeGoals = "HomeGoals"
	ColAwayGoals = "AwayGoals"
	ColResult    = "Result"
)

// RenamedColumns maps feed column names onto their output names.
// Columns not listed keep their feed name.
var RenamedColumns = map[string]string{
	ColFTHG: ColHomeGoals,
	ColFTAG: ColAwayGoals,
	ColFTR:  ColResult,
}

// OutputColumn returns the output name of a feed column.
func OutputColumn(feedCol string) string {
	if out, ok := RenamedColumns[feedCol]; ok {
		return out
	}
	return feedCol
}

// MatchColumns returns the ordered header written to every output file.
func MatchColumns() []string {
	return []string{
		ColLeague,
		ColDate,
		ColHomeTeam,
		ColAwayTeam,
		ColHomeGoals,
		ColAwayGoals,
		ColResult,
	}
}

// Values returns the record's fields in the same order as MatchColumns().
func (m *Match) Values() []string {
	return []string{
		m.League,
		m.Date,
		m.HomeTeam,
		m.AwayTeam,
		strconv.Itoa(m.HomeGoals),
		strconv.Itoa(m.AwayGoals),
		string(m.Result),
	}
}
