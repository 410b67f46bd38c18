package model

// League is one competition in the football-data.co.uk feed.
type League struct {
	Code string `yaml:"code"` // feed code, e.g. "E0"
	Name string `yaml:"name"` // display name, also the output file name
}

// CatalogEntry identifies one (league, season) CSV to fetch.
type CatalogEntry struct {
	Code   string
	Name   string
	Season string // "YY-YY", e.g. "22-23"
}

// DefaultLeagues lists the supported leagues in canonical fetch order.
var DefaultLeagues = []League{
	{Code: "E0", Name: "English Premier League"},
	{Code: "E1", Name: "English Championship"},
	{Code: "E2", Name: "English League 1"},
	{Code: "E3", Name: "English League 2"},
	{Code: "EC", Name: "English Conference"},
	{Code: "SC0", Name: "Scottish Premier League"},
	{Code: "SC1", Name: "Scottish Division 1"},
	{Code: "SC2", Name: "Scottish Division 2"},
	{Code: "SC3", Name: "Scottish Division 3"},
	{Code: "D1", Name: "Bundesliga"},
	{Code: "D2", Name: "Bundesliga 2"},
	{Code: "I1", Name: "Serie A"},
	{Code: "I2", Name: "Serie B"},
	{Code: "SP1", Name: "La Liga"},
	{Code: "SP2", Name: "La Liga 2"},
	{Code: "F1", Name: "Ligue 1"},
	{Code: "F2", Name: "Ligue 2"},
	{Code: "N1", Name: "Eredivisie"},
	{Code: "B1", Name: "Jupiler League"},
	{Code: "P1", Name: "Liga Portugal"},
	{Code: "T1", Name: "Super Lig"},
	{Code: "G1", Name: "Greek Super League"},
}

// DefaultSeasons lists the seasons fetched for every league, oldest first.
var DefaultSeasons = []string{
	"93-94", "94-95", "95-96", "96-97", "97-98", "98-99", "99-00",
	"00-01", "01-02", "02-03", "03-04", "04-05", "05-06", "06-07",
	"07-08", "08-09", "09-10", "10-11", "11-12", "12-13", "13-14",
	"14-15", "15-16", "16-17", "17-18", "18-19", "19-20", "20-21",
	"21-22", "22-23",
}

// BuildCatalog expands leagues × seasons into entries, league-major.
func BuildCatalog(leagues []League, seasons []string) []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(leagues)*len(seasons))
	for _, l := range leagues {
		for _, s := range seasons {
			entries = append(entries, CatalogEntry{Code: l.Code, Name: l.Name, Season: s})
		}
	}
	return entries
}

// LeagueByCode returns the default league with the given code, or ok=false.
func LeagueByCode(code string) (League, bool) {
	for _, l := range DefaultLeagues {
		if l.Code == code {
			return l, true
		}
	}
	return League{}, false
}
