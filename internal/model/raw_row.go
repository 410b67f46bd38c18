package model

// Source feed column names kept from each football-data.co.uk CSV.
const (
	ColDate     = "Date"
	ColHomeTeam = "HomeTeam"
	ColAwayTeam = "AwayTeam"
	ColFTHG     = "FTHG"
	ColFTAG     = "FTAG"
	ColFTR      = "FTR"
)

// SourceColumns is the fixed set of feed columns the fetcher keeps.
var SourceColumns = []string{ColDate, ColHomeTeam, ColAwayTeam, ColFTHG, ColFTAG, ColFTR}

// RawRow is one match line as fetched. Every field is optional: a nil
// pointer means the column or the value was absent from the line.
type RawRow struct {
	League   string
	Date     *string
	HomeTeam *string
	AwayTeam *string
	FTHG     *string
	FTAG     *string
	FTR      *string
}

// Field returns a pointer to the raw field for a source column name.
func (r *RawRow) Field(col string) **string {
	switch col {
	case ColDate:
		return &r.Date
	case ColHomeTeam:
		return &r.HomeTeam
	case ColAwayTeam:
		return &r.AwayTeam
	case ColFTHG:
		return &r.FTHG
	case ColFTAG:
		return &r.FTAG
	case ColFTR:
		return &r.FTR
	}
	return nil
}

// RowSet is the parsed content of one catalog entry's CSV.
type RowSet struct {
	Entry        CatalogEntry
	Rows         []RawRow
	SkippedLines int // malformed lines dropped by the parser
}
