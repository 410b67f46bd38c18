package normalize

import (
	"errors"
	"fmt"

	"github.com/gyeh/footstats/internal/model"
)

// ErrMissingField marks a raw row that lacks one of the working columns.
var ErrMissingField = errors.New("missing field")

// ToMatch converts a fetched RawRow into a cleaned Match. A row missing any
// working column (absent, blank, or goals that are not a non-negative
// integer) is rejected as a whole; there is no partial-record recovery.
func ToMatch(row *model.RawRow) (*model.Match, error) {
	league := Text(&row.League)
	if league == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, model.ColLeague)
	}

	texts := make(map[string]string, 4)
	for _, col := range []string{model.ColDate, model.ColHomeTeam, model.ColAwayTeam, model.ColFTR} {
		v := Text(*row.Field(col))
		if v == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, model.OutputColumn(col))
		}
		texts[col] = *v
	}

	home := Goals(row.FTHG)
	if home == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, model.ColHomeGoals)
	}
	away := Goals(row.FTAG)
	if away == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, model.ColAwayGoals)
	}

	return &model.Match{
		League:    *league,
		Date:      texts[model.ColDate],
		HomeTeam:  texts[model.ColHomeTeam],
		AwayTeam:  texts[model.ColAwayTeam],
		HomeGoals: *home,
		AwayGoals: *away,
		Result:    ResultCode(texts[model.ColFTR]),
	}, nil
}

// FromValues rebuilds a Match from a persisted line in MatchColumns() order.
// Persisted files are already clean, so the same missing-field policy applies.
func FromValues(values []string) (*model.Match, error) {
	if len(values) != len(model.MatchColumns()) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(model.MatchColumns()), len(values))
	}
	row := model.RawRow{League: values[0]}
	row.Date = &values[1]
	row.HomeTeam = &values[2]
	row.AwayTeam = &values[3]
	row.FTHG = &values[4]
	row.FTAG = &values[5]
	row.FTR = &values[6]
	return ToMatch(&row)
}
