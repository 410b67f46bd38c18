package fetch

import (
	"fmt"
	"strings"
)

// SeasonURL builds the CSV location for one league season:
// {host}/mmz4281/{yy}{yy}/{code}.csv. The season is split positionally
// ("22-23" → "22" + "23") without validation, so a malformed season simply
// produces a URL that does not exist.
func SeasonURL(host, code, season string) string {
	return fmt.Sprintf("%s/mmz4281/%s%s/%s.csv", strings.TrimRight(host, "/"), clip(season, 0, 2), clip(season, 3, len(season)), code)
}

// clip is s[from:to] bounded to the string length.
func clip(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
