package fetch

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/gyeh/footstats/internal/model"
)

// byte order marks as they appear after UTF-8 or Latin-1 decoding
var boms = []string{"\ufeff", "\u00ef\u00bb\u00bf"}

// ParseCSV decodes an ISO-8859-1 football-data.co.uk CSV body and keeps the
// six working columns of every line, tagging rows with the entry's league
// name. Lines with more fields than the header are skipped and counted.
// Lines with fewer fields leave the trailing columns missing.
func ParseCSV(body []byte, entry model.CatalogEntry) (*model.RowSet, error) {
	r := csv.NewReader(transform.NewReader(bytes.NewReader(body), charmap.ISO8859_1.NewDecoder()))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyBody
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		for _, bom := range boms {
			header[0] = strings.TrimPrefix(header[0], bom)
		}
	}

	index := make(map[string]int, len(model.SourceColumns))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	var missing []string
	for _, col := range model.SourceColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	rs := &model.RowSet{Entry: entry}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				rs.SkippedLines++
				continue
			}
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if len(rec) > len(header) {
			rs.SkippedLines++
			continue
		}

		row := model.RawRow{League: entry.Name}
		for _, col := range model.SourceColumns {
			i := index[col]
			if i >= len(rec) || rec[i] == "" {
				continue
			}
			v := rec[i]
			*row.Field(col) = &v
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}
