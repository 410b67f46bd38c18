package csvio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gyeh/footstats/internal/model"
)

// ErrHeaderMismatch marks a match file whose header is not the canonical one.
var ErrHeaderMismatch = errors.New("header mismatch")

// ValidateHeader checks that header is exactly model.MatchColumns().
func ValidateHeader(header []string) error {
	want := model.MatchColumns()
	if len(header) != len(want) {
		return fmt.Errorf("%w: got %d columns (%s), want %s", ErrHeaderMismatch,
			len(header), strings.Join(header, ","), strings.Join(want, ","))
	}
	for i, col := range want {
		if header[i] != col {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrHeaderMismatch, i+1, header[i], col)
		}
	}
	return nil
}
