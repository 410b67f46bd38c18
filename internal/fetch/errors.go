package fetch

import (
	"errors"
	"fmt"

	"github.com/gyeh/footstats/internal/model"
)

// Kind classifies why a catalog entry could not be turned into a row-set.
type Kind string

const (
	KindTransient      Kind = "transient-network"
	KindNotFound       Kind = "not-found"
	KindMalformed      Kind = "malformed-response"
	KindSchemaMismatch Kind = "schema-mismatch"
)

var (
	// ErrEmptyBody is returned by ParseCSV when the body has no header line.
	ErrEmptyBody = errors.New("empty response body")
	// ErrMissingColumns is returned by ParseCSV when the header lacks a working column.
	ErrMissingColumns = errors.New("missing source columns")
)

// Error is a per-entry fetch failure. The pipeline logs and skips it.
type Error struct {
	Entry model.CatalogEntry
	URL   string
	Kind  Kind
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s (%s): %s: %s", e.Entry.Code, e.Entry.Season, e.URL, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err, or ok=false when err is not a
// per-entry fetch failure (for example a cancelled context).
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.StatusCode)
}
