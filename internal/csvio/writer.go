package csvio

import (
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gyeh/footstats/internal/model"
)

// WriteFile writes matches under the canonical header to path. The file is
// written to a temporary sibling and renamed into place, replacing any
// previous output. The returned WrittenFile carries the SHA-256 of the
// bytes written.
func WriteFile(path string, matches []model.Match) (model.WrittenFile, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return model.WrittenFile{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	h := sha256.New()
	if err := Write(io.MultiWriter(tmp, h), matches); err != nil {
		tmp.Close()
		return model.WrittenFile{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return model.WrittenFile{}, fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return model.WrittenFile{}, fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return model.WrittenFile{}, fmt.Errorf("rename into %s: %w", path, err)
	}

	return model.WrittenFile{
		Path:   path,
		Rows:   len(matches),
		SHA256: fmt.Sprintf("%x", h.Sum(nil)),
	}, nil
}

// Write encodes the header and matches as CSV to w.
func Write(w io.Writer, matches []model.Match) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.MatchColumns()); err != nil {
		return err
	}
	for i := range matches {
		if err := cw.Write(matches[i].Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
