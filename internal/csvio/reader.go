package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gyeh/footstats/internal/model"
	"github.com/gyeh/footstats/internal/normalize"
)

// Reader streams Match records from a persisted match CSV.
type Reader struct {
	file   *os.File
	csv    *csv.Reader
	header []string
	line   int
}

// Open opens a match CSV, reads its header and returns a streaming Reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open match file: %w", err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		f.Close()
		return nil, fmt.Errorf("match file %s is empty", path)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read header: %w", err)
	}
	return &Reader{file: f, csv: r, header: header, line: 1}, nil
}

// Header returns the file's header row for validation.
func (r *Reader) Header() []string {
	return r.header
}

// Read reads up to len(rows) records into the provided slice.
// Returns the number of rows read and io.EOF when done.
func (r *Reader) Read(rows []model.Match) (int, error) {
	n := 0
	for n < len(rows) {
		rec, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			return n, io.EOF
		}
		r.line++
		if err != nil {
			return n, fmt.Errorf("read line %d: %w", r.line, err)
		}
		m, err := normalize.FromValues(rec)
		if err != nil {
			return n, fmt.Errorf("line %d: %w", r.line, err)
		}
		rows[n] = *m
		n++
	}
	return n, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// ReadAll opens path, validates its header and returns every record.
func ReadAll(path string) ([]model.Match, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if err := ValidateHeader(r.Header()); err != nil {
		return nil, err
	}

	var all []model.Match
	buf := make([]model.Match, 1024)
	for {
		n, err := r.Read(buf)
		all = append(all, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return all, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
