package fetch

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/gyeh/footstats/internal/model"
)

const userAgent = "footstats/1.0 (+https://github.com/gyeh/footstats)"

// Client fetches season CSVs from a football-data.co.uk compatible host.
type Client struct {
	httpClient *http.Client
	host       string
}

// NewClient creates a client. A zero timeout means no per-request timeout.
func NewClient(host string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		host:       host,
	}
}

// Host returns the base URL the client fetches from.
func (c *Client) Host() string {
	return c.host
}

// URL returns the CSV location for a catalog entry.
func (c *Client) URL(entry model.CatalogEntry) string {
	return SeasonURL(c.host, entry.Code, entry.Season)
}

// Fetch performs exactly one GET for the entry and parses the body.
// Per-entry failures are returned as *Error; a cancelled context is
// returned unwrapped so callers can stop the catalog loop.
func (c *Client) Fetch(ctx context.Context, entry model.CatalogEntry) (*model.RowSet, error) {
	u := c.URL(entry)

	body, err := c.Get(ctx, u)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		kind := KindTransient
		var se *StatusError
		if errors.As(err, &se) && (se.StatusCode == http.StatusNotFound || se.StatusCode == http.StatusGone) {
			kind = KindNotFound
		}
		return nil, &Error{Entry: entry, URL: u, Kind: kind, Err: err}
	}

	rs, err := ParseCSV(body, entry)
	if err != nil {
		kind := KindMalformed
		if errors.Is(err, ErrMissingColumns) {
			kind = KindSchemaMismatch
		}
		return nil, &Error{Entry: entry, URL: u, Kind: kind, Err: err}
	}
	return rs, nil
}

// Get issues a GET and returns the decoded body of a 2xx response.
func (c *Client) Get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/csv,text/plain,text/html;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	reader, err := decodeBody(resp.Header.Get("Content-Encoding"), resp.Body)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

// decodeBody wraps the body according to its Content-Encoding.
func decodeBody(encoding string, body io.ReadCloser) (io.ReadCloser, error) {
	switch encoding {
	case "gzip":
		r, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		return r, nil
	case "deflate":
		return flate.NewReader(body), nil
	case "br":
		return io.NopCloser(brotli.NewReader(body)), nil
	default:
		return io.NopCloser(body), nil
	}
}
