package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Link is one season CSV offered on a football-data.co.uk country page.
type Link struct {
	Code   string
	Season string // "YY-YY"
	URL    string
}

var csvHref = regexp.MustCompile(`mmz4281/(\d{2})(\d{2})/([A-Za-z0-9]+)\.csv$`)

// Discover fetches a country page (e.g. "englandm.php") relative to the
// host and returns the season CSV links it offers, in page order.
func (c *Client) Discover(ctx context.Context, page string) ([]Link, error) {
	pageURL := strings.TrimRight(c.host, "/") + "/" + strings.TrimLeft(page, "/")
	body, err := c.Get(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	return ParseLinks(bytes.NewReader(body), pageURL)
}

// ParseLinks extracts season CSV links from an HTML page. Relative hrefs
// are resolved against base. Duplicate links are reported once.
func ParseLinks(r io.Reader, base string) ([]Link, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	var links []Link
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		abs := baseURL.ResolveReference(ref)
		m := csvHref.FindStringSubmatch(abs.Path)
		if m == nil || seen[abs.String()] {
			return
		}
		seen[abs.String()] = true
		links = append(links, Link{
			Code:   m[3],
			Season: m[1] + "-" + m[2],
			URL:    abs.String(),
		})
	})
	return links, nil
}
