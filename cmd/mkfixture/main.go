// mkfixture creates a small representative combined-matches fixture from a full scrape output.
// Single pass: rows are bucketed by result code and league, then merged up to --rows.
// Usage: go run ./cmd/mkfixture --in data/combined_matches.csv --out internal/analyze/testdata/combined-small.csv --rows 12 --per-league 4
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gyeh/footstats/internal/csvio"
	"github.com/gyeh/footstats/internal/model"
)

func main() {
	in := flag.String("in", "data/combined_matches.csv", "input combined CSV")
	out := flag.String("out", "internal/analyze/testdata/combined-small.csv", "output CSV")
	maxRows := flag.Int("rows", 200, "max rows to output")
	perLeague := flag.Int("per-league", 5, "rows to keep from every league")
	checkOnly := flag.Bool("check", false, "only print stats, don't write")
	flag.Parse()

	reader, err := csvio.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	defer reader.Close()

	if err := csvio.ValidateHeader(reader.Header()); err != nil {
		fmt.Fprintf(os.Stderr, "input %s: %v\n", *in, err)
		os.Exit(1)
	}

	type bucket struct {
		name string
		rows []model.Match
		want int
	}
	results := []*bucket{
		{name: string(model.HomeWin), want: 20},
		{name: string(model.AwayWin), want: 20},
		{name: string(model.Draw), want: 20},
	}
	resultMap := make(map[model.Result]*bucket)
	for _, b := range results {
		resultMap[model.Result(b.name)] = b
	}
	leagues := make(map[string]*bucket)
	general := &bucket{name: "general", want: *maxRows}
	leagueTotals := make(map[string]int)

	buf := make([]model.Match, 1024)
	var totalRead int
	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			totalRead++
			row := buf[i]
			leagueTotals[row.League]++

			lb, ok := leagues[row.League]
			if !ok {
				lb = &bucket{name: row.League, want: *perLeague}
				leagues[row.League] = lb
			}
			if len(lb.rows) < lb.want {
				lb.rows = append(lb.rows, row)
				continue
			}
			if rb, ok := resultMap[row.Result]; ok && len(rb.rows) < rb.want {
				rb.rows = append(rb.rows, row)
				continue
			}
			if len(general.rows) < general.want {
				general.rows = append(general.rows, row)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "read: %v\n", readErr)
			os.Exit(1)
		}
	}
	fmt.Printf("Scanned %d rows across %d leagues\n", totalRead, len(leagueTotals))

	names := make([]string, 0, len(leagues))
	for name := range leagues {
		names = append(names, name)
	}
	sort.Strings(names)

	if *checkOnly {
		for _, name := range names {
			fmt.Printf("  %-28s %7d\n", name, leagueTotals[name])
		}
		for _, b := range results {
			fmt.Printf("  result %s candidates: %d\n", b.name, len(b.rows))
		}
		return
	}

	// Merge buckets in priority order: league coverage, result coverage, then filler.
	var selected []model.Match
	add := func(rows []model.Match) {
		for _, row := range rows {
			if len(selected) >= *maxRows {
				return
			}
			selected = append(selected, row)
		}
	}
	for _, name := range names {
		add(leagues[name].rows)
	}
	for _, b := range results {
		add(b.rows)
	}
	add(general.rows)

	wf, err := csvio.WriteFile(*out, selected)
	if err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s (sha256 %s)\n", wf.Rows, wf.Path, wf.SHA256)
}
