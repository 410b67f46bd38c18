package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/gyeh/footstats/internal/model"
)

const barWidth = 40

// TextRenderer draws a Report as terminal bar charts.
type TextRenderer struct {
	w io.Writer

	title *color.Color
	home  *color.Color
	away  *color.Color
	draw  *color.Color
	bar   *color.Color
}

// NewTextRenderer returns a renderer writing to w. Colour escapes are only
// emitted when useColor is set.
func NewTextRenderer(w io.Writer, useColor bool) *TextRenderer {
	r := &TextRenderer{
		w:     w,
		title: color.New(color.Bold),
		home:  color.New(color.FgGreen),
		away:  color.New(color.FgRed),
		draw:  color.New(color.FgYellow),
		bar:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{r.title, r.home, r.away, r.draw, r.bar} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render writes all five views.
func (r *TextRenderer) Render(rep *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", r.title.Sprint("Matches analysed:"), humanize.Comma(int64(rep.Matches)))

	b.WriteString(r.title.Sprint("Result distribution") + "\n")
	for _, s := range rep.Results {
		fmt.Fprintf(&b, "  %-10s %6.1f%%  %s %s\n",
			s.Label, s.Proportion*100, r.resultColor(s).Sprint(bar(s.Proportion)), humanize.Comma(int64(s.Count)))
	}
	b.WriteString("\n")

	b.WriteString(r.title.Sprint("Average goals per league") + "\n")
	maxAvg := 0.0
	width := 0
	for _, g := range rep.Goals {
		maxAvg = max(maxAvg, g.AvgHomeGoals, g.AvgAwayGoals)
		width = max(width, len(g.League))
	}
	for _, g := range rep.Goals {
		fmt.Fprintf(&b, "  %-*s home %4.2f %s\n", width, g.League, g.AvgHomeGoals, r.home.Sprint(bar(ratio(g.AvgHomeGoals, maxAvg))))
		fmt.Fprintf(&b, "  %-*s away %4.2f %s\n", width, "", g.AvgAwayGoals, r.away.Sprint(bar(ratio(g.AvgAwayGoals, maxAvg))))
	}
	b.WriteString("\n")

	r.ranking(&b, "wins", rep.TopWins)
	r.ranking(&b, "draws", rep.TopDraws)
	r.ranking(&b, "losses", rep.TopLosses)

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TextRenderer) ranking(b *strings.Builder, what string, teams []TeamCount) {
	fmt.Fprintf(b, "%s\n", r.title.Sprintf("Top %d teams by %s", len(teams), what))
	if len(teams) == 0 {
		b.WriteString("  (none)\n\n")
		return
	}
	width := 0
	for _, t := range teams {
		width = max(width, len(t.Team))
	}
	top := float64(teams[0].Count)
	for i, t := range teams {
		fmt.Fprintf(b, "  %2d. %-*s %s %s\n",
			i+1, width, t.Team, r.bar.Sprint(bar(ratio(float64(t.Count), top))), humanize.Comma(int64(t.Count)))
	}
	b.WriteString("\n")
}

func (r *TextRenderer) resultColor(s ResultShare) *color.Color {
	switch s.Code {
	case model.HomeWin:
		return r.home
	case model.AwayWin:
		return r.away
	}
	return r.draw
}

func ratio(v, top float64) float64 {
	if top <= 0 {
		return 0
	}
	return v / top
}

// bar draws a proportion in [0, 1] as a run of block characters.
func bar(p float64) string {
	n := int(p*barWidth + 0.5)
	n = min(max(n, 0), barWidth)
	return strings.Repeat("█", n)
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
