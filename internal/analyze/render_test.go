package analyze

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/footstats/internal/model"
)

func sampleReport() *Report {
	matches := make([]model.Match, 0, 1500)
	for i := 0; i < 1500; i++ {
		matches = append(matches, match("La Liga", "TeamA", "TeamB", 2, 1, model.HomeWin))
	}
	matches = append(matches, match("Ligue 1", "TeamC", "TeamD", 0, 0, model.Draw))
	return Analyze(matches, DefaultTopN)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(&buf, false).Render(sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "Matches analysed: 1,501")
	assert.Contains(t, out, "Home Wins")
	assert.Contains(t, out, "Top 1 teams by wins")
	assert.Contains(t, out, "TeamA")
	assert.Contains(t, out, "Top 2 teams by draws")
	assert.NotContains(t, out, "\x1b[")

	lines := strings.Split(out, "\n")
	var winLine string
	for i, l := range lines {
		if strings.HasPrefix(l, "Top 1 teams by wins") {
			winLine = lines[i+1]
		}
	}
	assert.Contains(t, winLine, strings.Repeat("█", barWidth))
	assert.True(t, strings.HasSuffix(winLine, "1,500"))
}

func TestTextRenderer_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(&buf, true).Render(sampleReport()))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestTextRenderer_EmptyRanking(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(&buf, false).Render(Analyze(nil, DefaultTopN)))
	assert.Contains(t, buf.String(), "(none)")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, sampleReport()))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1501, got.Matches)
	require.Len(t, got.Results, 3)
	assert.Equal(t, model.HomeWin, got.Results[0].Code)
	assert.Equal(t, []TeamCount{{Team: "TeamA", Count: 1500}}, got.TopWins)
	assert.Contains(t, buf.String(), `"average_goals_by_league"`)
}
