package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/footstats/internal/config"
	"github.com/gyeh/footstats/internal/exitcode"
	"github.com/gyeh/footstats/internal/model"
)

func resetFlags() {
	cfg = config.Config{}
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}
}

// execute runs the CLI in-process and returns stdout and the exit code.
func execute(t *testing.T, args ...string) (string, int) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--log-format", "json", "--log-level", "error"}, args...))
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	err := rootCmd.Execute()
	return out.String(), exitCodeOf(err)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestExecute_ConfigFileRejected(t *testing.T) {
	path := writeFile(t, "bad.yaml", "hosts: http://127.0.0.1:1\n")

	_, code := execute(t, "--config", path, "plan")
	assert.Equal(t, exitcode.ValidationError, code)
}

func TestExecute_InvalidHost(t *testing.T) {
	_, code := execute(t, "--host", "not a url", "plan")
	assert.Equal(t, exitcode.ValidationError, code)
}

func TestExecute_WrongArgCount(t *testing.T) {
	_, code := execute(t, "discover")
	assert.Equal(t, exitcode.UsageError, code)
}

func TestExecute_ExplicitHostBeatsConfigFile(t *testing.T) {
	path := writeFile(t, "ok.yaml", "host: http://127.0.0.1:1\nleagues:\n  - {code: SP1, name: La Liga}\nseasons: [\"22-23\"]\n")

	out, code := execute(t, "--config", path, "--host", "http://flag.test", "plan")
	require.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "Host:    http://flag.test\n")
	assert.Contains(t, out, "http://flag.test/mmz4281/2223/SP1.csv")
	assert.NotContains(t, out, "127.0.0.1")
}

func TestExecute_ConfigFileFillsUnsetHost(t *testing.T) {
	path := writeFile(t, "ok.yaml", "host: http://file.test\nleagues:\n  - {code: E0, name: English Premier League}\nseasons: [\"21-22\"]\n")

	out, code := execute(t, "--config", path, "plan")
	require.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "http://file.test/mmz4281/2122/E0.csv")
	assert.Contains(t, out, "Entries: 1\n")
}

func TestExecute_AnalyzeHeaderMismatch(t *testing.T) {
	path := writeFile(t, "combined.csv", "Div,Date,HomeTeam,AwayTeam,FTHG,FTAG,FTR\nSP1,14/08/22,A,B,1,0,H\n")

	_, code := execute(t, "analyze", "--in", path)
	assert.Equal(t, exitcode.ValidationError, code)
}

func TestExecute_AnalyzeBadTop(t *testing.T) {
	path := filepath.Join("..", "..", "internal", "analyze", "testdata", "combined-small.csv")

	_, code := execute(t, "analyze", "--in", path, "--top", "0")
	assert.Equal(t, exitcode.ValidationError, code)
}

func TestExecute_AnalyzeJSON(t *testing.T) {
	path := filepath.Join("..", "..", "internal", "analyze", "testdata", "combined-small.csv")

	out, code := execute(t, "analyze", "--in", path, "--format", "json", "--top", "1")
	require.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, `"matches": 12`)
	assert.Contains(t, out, `"team": "Bayern Munich"`)
}

func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, exitcode.Success, exitCodeOf(nil))
	assert.Equal(t, exitcode.UsageError, exitCodeOf(errors.New("unknown flag: --nope")))
	assert.Equal(t, exitcode.PartialSuccess, exitCodeOf(&exitError{code: exitcode.PartialSuccess, err: errPartial}))
}

func TestPhaseExitCode(t *testing.T) {
	assert.Equal(t, exitcode.PersistError, phaseExitCode("preflight"))
	assert.Equal(t, exitcode.FetchError, phaseExitCode("scrape"))
	assert.Equal(t, exitcode.ValidationError, phaseExitCode("clean"))
	assert.Equal(t, exitcode.PersistError, phaseExitCode("save"))
}

func TestPrintSummary_KindsSorted(t *testing.T) {
	summary := &model.RunSummary{
		EntriesAttempted: 5,
		EntriesFetched:   1,
		Skipped: []model.SkippedEntry{
			{Kind: "transient-network"},
			{Kind: "schema-mismatch"},
			{Kind: "not-found"},
			{Kind: "malformed-response"},
			{Kind: "transient-network"},
		},
	}

	for i := 0; i < 5; i++ {
		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)
		printSummary(cmd, summary)

		var kinds []string
		for _, line := range strings.Split(out.String(), "\n") {
			if f := strings.Fields(line); len(f) == 3 && f[0] == "skipped" {
				kinds = append(kinds, f[1])
			}
		}
		assert.Equal(t, []string{"malformed-response", "not-found", "schema-mismatch", "transient-network"}, kinds)
	}
}
