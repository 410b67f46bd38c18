package csvio

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gyeh/footstats/internal/model"
)

func sampleMatches() []model.Match {
	return []model.Match{
		{League: "La Liga", Date: "14/08/2022", HomeTeam: "TeamA", AwayTeam: "TeamB", HomeGoals: 2, AwayGoals: 1, Result: model.HomeWin},
		{League: "La Liga", Date: "15/08/2022", HomeTeam: "Team, C", AwayTeam: "TeamD", HomeGoals: 0, AwayGoals: 0, Result: model.Draw},
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "La Liga.csv")
	wf, err := WriteFile(path, sampleMatches())
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "League,Date,HomeTeam,AwayTeam,HomeGoals,AwayGoals,Result\n" +
		"La Liga,14/08/2022,TeamA,TeamB,2,1,H\n" +
		"La Liga,15/08/2022,\"Team, C\",TeamD,0,0,D\n"
	if string(data) != want {
		t.Errorf("file content:\n%s\nwant:\n%s", data, want)
	}
	if wf.Rows != 2 || wf.Path != path {
		t.Errorf("unexpected WrittenFile: %+v", wf)
	}
	if wf.SHA256 != fmt.Sprintf("%x", sha256.Sum256(data)) {
		t.Errorf("SHA256 does not match file content")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined_matches.csv")
	if err := os.WriteFile(path, []byte("stale content that is longer than the new file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteFile(path, nil); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "League,Date,HomeTeam,AwayTeam,HomeGoals,AwayGoals,Result\n" {
		t.Errorf("expected header only, got %q", data)
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	if _, err := WriteFile(filepath.Join(t.TempDir(), "nope", "x.csv"), nil); err == nil {
		t.Fatal("expected error when the directory does not exist")
	}
}

func TestReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined_matches.csv")
	if _, err := WriteFile(path, sampleMatches()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := sampleMatches()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReader_SmallBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.csv")
	if _, err := WriteFile(path, sampleMatches()); err != nil {
		t.Fatal(err)
	}
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	buf := make([]model.Match, 1)
	var total int
	for {
		n, err := r.Read(buf)
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if total != 2 {
		t.Errorf("expected 2 rows, got %d", total)
	}
}

func TestReadAll_BadInput(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"empty":      "",
		"bad_header": "League,Date,Home,Away,HG,AG,Result\n",
		"bad_goals":  "League,Date,HomeTeam,AwayTeam,HomeGoals,AwayGoals,Result\nX,d,a,b,two,1,A\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".csv")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := ReadAll(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestValidateHeader(t *testing.T) {
	if err := ValidateHeader(model.MatchColumns()); err != nil {
		t.Errorf("canonical header rejected: %v", err)
	}
	err := ValidateHeader(strings.Split("Date,League,HomeTeam,AwayTeam,HomeGoals,AwayGoals,Result", ","))
	if !errors.Is(err, ErrHeaderMismatch) {
		t.Errorf("expected ErrHeaderMismatch, got %v", err)
	}
}
