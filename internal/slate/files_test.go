package slate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestDiscoverFilesPicksLatest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "DFF_NBA_2026-01-14.csv", "")
	writeFile(t, dir, "DFF_NBA_2026-01-15.csv", "")
	writeFile(t, dir, "FanDuel-NBA-2026-01-15.csv", "")

	proj, sal, err := DiscoverFiles(dir, "*DFF*.csv", "*FanDuel*.csv")
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if filepath.Base(proj) != "DFF_NBA_2026-01-15.csv" {
		t.Fatalf("expected newest projections file, got %s", proj)
	}
	if filepath.Base(sal) != "FanDuel-NBA-2026-01-15.csv" {
		t.Fatalf("unexpected salary file: %s", sal)
	}
}

func TestDiscoverFilesMissingInput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "DFF_NBA.csv", "")

	_, _, err := DiscoverFiles(dir, "*DFF*.csv", "*FanDuel*.csv")
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
}

func TestFileSourceLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "DFF_NBA.csv",
		"first_name,last_name,team,opp,position,ppg_projection,salary,injury_status,spread,over_under\n"+
			"Jayson,Tatum,BOS,NYK,SF,28.5,9800,,-3.5,224.5\n")
	writeFile(t, dir, "FanDuel-NBA.csv",
		"First Name,Last Name,Team,Salary\nJayson,Tatum,BOS,9800\n")

	src := FileSource{Dir: dir, ProjectionsGlob: "*DFF*.csv", SalaryGlob: "*FanDuel*.csv"}
	projections, salaries, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(projections) != 1 || len(salaries) != 1 {
		t.Fatalf("unexpected row counts: %d projections, %d salaries", len(projections), len(salaries))
	}
}
