package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	simsqlite "github.com/louisbranch/montyhall/internal/services/sim/storage/sqlite"
)

func TestRunRendersReport(t *testing.T) {
	var sb strings.Builder
	err := Run(context.Background(), RuntimeConfig{
		Trials: 100,
		Seed:   42,
		Out:    &sb,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "100 trials (seed 42)") {
		t.Fatalf("missing header in output:\n%s", out)
	}
	if !strings.Contains(out, "stay") || !strings.Contains(out, "switch") {
		t.Fatalf("missing strategy rows in output:\n%s", out)
	}
}

func TestRunPersistsRunRecord(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sim.db")

	var sb strings.Builder
	err := Run(context.Background(), RuntimeConfig{
		Trials:  50,
		Seed:    7,
		Workers: 2,
		DBPath:  dbPath,
		Out:     &sb,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	store, err := simsqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs len = %d, want 1", len(runs))
	}
	run := runs[0]
	if run.Trials != 50 || run.Seed != 7 || run.Workers != 2 {
		t.Fatalf("unexpected run metadata: %+v", run)
	}
	if run.StayWins+run.SwitchWins != 50 {
		t.Fatalf("stay %d + switch %d wins, want 50", run.StayWins, run.SwitchWins)
	}
}

func TestRunZeroTrialsProducesEmptyReport(t *testing.T) {
	var sb strings.Builder
	err := Run(context.Background(), RuntimeConfig{
		Trials: 0,
		Seed:   1,
		Out:    &sb,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(sb.String(), "0 trials") {
		t.Fatalf("expected empty batch header, got:\n%s", sb.String())
	}
}

func TestRunGeneratesSeedWhenZero(t *testing.T) {
	var sb strings.Builder
	err := Run(context.Background(), RuntimeConfig{
		Trials: 10,
		Out:    &sb,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(sb.String(), "(seed 0)") {
		t.Fatalf("expected generated seed in header, got:\n%s", sb.String())
	}
}
