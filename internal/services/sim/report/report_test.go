package report

import (
	"strings"
	"testing"

	"github.com/louisbranch/montyhall/internal/montyhall"
)

func TestWriteRendersProportionTable(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, Summary{
		Trials: 100000,
		Seed:   42,
		Stay: montyhall.StrategyStats{
			Strategy: montyhall.StrategyStay,
			Wins:     33333,
			Games:    100000,
		},
		Switch: montyhall.StrategyStats{
			Strategy: montyhall.StrategySwitch,
			Wins:     66667,
			Games:    100000,
		},
	})
	if err != nil {
		t.Fatalf("write report: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "100,000 trials (seed 42)") {
		t.Fatalf("missing header in report:\n%s", out)
	}
	if !strings.Contains(out, "stay") || !strings.Contains(out, "switch") {
		t.Fatalf("missing strategy rows in report:\n%s", out)
	}
	// Raw proportions are rounded to two decimals only here.
	if !strings.Contains(out, "0.33") || !strings.Contains(out, "0.67") {
		t.Fatalf("missing rounded win rates in report:\n%s", out)
	}
	if !strings.Contains(out, "33,333") || !strings.Contains(out, "66,667") {
		t.Fatalf("missing grouped win counts in report:\n%s", out)
	}
}

func TestWriteHandlesEmptyBatch(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, Summary{
		Stay:   montyhall.StrategyStats{Strategy: montyhall.StrategyStay},
		Switch: montyhall.StrategyStats{Strategy: montyhall.StrategySwitch},
	})
	if err != nil {
		t.Fatalf("write report: %v", err)
	}
	if !strings.Contains(sb.String(), "0 trials") {
		t.Fatalf("missing empty batch header:\n%s", sb.String())
	}
}

func TestWriteRequiresWriter(t *testing.T) {
	if err := Write(nil, Summary{}); err == nil {
		t.Fatal("expected error for nil writer")
	}
}
