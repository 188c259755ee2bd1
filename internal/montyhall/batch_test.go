package montyhall

import (
	"math"
	"testing"
)

// TestRunBatchEmptyForNonPositiveTrials ensures degenerate trial counts
// yield an empty batch without error.
func TestRunBatchEmptyForNonPositiveTrials(t *testing.T) {
	for _, trials := range []int{0, -1, -100} {
		result, err := RunBatch(BatchRequest{Trials: trials, Seed: 1})
		if err != nil {
			t.Fatalf("RunBatch(%d) returned error: %v", trials, err)
		}
		if len(result.Records) != 0 {
			t.Fatalf("RunBatch(%d) records = %d, want 0", trials, len(result.Records))
		}
		if result.Stay.Games != 0 || result.Switch.Games != 0 {
			t.Fatalf("RunBatch(%d) counted games on empty batch: %+v", trials, result)
		}
		if result.Stay.Proportion() != 0 || result.Switch.Proportion() != 0 {
			t.Fatalf("RunBatch(%d) proportions non-zero on empty batch", trials)
		}
	}
}

// TestRunBatchRecordShape checks the 2N record layout and per-strategy
// game counts.
func TestRunBatchRecordShape(t *testing.T) {
	const trials = 250
	result, err := RunBatch(BatchRequest{Trials: trials, Seed: 2})
	if err != nil {
		t.Fatalf("RunBatch returned error: %v", err)
	}
	if len(result.Records) != trials*2 {
		t.Fatalf("records = %d, want %d", len(result.Records), trials*2)
	}
	for i := 0; i < len(result.Records); i += 2 {
		if result.Records[i].Strategy != StrategyStay || result.Records[i+1].Strategy != StrategySwitch {
			t.Fatalf("record pair %d out of order: %+v", i/2, result.Records[i:i+2])
		}
	}
	if result.Stay.Games != trials || result.Switch.Games != trials {
		t.Fatalf("games = %d/%d, want %d each", result.Stay.Games, result.Switch.Games, trials)
	}
}

// TestRunBatchComplementaryWins verifies that exactly one strategy wins
// every trial, so the win counts sum to the trial count.
func TestRunBatchComplementaryWins(t *testing.T) {
	const trials = 500
	result, err := RunBatch(BatchRequest{Trials: trials, Seed: 3})
	if err != nil {
		t.Fatalf("RunBatch returned error: %v", err)
	}
	if result.Stay.Wins+result.Switch.Wins != trials {
		t.Fatalf("stay %d + switch %d wins, want %d", result.Stay.Wins, result.Switch.Wins, trials)
	}
}

// TestRunBatchConvergence runs a large batch and checks the long-run
// proportions land near the theoretical 1/3 and 2/3.
func TestRunBatchConvergence(t *testing.T) {
	const trials = 100000
	result, err := RunBatch(BatchRequest{Trials: trials, Seed: 4})
	if err != nil {
		t.Fatalf("RunBatch returned error: %v", err)
	}

	if diff := math.Abs(result.Stay.Proportion() - 1.0/3.0); diff > 0.02 {
		t.Fatalf("stay proportion %.4f off 1/3 by %.4f", result.Stay.Proportion(), diff)
	}
	if diff := math.Abs(result.Switch.Proportion() - 2.0/3.0); diff > 0.02 {
		t.Fatalf("switch proportion %.4f off 2/3 by %.4f", result.Switch.Proportion(), diff)
	}
}

// TestRunBatchDeterministicForSeed ensures identical requests reproduce
// identical batches.
func TestRunBatchDeterministicForSeed(t *testing.T) {
	request := BatchRequest{Trials: 200, Seed: 5}
	first, err := RunBatch(request)
	if err != nil {
		t.Fatalf("RunBatch returned error: %v", err)
	}
	second, err := RunBatch(request)
	if err != nil {
		t.Fatalf("RunBatch returned error: %v", err)
	}

	if len(first.Records) != len(second.Records) {
		t.Fatalf("record counts differ: %d vs %d", len(first.Records), len(second.Records))
	}
	for i := range first.Records {
		if first.Records[i] != second.Records[i] {
			t.Fatalf("record %d differs: %+v vs %+v", i, first.Records[i], second.Records[i])
		}
	}
}

// TestRunBatchParallel checks the partitioned path keeps the record shape,
// win complementarity, and determinism for a fixed worker count.
func TestRunBatchParallel(t *testing.T) {
	const trials = 1000
	request := BatchRequest{Trials: trials, Seed: 6, Workers: 4}

	first, err := RunBatch(request)
	if err != nil {
		t.Fatalf("RunBatch returned error: %v", err)
	}
	if len(first.Records) != trials*2 {
		t.Fatalf("records = %d, want %d", len(first.Records), trials*2)
	}
	if first.Stay.Games != trials || first.Switch.Games != trials {
		t.Fatalf("games = %d/%d, want %d each", first.Stay.Games, first.Switch.Games, trials)
	}
	if first.Stay.Wins+first.Switch.Wins != trials {
		t.Fatalf("stay %d + switch %d wins, want %d", first.Stay.Wins, first.Switch.Wins, trials)
	}

	second, err := RunBatch(request)
	if err != nil {
		t.Fatalf("RunBatch returned error: %v", err)
	}
	for i := range first.Records {
		if first.Records[i] != second.Records[i] {
			t.Fatalf("parallel record %d differs: %+v vs %+v", i, first.Records[i], second.Records[i])
		}
	}
}

// TestRunBatchParallelConvergence confirms partitioned sub-seeds preserve
// trial independence at scale.
func TestRunBatchParallelConvergence(t *testing.T) {
	const trials = 100000
	result, err := RunBatch(BatchRequest{Trials: trials, Seed: 7, Workers: 8})
	if err != nil {
		t.Fatalf("RunBatch returned error: %v", err)
	}
	if diff := math.Abs(result.Stay.Proportion() - 1.0/3.0); diff > 0.02 {
		t.Fatalf("stay proportion %.4f off 1/3 by %.4f", result.Stay.Proportion(), diff)
	}
	if diff := math.Abs(result.Switch.Proportion() - 2.0/3.0); diff > 0.02 {
		t.Fatalf("switch proportion %.4f off 2/3 by %.4f", result.Switch.Proportion(), diff)
	}
}

// TestRunBatchClampsWorkers ensures more workers than trials still plays
// every trial exactly once.
func TestRunBatchClampsWorkers(t *testing.T) {
	result, err := RunBatch(BatchRequest{Trials: 3, Seed: 8, Workers: 16})
	if err != nil {
		t.Fatalf("RunBatch returned error: %v", err)
	}
	if len(result.Records) != 6 {
		t.Fatalf("records = %d, want 6", len(result.Records))
	}
}

func TestPartitionCoversAllTrials(t *testing.T) {
	tcs := []struct {
		trials  int
		workers int
	}{
		{10, 3},
		{7, 7},
		{100, 8},
		{5, 2},
	}
	for _, tc := range tcs {
		sizes := partition(tc.trials, tc.workers)
		if len(sizes) != tc.workers {
			t.Fatalf("partition(%d, %d) lanes = %d, want %d", tc.trials, tc.workers, len(sizes), tc.workers)
		}
		total := 0
		for _, size := range sizes {
			total += size
		}
		if total != tc.trials {
			t.Fatalf("partition(%d, %d) covers %d trials", tc.trials, tc.workers, total)
		}
	}
}

func TestStrategyStatsProportion(t *testing.T) {
	stats := StrategyStats{Strategy: StrategyStay, Wins: 1, Games: 4}
	if stats.Proportion() != 0.25 {
		t.Fatalf("proportion = %v, want 0.25", stats.Proportion())
	}
	empty := StrategyStats{Strategy: StrategySwitch}
	if empty.Proportion() != 0 {
		t.Fatalf("empty proportion = %v, want 0", empty.Proportion())
	}
}
