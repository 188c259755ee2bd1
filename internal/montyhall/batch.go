package montyhall

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/louisbranch/montyhall/internal/random"
)

// BatchRequest describes a batch of independent trials.
type BatchRequest struct {
	// Trials is the number of games to simulate. Values at or below zero
	// yield an empty batch without error.
	Trials int
	// Seed drives all randomness in the batch.
	Seed int64
	// Workers splits trials across goroutines when greater than one. Each
	// worker draws from its own sub-seeded source, so trials stay
	// independent and the batch stays deterministic for a fixed Seed,
	// Trials, and Workers combination. The serial path (Workers <= 1)
	// seeds a single source with Seed directly.
	Workers int
}

// StrategyStats accumulates wins for one strategy across a batch.
type StrategyStats struct {
	Strategy Strategy
	Wins     int
	Games    int
}

// Proportion returns the raw win proportion for the strategy. Rounding is a
// presentation concern and happens at the reporting boundary, not here.
func (s StrategyStats) Proportion() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// BatchResult holds every record of a batch in trial order together with
// the per-strategy aggregates.
type BatchResult struct {
	Records []StrategyOutcome
	Stay    StrategyStats
	Switch  StrategyStats
}

// RunBatch simulates the requested number of trials and folds their records
// into per-strategy win proportions.
//
// # Determinism
//
// Given the same Seed, Trials, and Workers values, RunBatch always produces
// the same BatchResult. Changing Workers regroups trials across sub-seeded
// sources and therefore produces a different (still valid) sample.
func RunBatch(request BatchRequest) (BatchResult, error) {
	if request.Trials <= 0 {
		return BatchResult{
			Records: []StrategyOutcome{},
			Stay:    StrategyStats{Strategy: StrategyStay},
			Switch:  StrategyStats{Strategy: StrategySwitch},
		}, nil
	}

	workers := request.Workers
	if workers > request.Trials {
		workers = request.Trials
	}

	var records []StrategyOutcome
	var err error
	if workers <= 1 {
		records, err = runTrials(rand.New(rand.NewSource(request.Seed)), request.Trials)
	} else {
		records, err = runTrialsParallel(request.Seed, request.Trials, workers)
	}
	if err != nil {
		return BatchResult{}, err
	}

	stay, switched := summarize(records)
	return BatchResult{Records: records, Stay: stay, Switch: switched}, nil
}

// runTrials plays the requested number of trials against one random source
// and appends both records of each trial in order.
func runTrials(rng *rand.Rand, trials int) ([]StrategyOutcome, error) {
	records := make([]StrategyOutcome, 0, trials*recordsPerTrial)
	for range trials {
		trial, err := PlayTrial(rng)
		if err != nil {
			return nil, err
		}
		records = append(records, trial.Records[:]...)
	}
	return records, nil
}

// runTrialsParallel partitions trials across workers, each with a derived
// sub-seed, and stitches the chunks back together in worker order.
func runTrialsParallel(seed int64, trials, workers int) ([]StrategyOutcome, error) {
	chunks := partition(trials, workers)
	results := make([][]StrategyOutcome, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	for i, size := range chunks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(random.SubSeed(seed, i)))
			results[i], errs[i] = runTrials(rng, size)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	records := make([]StrategyOutcome, 0, trials*recordsPerTrial)
	for _, chunk := range results {
		records = append(records, chunk...)
	}
	return records, nil
}

// summarize folds batch records into per-strategy win counts.
func summarize(records []StrategyOutcome) (stay, switched StrategyStats) {
	stay = StrategyStats{Strategy: StrategyStay}
	switched = StrategyStats{Strategy: StrategySwitch}
	for _, record := range records {
		target := &stay
		if record.Strategy == StrategySwitch {
			target = &switched
		}
		target.Games++
		if record.Outcome == OutcomeWin {
			target.Wins++
		}
	}
	return stay, switched
}

// partition splits trials into near-equal chunk sizes, one per worker.
func partition(trials, workers int) []int {
	sizes := make([]int, workers)
	base := trials / workers
	extra := trials % workers
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}
