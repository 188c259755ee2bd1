// Package app wires the simulation runtime: seeding, batch execution,
// persistence, and reporting.
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/montyhall/internal/montyhall"
	"github.com/louisbranch/montyhall/internal/platform/id"
	"github.com/louisbranch/montyhall/internal/random"
	"github.com/louisbranch/montyhall/internal/services/sim/report"
	"github.com/louisbranch/montyhall/internal/services/sim/storage"
	simsqlite "github.com/louisbranch/montyhall/internal/services/sim/storage/sqlite"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies the sim runtime tracer.
const tracerName = "github.com/louisbranch/montyhall/internal/services/sim"

// RuntimeConfig controls one simulation run.
type RuntimeConfig struct {
	// Trials is the number of games to simulate.
	Trials int
	// Seed drives the batch; zero requests a crypto-random seed.
	Seed int64
	// Workers splits trials across goroutines when greater than one.
	Workers int
	// DBPath locates the SQLite run store; empty disables persistence.
	DBPath string
	// Out receives the rendered report. Defaults to stdout.
	Out io.Writer
}

// Run executes one batch: resolve the seed, simulate, persist the aggregate
// when a store is configured, and render the report.
func Run(ctx context.Context, cfg RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	seed := cfg.Seed
	if seed == 0 {
		generated, err := random.NewSeed()
		if err != nil {
			return fmt.Errorf("generate batch seed: %w", err)
		}
		seed = generated
		log.Printf("using generated seed %d", seed)
	}

	result, err := runBatch(ctx, montyhall.BatchRequest{
		Trials:  cfg.Trials,
		Seed:    seed,
		Workers: cfg.Workers,
	})
	if err != nil {
		return fmt.Errorf("run batch: %w", err)
	}

	if strings.TrimSpace(cfg.DBPath) != "" {
		if err := recordRun(ctx, cfg, seed, result); err != nil {
			return err
		}
	}

	return report.Write(cfg.Out, report.Summary{
		Trials: result.Stay.Games,
		Seed:   seed,
		Stay:   result.Stay,
		Switch: result.Switch,
	})
}

// runBatch executes the batch inside a trace span.
func runBatch(ctx context.Context, request montyhall.BatchRequest) (montyhall.BatchResult, error) {
	tracer := otel.Tracer(tracerName)
	_, span := tracer.Start(ctx, "sim.run_batch", trace.WithAttributes(
		attribute.Int("sim.trials", request.Trials),
		attribute.Int("sim.workers", request.Workers),
	))
	defer span.End()

	result, err := montyhall.RunBatch(request)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return montyhall.BatchResult{}, err
	}
	span.SetAttributes(
		attribute.Int("sim.stay_wins", result.Stay.Wins),
		attribute.Int("sim.switch_wins", result.Switch.Wins),
	)
	return result, nil
}

// recordRun persists the batch aggregate to the configured SQLite store.
func recordRun(ctx context.Context, cfg RuntimeConfig, seed int64, result montyhall.BatchResult) error {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create sim storage dir: %w", err)
		}
	}

	store, err := simsqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open sim sqlite store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("close sim sqlite store: %v", closeErr)
		}
	}()

	runID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("generate run id: %w", err)
	}

	if err := store.RecordRun(ctx, storage.RunRecord{
		ID:               runID,
		Trials:           result.Stay.Games,
		Seed:             seed,
		Workers:          cfg.Workers,
		StayWins:         result.Stay.Wins,
		SwitchWins:       result.Switch.Wins,
		StayProportion:   result.Stay.Proportion(),
		SwitchProportion: result.Switch.Proportion(),
	}); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}
