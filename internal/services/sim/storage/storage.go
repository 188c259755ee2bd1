// Package storage defines the persistence interfaces for simulation runs.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// RunRecord captures the aggregate result of one completed batch.
type RunRecord struct {
	ID               string
	Trials           int
	Seed             int64
	Workers          int
	StayWins         int
	SwitchWins       int
	StayProportion   float64
	SwitchProportion float64
	CreatedAt        time.Time
}

// RunStore persists simulation run records.
type RunStore interface {
	RecordRun(ctx context.Context, run RunRecord) error
	GetRun(ctx context.Context, id string) (RunRecord, error)
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
}
