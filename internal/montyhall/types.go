package montyhall

import "errors"

// doorCount is the number of doors in a game.
const doorCount = 3

// recordsPerTrial is the number of outcome records one trial yields.
const recordsPerTrial = 2

// Prize is what a door hides.
type Prize int

const (
	PrizeGoat Prize = iota
	PrizeCar
)

func (p Prize) String() string {
	switch p {
	case PrizeGoat:
		return "goat"
	case PrizeCar:
		return "car"
	default:
		return "unknown"
	}
}

// Door identifies one of the three door positions, numbered 1 through 3.
type Door int

// Valid reports whether the door is within the 1..3 range.
func (d Door) Valid() bool {
	return d >= 1 && d <= doorCount
}

// Assignment maps the three door positions to prizes. Door n is stored at
// index n-1. A valid assignment hides exactly one car and two goats.
type Assignment [doorCount]Prize

// Prize returns the prize behind the door. The door must be valid.
func (a Assignment) Prize(door Door) Prize {
	return a[door-1]
}

// Validate checks the one-car, two-goat invariant.
func (a Assignment) Validate() error {
	cars := 0
	for _, prize := range a {
		switch prize {
		case PrizeCar:
			cars++
		case PrizeGoat:
		default:
			return ErrInvalidAssignment
		}
	}
	if cars != 1 {
		return ErrInvalidAssignment
	}
	return nil
}

// Strategy is a contestant decision rule for the final pick.
type Strategy int

const (
	// StrategyStay keeps the initial pick.
	StrategyStay Strategy = iota
	// StrategySwitch moves to the other unopened door.
	StrategySwitch
)

func (s Strategy) String() string {
	switch s {
	case StrategyStay:
		return "stay"
	case StrategySwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// Outcome classifies a finished game for one strategy.
type Outcome int

const (
	OutcomeLose Outcome = iota
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "WIN"
	case OutcomeLose:
		return "LOSE"
	default:
		return "unknown"
	}
}

// StrategyOutcome pairs a strategy with the outcome it produced in a trial.
type StrategyOutcome struct {
	Strategy Strategy
	Outcome  Outcome
}

// ErrMissingRNG indicates a random source was not provided.
var ErrMissingRNG = errors.New("random source is required")

// ErrInvalidDoor indicates a door number outside the 1..3 range.
var ErrInvalidDoor = errors.New("door must be between 1 and 3")

// ErrInvalidAssignment indicates an assignment that does not hide exactly
// one car behind three doors.
var ErrInvalidAssignment = errors.New("assignment must hide exactly one car and two goats")

// ErrSameDoor indicates the opened and picked doors coincide.
var ErrSameDoor = errors.New("opened and picked doors must differ")
