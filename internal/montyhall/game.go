package montyhall

import "math/rand"

// NewAssignment shuffles the fixed goat/goat/car prize set uniformly across
// the three doors.
func NewAssignment(rng *rand.Rand) (Assignment, error) {
	if rng == nil {
		return Assignment{}, ErrMissingRNG
	}
	assignment := Assignment{PrizeGoat, PrizeGoat, PrizeCar}
	rng.Shuffle(len(assignment), func(i, j int) {
		assignment[i], assignment[j] = assignment[j], assignment[i]
	})
	return assignment, nil
}

// PickDoor draws the contestant's initial door uniformly at random,
// independent of the prize assignment.
func PickDoor(rng *rand.Rand) (Door, error) {
	if rng == nil {
		return 0, ErrMissingRNG
	}
	return Door(rng.Intn(doorCount) + 1), nil
}

// OpenGoatDoor selects the door the host opens. The opened door always hides
// a goat and is never the contestant's pick.
//
// When the pick hides the car, both remaining doors hide goats and the host
// chooses between them uniformly at random. When the pick hides a goat,
// exactly one legal door remains and the host opens it deterministically.
// This asymmetry is what skews the switch strategy to a 2/3 win rate; the
// host draws from the random source only in the first branch.
func OpenGoatDoor(rng *rand.Rand, game Assignment, pick Door) (Door, error) {
	if rng == nil {
		return 0, ErrMissingRNG
	}
	if err := game.Validate(); err != nil {
		return 0, err
	}
	if !pick.Valid() {
		return 0, ErrInvalidDoor
	}

	remaining := otherDoors(pick)
	if game.Prize(pick) == PrizeCar {
		return remaining[rng.Intn(len(remaining))], nil
	}
	for _, door := range remaining {
		if game.Prize(door) == PrizeGoat {
			return door, nil
		}
	}
	// Unreachable for a validated assignment.
	return 0, ErrInvalidAssignment
}

// ChangeDoor resolves the contestant's final door for one strategy. Staying
// keeps the pick; switching selects the unique door that is neither opened
// nor picked.
func ChangeDoor(stay bool, opened, pick Door) (Door, error) {
	if !opened.Valid() || !pick.Valid() {
		return 0, ErrInvalidDoor
	}
	if opened == pick {
		return 0, ErrSameDoor
	}
	if stay {
		return pick, nil
	}
	// Doors are numbered 1..3, so the remaining door is the sum complement.
	return Door(1+2+doorCount) - opened - pick, nil
}

// DetermineWinner classifies the final pick against the realized game.
func DetermineWinner(final Door, game Assignment) (Outcome, error) {
	if err := game.Validate(); err != nil {
		return OutcomeLose, err
	}
	if !final.Valid() {
		return OutcomeLose, ErrInvalidDoor
	}
	if game.Prize(final) == PrizeCar {
		return OutcomeWin, nil
	}
	return OutcomeLose, nil
}

// Trial captures one realized game with both strategies evaluated against
// the same assignment, pick, and opened door.
type Trial struct {
	Game   Assignment
	Pick   Door
	Opened Door
	// Records holds the stay record first and the switch record second.
	Records [recordsPerTrial]StrategyOutcome
}

// PlayTrial runs one full game. The random source is consumed in a fixed
// order: assignment shuffle, contestant pick, then the host's choice when
// the pick hides the car. Both strategy records are counterfactual
// evaluations of the single realized game, not independent trials.
func PlayTrial(rng *rand.Rand) (Trial, error) {
	game, err := NewAssignment(rng)
	if err != nil {
		return Trial{}, err
	}
	pick, err := PickDoor(rng)
	if err != nil {
		return Trial{}, err
	}
	opened, err := OpenGoatDoor(rng, game, pick)
	if err != nil {
		return Trial{}, err
	}

	trial := Trial{Game: game, Pick: pick, Opened: opened}
	for i, strategy := range [...]Strategy{StrategyStay, StrategySwitch} {
		final, err := ChangeDoor(strategy == StrategyStay, opened, pick)
		if err != nil {
			return Trial{}, err
		}
		outcome, err := DetermineWinner(final, game)
		if err != nil {
			return Trial{}, err
		}
		trial.Records[i] = StrategyOutcome{Strategy: strategy, Outcome: outcome}
	}
	return trial, nil
}

// otherDoors returns the two doors that differ from the provided one, in
// ascending order.
func otherDoors(door Door) [2]Door {
	others := [2]Door{}
	i := 0
	for candidate := Door(1); candidate <= doorCount; candidate++ {
		if candidate != door {
			others[i] = candidate
			i++
		}
	}
	return others
}
