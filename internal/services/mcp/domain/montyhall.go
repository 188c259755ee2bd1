package domain

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/louisbranch/montyhall/internal/montyhall"
	"github.com/louisbranch/montyhall/internal/random"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// StrategyOutcomeResult represents one strategy record of a trial.
type StrategyOutcomeResult struct {
	Strategy string `json:"strategy" jsonschema:"contestant strategy (stay or switch)"`
	Outcome  string `json:"outcome" jsonschema:"game outcome (WIN or LOSE)"`
}

// PlayTrialInput represents the MCP tool input for a single trial.
type PlayTrialInput struct {
	Seed *int64 `json:"seed,omitempty" jsonschema:"optional seed for a deterministic trial"`
}

// PlayTrialResult represents the MCP tool output for a single trial.
type PlayTrialResult struct {
	Game     []string                `json:"game" jsonschema:"prize behind each door, in door order"`
	Pick     int                     `json:"pick" jsonschema:"contestant's initial door"`
	Opened   int                     `json:"opened" jsonschema:"goat door opened by the host"`
	Records  []StrategyOutcomeResult `json:"records" jsonschema:"stay and switch outcomes for the realized game"`
	SeedUsed int64                   `json:"seed_used" jsonschema:"seed value used by the server"`
}

// RunBatchInput represents the MCP tool input for a batch run.
type RunBatchInput struct {
	Trials  int    `json:"trials" jsonschema:"number of games to simulate"`
	Seed    *int64 `json:"seed,omitempty" jsonschema:"optional seed for a deterministic batch"`
	Workers int    `json:"workers,omitempty" jsonschema:"optional goroutine count for parallel trials"`
}

// StrategyStatsResult represents per-strategy aggregates of a batch.
type StrategyStatsResult struct {
	Strategy   string  `json:"strategy" jsonschema:"contestant strategy (stay or switch)"`
	Games      int     `json:"games" jsonschema:"number of games played with this strategy"`
	Wins       int     `json:"wins" jsonschema:"number of games won with this strategy"`
	Proportion float64 `json:"proportion" jsonschema:"raw win proportion, unrounded"`
}

// RunBatchResult represents the MCP tool output for a batch run.
type RunBatchResult struct {
	Trials   int                 `json:"trials" jsonschema:"number of games simulated"`
	SeedUsed int64               `json:"seed_used" jsonschema:"seed value used by the server"`
	Stay     StrategyStatsResult `json:"stay" jsonschema:"aggregates for the stay strategy"`
	Switch   StrategyStatsResult `json:"switch" jsonschema:"aggregates for the switch strategy"`
}

// RevealGoatDoorInput represents the MCP tool input for a host reveal.
type RevealGoatDoorInput struct {
	Game []string `json:"game" jsonschema:"prize behind each door, in door order (goat or car)"`
	Pick int      `json:"pick" jsonschema:"contestant's initial door"`
	Seed *int64   `json:"seed,omitempty" jsonschema:"optional seed for a deterministic reveal"`
}

// RevealGoatDoorResult represents the MCP tool output for a host reveal.
type RevealGoatDoorResult struct {
	Opened int `json:"opened" jsonschema:"goat door opened by the host"`
}

// ChangeDoorInput represents the MCP tool input for strategy resolution.
type ChangeDoorInput struct {
	Stay   bool `json:"stay" jsonschema:"true keeps the pick, false switches to the remaining door"`
	Opened int  `json:"opened" jsonschema:"goat door opened by the host"`
	Pick   int  `json:"pick" jsonschema:"contestant's initial door"`
}

// ChangeDoorResult represents the MCP tool output for strategy resolution.
type ChangeDoorResult struct {
	Final int `json:"final" jsonschema:"contestant's final door"`
}

// DetermineWinnerInput represents the MCP tool input for outcome judging.
type DetermineWinnerInput struct {
	Game  []string `json:"game" jsonschema:"prize behind each door, in door order (goat or car)"`
	Final int      `json:"final" jsonschema:"contestant's final door"`
}

// DetermineWinnerResult represents the MCP tool output for outcome judging.
type DetermineWinnerResult struct {
	Outcome string `json:"outcome" jsonschema:"game outcome (WIN or LOSE)"`
}

// RulesInput represents the MCP tool input for puzzle metadata.
type RulesInput struct{}

// RulesResult represents the MCP tool output for puzzle metadata.
type RulesResult struct {
	Doors      int      `json:"doors" jsonschema:"number of doors"`
	Prizes     []string `json:"prizes" jsonschema:"prize multiset hidden behind the doors"`
	Strategies []string `json:"strategies" jsonschema:"supported contestant strategies"`
	HostRule   string   `json:"host_rule" jsonschema:"how the host selects the door to open"`
}

// PlayTrialTool defines the MCP tool schema for a single trial.
func PlayTrialTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "montyhall_play_trial",
		Description: "Plays one Monty Hall game and evaluates both strategies against it",
	}
}

// RunBatchTool defines the MCP tool schema for batch runs.
func RunBatchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "montyhall_run_batch",
		Description: "Simulates many Monty Hall games and reports per-strategy win proportions",
	}
}

// RevealGoatDoorTool defines the MCP tool schema for host reveals.
func RevealGoatDoorTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "montyhall_reveal_goat_door",
		Description: "Selects the goat door the host opens for a given game and pick",
	}
}

// ChangeDoorTool defines the MCP tool schema for strategy resolution.
func ChangeDoorTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "montyhall_change_door",
		Description: "Resolves the contestant's final door for the stay or switch strategy",
	}
}

// DetermineWinnerTool defines the MCP tool schema for outcome judging.
func DetermineWinnerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "montyhall_determine_winner",
		Description: "Classifies a final door against the realized game",
	}
}

// RulesTool defines the MCP tool schema for puzzle metadata.
func RulesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "montyhall_rules",
		Description: "Describes the Monty Hall puzzle mechanics",
	}
}

// PlayTrialHandler plays one full trial.
func PlayTrialHandler() mcp.ToolHandlerFor[PlayTrialInput, PlayTrialResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PlayTrialInput) (*mcp.CallToolResult, PlayTrialResult, error) {
		seed, err := resolveSeed(input.Seed)
		if err != nil {
			return nil, PlayTrialResult{}, err
		}

		trial, err := montyhall.PlayTrial(rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, PlayTrialResult{}, fmt.Errorf("play trial: %w", err)
		}

		records := make([]StrategyOutcomeResult, 0, len(trial.Records))
		for _, record := range trial.Records {
			records = append(records, StrategyOutcomeResult{
				Strategy: record.Strategy.String(),
				Outcome:  record.Outcome.String(),
			})
		}

		return nil, PlayTrialResult{
			Game:     assignmentLabels(trial.Game),
			Pick:     int(trial.Pick),
			Opened:   int(trial.Opened),
			Records:  records,
			SeedUsed: seed,
		}, nil
	}
}

// RunBatchHandler simulates a batch of trials.
func RunBatchHandler() mcp.ToolHandlerFor[RunBatchInput, RunBatchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RunBatchInput) (*mcp.CallToolResult, RunBatchResult, error) {
		seed, err := resolveSeed(input.Seed)
		if err != nil {
			return nil, RunBatchResult{}, err
		}

		result, err := montyhall.RunBatch(montyhall.BatchRequest{
			Trials:  input.Trials,
			Seed:    seed,
			Workers: input.Workers,
		})
		if err != nil {
			return nil, RunBatchResult{}, fmt.Errorf("run batch: %w", err)
		}

		return nil, RunBatchResult{
			Trials:   result.Stay.Games,
			SeedUsed: seed,
			Stay:     statsResult(result.Stay),
			Switch:   statsResult(result.Switch),
		}, nil
	}
}

// RevealGoatDoorHandler selects the host's door for a provided game.
func RevealGoatDoorHandler() mcp.ToolHandlerFor[RevealGoatDoorInput, RevealGoatDoorResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RevealGoatDoorInput) (*mcp.CallToolResult, RevealGoatDoorResult, error) {
		game, err := parseAssignment(input.Game)
		if err != nil {
			return nil, RevealGoatDoorResult{}, err
		}
		seed, err := resolveSeed(input.Seed)
		if err != nil {
			return nil, RevealGoatDoorResult{}, err
		}

		opened, err := montyhall.OpenGoatDoor(rand.New(rand.NewSource(seed)), game, montyhall.Door(input.Pick))
		if err != nil {
			return nil, RevealGoatDoorResult{}, fmt.Errorf("reveal goat door: %w", err)
		}
		return nil, RevealGoatDoorResult{Opened: int(opened)}, nil
	}
}

// ChangeDoorHandler resolves a final door for one strategy.
func ChangeDoorHandler() mcp.ToolHandlerFor[ChangeDoorInput, ChangeDoorResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChangeDoorInput) (*mcp.CallToolResult, ChangeDoorResult, error) {
		final, err := montyhall.ChangeDoor(input.Stay, montyhall.Door(input.Opened), montyhall.Door(input.Pick))
		if err != nil {
			return nil, ChangeDoorResult{}, fmt.Errorf("change door: %w", err)
		}
		return nil, ChangeDoorResult{Final: int(final)}, nil
	}
}

// DetermineWinnerHandler classifies a final door.
func DetermineWinnerHandler() mcp.ToolHandlerFor[DetermineWinnerInput, DetermineWinnerResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DetermineWinnerInput) (*mcp.CallToolResult, DetermineWinnerResult, error) {
		game, err := parseAssignment(input.Game)
		if err != nil {
			return nil, DetermineWinnerResult{}, err
		}
		outcome, err := montyhall.DetermineWinner(montyhall.Door(input.Final), game)
		if err != nil {
			return nil, DetermineWinnerResult{}, fmt.Errorf("determine winner: %w", err)
		}
		return nil, DetermineWinnerResult{Outcome: outcome.String()}, nil
	}
}

// RulesHandler describes the puzzle mechanics.
func RulesHandler() mcp.ToolHandlerFor[RulesInput, RulesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ RulesInput) (*mcp.CallToolResult, RulesResult, error) {
		return nil, RulesResult{
			Doors:      3,
			Prizes:     []string{"goat", "goat", "car"},
			Strategies: []string{montyhall.StrategyStay.String(), montyhall.StrategySwitch.String()},
			HostRule:   "opens a goat door that is never the contestant's pick; chooses uniformly when the pick hides the car",
		}, nil
	}
}

// resolveSeed uses the client seed when provided and generates a
// crypto-random one otherwise.
func resolveSeed(seed *int64) (int64, error) {
	if seed != nil {
		return *seed, nil
	}
	generated, err := random.NewSeed()
	if err != nil {
		return 0, fmt.Errorf("generate seed: %w", err)
	}
	return generated, nil
}

// parseAssignment converts door labels into a domain assignment.
func parseAssignment(labels []string) (montyhall.Assignment, error) {
	var game montyhall.Assignment
	if len(labels) != len(game) {
		return montyhall.Assignment{}, fmt.Errorf("game must list exactly %d doors, got %d", len(game), len(labels))
	}
	for i, label := range labels {
		switch label {
		case montyhall.PrizeGoat.String():
			game[i] = montyhall.PrizeGoat
		case montyhall.PrizeCar.String():
			game[i] = montyhall.PrizeCar
		default:
			return montyhall.Assignment{}, fmt.Errorf("door %d hides unknown prize %q", i+1, label)
		}
	}
	if err := game.Validate(); err != nil {
		return montyhall.Assignment{}, err
	}
	return game, nil
}

// assignmentLabels converts a domain assignment into door labels.
func assignmentLabels(game montyhall.Assignment) []string {
	labels := make([]string, 0, len(game))
	for _, prize := range game {
		labels = append(labels, prize.String())
	}
	return labels
}

// statsResult converts domain aggregates into the MCP output shape.
func statsResult(stats montyhall.StrategyStats) StrategyStatsResult {
	return StrategyStatsResult{
		Strategy:   stats.Strategy.String(),
		Games:      stats.Games,
		Wins:       stats.Wins,
		Proportion: stats.Proportion(),
	}
}
