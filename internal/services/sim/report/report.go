// Package report renders batch summaries for humans.
//
// Rounding happens here, at the presentation boundary: the domain keeps raw
// proportions and the report truncates them to two decimals for display.
package report

import (
	"fmt"
	"io"

	"github.com/louisbranch/montyhall/internal/montyhall"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary describes one completed batch for rendering.
type Summary struct {
	Trials int
	Seed   int64
	Stay   montyhall.StrategyStats
	Switch montyhall.StrategyStats
}

// Write renders the proportion table for a batch.
func Write(w io.Writer, summary Summary) error {
	if w == nil {
		return fmt.Errorf("writer is required")
	}

	printer := message.NewPrinter(language.English)
	if _, err := printer.Fprintf(w, "Monty Hall simulation: %d trials (seed %d)\n\n", summary.Trials, summary.Seed); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%-10s %12s %12s %10s\n", "strategy", "games", "wins", "win rate"); err != nil {
		return fmt.Errorf("write report columns: %w", err)
	}
	for _, stats := range []montyhall.StrategyStats{summary.Stay, summary.Switch} {
		row := fmt.Sprintf("%-10s %12s %12s %10.2f\n",
			stats.Strategy,
			printer.Sprintf("%d", stats.Games),
			printer.Sprintf("%d", stats.Wins),
			stats.Proportion(),
		)
		if _, err := io.WriteString(w, row); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	return nil
}
