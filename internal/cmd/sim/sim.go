// Package sim parses simulation command flags and runs a batch.
package sim

import (
	"context"
	"flag"

	platformcmd "github.com/louisbranch/montyhall/internal/platform/cmd"
	"github.com/louisbranch/montyhall/internal/services/sim/app"
)

// Config holds simulation command configuration.
type Config struct {
	Trials  int    `env:"MONTYHALL_SIM_TRIALS"  envDefault:"10000"`
	Seed    int64  `env:"MONTYHALL_SIM_SEED"    envDefault:"0"`
	Workers int    `env:"MONTYHALL_SIM_WORKERS" envDefault:"1"`
	DBPath  string `env:"MONTYHALL_SIM_DB_PATH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of games to simulate")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for deterministic runs (0 generates one)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines used to run trials")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite path for run history (empty disables persistence)")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes one simulation batch with telemetry configured.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSim, func(ctx context.Context) error {
		return app.Run(ctx, app.RuntimeConfig{
			Trials:  cfg.Trials,
			Seed:    cfg.Seed,
			Workers: cfg.Workers,
			DBPath:  cfg.DBPath,
		})
	})
}
