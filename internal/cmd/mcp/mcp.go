// Package mcp parses MCP command flags and starts the stdio server.
package mcp

import (
	"context"
	"flag"

	platformcmd "github.com/louisbranch/montyhall/internal/platform/cmd"
	"github.com/louisbranch/montyhall/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Transport string `env:"MONTYHALL_MCP_TRANSPORT" envDefault:"stdio"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{
			Transport: service.TransportKind(cfg.Transport),
		})
	})
}
