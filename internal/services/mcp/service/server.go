package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/montyhall/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Monty Hall MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

// TransportStdio uses standard input/output for MCP.
const TransportStdio TransportKind = "stdio"

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server with all simulator tools registered.
func New() *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, domain.PlayTrialTool(), domain.PlayTrialHandler())
	mcp.AddTool(mcpServer, domain.RunBatchTool(), domain.RunBatchHandler())
	mcp.AddTool(mcpServer, domain.RevealGoatDoorTool(), domain.RevealGoatDoorHandler())
	mcp.AddTool(mcpServer, domain.ChangeDoorTool(), domain.ChangeDoorHandler())
	mcp.AddTool(mcpServer, domain.DetermineWinnerTool(), domain.DetermineWinnerHandler())
	mcp.AddTool(mcpServer, domain.RulesTool(), domain.RulesHandler())

	return &Server{mcpServer: mcpServer}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the expected shutdown path, not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// Run is the service entrypoint for MCP and blocks until context
// cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return New().Serve(ctx)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}
