// Package service hosts the MCP server that exposes the Monty Hall
// simulator over stdio.
package service
