// Package domain defines the MCP tool schemas and handlers for the Monty
// Hall simulator. Handlers bind directly to the montyhall domain package.
package domain
