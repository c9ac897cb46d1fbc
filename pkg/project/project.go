// Package project holds the name and version reported to MCP clients.
package project

const (
	Name    = "calc-mcp"
	Version = "0.1.0"
)
