// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes srcbundle's concatenation and source-map capabilities as
// MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/srcbundle"
)

const serverInstructions = `srcbundle MCP server — concatenates source files into a single output with a merged v3 source map, and resolves generated positions back to their originals.

Configuration: All limits are configurable via SRCBUNDLE_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SRCBUNDLE_MAX_SOURCES (default: 64) — maximum sources per concat call
- SRCBUNDLE_MAX_SOURCE_BYTES (default: 4194304) — maximum bytes per source`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "srcbundle", Version: srcbundle.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "concat",
		Description: "Concatenate source files or inline text fragments into one output with a merged v3 source map. Each source is either a file path or inline text (inline text carries no mapping identity). Supports intro/outro banners, per-source and default separators, re-indentation (unit string, or \"detect\" for the dominant unit across sources), trimming by character class (\"true\" for whitespace), high-resolution per-character mappings, and embedding source contents in the map. Use output/map_output to write files instead of returning the result inline. Limits are configurable via SRCBUNDLE_MAX_SOURCES and SRCBUNDLE_MAX_SOURCE_BYTES env vars.",
	}, handleConcat)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_position",
		Description: "Resolve a generated (line, column) position back to its original source using a v3 source map. Provide the map as inline JSON or as a file path. Positions are zero-based; columns count bytes. Returns the original file, line, and column of the last mapping segment at or before the requested column.",
	}, handleResolvePosition)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
