// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes iranges capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	iranges "github.com/sonali8434/IRanges"
)

const serverInstructions = `iranges MCP server — strict splitting of delimited integer-list strings.

The split tool parses each string into validated 32-bit integers. It is strict: non-numeric tokens, out-of-range values, misplaced separators, and trailing separators all fail with a position-anchored message instead of being coerced. Batches are fail-fast: the first failing string aborts the request, identifying the offending element.

Configuration: defaults are configurable via IRANGES_* environment variables set in your MCP client config.

Key settings:
- IRANGES_MAX_STRINGS (default: 10000) — maximum strings per split request
- IRANGES_MAX_INPUT_BYTES (default: 1048576) — maximum length of one input string`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "iranges", Version: iranges.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "split",
		Description: "Split delimited integer-list strings into validated 32-bit integers. Input is an array of strings and an optional single-character separator (default ','; cannot be a digit, '+', or '-'). Strict and fail-fast: the first malformed string aborts the batch with its 1-based element index and the character offset of the problem. Null strings in the array are rejected before any splitting.",
	}, handleSplit)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "explode",
		Description: "Explode a string into single characters, one per byte. Safe on arbitrary content including invalid UTF-8; the result always has exactly as many elements as the input has bytes.",
	}, handleExplode)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "svn_time",
		Description: "Return the current time in Subversion format, e.g. '2007-12-07 10:03:15 -0800 (Fri, 07 Dec 2007)'.",
	}, handleSVNTime)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
