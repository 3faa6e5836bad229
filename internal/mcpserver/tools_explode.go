package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sonali8434/IRanges/strutil"
)

type explodeInput struct {
	String string `json:"string" jsonschema:"The string to explode into single characters"`
}

type explodeOutput struct {
	Chars []string `json:"chars"`
}

func handleExplode(_ context.Context, _ *mcp.CallToolRequest, input explodeInput) (*mcp.CallToolResult, explodeOutput, error) {
	if len(input.String) > cfg.MaxInputBytes {
		return errResult(fmt.Errorf("string too long: %d bytes (limit %d)", len(input.String), cfg.MaxInputBytes)), explodeOutput{}, nil
	}
	return nil, explodeOutput{Chars: strutil.Explode(input.String)}, nil
}
