package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sonali8434/IRanges/strutil"
)

type svnTimeInput struct{}

type svnTimeOutput struct {
	Time string `json:"time"`
}

func handleSVNTime(_ context.Context, _ *mcp.CallToolRequest, _ svnTimeInput) (*mcp.CallToolResult, svnTimeOutput, error) {
	return nil, svnTimeOutput{Time: strutil.SVNTimeNow()}, nil
}
