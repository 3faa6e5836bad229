package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sonali8434/IRanges/splitter"
)

type splitInput struct {
	Strings []*string `json:"strings"         jsonschema:"The strings to split; null entries are rejected"`
	Sep     string    `json:"sep,omitempty"   jsonschema:"Single-character separator (default ','); cannot be a digit or sign"`
}

type splitOutput struct {
	Lists [][]int32 `json:"lists"`
}

func handleSplit(_ context.Context, _ *mcp.CallToolRequest, input splitInput) (*mcp.CallToolResult, splitOutput, error) {
	if len(input.Strings) > cfg.MaxStrings {
		return errResult(fmt.Errorf("too many strings: %d (limit %d)", len(input.Strings), cfg.MaxStrings)), splitOutput{}, nil
	}
	for i, str := range input.Strings {
		if str != nil && len(*str) > cfg.MaxInputBytes {
			return errResult(fmt.Errorf("string %d too long: %d bytes (limit %d)", i+1, len(*str), cfg.MaxInputBytes)), splitOutput{}, nil
		}
	}

	sepStr := input.Sep
	if sepStr == "" {
		sepStr = ","
	}
	if len(sepStr) != 1 {
		return errResult(fmt.Errorf("separator must be a single character, got %q", sepStr)), splitOutput{}, nil
	}

	s, err := splitter.New(sepStr[0])
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}
	lists, err := s.SplitValues(input.Strings)
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}

	return nil, splitOutput{Lists: lists}, nil
}
