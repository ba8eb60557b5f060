package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/srcbundle/sourcemap"
)

type resolveInput struct {
	Map     string `json:"map,omitempty"      jsonschema:"Source map JSON document. Mutually exclusive with map_file."`
	MapFile string `json:"map_file,omitempty" jsonschema:"Path of a source map file to read. Mutually exclusive with map."`
	Line    int    `json:"line"               jsonschema:"Zero-based generated line"`
	Column  int    `json:"column"             jsonschema:"Zero-based generated byte column"`
}

type resolveOutput struct {
	Source  string `json:"source"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Summary string `json:"summary"`
}

func handleResolvePosition(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	var data []byte
	switch {
	case input.Map != "" && input.MapFile != "":
		return errResult(fmt.Errorf("map and map_file are mutually exclusive")), resolveOutput{}, nil
	case input.Map != "":
		data = []byte(input.Map)
	case input.MapFile != "":
		var err error
		data, err = os.ReadFile(input.MapFile)
		if err != nil {
			return errResult(err), resolveOutput{}, nil
		}
	default:
		return errResult(fmt.Errorf("one of map or map_file is required")), resolveOutput{}, nil
	}

	sm, err := sourcemap.Parse(data)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	if input.Line < 0 || input.Column < 0 {
		return errResult(fmt.Errorf("line and column must be non-negative")), resolveOutput{}, nil
	}

	pos, ok := sm.Resolve(input.Line, input.Column)
	if !ok {
		return errResult(fmt.Errorf("no mapping at generated line %d, column %d", input.Line, input.Column)), resolveOutput{}, nil
	}

	output := resolveOutput{
		Source: pos.Source,
		Line:   pos.Line,
		Column: pos.Column,
		Summary: fmt.Sprintf("Generated %d:%d maps to %s %d:%d.",
			input.Line, input.Column, pos.Source, pos.Line, pos.Column),
	}
	return nil, output, nil
}
