package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resolveMap = `{
  "version": 3,
  "sources": ["a.js", "b.js"],
  "names": [],
  "mappings": "AAAA;ACAA"
}`

func TestResolvePositionTool(t *testing.T) {
	input := resolveInput{Map: resolveMap, Line: 1, Column: 3}
	result, output, err := handleResolvePosition(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "b.js", output.Source)
	assert.Equal(t, 0, output.Line)
	assert.Equal(t, 0, output.Column)
	assert.Contains(t, output.Summary, "1:3 maps to b.js 0:0")
}

func TestResolvePositionTool_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.js.map")
	require.NoError(t, os.WriteFile(path, []byte(resolveMap), 0o644))

	input := resolveInput{MapFile: path, Line: 0, Column: 0}
	_, output, err := handleResolvePosition(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "a.js", output.Source)
}

func TestResolvePositionTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input resolveInput
		want  string
	}{
		{
			name:  "no map",
			input: resolveInput{Line: 0},
			want:  "one of map or map_file",
		},
		{
			name:  "both map and map_file",
			input: resolveInput{Map: resolveMap, MapFile: "x.map"},
			want:  "mutually exclusive",
		},
		{
			name:  "invalid json",
			input: resolveInput{Map: "{"},
			want:  "invalid source map",
		},
		{
			name:  "negative position",
			input: resolveInput{Map: resolveMap, Line: -1},
			want:  "non-negative",
		},
		{
			name:  "unmapped line",
			input: resolveInput{Map: resolveMap, Line: 9},
			want:  "no mapping",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleResolvePosition(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.want)
		})
	}
}
