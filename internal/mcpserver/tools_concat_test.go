package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConcatTool_TwoFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.js", "function a(){}")
	b := writeSource(t, dir, "b.js", "function b(){}")

	input := concatInput{
		Sources: []concatSource{{File: a}, {File: b}},
	}
	result, output, err := handleConcat(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 2, output.SourceCount)
	assert.Equal(t, 2, output.LineCount)
	assert.Equal(t, "function a(){}\nfunction b(){}", output.Text)
	assert.Empty(t, output.WrittenTo)

	var sm map[string]any
	require.NoError(t, json.Unmarshal([]byte(output.Map), &sm))
	assert.Equal(t, "AAAA;ACAA", sm["mappings"])
}

func TestConcatTool_InlineTextAndOptions(t *testing.T) {
	dir := t.TempDir()
	body := writeSource(t, dir, "body.txt", "a\nb")

	input := concatInput{
		Sources: []concatSource{
			{File: body},
			{Text: "// eof"},
		},
		Intro:  "// generated\n",
		Indent: "  ",
	}
	_, output, err := handleConcat(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "// generated\n  a\n  b// eof", output.Text)
}

func TestConcatTool_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "src.txt", "hello")
	out := filepath.Join(dir, "out.txt")
	mapOut := filepath.Join(dir, "out.txt.map")

	input := concatInput{
		Sources:   []concatSource{{File: src}},
		Output:    out,
		MapOutput: mapOut,
	}
	result, output, err := handleConcat(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Empty(t, output.Text)
	assert.Empty(t, output.Map)
	assert.Equal(t, out, output.WrittenTo)
	assert.Equal(t, mapOut, output.MapWrittenTo)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(written))

	mapData, err := os.ReadFile(mapOut)
	require.NoError(t, err)
	var sm map[string]any
	require.NoError(t, json.Unmarshal(mapData, &sm))
	// the map's sources are rewritten relative to the output file
	assert.Equal(t, []any{"src.txt"}, sm["sources"])
}

func TestConcatTool_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input concatInput
		want  string
	}{
		{
			name:  "no sources",
			input: concatInput{},
			want:  "at least 1 source",
		},
		{
			name:  "file and text",
			input: concatInput{Sources: []concatSource{{File: "a.js", Text: "x"}}},
			want:  "mutually exclusive",
		},
		{
			name:  "neither file nor text",
			input: concatInput{Sources: []concatSource{{}}},
			want:  "one of file or text",
		},
		{
			name:  "missing file",
			input: concatInput{Sources: []concatSource{{File: "does-not-exist.js"}}},
			want:  "no such file",
		},
		{
			name:  "invalid trim class",
			input: concatInput{Sources: []concatSource{{Text: "x"}}, Trim: "["},
			want:  "configuration error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleConcat(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.want)
		})
	}
}

func TestConcatTool_SourceLimit(t *testing.T) {
	orig := cfg.MaxSources
	cfg.MaxSources = 1
	t.Cleanup(func() { cfg.MaxSources = orig })

	input := concatInput{
		Sources: []concatSource{{Text: "a"}, {Text: "b"}},
	}
	result, _, err := handleConcat(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestSanitizeError(t *testing.T) {
	assert.Equal(t, "", sanitizeError(nil))
	assert.Equal(t, "file does not exist", sanitizeError(os.ErrNotExist))

	err := &os.PathError{Op: "open", Path: "/home/user/secret.js", Err: os.ErrPermission}
	got := sanitizeError(err)
	assert.NotContains(t, got, "/home/user")
	assert.Contains(t, got, "<path>")
}
