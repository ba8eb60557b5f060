package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/srcbundle/bundle"
	"github.com/erraggy/srcbundle/chunk"
	"github.com/erraggy/srcbundle/internal/pathutil"
)

type concatSource struct {
	File      string  `json:"file,omitempty"      jsonschema:"Path of a source file to read. Mutually exclusive with text."`
	Text      string  `json:"text,omitempty"      jsonschema:"Inline content with no mapping identity. Mutually exclusive with file."`
	Separator *string `json:"separator,omitempty" jsonschema:"Separator emitted before this source, overriding the default"`
}

type concatInput struct {
	Sources        []concatSource `json:"sources"                   jsonschema:"Sources to concatenate, in order (minimum 1)"`
	Intro          string         `json:"intro,omitempty"           jsonschema:"Text prepended before the first source"`
	Outro          string         `json:"outro,omitempty"           jsonschema:"Text appended after the last source"`
	Separator      *string        `json:"separator,omitempty"       jsonschema:"Default separator between sources (default newline)"`
	Indent         string         `json:"indent,omitempty"          jsonschema:"Indentation unit applied to every line, or detect for the dominant unit"`
	Trim           string         `json:"trim,omitempty"            jsonschema:"Character class trimmed from both ends, or true for whitespace"`
	HighRes        bool           `json:"hires,omitempty"           jsonschema:"Emit a mapping segment per original character instead of per line span"`
	IncludeContent bool           `json:"include_content,omitempty" jsonschema:"Embed each source's original content in the map"`
	Output         string         `json:"output,omitempty"          jsonschema:"File path to write the composed text. If omitted the text is returned inline."`
	MapOutput      string         `json:"map_output,omitempty"      jsonschema:"File path to write the source map JSON. If omitted the map is returned inline."`
}

type concatOutput struct {
	SourceCount  int    `json:"source_count"`
	LineCount    int    `json:"line_count"`
	Text         string `json:"text,omitempty"`
	Map          string `json:"map,omitempty"`
	WrittenTo    string `json:"written_to,omitempty"`
	MapWrittenTo string `json:"map_written_to,omitempty"`
	Summary      string `json:"summary"`
}

func handleConcat(_ context.Context, _ *mcp.CallToolRequest, input concatInput) (*mcp.CallToolResult, concatOutput, error) {
	if len(input.Sources) == 0 {
		return errResult(fmt.Errorf("at least 1 source is required")), concatOutput{}, nil
	}
	if len(input.Sources) > cfg.MaxSources {
		return errResult(fmt.Errorf("too many sources: got %d, maximum is %d; set SRCBUNDLE_MAX_SOURCES to increase",
			len(input.Sources), cfg.MaxSources)), concatOutput{}, nil
	}

	opts := []bundle.Option{
		bundle.WithIntro(input.Intro),
		bundle.WithOutro(input.Outro),
	}
	if input.Separator != nil {
		opts = append(opts, bundle.WithSeparator(*input.Separator))
	}
	b := bundle.New(opts...)

	for i, src := range input.Sources {
		switch {
		case src.File != "" && src.Text != "":
			return errResult(fmt.Errorf("sources[%d]: file and text are mutually exclusive", i)), concatOutput{}, nil
		case src.File == "" && src.Text == "":
			return errResult(fmt.Errorf("sources[%d]: one of file or text is required", i)), concatOutput{}, nil
		case src.Text != "":
			if len(src.Text) > cfg.MaxSourceBytes {
				return errResult(fmt.Errorf("sources[%d]: inline text exceeds %d bytes", i, cfg.MaxSourceBytes)), concatOutput{}, nil
			}
			var sep []string
			if src.Separator != nil {
				sep = []string{*src.Separator}
			}
			b.Append(src.Text, sep...)
		default:
			content, err := os.ReadFile(src.File)
			if err != nil {
				return errResult(fmt.Errorf("sources[%d]: %w", i, err)), concatOutput{}, nil
			}
			if len(content) > cfg.MaxSourceBytes {
				return errResult(fmt.Errorf("sources[%d]: %s exceeds %d bytes", i, src.File, cfg.MaxSourceBytes)), concatOutput{}, nil
			}
			err = b.AddSource(bundle.Source{
				Content:   chunk.NewEditor(string(content), chunk.WithFilename(src.File)),
				Separator: src.Separator,
			})
			if err != nil {
				return errResult(fmt.Errorf("sources[%d]: %w", i, err)), concatOutput{}, nil
			}
		}
	}

	switch input.Indent {
	case "":
	case "detect":
		b.Indent("")
	default:
		b.Indent(input.Indent)
	}
	switch input.Trim {
	case "":
	case "true":
		if err := b.Trim(""); err != nil {
			return errResult(err), concatOutput{}, nil
		}
	default:
		if err := b.Trim(input.Trim); err != nil {
			return errResult(err), concatOutput{}, nil
		}
	}

	text := b.String()
	mapOpts := []bundle.MapOption{bundle.WithFile(input.Output)}
	if input.IncludeContent {
		mapOpts = append(mapOpts, bundle.WithIncludeContent())
	}
	if input.HighRes {
		mapOpts = append(mapOpts, bundle.WithHighRes())
	}
	sm := b.GenerateMap(mapOpts...)
	mapJSON, err := sm.ToJSON()
	if err != nil {
		return errResult(err), concatOutput{}, nil
	}

	output := concatOutput{
		SourceCount: len(input.Sources),
		LineCount:   strings.Count(text, "\n") + 1,
	}

	if input.Output != "" {
		cleanPath, pathErr := pathutil.SanitizeOutputPath(input.Output)
		if pathErr != nil {
			return errResult(fmt.Errorf("invalid output path: %w", pathErr)), concatOutput{}, nil
		}
		if err := os.WriteFile(cleanPath, []byte(text), 0o600); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), concatOutput{}, nil
		}
		output.WrittenTo = cleanPath
	} else {
		output.Text = text
	}

	if input.MapOutput != "" {
		cleanPath, pathErr := pathutil.SanitizeOutputPath(input.MapOutput)
		if pathErr != nil {
			return errResult(fmt.Errorf("invalid map output path: %w", pathErr)), concatOutput{}, nil
		}
		if err := os.WriteFile(cleanPath, mapJSON, 0o600); err != nil {
			return errResult(fmt.Errorf("failed to write map file: %w", err)), concatOutput{}, nil
		}
		output.MapWrittenTo = cleanPath
	} else {
		output.Map = string(mapJSON)
	}

	output.Summary = buildConcatSummary(output)
	return nil, output, nil
}

func buildConcatSummary(output concatOutput) string {
	summary := fmt.Sprintf("Concatenated %s into %s.",
		formatCount(output.SourceCount, "source"),
		formatCount(output.LineCount, "line"))
	if output.WrittenTo != "" {
		summary += " Wrote " + output.WrittenTo + "."
	}
	if output.MapWrittenTo != "" {
		summary += " Wrote map " + output.MapWrittenTo + "."
	}
	return summary
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
