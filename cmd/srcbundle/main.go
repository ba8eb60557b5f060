package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/srcbundle"
	"github.com/erraggy/srcbundle/bundle"
	"github.com/erraggy/srcbundle/chunk"
	"github.com/erraggy/srcbundle/internal/manifest"
	"github.com/erraggy/srcbundle/internal/mcpserver"
	"github.com/erraggy/srcbundle/internal/pathutil"
	"github.com/erraggy/srcbundle/sourcemap"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("srcbundle v%s\n", srcbundle.Version())
	case "help", "-h", "--help":
		printUsage()
	case "concat":
		if err := handleConcat(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := handleInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

var knownCommands = []string{"concat", "inspect", "mcp", "version", "help"}

// suggestCommand returns the closest known command within an edit
// distance of 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// concatFlags contains flags for the concat command
type concatFlags struct {
	output         string
	mapOutput      string
	separator      string
	intro          string
	outro          string
	indent         string
	trim           string
	hires          bool
	includeContent bool
	manifestPath   string
}

func setupConcatFlags() (*flag.FlagSet, *concatFlags) {
	fs := flag.NewFlagSet("concat", flag.ContinueOnError)
	flags := &concatFlags{}

	fs.StringVar(&flags.output, "o", "", "output file path (default stdout)")
	fs.StringVar(&flags.mapOutput, "map", "", "source map output path (default <output>.map when -o is set)")
	fs.StringVar(&flags.separator, "separator", "\n", "separator emitted between sources")
	fs.StringVar(&flags.intro, "intro", "", "text prepended before the first source")
	fs.StringVar(&flags.outro, "outro", "", "text appended after the last source")
	fs.StringVar(&flags.indent, "indent", "", "indentation unit applied to every line; 'detect' uses the dominant unit")
	fs.StringVar(&flags.trim, "trim", "", "character class trimmed from both ends; 'true' trims whitespace")
	fs.BoolVar(&flags.hires, "hires", false, "emit a mapping segment per original character")
	fs.BoolVar(&flags.includeContent, "include-content", false, "embed source contents in the map")
	fs.StringVar(&flags.manifestPath, "manifest", "", "YAML manifest describing the bundle (replaces positional files)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: srcbundle concat [flags] <file>...\n\n")
		_, _ = fmt.Fprintf(output, "Concatenate source files into one output with a merged source map.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  srcbundle concat -o dist/bundle.js src/a.js src/b.js\n")
		_, _ = fmt.Fprintf(output, "  srcbundle concat -intro '// generated\\n' -indent '  ' -o out.js a.js b.js\n")
		_, _ = fmt.Fprintf(output, "  srcbundle concat -manifest bundle.yaml\n")
	}

	return fs, flags
}

func handleConcat(args []string) error {
	fs, flags := setupConcatFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	var (
		b   *bundle.Bundle
		err error
	)
	switch {
	case flags.manifestPath != "":
		if fs.NArg() > 0 {
			return fmt.Errorf("-manifest and positional files are mutually exclusive")
		}
		b, err = buildFromManifest(flags)
	default:
		if fs.NArg() == 0 {
			fs.Usage()
			return fmt.Errorf("concat command requires at least one input file or -manifest")
		}
		b, err = buildFromFiles(fs.Args(), flags)
	}
	if err != nil {
		return err
	}

	switch flags.indent {
	case "":
	case "detect":
		b.Indent("")
	default:
		b.Indent(flags.indent)
	}
	switch flags.trim {
	case "":
	case "true":
		if err := b.Trim(""); err != nil {
			return err
		}
	default:
		if err := b.Trim(flags.trim); err != nil {
			return err
		}
	}

	return writeBundle(b, flags)
}

func buildFromFiles(paths []string, flags *concatFlags) (*bundle.Bundle, error) {
	b := bundle.New(
		bundle.WithIntro(flags.intro),
		bundle.WithOutro(flags.outro),
		bundle.WithSeparator(flags.separator),
	)
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
		err = b.AddSource(bundle.Source{
			Content: chunk.NewEditor(string(content), chunk.WithFilename(path)),
		})
		if err != nil {
			return nil, fmt.Errorf("registering %s: %w", path, err)
		}
	}
	return b, nil
}

func buildFromManifest(flags *concatFlags) (*bundle.Bundle, error) {
	m, err := manifest.Load(flags.manifestPath)
	if err != nil {
		return nil, err
	}
	// the manifest's own output settings apply unless overridden on the
	// command line
	if flags.output == "" {
		flags.output = m.Output
	}
	if flags.mapOutput == "" {
		flags.mapOutput = m.MapOutput
	}
	if flags.indent == "" {
		flags.indent = m.Indent
	}
	if flags.trim == "" {
		flags.trim = m.Trim
	}
	flags.hires = flags.hires || m.HighRes
	flags.includeContent = flags.includeContent || m.IncludeContent

	// Build applies the manifest's indent/trim; clear them so handleConcat
	// does not apply them twice.
	buildManifest := *m
	buildManifest.Indent = ""
	buildManifest.Trim = ""
	return buildManifest.Build(filepath.Dir(flags.manifestPath))
}

func writeBundle(b *bundle.Bundle, flags *concatFlags) error {
	mapPath := flags.mapOutput
	if mapPath == "" && flags.output != "" {
		mapPath = flags.output + ".map"
	}

	mapOpts := []bundle.MapOption{bundle.WithFile(flags.output)}
	if flags.includeContent {
		mapOpts = append(mapOpts, bundle.WithIncludeContent())
	}
	if flags.hires {
		mapOpts = append(mapOpts, bundle.WithHighRes())
	}
	sm := b.GenerateMap(mapOpts...)

	text := b.String()
	if flags.output == "" {
		fmt.Print(text)
		if !strings.HasSuffix(text, "\n") {
			fmt.Println()
		}
		if mapPath == "" {
			fmt.Println(sm.ToComment(""))
			return nil
		}
		cleanMapPath, err := pathutil.SanitizeOutputPath(mapPath)
		if err != nil {
			return fmt.Errorf("invalid map output path: %w", err)
		}
		mapJSON, err := sm.ToJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(cleanMapPath, mapJSON, 0o600); err != nil {
			return fmt.Errorf("writing map: %w", err)
		}
		fmt.Println(sm.ToComment(cleanMapPath))
		return nil
	}

	outPath, err := pathutil.SanitizeOutputPath(flags.output)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	mapPath, err = pathutil.SanitizeOutputPath(mapPath)
	if err != nil {
		return fmt.Errorf("invalid map output path: %w", err)
	}

	text += "\n" + sm.ToComment(mapPath) + "\n"
	if err := os.WriteFile(outPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	mapJSON, err := sm.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(mapPath, mapJSON, 0o600); err != nil {
		return fmt.Errorf("writing map: %w", err)
	}
	fmt.Printf("Wrote %s and %s\n", outPath, mapPath)
	return nil
}

func setupInspectFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: srcbundle inspect <file.map>\n\n")
		_, _ = fmt.Fprintf(output, "Decode a source map and print a per-line segment summary.\n")
	}
	return fs
}

func handleInspect(args []string) error {
	fs := setupInspectFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one map file")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading map: %w", err)
	}
	sm, err := sourcemap.Parse(data)
	if err != nil {
		return err
	}

	lines, err := sourcemap.DecodeMappings(sm.Mappings)
	if err != nil {
		return fmt.Errorf("decoding mappings: %w", err)
	}

	fmt.Printf("version: %d\n", sm.Version)
	if sm.File != "" {
		fmt.Printf("file:    %s\n", sm.File)
	}
	fmt.Printf("sources: %s\n", strings.Join(sm.Sources, ", "))
	segments := 0
	for _, line := range lines {
		segments += len(line)
	}
	fmt.Printf("lines:   %d (%d segments)\n", len(lines), segments)

	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		parts := make([]string, 0, len(line))
		for _, seg := range line {
			source := "?"
			if seg.HasSource && seg.SourceIndex < len(sm.Sources) {
				source = sm.Sources[seg.SourceIndex]
			}
			parts = append(parts, fmt.Sprintf("%d -> %s %d:%d",
				seg.GeneratedColumn, source, seg.SourceLine, seg.SourceColumn))
		}
		fmt.Printf("  line %d: %s\n", i, strings.Join(parts, "; "))
	}
	return nil
}

func printUsage() {
	fmt.Println(`srcbundle - source concatenation with merged source maps

Usage:
  srcbundle <command> [options]

Commands:
  concat      Concatenate source files into one output with a source map
  inspect     Decode a source map file and summarize its mappings
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  srcbundle concat -o dist/bundle.js src/a.js src/b.js
  srcbundle concat -manifest bundle.yaml
  srcbundle inspect dist/bundle.js.map

Run 'srcbundle <command> --help' for more information on a command.`)
}
