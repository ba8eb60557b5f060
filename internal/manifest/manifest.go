// Package manifest loads YAML bundle descriptions for thin callers such
// as the CLI and the MCP server, keeping file I/O out of the core
// packages.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/srcbundle/bundle"
	"github.com/erraggy/srcbundle/chunk"
	"github.com/erraggy/srcbundle/sberrors"
)

// Source describes one fragment of a bundle. Exactly one of File and Text
// must be set: File names an on-disk source registered under its own
// path, Text is inline content with no mapping identity.
type Source struct {
	File      string  `yaml:"file,omitempty"`
	Text      string  `yaml:"text,omitempty"`
	Separator *string `yaml:"separator,omitempty"`
}

// Manifest is the YAML description of a bundle build.
type Manifest struct {
	// Output is where the composed text is written
	Output string `yaml:"output,omitempty"`
	// MapOutput is where the source map is written; empty means append an
	// inline data-URI comment when the caller asks for one
	MapOutput string `yaml:"mapOutput,omitempty"`

	Intro     string `yaml:"intro,omitempty"`
	Outro     string `yaml:"outro,omitempty"`
	Separator string `yaml:"separator,omitempty"`

	// Indent is the indentation unit applied after composition; "detect"
	// applies the dominant unit across sources
	Indent string `yaml:"indent,omitempty"`
	// Trim is a character class stripped from both ends; "true" strips
	// whitespace
	Trim string `yaml:"trim,omitempty"`

	HighRes        bool `yaml:"highRes,omitempty"`
	IncludeContent bool `yaml:"includeContent,omitempty"`

	Sources []Source `yaml:"sources"`
}

// Parse decodes and validates a manifest document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &sberrors.ConfigError{
			Option:  "manifest",
			Message: "invalid YAML",
			Cause:   err,
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks structural constraints: at least one source, and each
// source naming exactly one of file or text.
func (m *Manifest) Validate() error {
	if len(m.Sources) == 0 {
		return &sberrors.ConfigError{
			Option:  "sources",
			Message: "at least one source is required",
		}
	}
	for i, src := range m.Sources {
		if src.File == "" && src.Text == "" {
			return &sberrors.ConfigError{
				Option:  fmt.Sprintf("sources[%d]", i),
				Message: "one of file or text is required",
			}
		}
		if src.File != "" && src.Text != "" {
			return &sberrors.ConfigError{
				Option:  fmt.Sprintf("sources[%d]", i),
				Message: "file and text are mutually exclusive",
			}
		}
	}
	return nil
}

// Build reads every file source relative to baseDir and assembles the
// described bundle. Indent and trim directives are applied here so
// callers get the finished composition.
func (m *Manifest) Build(baseDir string) (*bundle.Bundle, error) {
	opts := []bundle.Option{
		bundle.WithIntro(m.Intro),
		bundle.WithOutro(m.Outro),
	}
	if m.Separator != "" {
		opts = append(opts, bundle.WithSeparator(m.Separator))
	}
	b := bundle.New(opts...)

	for i, src := range m.Sources {
		if src.Text != "" {
			var sep []string
			if src.Separator != nil {
				sep = []string{*src.Separator}
			}
			b.Append(src.Text, sep...)
			continue
		}
		path := src.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading source %s: %w", src.File, err)
		}
		err = b.AddSource(bundle.Source{
			Content:   chunk.NewEditor(string(content), chunk.WithFilename(src.File)),
			Separator: src.Separator,
		})
		if err != nil {
			return nil, fmt.Errorf("registering sources[%d]: %w", i, err)
		}
	}

	switch m.Indent {
	case "":
	case "detect":
		b.Indent("")
	default:
		b.Indent(m.Indent)
	}
	switch m.Trim {
	case "":
	case "true":
		if err := b.Trim(""); err != nil {
			return nil, err
		}
	default:
		if err := b.Trim(m.Trim); err != nil {
			return nil, err
		}
	}
	return b, nil
}
