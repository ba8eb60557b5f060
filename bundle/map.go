package bundle

import (
	"path/filepath"

	"github.com/erraggy/srcbundle/sourcemap"
)

// MapOption configures GenerateMap.
type MapOption func(*mapConfig)

type mapConfig struct {
	file           string
	includeContent bool
	highRes        bool
}

// WithFile sets the output path recorded in the map. Registered source
// filenames are rewritten relative to its directory.
func WithFile(file string) MapOption {
	return func(c *mapConfig) { c.file = file }
}

// WithIncludeContent embeds each unique source's original content in the
// map's sourcesContent array.
func WithIncludeContent() MapOption {
	return func(c *mapConfig) { c.includeContent = true }
}

// WithHighRes requests a segment for every original byte of unedited
// content instead of one per contiguous span per line.
func WithHighRes() MapOption {
	return func(c *mapConfig) { c.highRes = true }
}

// GenerateMap merges every fragment's mapping segments into a single
// source map for the composed output. The intro, separators, outro, and
// unnamed fragments advance the generated position without producing
// segments; named fragments encode against their registered source index,
// so repeated fragments of the same file share one sources entry.
func (b *Bundle) GenerateMap(opts ...MapOption) *sourcemap.SourceMap {
	var cfg mapConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	off := sourcemap.NewOffsets()
	mappings := off.Markers(b.intro)
	for i, f := range b.fragments {
		if i > 0 {
			mappings += off.Markers(b.effectiveSeparator(f))
		}
		if f.filename == "" {
			mappings += off.Markers(f.editor.Text())
			continue
		}
		mappings += f.editor.EncodeMappingSegments(cfg.highRes, b.uniqueSourceIndexByFilename[f.filename], off)
	}
	mappings += off.Markers(b.outro)

	sm := sourcemap.New()
	sm.Mappings = mappings
	if cfg.file != "" {
		sm.File = filepath.Base(cfg.file)
	}
	for _, src := range b.uniqueSources {
		name := src.Filename
		if cfg.file != "" {
			resolved, err := sourcemap.RelativeSource(cfg.file, name)
			if err != nil {
				bundleLogger.Warn("unable to relativize source path, keeping it as-is",
					"source", name, "file", cfg.file, "error", err)
			} else {
				name = resolved
			}
		}
		sm.Sources = append(sm.Sources, name)
	}
	if cfg.includeContent {
		sm.SourcesContent = make([]string, len(b.uniqueSources))
		for i, src := range b.uniqueSources {
			sm.SourcesContent[i] = src.Content
		}
	}
	return sm
}
