package chunk

import (
	"path/filepath"
	"strings"

	"github.com/erraggy/srcbundle/sourcemap"
)

// EncodeMappingSegments appends this editor's contribution to a merged
// mapping stream: delta-encoded segments for every piece of current text
// that traces back to an original position, and one generated-line marker
// per newline the text will emit. The shared off state is consumed and
// mutated so the caller can thread it across many editors in one merge.
//
// In high-resolution mode every original byte gets a segment; otherwise
// segments are emitted at the start of each unedited span and after each
// line break. Edited content maps every generated line of the replacement
// back to the replaced region's start. Inserted text (editor and span
// intros/outros) advances the generated position without segments.
func (e *Editor) EncodeMappingSegments(highRes bool, sourceIndex int, off *sourcemap.Offsets) string {
	locator := sourcemap.NewLocator(e.original)
	var sb strings.Builder
	sb.WriteString(off.Markers(e.intro))

	for s := e.firstSpan; s != nil; s = s.next {
		sb.WriteString(off.Markers(s.intro))
		if s.edited {
			e.encodeEdited(&sb, s, sourceIndex, locator, off)
		} else {
			e.encodeUnedited(&sb, s, highRes, sourceIndex, locator, off)
		}
		sb.WriteString(off.Markers(s.outro))
	}

	sb.WriteString(off.Markers(e.outro))
	return sb.String()
}

// encodeEdited emits one segment per generated line of replacement text,
// all pointing at the replaced region's original start.
func (e *Editor) encodeEdited(sb *strings.Builder, s *span, sourceIndex int, locator *sourcemap.Locator, off *sourcemap.Offsets) {
	line, column := locator.Locate(s.start)
	content := s.content
	for content != "" {
		sb.WriteString(off.Segment(sourceIndex, line, column))
		nl := strings.IndexByte(content, '\n')
		if nl < 0 {
			off.Advance(len(content))
			return
		}
		sb.WriteByte(';')
		off.NewLine()
		content = content[nl+1:]
	}
}

// encodeUnedited walks original bytes one to one with generated bytes.
func (e *Editor) encodeUnedited(sb *strings.Builder, s *span, highRes bool, sourceIndex int, locator *sourcemap.Locator, off *sourcemap.Offsets) {
	line, column := locator.Locate(s.start)
	first := true
	for i := s.start; i < s.end; i++ {
		if highRes || first {
			sb.WriteString(off.Segment(sourceIndex, line, column))
		}
		if e.original[i] == '\n' {
			line++
			column = 0
			sb.WriteByte(';')
			off.NewLine()
			first = true
		} else {
			column++
			off.Advance(1)
			first = false
		}
	}
}

// MapOptions configures GenerateMap for a single editor.
type MapOptions struct {
	// File is the output path; its basename becomes the map's file field
	// and sources are relativized against its directory
	File string
	// IncludeContent embeds the original text in sourcesContent
	IncludeContent bool
	// HighRes maps every byte instead of span and line starts
	HighRes bool
}

// GenerateMap builds a standalone single-source map for this editor.
// Bundles merge many editors instead through EncodeMappingSegments.
func (e *Editor) GenerateMap(opts MapOptions) *sourcemap.SourceMap {
	sm := sourcemap.New()
	sm.Mappings = e.EncodeMappingSegments(opts.HighRes, 0, sourcemap.NewOffsets())
	if opts.File != "" {
		sm.File = filepath.Base(opts.File)
	}
	source := e.filename
	if rel, err := sourcemap.RelativeSource(opts.File, e.filename); err == nil {
		source = rel
	}
	sm.Sources = []string{source}
	if opts.IncludeContent {
		sm.SourcesContent = []string{e.original}
	}
	return sm
}
