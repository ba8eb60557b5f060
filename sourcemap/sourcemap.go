package sourcemap

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
)

// SourceMap is the serializable mapping artifact, following the standard
// version-3 JSON schema. Sources and Names are always present (possibly
// empty) so consumers never see null where the schema expects an array.
type SourceMap struct {
	// Version is always 3
	Version int `json:"version"`
	// File is the basename of the generated output, if known
	File string `json:"file,omitempty"`
	// SourceRoot is an optional prefix for all Sources entries
	SourceRoot string `json:"sourceRoot,omitempty"`
	// Sources lists the original filenames in stable source-index order
	Sources []string `json:"sources"`
	// SourcesContent carries the original texts when content embedding
	// was requested; entries are index-aligned with Sources
	SourcesContent []string `json:"sourcesContent,omitempty"`
	// Names is the identifier-name table; always empty at this layer
	Names []string `json:"names"`
	// Mappings is the delta-encoded, line-delimited mapping stream
	Mappings string `json:"mappings"`
}

// New returns an empty version-3 SourceMap with non-nil array fields.
func New() *SourceMap {
	return &SourceMap{
		Version: 3,
		Sources: []string{},
		Names:   []string{},
	}
}

// Parse decodes a serialized map, rejecting unsupported versions.
func Parse(data []byte) (*SourceMap, error) {
	var m SourceMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid source map: %w", err)
	}
	if m.Version != 3 {
		return nil, fmt.Errorf("unsupported source map version %d", m.Version)
	}
	return &m, nil
}

// ToJSON serializes the map to its canonical JSON form.
func (m *SourceMap) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// String returns the JSON form, or an empty string if serialization fails.
func (m *SourceMap) String() string {
	data, err := m.ToJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

// ToURL returns the map as a base64 data URI, suitable for inlining.
func (m *SourceMap) ToURL() string {
	return "data:application/json;charset=utf-8;base64," +
		base64.StdEncoding.EncodeToString([]byte(m.String()))
}

// ToComment returns a sourceMappingURL comment referencing path, or the
// inlined data URI when path is empty.
func (m *SourceMap) ToComment(path string) string {
	if path == "" {
		return "//# sourceMappingURL=" + m.ToURL()
	}
	return "//# sourceMappingURL=" + filepath.Base(path)
}

// ResolvedPosition is an original-source position resolved from a
// generated position.
type ResolvedPosition struct {
	// Source is the original filename ("" when the source index is unknown)
	Source string `json:"source"`
	// Line is the zero-based original line
	Line int `json:"line"`
	// Column is the zero-based original byte column
	Column int `json:"column"`
}

// Resolve returns the original position mapped to the generated
// (line, column), both zero-based. The segment chosen is the last one on
// the generated line at or before column, matching consumer convention.
// The second return is false when the line has no applicable segment.
func (m *SourceMap) Resolve(line, column int) (ResolvedPosition, bool) {
	lines, err := DecodeMappings(m.Mappings)
	if err != nil || line < 0 || line >= len(lines) {
		return ResolvedPosition{}, false
	}
	var (
		match Segment
		found bool
	)
	for _, seg := range lines[line] {
		if seg.GeneratedColumn > column {
			break
		}
		match = seg
		found = true
	}
	if !found || !match.HasSource {
		return ResolvedPosition{}, false
	}
	resolved := ResolvedPosition{Line: match.SourceLine, Column: match.SourceColumn}
	if match.SourceIndex >= 0 && match.SourceIndex < len(m.Sources) {
		resolved.Source = m.Sources[match.SourceIndex]
	}
	return resolved, true
}

// RelativeSource rewrites source relative to the directory of outputPath.
// With no output path the source is returned unchanged.
func RelativeSource(outputPath, source string) (string, error) {
	if outputPath == "" {
		return source, nil
	}
	rel, err := filepath.Rel(filepath.Dir(outputPath), source)
	if err != nil {
		return source, err
	}
	return filepath.ToSlash(rel), nil
}
