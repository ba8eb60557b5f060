package chunk

import (
	"fmt"
	"strings"

	"github.com/erraggy/srcbundle/sberrors"
)

// Editor owns one fragment's mutable text and its immutable original text.
// The zero value is not usable; construct editors with NewEditor.
type Editor struct {
	original string
	intro    string
	outro    string

	filename              string
	separator             *string
	indentExclusionRanges [][2]int

	firstSpan         *span
	lastSpan          *span
	lastSearchedSpan  *span
	byStart           map[int]*span
	byEnd             map[int]*span
	detectedIndent    string
	indentUnitDecided bool
}

// Option configures a new Editor.
type Option func(*Editor)

// WithFilename records the originating file of the editor's text.
// Editors without a filename are treated as synthetic by bundles: their
// text appears in composed output but is never mapped to a source.
func WithFilename(name string) Option {
	return func(e *Editor) { e.filename = name }
}

// WithSeparator sets the editor's preferred join separator, copied onto
// fragments registered from this editor when they don't set their own.
func WithSeparator(sep string) Option {
	return func(e *Editor) { e.separator = &sep }
}

// WithIndentExclusionRanges marks original byte ranges that indentation
// rewrites must leave untouched.
func WithIndentExclusionRanges(ranges ...[2]int) Option {
	return func(e *Editor) { e.indentExclusionRanges = ranges }
}

// NewEditor wraps original text in a fresh editor.
func NewEditor(original string, opts ...Option) *Editor {
	first := newSpan(0, len(original), original)
	e := &Editor{
		original:         original,
		firstSpan:        first,
		lastSpan:         first,
		lastSearchedSpan: first,
		byStart:          map[int]*span{0: first},
		byEnd:            map[int]*span{len(original): first},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OriginalText returns the immutable text the editor was constructed with.
func (e *Editor) OriginalText() string {
	return e.original
}

// Text returns the current, possibly edited, content.
func (e *Editor) Text() string {
	var sb strings.Builder
	sb.WriteString(e.intro)
	for s := e.firstSpan; s != nil; s = s.next {
		sb.WriteString(s.text())
	}
	sb.WriteString(e.outro)
	return sb.String()
}

// Empty reports whether the current text is empty.
func (e *Editor) Empty() bool {
	if e.intro != "" || e.outro != "" {
		return false
	}
	for s := e.firstSpan; s != nil; s = s.next {
		if s.text() != "" {
			return false
		}
	}
	return true
}

// Filename returns the originating filename, or "" for synthetic text.
func (e *Editor) Filename() string {
	return e.filename
}

// Separator returns the editor's preferred separator and whether one was set.
func (e *Editor) Separator() (string, bool) {
	if e.separator == nil {
		return "", false
	}
	return *e.separator, true
}

// IndentExclusionRanges returns the configured exclusion ranges, if any.
func (e *Editor) IndentExclusionRanges() [][2]int {
	return e.indentExclusionRanges
}

// Append adds text after everything else in the editor.
func (e *Editor) Append(text string) *Editor {
	e.outro += text
	return e
}

// Prepend adds text before everything else in the editor.
func (e *Editor) Prepend(text string) *Editor {
	e.intro = text + e.intro
	return e
}

// AppendLeft inserts text immediately before the original byte at index,
// on the left side of the insertion point: earlier inserts at the same
// index come first.
func (e *Editor) AppendLeft(index int, text string) error {
	if err := e.checkOffset("index", index); err != nil {
		return err
	}
	if err := e.split(index); err != nil {
		return err
	}
	if s := e.byEnd[index]; s != nil {
		s.appendLeft(text)
	} else {
		e.intro += text
	}
	return nil
}

// PrependRight inserts text immediately before the original byte at index,
// on the right side of the insertion point: later inserts at the same
// index come last.
func (e *Editor) PrependRight(index int, text string) error {
	if err := e.checkOffset("index", index); err != nil {
		return err
	}
	if err := e.split(index); err != nil {
		return err
	}
	if s := e.byStart[index]; s != nil {
		s.prependRight(text)
	} else {
		e.outro = text + e.outro
	}
	return nil
}

// Overwrite replaces the original bytes in [start, end) with content.
// Any inserts previously attached inside the span are discarded.
func (e *Editor) Overwrite(start, end int, content string) error {
	if err := e.checkRange(start, end); err != nil {
		return err
	}
	if err := e.split(start); err != nil {
		return err
	}
	if err := e.split(end); err != nil {
		return err
	}
	first := e.byStart[start]
	last := e.byEnd[end]
	first.intro = ""
	first.outro = ""
	first.edit(content)
	for s := first.next; s != nil && s.start < last.end; s = s.next {
		s.intro = ""
		s.outro = ""
		s.edit("")
	}
	return nil
}

// Remove deletes the original bytes in [start, end), along with any
// inserts previously attached inside the span.
func (e *Editor) Remove(start, end int) error {
	return e.Overwrite(start, end, "")
}

// Clone returns an independent deep copy of the editor.
func (e *Editor) Clone() *Editor {
	clone := &Editor{
		original:          e.original,
		intro:             e.intro,
		outro:             e.outro,
		filename:          e.filename,
		detectedIndent:    e.detectedIndent,
		indentUnitDecided: e.indentUnitDecided,
		byStart:           make(map[int]*span, len(e.byStart)),
		byEnd:             make(map[int]*span, len(e.byEnd)),
	}
	if e.separator != nil {
		sep := *e.separator
		clone.separator = &sep
	}
	if e.indentExclusionRanges != nil {
		clone.indentExclusionRanges = append([][2]int(nil), e.indentExclusionRanges...)
	}
	var previous *span
	for s := e.firstSpan; s != nil; s = s.next {
		copied := s.clone()
		copied.previous = previous
		if previous != nil {
			previous.next = copied
		} else {
			clone.firstSpan = copied
		}
		clone.byStart[copied.start] = copied
		clone.byEnd[copied.end] = copied
		clone.lastSpan = copied
		previous = copied
	}
	clone.lastSearchedSpan = clone.firstSpan
	return clone
}

// split ensures a span boundary exists at the given original byte index.
func (e *Editor) split(index int) error {
	if _, ok := e.byStart[index]; ok {
		return nil
	}
	if _, ok := e.byEnd[index]; ok {
		return nil
	}

	s := e.lastSearchedSpan
	searchForward := index > s.end
	for s != nil {
		if s.contains(index) {
			return e.splitSpan(s, index)
		}
		if searchForward {
			s = s.next
		} else {
			s = s.previous
		}
	}
	return &sberrors.ConfigError{
		Option:  "index",
		Message: fmt.Sprintf("no span contains offset %d", index),
	}
}

// splitSpan performs the split and maintains the byStart/byEnd indices.
func (e *Editor) splitSpan(s *span, index int) error {
	if s.edited && s.content != "" {
		return &sberrors.ConfigError{
			Option:  "index",
			Message: fmt.Sprintf("cannot split an edited region at offset %d", index),
		}
	}
	tail := s.split(index)
	e.byEnd[index] = s
	e.byStart[index] = tail
	e.byEnd[tail.end] = tail
	if e.lastSpan == s {
		e.lastSpan = tail
	}
	e.lastSearchedSpan = s
	return nil
}

func (e *Editor) checkOffset(name string, index int) error {
	if index < 0 || index > len(e.original) {
		return &sberrors.ConfigError{
			Option:  name,
			Message: fmt.Sprintf("offset %d outside original text of %d bytes", index, len(e.original)),
		}
	}
	return nil
}

func (e *Editor) checkRange(start, end int) error {
	if err := e.checkOffset("start", start); err != nil {
		return err
	}
	if err := e.checkOffset("end", end); err != nil {
		return err
	}
	if start >= end {
		return &sberrors.ConfigError{
			Option:  "range",
			Message: fmt.Sprintf("start %d must be before end %d", start, end),
		}
	}
	return nil
}
