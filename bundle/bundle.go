package bundle

import (
	"log/slog"
	"strings"

	"github.com/erraggy/srcbundle/chunk"
	"github.com/erraggy/srcbundle/sberrors"
)

// bundleLogger is used for non-fatal warnings.
// Tests can replace this with a discard logger to suppress expected warnings.
var bundleLogger = slog.Default()

// UniqueSource is one deduplicated originating file: every fragment
// registered under the same filename shares this entry and its index.
type UniqueSource struct {
	// Filename is the originating file path
	Filename string
	// Content is the original text recorded at first registration
	Content string
}

// Fragment is one registered unit of text: an editor plus its
// originating-file identity and join separator.
type Fragment struct {
	editor                *chunk.Editor
	filename              string
	separator             *string
	indentExclusionRanges [][2]int
}

// Editor returns the fragment's editor.
func (f *Fragment) Editor() *chunk.Editor {
	return f.editor
}

// Filename returns the originating filename, or "" for synthetic fragments.
func (f *Fragment) Filename() string {
	return f.filename
}

// Separator returns the fragment's own separator and whether one is set.
func (f *Fragment) Separator() (string, bool) {
	if f.separator == nil {
		return "", false
	}
	return *f.separator, true
}

// Bundle is the aggregate root: ordered fragments, deduplicated unique
// sources, and the intro/outro/separator configuration used to compose
// them. Construct bundles with New.
type Bundle struct {
	intro     string
	outro     string
	separator string

	fragments                   []*Fragment
	uniqueSources               []UniqueSource
	uniqueSourceIndexByFilename map[string]int
}

// Option configures a new Bundle.
type Option func(*Bundle)

// WithIntro sets text emitted before the first fragment.
func WithIntro(intro string) Option {
	return func(b *Bundle) { b.intro = intro }
}

// WithOutro sets text emitted after the last fragment.
func WithOutro(outro string) Option {
	return func(b *Bundle) { b.outro = outro }
}

// WithSeparator sets the default separator joining adjacent fragments.
// The default is a single newline.
func WithSeparator(sep string) Option {
	return func(b *Bundle) { b.separator = sep }
}

// New constructs an empty Bundle.
func New(opts ...Option) *Bundle {
	b := &Bundle{
		separator:                   "\n",
		uniqueSourceIndexByFilename: make(map[string]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Source describes one fragment to register. Content is required; the
// remaining fields default to the editor's own values when unset, so a
// fragment built directly from a configured editor need not restate them.
type Source struct {
	// Content is the editor owning the fragment's text
	Content *chunk.Editor
	// Filename identifies the originating file; "" means synthetic
	Filename string
	// Separator overrides the bundle default when joining this fragment
	Separator *string
	// IndentExclusionRanges are passed through to indentation rewrites
	IndentExclusionRanges [][2]int
}

// AddSource registers a fragment at the end of the bundle.
//
// The first registration of a filename assigns the next stable source
// index. A later registration of the same filename succeeds only when the
// editor's original text is byte-identical to the recorded one; anything
// else fails with sberrors.ConflictingSourceError and registers nothing.
func (b *Bundle) AddSource(src Source) error {
	if src.Content == nil {
		return &sberrors.InvalidSourceError{Reason: "source content must be a chunk editor"}
	}

	filename := src.Filename
	if filename == "" {
		filename = src.Content.Filename()
	}
	separator := src.Separator
	if separator == nil {
		if sep, ok := src.Content.Separator(); ok {
			separator = &sep
		}
	}
	exclusions := src.IndentExclusionRanges
	if exclusions == nil {
		exclusions = src.Content.IndentExclusionRanges()
	}

	if filename != "" {
		if index, seen := b.uniqueSourceIndexByFilename[filename]; seen {
			if src.Content.OriginalText() != b.uniqueSources[index].Content {
				return &sberrors.ConflictingSourceError{Filename: filename}
			}
		} else {
			b.uniqueSourceIndexByFilename[filename] = len(b.uniqueSources)
			b.uniqueSources = append(b.uniqueSources, UniqueSource{
				Filename: filename,
				Content:  src.Content.OriginalText(),
			})
		}
	}

	b.fragments = append(b.fragments, &Fragment{
		editor:                src.Content,
		filename:              filename,
		separator:             separator,
		indentExclusionRanges: exclusions,
	})
	return nil
}

// Append registers a synthetic fragment wrapping text. Its separator is
// empty unless one is supplied, so appended text abuts the previous
// fragment by default.
func (b *Bundle) Append(text string, separator ...string) *Bundle {
	sep := ""
	if len(separator) > 0 {
		sep = separator[0]
	}
	// registration of a fresh synthetic editor cannot fail
	_ = b.AddSource(Source{
		Content:   chunk.NewEditor(text),
		Separator: &sep,
	})
	return b
}

// Prepend concatenates text in front of the current intro. No fragment is
// created and the mapping stream is unaffected beyond line accounting.
func (b *Bundle) Prepend(text string) *Bundle {
	b.intro = text + b.intro
	return b
}

// String composes the current output: intro, fragments joined by their
// effective separators, and outro. It re-derives from current editor text
// on every call, so output reflects any edits or trims since the last one.
func (b *Bundle) String() string {
	var sb strings.Builder
	sb.WriteString(b.intro)
	for i, f := range b.fragments {
		if i > 0 {
			sb.WriteString(b.effectiveSeparator(f))
		}
		sb.WriteString(f.editor.Text())
	}
	sb.WriteString(b.outro)
	return sb.String()
}

// effectiveSeparator resolves the separator emitted before a fragment at
// position > 0: the fragment's own if set, else the bundle default.
func (b *Bundle) effectiveSeparator(f *Fragment) string {
	if f.separator != nil {
		return *f.separator
	}
	return b.separator
}

// Intro returns the current intro text.
func (b *Bundle) Intro() string {
	return b.intro
}

// Outro returns the current outro text.
func (b *Bundle) Outro() string {
	return b.outro
}

// Fragments returns the registered fragments in output order.
func (b *Bundle) Fragments() []*Fragment {
	return b.fragments
}

// UniqueSources returns the deduplicated sources in first-seen order;
// slice position is the stable source index.
func (b *Bundle) UniqueSources() []UniqueSource {
	return b.uniqueSources
}

// Clone produces a deep, independent copy: new editors via each editor's
// own clone, and a registry rebuilt from scratch so source-index
// assignment is recomputed from the cloned fragment order rather than
// copied.
func (b *Bundle) Clone() *Bundle {
	clone := New(
		WithIntro(b.intro),
		WithOutro(b.outro),
		WithSeparator(b.separator),
	)
	for _, f := range b.fragments {
		src := Source{
			Content:  f.editor.Clone(),
			Filename: f.filename,
		}
		if f.separator != nil {
			sep := *f.separator
			src.Separator = &sep
		}
		if f.indentExclusionRanges != nil {
			src.IndentExclusionRanges = append([][2]int(nil), f.indentExclusionRanges...)
		}
		// the source registry accepted these fragments once already
		_ = clone.AddSource(src)
	}
	return clone
}
