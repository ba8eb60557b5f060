package bundle

import (
	"strings"

	"github.com/erraggy/srcbundle/chunk"
)

// DominantIndent returns the indentation unit to use when none is given
// to Indent: the LEAST frequently observed unit across fragment editors,
// falling back to a single tab when no fragment reports one. Ties resolve
// to the first-observed unit.
//
// Least-frequent is a deliberate selection rule, not an accident of
// iteration order; callers relying on it should keep it pinned by tests.
func (b *Bundle) DominantIndent() string {
	counts := make(map[string]int)
	var order []string
	for _, f := range b.fragments {
		unit := f.editor.DetectedIndentUnit()
		if unit == "" {
			continue
		}
		if _, seen := counts[unit]; !seen {
			order = append(order, unit)
		}
		counts[unit]++
	}

	best := ""
	for _, unit := range order {
		if best == "" || counts[unit] < counts[best] {
			best = unit
		}
	}
	if best == "" {
		return "\t"
	}
	return best
}

// Indent rewrites every fragment, the intro, and the outro to use the
// given indentation unit consistently. An empty unit means use
// DominantIndent.
//
// Line-start continuity is threaded across fragment boundaries: a
// fragment whose preceding separator (or the intro) ends in a newline has
// its first line indented too, while a fragment continuing mid-line does
// not. The intro is indented on every line except a true first line at
// offset zero; the outro on every line unconditionally.
func (b *Bundle) Indent(unit string) *Bundle {
	if unit == "" {
		unit = b.DominantIndent()
	}

	trailingNewline := b.intro == "" || strings.HasSuffix(b.intro, "\n")
	for i, f := range b.fragments {
		separator := b.effectiveSeparator(f)
		indentStart := trailingNewline || (i > 0 && strings.HasSuffix(separator, "\n"))
		f.editor.Indent(unit, chunk.IndentOptions{
			Exclude:     f.indentExclusionRanges,
			IndentStart: indentStart,
		})
		trailingNewline = strings.HasSuffix(f.editor.Text(), "\n")
	}

	if b.intro != "" {
		b.intro = indentLines(b.intro, unit, true)
	}
	b.outro = indentLines(b.outro, unit, false)
	return b
}

// indentLines inserts unit at the start of every line whose first
// character is not a carriage return or newline; skipZero leaves a line
// starting at offset zero alone.
func indentLines(text, unit string, skipZero bool) string {
	var sb strings.Builder
	atLineStart := true
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if atLineStart && ch != '\n' && ch != '\r' && !(skipZero && i == 0) {
			sb.WriteString(unit)
		}
		sb.WriteByte(ch)
		atLineStart = ch == '\n'
	}
	return sb.String()
}
