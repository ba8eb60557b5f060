package bundle

import (
	"github.com/erraggy/srcbundle/chunk"
)

// TrimStart strips a maximal leading run matching charClass from the
// composed output. The intro is trimmed first; if it empties, the trim
// walks into fragments from the front, skipping any fragment that empties
// out entirely, and falls through to the outro when every fragment does.
// An empty charClass trims whitespace.
//
// Trimming never removes fragments or unregisters sources: a fragment may
// end up contributing no characters while keeping its mapping identity.
func (b *Bundle) TrimStart(charClass string) error {
	rx, err := chunk.CompileLeading(charClass)
	if err != nil {
		return err
	}
	b.intro = rx.ReplaceAllString(b.intro, "")
	if b.intro != "" {
		return nil
	}
	for _, f := range b.fragments {
		// already validated, the editor compiles the same class
		if err := f.editor.TrimStart(charClass); err != nil {
			return err
		}
		if !f.editor.Empty() {
			return nil
		}
	}
	b.outro = rx.ReplaceAllString(b.outro, "")
	return nil
}

// TrimEnd is the mirror of TrimStart: outro first, then fragments from
// the back, then the intro's end.
func (b *Bundle) TrimEnd(charClass string) error {
	rx, err := chunk.CompileTrailing(charClass)
	if err != nil {
		return err
	}
	b.outro = rx.ReplaceAllString(b.outro, "")
	if b.outro != "" {
		return nil
	}
	for i := len(b.fragments) - 1; i >= 0; i-- {
		f := b.fragments[i]
		if err := f.editor.TrimEnd(charClass); err != nil {
			return err
		}
		if !f.editor.Empty() {
			return nil
		}
	}
	b.intro = rx.ReplaceAllString(b.intro, "")
	return nil
}

// Trim strips matching runs from both ends of the composed output.
func (b *Bundle) Trim(charClass string) error {
	if err := b.TrimStart(charClass); err != nil {
		return err
	}
	return b.TrimEnd(charClass)
}

// TrimLines strips leading and trailing newline characters.
func (b *Bundle) TrimLines() error {
	return b.Trim(`[\r\n]`)
}
