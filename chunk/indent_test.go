package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectedIndentUnit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "no indentation", text: "a\nb\nc", want: ""},
		{name: "tabs", text: "fn()\n\tbody\n\tbody", want: "\t"},
		{name: "two spaces", text: "fn()\n  body\n  body", want: "  "},
		{name: "minimum space run wins", text: "fn()\n    deep\n  shallow", want: "  "},
		{name: "tabs win ties against spaces", text: "\ttabbed\n  spaced", want: "\t"},
		{name: "single space is not indentation", text: " a\n b", want: ""},
		{name: "empty", text: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewEditor(tt.text).DetectedIndentUnit())
		})
	}
}

func TestIndent(t *testing.T) {
	t.Run("indent start true", func(t *testing.T) {
		ed := NewEditor("a\nb\nc")
		ed.Indent("\t", IndentOptions{IndentStart: true})
		assert.Equal(t, "\ta\n\tb\n\tc", ed.Text())
	})

	t.Run("indent start false skips first line", func(t *testing.T) {
		ed := NewEditor("a\nb\nc")
		ed.Indent("\t", IndentOptions{IndentStart: false})
		assert.Equal(t, "a\n\tb\n\tc", ed.Text())
	})

	t.Run("blank lines stay blank", func(t *testing.T) {
		ed := NewEditor("a\n\nb")
		ed.Indent("  ", IndentOptions{IndentStart: true})
		assert.Equal(t, "  a\n\n  b", ed.Text())
	})

	t.Run("empty unit uses detected indentation", func(t *testing.T) {
		ed := NewEditor("fn()\n  body")
		ed.Indent("", IndentOptions{IndentStart: true})
		assert.Equal(t, "  fn()\n    body", ed.Text())
	})

	t.Run("empty unit falls back to tab", func(t *testing.T) {
		ed := NewEditor("a\nb")
		ed.Indent("", IndentOptions{IndentStart: true})
		assert.Equal(t, "\ta\n\tb", ed.Text())
	})
}

func TestIndentExclusionRanges(t *testing.T) {
	// Excluding [2,4) covers 'b' and its newline, so neither 'b' is
	// indented nor does that line's break re-arm indentation; the pending
	// flag from the first newline carries through to 'c'.
	ed := NewEditor("a\nb\nc")
	ed.Indent("\t", IndentOptions{IndentStart: true, Exclude: [][2]int{{2, 4}}})
	assert.Equal(t, "\ta\nb\n\tc", ed.Text())
}

func TestIndentEditedContent(t *testing.T) {
	ed := NewEditor("x\ny")
	require.NoError(t, ed.Overwrite(2, 3, "z1\nz2"))
	require.Equal(t, "x\nz1\nz2", ed.Text())

	ed.Indent("  ", IndentOptions{IndentStart: true})
	assert.Equal(t, "  x\n  z1\n  z2", ed.Text())
}

func TestIndentRepeated(t *testing.T) {
	ed := NewEditor("a\nb")
	ed.Indent(" ", IndentOptions{IndentStart: true})
	ed.Indent(" ", IndentOptions{IndentStart: true})
	assert.Equal(t, "  a\n  b", ed.Text())
}
