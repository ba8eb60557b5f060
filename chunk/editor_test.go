package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/srcbundle/sberrors"
)

func TestNewEditor(t *testing.T) {
	ed := NewEditor("function a(){}",
		WithFilename("a.js"),
		WithSeparator("\n"),
		WithIndentExclusionRanges([2]int{0, 8}),
	)

	assert.Equal(t, "function a(){}", ed.Text())
	assert.Equal(t, "function a(){}", ed.OriginalText())
	assert.Equal(t, "a.js", ed.Filename())

	sep, ok := ed.Separator()
	require.True(t, ok)
	assert.Equal(t, "\n", sep)

	assert.Equal(t, [][2]int{{0, 8}}, ed.IndentExclusionRanges())
	assert.False(t, ed.Empty())
}

func TestEditorDefaults(t *testing.T) {
	ed := NewEditor("x")

	assert.Empty(t, ed.Filename())
	_, ok := ed.Separator()
	assert.False(t, ok)
	assert.Nil(t, ed.IndentExclusionRanges())
}

func TestAppendPrepend(t *testing.T) {
	ed := NewEditor("middle")
	ed.Prepend("start ").Append(" end")

	assert.Equal(t, "start middle end", ed.Text())
	assert.Equal(t, "middle", ed.OriginalText(), "original must not change")
}

func TestAppendLeftPrependRight(t *testing.T) {
	ed := NewEditor("abcdef")

	require.NoError(t, ed.AppendLeft(3, "X"))
	require.NoError(t, ed.PrependRight(3, "Y"))
	assert.Equal(t, "abcXYdef", ed.Text(), "left inserts precede right inserts at the same offset")

	require.NoError(t, ed.AppendLeft(0, "<"))
	require.NoError(t, ed.PrependRight(6, ">"))
	assert.Equal(t, "<abcXYdef>", ed.Text())
}

func TestOverwrite(t *testing.T) {
	ed := NewEditor("problems = 99")

	require.NoError(t, ed.Overwrite(0, 8, "answer"))
	assert.Equal(t, "answer = 99", ed.Text())

	require.NoError(t, ed.Overwrite(11, 13, "42"))
	assert.Equal(t, "answer = 42", ed.Text())
}

func TestOverwriteDiscardsInnerInserts(t *testing.T) {
	ed := NewEditor("abcdef")
	require.NoError(t, ed.PrependRight(3, "INNER"))

	require.NoError(t, ed.Overwrite(1, 5, "-"))
	assert.Equal(t, "a-f", ed.Text())
}

func TestRemove(t *testing.T) {
	ed := NewEditor("abcdefghijkl")

	require.NoError(t, ed.Remove(1, 5))
	assert.Equal(t, "afghijkl", ed.Text())
}

func TestEditErrors(t *testing.T) {
	ed := NewEditor("abcdef")

	tests := []struct {
		name string
		err  error
	}{
		{"inverted range", ed.Overwrite(5, 3, "x")},
		{"negative start", ed.Overwrite(-1, 2, "x")},
		{"end past original", ed.Overwrite(0, 99, "x")},
		{"insert past original", ed.AppendLeft(99, "x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, sberrors.ErrConfig)
		})
	}
}

func TestOverwriteInsideEditedRegion(t *testing.T) {
	ed := NewEditor("abcdefghij")
	require.NoError(t, ed.Overwrite(2, 8, "XY"))

	err := ed.Overwrite(4, 6, "z")
	assert.ErrorIs(t, err, sberrors.ErrConfig, "cannot split an edited region")
}

func TestEmpty(t *testing.T) {
	assert.True(t, NewEditor("").Empty())

	ed := NewEditor("ab")
	require.NoError(t, ed.Remove(0, 2))
	assert.True(t, ed.Empty())

	ed.Append("x")
	assert.False(t, ed.Empty())
}

func TestClone(t *testing.T) {
	ed := NewEditor("hello world", WithFilename("greet.txt"), WithSeparator(";"))
	require.NoError(t, ed.Overwrite(0, 5, "goodbye"))
	ed.Prepend("// ")

	clone := ed.Clone()
	assert.Equal(t, ed.Text(), clone.Text())
	assert.Equal(t, ed.Filename(), clone.Filename())

	// Mutating the clone must not leak into the original.
	require.NoError(t, clone.Overwrite(6, 11, "mars"))
	clone.Append("!")
	assert.Equal(t, "// goodbye mars!", clone.Text())
	assert.Equal(t, "// goodbye world", ed.Text())

	// And vice versa.
	require.NoError(t, ed.Remove(5, 11))
	assert.Equal(t, "// goodbye mars!", clone.Text())
}
