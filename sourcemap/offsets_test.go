package sourcemap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetsFirstSegment(t *testing.T) {
	off := NewOffsets()

	assert.Equal(t, "AAAA", off.Segment(0, 0, 0))
}

func TestOffsetsCommaWithinLine(t *testing.T) {
	off := NewOffsets()

	first := off.Segment(0, 0, 0)
	off.Advance(3)
	second := off.Segment(0, 0, 3)

	assert.Equal(t, "AAAA", first)
	assert.Equal(t, ",GAAG", second, "second segment on a line carries a leading comma")
}

func TestOffsetsMarkers(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		markers string
	}{
		{name: "no newline", text: "abc", markers: ""},
		{name: "single newline", text: "a\nbc", markers: ";"},
		{name: "trailing newline", text: "ab\n", markers: ";"},
		{name: "blank lines", text: "\n\n", markers: ";;"},
		{name: "empty", text: "", markers: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off := NewOffsets()
			assert.Equal(t, tt.markers, off.Markers(tt.text))
		})
	}
}

func TestOffsetsMarkersAdvanceColumn(t *testing.T) {
	off := NewOffsets()

	// "ab" leaves the generated column at 2, so the next segment's
	// column delta is absolute 2.
	require.Empty(t, off.Markers("ab"))
	assert.Equal(t, "EAAA", off.Segment(0, 0, 0))

	// A newline resets the column; text after it re-advances.
	off = NewOffsets()
	require.Equal(t, ";", off.Markers("ab\nc"))
	assert.Equal(t, "CAAA", off.Segment(0, 0, 0))
}

// TestOffsetsPerSourceContinuity pins the correctness-critical rule:
// when a later fragment revisits an earlier source index, its first
// segment is encoded relative to that source's own last position, not
// relative to the most recent segment overall.
func TestOffsetsPerSourceContinuity(t *testing.T) {
	off := NewOffsets()
	var stream strings.Builder

	// Fragment of source 0, lines 0-1.
	stream.WriteString(off.Segment(0, 0, 0))
	stream.WriteByte(';')
	off.NewLine()
	stream.WriteString(off.Segment(0, 1, 0))
	stream.WriteByte(';')
	off.NewLine()

	// Fragment of source 1.
	stream.WriteString(off.Segment(1, 0, 0))
	stream.WriteByte(';')
	off.NewLine()

	// Back to source 0 at line 2, column 4: deltas are relative to
	// source 0's last position (1, 0).
	stream.WriteString(off.Segment(0, 2, 4))

	assert.Equal(t, "AAAA;AACA;ACAA;ADCI", stream.String())

	// The decoder accumulates per source index the same way, so absolute
	// positions round-trip.
	lines, err := DecodeMappings(stream.String())
	require.NoError(t, err)
	require.Len(t, lines, 4)

	assert.Equal(t, Segment{SourceIndex: 0, SourceLine: 0, SourceColumn: 0, HasSource: true}, lines[0][0])
	assert.Equal(t, Segment{SourceIndex: 0, SourceLine: 1, SourceColumn: 0, HasSource: true}, lines[1][0])
	assert.Equal(t, Segment{SourceIndex: 1, SourceLine: 0, SourceColumn: 0, HasSource: true}, lines[2][0])
	assert.Equal(t, Segment{SourceIndex: 0, SourceLine: 2, SourceColumn: 4, HasSource: true}, lines[3][0])
}

// TestOffsetsInterleavedSources drives many alternating references to two
// sources and checks that decoding recovers every absolute position.
func TestOffsetsInterleavedSources(t *testing.T) {
	off := NewOffsets()
	var stream strings.Builder

	type ref struct {
		source, line, column int
	}
	var refs []ref
	for i := 0; i < 20; i++ {
		r := ref{source: i % 2, line: (i * 3) % 7, column: (i * 5) % 11}
		refs = append(refs, r)
		stream.WriteString(off.Segment(r.source, r.line, r.column))
		stream.WriteByte(';')
		off.NewLine()
	}

	lines, err := DecodeMappings(stream.String())
	require.NoError(t, err)
	require.Len(t, lines, 21)

	for i, r := range refs {
		require.Len(t, lines[i], 1)
		seg := lines[i][0]
		assert.True(t, seg.HasSource)
		assert.Equal(t, r.source, seg.SourceIndex, "segment %d", i)
		assert.Equal(t, r.line, seg.SourceLine, "segment %d", i)
		assert.Equal(t, r.column, seg.SourceColumn, "segment %d", i)
	}
}
