package sourcemap

import "strings"

// position is a zero-based (line, column) pair in one source's own
// coordinate space.
type position struct {
	line   int
	column int
}

// Offsets threads delta-encoding state across every piece of one merged
// mapping stream: intro text, fragment segments, separators, and outro.
//
// Delta encoding expresses every segment relative to the previous one, so
// a single Offsets value must be shared by all contributors to one stream.
// Original positions are tracked per source index rather than globally:
// when the same original file is referenced by multiple non-adjacent
// fragments, each fragment's first segment is encoded relative to that
// source's own last-seen position, not the stream's most recent segment
// overall.
type Offsets struct {
	// generatedColumn is the absolute byte column on the current output line
	generatedColumn int
	// lastGeneratedColumn is the column of the last segment on this line
	lastGeneratedColumn int
	// lineHasSegment records whether the current line already has a segment
	lineHasSegment bool
	// lastSourceIndex is the source index of the last segment emitted
	lastSourceIndex int
	// positions holds, per source index, the last emitted original position
	positions map[int]position
}

// NewOffsets returns the zero state for a fresh mapping stream.
func NewOffsets() *Offsets {
	return &Offsets{positions: make(map[int]position)}
}

// NewLine resets the per-line state at a generated line break.
func (o *Offsets) NewLine() {
	o.generatedColumn = 0
	o.lastGeneratedColumn = 0
	o.lineHasSegment = false
}

// Advance moves the generated position n bytes right on the current line.
func (o *Offsets) Advance(n int) {
	o.generatedColumn += n
}

// Markers returns one generated-line marker per newline in text and
// advances the column state through any characters after the last newline.
// Text without newlines produces no markers but still advances the column.
func (o *Offsets) Markers(text string) string {
	n := strings.Count(text, "\n")
	if n == 0 {
		o.Advance(len(text))
		return ""
	}
	o.NewLine()
	o.Advance(len(text) - strings.LastIndexByte(text, '\n') - 1)
	return strings.Repeat(";", n)
}

// Segment encodes one mapping segment at the current generated column for
// the given original position, including a leading comma when the current
// line already carries a segment, and updates the running state.
func (o *Offsets) Segment(sourceIndex, line, column int) string {
	buf := make([]byte, 0, 16)
	if o.lineHasSegment {
		buf = append(buf, ',')
	}
	pos := o.positions[sourceIndex]
	buf = appendVLQ(buf, o.generatedColumn-o.lastGeneratedColumn)
	buf = appendVLQ(buf, sourceIndex-o.lastSourceIndex)
	buf = appendVLQ(buf, line-pos.line)
	buf = appendVLQ(buf, column-pos.column)

	o.lastGeneratedColumn = o.generatedColumn
	o.lineHasSegment = true
	o.lastSourceIndex = sourceIndex
	o.positions[sourceIndex] = position{line: line, column: column}
	return string(buf)
}
