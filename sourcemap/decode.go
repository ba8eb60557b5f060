package sourcemap

import "fmt"

// Segment is one decoded mapping segment with absolute values.
type Segment struct {
	// GeneratedColumn is the zero-based byte column on the generated line
	GeneratedColumn int
	// SourceIndex identifies the entry in Sources (valid when HasSource)
	SourceIndex int
	// SourceLine is the zero-based original line (valid when HasSource)
	SourceLine int
	// SourceColumn is the zero-based original column (valid when HasSource)
	SourceColumn int
	// HasSource is false for bare one-field segments with no source binding
	HasSource bool
}

// DecodeMappings decodes an encoded mapping stream into per-generated-line
// segments with absolute positions. Original-position continuity is
// accumulated per source index, mirroring how Offsets encodes it.
func DecodeMappings(mappings string) ([][]Segment, error) {
	lines := [][]Segment{nil}
	var (
		generatedColumn int
		sourceIndex     int
		positions       = make(map[int]position)
		pos             int
	)
	for pos < len(mappings) {
		switch mappings[pos] {
		case ';':
			lines = append(lines, nil)
			generatedColumn = 0
			pos++
			continue
		case ',':
			pos++
			continue
		}

		fields := make([]int, 0, 4)
		for pos < len(mappings) && mappings[pos] != ';' && mappings[pos] != ',' {
			value, next, err := decodeVLQ(mappings, pos)
			if err != nil {
				return nil, err
			}
			fields = append(fields, value)
			pos = next
		}

		generatedColumn += fields[0]
		seg := Segment{GeneratedColumn: generatedColumn}
		switch len(fields) {
		case 1:
			// generated column only; no source binding
		case 4, 5:
			sourceIndex += fields[1]
			p := positions[sourceIndex]
			p.line += fields[2]
			p.column += fields[3]
			positions[sourceIndex] = p
			seg.SourceIndex = sourceIndex
			seg.SourceLine = p.line
			seg.SourceColumn = p.column
			seg.HasSource = true
		default:
			return nil, fmt.Errorf("segment with %d fields at offset %d", len(fields), pos)
		}
		line := len(lines) - 1
		lines[line] = append(lines[line], seg)
	}
	return lines, nil
}

// GeneratedLineCount returns the number of ';' markers in an encoded
// stream, which equals the newline count of the generated text.
func GeneratedLineCount(mappings string) int {
	count := 0
	for i := 0; i < len(mappings); i++ {
		if mappings[i] == ';' {
			count++
		}
	}
	return count
}
