package sourcemap

import (
	"sort"
	"strings"
)

// Locator resolves byte offsets in a fixed text to zero-based
// (line, column) positions. Construction is O(text); lookups are
// O(log lines).
type Locator struct {
	lineStarts []int
}

// NewLocator builds a Locator over text.
func NewLocator(text string) *Locator {
	starts := []int{0}
	for i := 0; i < len(text); {
		nl := strings.IndexByte(text[i:], '\n')
		if nl < 0 {
			break
		}
		i += nl + 1
		starts = append(starts, i)
	}
	return &Locator{lineStarts: starts}
}

// Locate returns the zero-based line and byte column for offset.
// Offsets past the end of the text resolve within the final line.
func (l *Locator) Locate(offset int) (line, column int) {
	line = sort.Search(len(l.lineStarts), func(i int) bool {
		return l.lineStarts[i] > offset
	}) - 1
	return line, offset - l.lineStarts[line]
}
