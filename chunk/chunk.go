package chunk

// span is one node in the editor's partition of the original text.
// [start, end) addresses original bytes; intro and outro hold text
// inserted immediately before and after the span; when edited is set,
// content replaces the original bytes instead of repeating them.
type span struct {
	start, end int
	content    string
	intro      string
	outro      string
	edited     bool

	previous *span
	next     *span
}

func newSpan(start, end int, content string) *span {
	return &span{start: start, end: end, content: content}
}

func (s *span) contains(index int) bool {
	return s.start < index && index < s.end
}

// appendLeft adds text after this span's current content.
func (s *span) appendLeft(text string) {
	s.outro += text
}

// prependRight adds text before this span's current content.
func (s *span) prependRight(text string) {
	s.intro = text + s.intro
}

// edit replaces the span's content. The original byte range is kept so
// mapping segments still resolve to the replaced region's start.
func (s *span) edit(content string) {
	s.content = content
	s.edited = true
}

// split divides the span at an original byte index, returning the new
// tail span for [index, end). The outro moves to the tail; the intro
// stays with the head. Splitting an edited span with content would lose
// edit text, so callers never split those.
func (s *span) split(index int) *span {
	tail := newSpan(index, s.end, s.content[index-s.start:])
	tail.outro = s.outro
	tail.edited = s.edited

	s.content = s.content[:index-s.start]
	s.end = index
	s.outro = ""

	tail.next = s.next
	if tail.next != nil {
		tail.next.previous = tail
	}
	tail.previous = s
	s.next = tail
	return tail
}

// text returns the span's current contribution to the editor's text.
func (s *span) text() string {
	return s.intro + s.content + s.outro
}

func (s *span) clone() *span {
	return &span{
		start:   s.start,
		end:     s.end,
		content: s.content,
		intro:   s.intro,
		outro:   s.outro,
		edited:  s.edited,
	}
}
