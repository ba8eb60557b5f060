package chunk

import "strings"

// DetectedIndentUnit returns the indentation unit used by the original
// text: a tab when tab-indented lines are at least as common as
// space-indented ones, otherwise the minimum run of two or more leading
// spaces observed. It returns "" when no indented lines exist.
func (e *Editor) DetectedIndentUnit() string {
	if !e.indentUnitDecided {
		e.detectedIndent = guessIndent(e.original)
		e.indentUnitDecided = true
	}
	return e.detectedIndent
}

func guessIndent(text string) string {
	var tabbed, spaced, minSpaces int
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "\t"):
			tabbed++
		case strings.HasPrefix(line, "  "):
			spaced++
			run := leadingSpaces(line)
			if minSpaces == 0 || run < minSpaces {
				minSpaces = run
			}
		}
	}
	if tabbed == 0 && spaced == 0 {
		return ""
	}
	if tabbed >= spaced {
		return "\t"
	}
	return strings.Repeat(" ", minSpaces)
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// IndentOptions controls one indentation rewrite.
type IndentOptions struct {
	// Exclude lists original byte ranges the rewrite must leave untouched
	Exclude [][2]int
	// IndentStart indents the very first line too; a fragment continuing
	// mid-line after a separator without a trailing newline must not have
	// its first line re-indented
	IndentStart bool
}

// Indent rewrites the editor's text in place, inserting unit at the start
// of every line whose first character is not a carriage return or newline.
// An empty unit means use the detected indentation, falling back to a tab.
func (e *Editor) Indent(unit string, opts IndentOptions) *Editor {
	if unit == "" {
		unit = e.DetectedIndentUnit()
		if unit == "" {
			unit = "\t"
		}
	}

	excluded := make(map[int]bool)
	for _, r := range opts.Exclude {
		for i := r[0]; i < r[1]; i++ {
			excluded[i] = true
		}
	}

	shouldIndent := opts.IndentStart
	indentText := func(text string) string {
		var sb strings.Builder
		atLineStart := true
		for i := 0; i < len(text); i++ {
			ch := text[i]
			if atLineStart && ch != '\n' && ch != '\r' {
				if shouldIndent {
					sb.WriteString(unit)
				} else {
					shouldIndent = true
				}
			}
			sb.WriteByte(ch)
			atLineStart = ch == '\n'
		}
		return sb.String()
	}

	e.intro = indentText(e.intro)

	for s := e.firstSpan; s != nil; s = s.next {
		if s.edited {
			if !excluded[s.start] {
				s.content = indentText(s.content)
				if s.content != "" {
					shouldIndent = s.content[len(s.content)-1] == '\n'
				}
			}
			continue
		}

		end := s.end
		for charIndex := s.start; charIndex < end; charIndex++ {
			if excluded[charIndex] {
				continue
			}
			switch ch := e.original[charIndex]; {
			case ch == '\n':
				shouldIndent = true
			case ch != '\r' && shouldIndent:
				shouldIndent = false
				if charIndex == s.start {
					s.prependRight(unit)
				} else {
					// force a boundary so the insert lands mid-span
					_ = e.split(charIndex)
					s = s.next
					s.prependRight(unit)
				}
			}
		}
	}

	e.outro = indentText(e.outro)
	return e
}
