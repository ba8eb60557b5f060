package chunk

import (
	"regexp"

	"github.com/erraggy/srcbundle/sberrors"
)

// CompileLeading builds a pattern matching a maximal run of charClass at
// the start of a string. An empty class defaults to any whitespace.
func CompileLeading(charClass string) (*regexp.Regexp, error) {
	return compileClass(charClass, "^(?:", ")+")
}

// CompileTrailing builds a pattern matching a maximal run of charClass at
// the end of a string. An empty class defaults to any whitespace.
func CompileTrailing(charClass string) (*regexp.Regexp, error) {
	return compileClass(charClass, "(?:", ")+$")
}

func compileClass(charClass, prefix, suffix string) (*regexp.Regexp, error) {
	if charClass == "" {
		charClass = `\s`
	}
	rx, err := regexp.Compile(prefix + charClass + suffix)
	if err != nil {
		return nil, &sberrors.ConfigError{
			Option:  "charClass",
			Message: "must be a valid character class expression",
			Cause:   err,
		}
	}
	return rx, nil
}

// TrimStart removes a maximal leading run of charClass from the editor's
// text, walking through inserted intros, span content, and outros as
// needed. An empty class trims whitespace.
func (e *Editor) TrimStart(charClass string) error {
	rx, err := CompileLeading(charClass)
	if err != nil {
		return err
	}
	e.trimStartMatches(rx)
	return nil
}

// TrimEnd is the mirror of TrimStart, removing a maximal trailing run.
func (e *Editor) TrimEnd(charClass string) error {
	rx, err := CompileTrailing(charClass)
	if err != nil {
		return err
	}
	e.trimEndMatches(rx)
	return nil
}

// trimStartMatches trims with a precompiled pattern and reports whether
// any text survived the trim.
func (e *Editor) trimStartMatches(rx *regexp.Regexp) bool {
	e.intro = rx.ReplaceAllString(e.intro, "")
	if e.intro != "" {
		return true
	}
	for s := e.firstSpan; s != nil; s = s.next {
		if e.trimSpanStart(s, rx) {
			return true
		}
	}
	e.outro = rx.ReplaceAllString(e.outro, "")
	return e.outro != ""
}

func (e *Editor) trimEndMatches(rx *regexp.Regexp) bool {
	e.outro = rx.ReplaceAllString(e.outro, "")
	if e.outro != "" {
		return true
	}
	for s := e.lastSpan; s != nil; s = s.previous {
		if e.trimSpanEnd(s, rx) {
			return true
		}
	}
	e.intro = rx.ReplaceAllString(e.intro, "")
	return e.intro != ""
}

// trimSpanStart trims the leading edge of one span, splitting unedited
// spans so the surviving tail keeps its original byte range for mapping.
// It reports whether the span still contributes text.
func (e *Editor) trimSpanStart(s *span, rx *regexp.Regexp) bool {
	s.intro = rx.ReplaceAllString(s.intro, "")
	if s.intro != "" {
		return true
	}
	trimmed := rx.ReplaceAllString(s.content, "")
	if trimmed != "" {
		if trimmed != s.content {
			if s.edited {
				s.content = trimmed
			} else {
				// blank the removed prefix, keep the tail unedited
				_ = e.split(s.end - len(trimmed))
				s.edit("")
			}
		}
		return true
	}
	s.edit("")
	s.outro = rx.ReplaceAllString(s.outro, "")
	return s.outro != ""
}

func (e *Editor) trimSpanEnd(s *span, rx *regexp.Regexp) bool {
	s.outro = rx.ReplaceAllString(s.outro, "")
	if s.outro != "" {
		return true
	}
	trimmed := rx.ReplaceAllString(s.content, "")
	if trimmed != "" {
		if trimmed != s.content {
			if s.edited {
				s.content = trimmed
			} else {
				_ = e.split(s.start + len(trimmed))
				s.next.edit("")
			}
		}
		return true
	}
	s.edit("")
	s.intro = rx.ReplaceAllString(s.intro, "")
	return s.intro != ""
}
