package util

import (
	"fmt"
	"strings"
)

// ParseSourceFile is the template text a syntax tree was decoded from
type ParseSourceFile struct {
	Content string
	URL     string
}

// NewParseSourceFile creates a new ParseSourceFile
func NewParseSourceFile(content, url string) *ParseSourceFile {
	return &ParseSourceFile{
		Content: content,
		URL:     url,
	}
}

// ParseLocation is a position in a ParseSourceFile. Line and Col are zero-based.
type ParseLocation struct {
	File   *ParseSourceFile
	Offset int
	Line   int
	Col    int
}

// NewParseLocationAt creates a ParseLocation from a zero-based line and column,
// computing the offset from the file content. Positions past the end of the
// content are clamped to the content length.
func NewParseLocationAt(file *ParseSourceFile, line, col int) *ParseLocation {
	offset := 0
	if file != nil {
		content := file.Content
		for l := 0; l < line && offset < len(content); l++ {
			next := strings.IndexByte(content[offset:], '\n')
			if next == -1 {
				offset = len(content)
				break
			}
			offset += next + 1
		}
		offset += col
		if offset > len(content) {
			offset = len(content)
		}
	}
	return &ParseLocation{File: file, Offset: offset, Line: line, Col: col}
}

// String returns url@line:col
func (p *ParseLocation) String() string {
	url := ""
	if p.File != nil {
		url = p.File.URL
	}
	return fmt.Sprintf("%s@%d:%d", url, p.Line, p.Col)
}

// lineAround splits the source line holding the location at its offset
func (p *ParseLocation) lineAround() (before, after string, ok bool) {
	if p.File == nil || p.File.Content == "" {
		return "", "", false
	}
	content := p.File.Content
	start := strings.LastIndexByte(content[:p.Offset], '\n') + 1
	end := len(content)
	if next := strings.IndexByte(content[p.Offset:], '\n'); next != -1 {
		end = p.Offset + next
	}
	return content[start:p.Offset], content[p.Offset:end], true
}

// ParseSourceSpan is the source range of a syntax node
type ParseSourceSpan struct {
	Start *ParseLocation
	End   *ParseLocation
}

// NewParseSourceSpan creates a new ParseSourceSpan
func NewParseSourceSpan(start, end *ParseLocation) *ParseSourceSpan {
	return &ParseSourceSpan{Start: start, End: end}
}

// ParseError is a compile error attached to the span of the offending node
type ParseError struct {
	Span *ParseSourceSpan
	Msg  string
}

// NewParseError creates a new ParseError
func NewParseError(span *ParseSourceSpan, msg string) *ParseError {
	return &ParseError{Span: span, Msg: msg}
}

// NewParseErrorf creates a new ParseError with a formatted message
func NewParseErrorf(span *ParseSourceSpan, format string, args ...interface{}) *ParseError {
	return NewParseError(span, fmt.Sprintf(format, args...))
}

// ContextualMessage returns the message followed by the source line, marked
// at the start of the span
func (p *ParseError) ContextualMessage() string {
	if p.Span == nil || p.Span.Start == nil {
		return p.Msg
	}
	before, after, ok := p.Span.Start.lineAround()
	if !ok {
		return p.Msg
	}
	return fmt.Sprintf(`%s ("%s[ERROR ->]%s")`, p.Msg, before, after)
}

// Error implements the error interface. Errors without a span report the
// message alone.
func (p *ParseError) Error() string {
	if p.Span == nil || p.Span.Start == nil {
		return p.Msg
	}
	return fmt.Sprintf("%s: %s", p.ContextualMessage(), p.Span.Start)
}
