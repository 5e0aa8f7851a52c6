package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner is a window onto a source text. Sub-scanners produced by Lines and
// Fields keep a reference to the original source so that positions are always
// reported relative to the whole text.
type Scanner struct {
	src         source // the source the scanner is drawing from
	sliceStart  int    // the start of the slice visible to the scanner
	sliceLength int    // the length of the slice visible to the scanner
}

type source interface {
	length() int                // the length of the entire source string
	slice(i, length int) string // the string of the given slice
	filename() string           // the name of the file from which the source is derived (or empty if none)
}

type stringSource struct {
	origin *string // the entire source string
	f      string  // the source filename
}

func NewScanner(str string) *Scanner {
	return &Scanner{stringSource{origin: &str}, 0, len(str)}
}

func NewScannerWithFilename(str, filename string) *Scanner {
	return &Scanner{stringSource{&str, filename}, 0, len(str)}
}

// - Scanner

// The name of the file from which the source is derived (or empty if none).
func (s Scanner) Filename() string {
	if s.src == nil {
		return ""
	}
	return s.src.filename()
}

func (s Scanner) String() string {
	if s.src == nil {
		return ""
	}
	return s.slice()
}

// Context renders the line holding the scanner with the scanned text
// highlighted.
func (s Scanner) Context() string {
	if s.src == nil {
		return ""
	}
	whole := s.src.slice(0, s.src.length())
	lineStart := strings.LastIndexByte(whole[:s.sliceStart], '\n') + 1
	end := s.sliceStart + s.sliceLength
	lineEnd := len(whole)
	if i := strings.IndexByte(whole[end:], '\n'); i >= 0 {
		lineEnd = end + i
	}
	return fmt.Sprintf("%s\033[1;31m%s\033[0m%s",
		whole[lineStart:s.sliceStart],
		s.slice(),
		whole[end:lineEnd],
	)
}

// The 1-indexed line and column number of the start of the scanner within the original source.
func (s Scanner) Position() (int, int) {
	if s.src == nil {
		return 0, 0
	}
	return lineColumn(s.src.slice(0, s.sliceStart), s.sliceStart)
}

// Len is the length in bytes of the visible text.
func (s Scanner) Len() int {
	return s.sliceLength
}

// IsBlank reports whether the scanner sees nothing but whitespace.
func (s Scanner) IsBlank() bool {
	return strings.TrimSpace(s.String()) == ""
}

// Lines splits the visible text on newlines. A trailing carriage return is
// left in place; Fields treats it as whitespace.
func (s Scanner) Lines() []Scanner {
	if s.src == nil {
		return nil
	}
	var lines []Scanner
	text := s.slice()
	start := 0
	for {
		i := strings.IndexByte(text[start:], '\n')
		if i < 0 {
			break
		}
		lines = append(lines, *s.Slice(start, start+i))
		start += i + 1
	}
	if start < len(text) {
		lines = append(lines, *s.Slice(start, len(text)))
	}
	return lines
}

// Fields splits the visible text around runs of whitespace, as
// strings.Fields does, keeping the position of every field.
func (s Scanner) Fields() []Scanner {
	if s.src == nil {
		return nil
	}
	var fields []Scanner
	text := s.slice()
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				fields = append(fields, *s.Slice(start, i))
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, *s.Slice(start, len(text)))
	}
	return fields
}

// The slice that is visible to the scanner
func (s Scanner) slice() string {
	return s.src.slice(s.sliceStart, s.sliceLength)
}

func (s Scanner) Slice(a, b int) *Scanner {
	return &Scanner{s.src, s.sliceStart + a, b - a}
}

func (s Scanner) Skip(i int) *Scanner {
	return &Scanner{s.src, s.sliceStart + i, s.sliceLength - i}
}

// - stringSource

func (s stringSource) length() int {
	return len(*s.origin)
}

func (s stringSource) slice(i, length int) string {
	return (*s.origin)[i : i+length]
}

func (s stringSource) filename() string {
	return s.f
}

// The 1-indexed line and column number of the given position within the given
// string. Columns count runes, not bytes.
func lineColumn(str string, pos int) (line, col int) {
	prefix := str[:pos]
	line = strings.Count(prefix, "\n") + 1
	col = utf8.RuneCountInString(prefix[strings.LastIndex(prefix, "\n")+1:]) + 1
	return
}
