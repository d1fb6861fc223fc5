// Package yul pretty-prints Yul intermediate representation.
package yul

import (
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
)

// Formatter re-indents Yul source by block depth.
//
// It does not reflow code: statements keep their line breaks, only leading
// whitespace is rewritten and trailing whitespace dropped. Output that is
// already indented with the configured width is returned unchanged.
type Formatter struct {
	indent string
}

// NewFormatter creates a Formatter using domain.YulIndentWidth spaces per level.
func NewFormatter() *Formatter {
	return NewFormatterWithWidth(domain.YulIndentWidth)
}

// NewFormatterWithWidth creates a Formatter with a custom indentation width.
func NewFormatterWithWidth(width int) *Formatter {
	if width < 0 {
		width = 0
	}
	return &Formatter{indent: strings.Repeat(" ", width)}
}

// Format returns ir with every line indented to its block depth.
func (f *Formatter) Format(ir string) string {
	if ir == "" {
		return ""
	}

	lines := strings.Split(ir, "\n")
	var sc scanner
	depth := 0

	var b strings.Builder
	b.Grow(len(ir))
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}

		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		startsInComment := sc.inBlockComment
		leading, opens, closes := sc.scan(text)

		level := depth
		if !startsInComment {
			level = max(depth-leading, 0)
		}
		for range level {
			b.WriteString(f.indent)
		}
		b.WriteString(text)

		depth = max(depth+opens-closes, 0)
	}
	return b.String()
}

// scanner tracks lexical state that spans lines.
type scanner struct {
	inBlockComment bool
}

// scan counts the braces on one trimmed line that are outside string
// literals and comments. leading is the number of closing braces before the
// first other token.
func (s *scanner) scan(line string) (leading, opens, closes int) {
	inString := false
	sawToken := false

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case s.inBlockComment:
			if c == '*' && i+1 < len(line) && line[i+1] == '/' {
				s.inBlockComment = false
				i++
			}
			continue
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			sawToken = true
		case '/':
			if i+1 < len(line) && line[i+1] == '/' {
				return leading, opens, closes
			}
			if i+1 < len(line) && line[i+1] == '*' {
				s.inBlockComment = true
				i++
				continue
			}
			sawToken = true
		case '{':
			opens++
			sawToken = true
		case '}':
			closes++
			if !sawToken {
				leading++
			}
		case ' ', '\t':
		default:
			sawToken = true
		}
	}
	return leading, opens, closes
}
