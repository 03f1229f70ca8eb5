// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.microglot.org/slnparse/exc"
)

// scanner is a cursor over one immutable in-memory source text. Lookahead
// (hasPrefix) never consumes input; mark/reset give failed alternatives a
// way to rewind without leaving partial consumption behind.
type scanner struct {
	uri  string
	src  string
	pos  int
	line int32
	col  int32
}

func newScanner(uri string, src string) *scanner {
	return &scanner{
		uri:  uri,
		src:  src,
		line: 1,
		col:  1,
	}
}

type scanMark struct {
	pos  int
	line int32
	col  int32
}

func (s *scanner) mark() scanMark {
	return scanMark{pos: s.pos, line: s.line, col: s.col}
}

func (s *scanner) reset(m scanMark) {
	s.pos = m.pos
	s.line = m.line
	s.col = m.col
}

func (s *scanner) location() exc.Location {
	return exc.Location{
		URI:    s.uri,
		Line:   s.line,
		Column: s.col,
		Offset: int64(s.pos),
	}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() (rune, bool) {
	if s.eof() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r, true
}

// next consumes one rune. All consumption funnels through here so that line
// and column stay accurate.
func (s *scanner) next() (rune, bool) {
	if s.eof() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r, true
}

func (s *scanner) hasPrefix(literal string) bool {
	return strings.HasPrefix(s.src[s.pos:], literal)
}

// snippet is the upcoming text quoted in error messages, cut at the end of
// the current line.
func (s *scanner) snippet() string {
	rest := s.src[s.pos:]
	if i := strings.IndexAny(rest, "\r\n"); i >= 0 {
		rest = rest[:i]
	}
	if len(rest) > 24 {
		rest = rest[:24]
	}
	return rest
}

func (s *scanner) errUnexpected(expecting string) error {
	if s.eof() {
		return exc.New(s.location(), exc.CodeUnexpectedEOF, fmt.Sprintf("unexpected EOF (expecting %s)", expecting))
	}
	return exc.New(s.location(), exc.CodeUnexpectedToken, fmt.Sprintf("unexpected %q (expecting %s)", s.snippet(), expecting))
}

// expectLiteral consumes an exact literal or fails without consuming.
func (s *scanner) expectLiteral(literal string) error {
	if !s.hasPrefix(literal) {
		return s.errUnexpected(fmt.Sprintf("%q", literal))
	}
	for range literal {
		s.next()
	}
	return nil
}

func (s *scanner) expect(r rune) error {
	c, ok := s.peek()
	if !ok || c != r {
		return s.errUnexpected(fmt.Sprintf("%q", r))
	}
	s.next()
	return nil
}

// takeUntil captures everything before the next occurrence of delim and
// consumes the delimiter itself.
func (s *scanner) takeUntil(delim rune) (string, error) {
	start := s.pos
	for {
		r, ok := s.peek()
		if !ok {
			return "", s.errUnexpected(fmt.Sprintf("%q", delim))
		}
		if r == delim {
			text := s.src[start:s.pos]
			s.next()
			return text, nil
		}
		s.next()
	}
}

// takeUntilInLine is takeUntil restricted to the current line.
func (s *scanner) takeUntilInLine(delim rune) (string, error) {
	start := s.pos
	for {
		r, ok := s.peek()
		if !ok || r == '\n' || r == '\r' {
			return "", s.errUnexpected(fmt.Sprintf("%q", delim))
		}
		if r == delim {
			text := s.src[start:s.pos]
			s.next()
			return text, nil
		}
		s.next()
	}
}

// restOfLine captures the remainder of the current line without the line
// break and consumes through the line break.
func (s *scanner) restOfLine() string {
	start := s.pos
	for {
		r, ok := s.peek()
		if !ok {
			return s.src[start:s.pos]
		}
		if r == '\n' {
			text := s.src[start:s.pos]
			s.next()
			return strings.TrimSuffix(text, "\r")
		}
		s.next()
	}
}

func (s *scanner) skipSpace() {
	for {
		r, ok := s.peek()
		if !ok {
			return
		}
		switch r {
		case ' ', '\t', '\r', '\n':
			s.next()
		default:
			return
		}
	}
}

func (s *scanner) skipInline() {
	for {
		r, ok := s.peek()
		if !ok {
			return
		}
		if r != ' ' && r != '\t' {
			return
		}
		s.next()
	}
}
