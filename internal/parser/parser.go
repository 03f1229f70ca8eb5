// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package parser implements the solution file grammar: token primitives,
// per-construct record parsers, and the single-pass document assembler. The
// parse is all-or-nothing; any failure aborts with no partial document.
package parser

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gopkg.microglot.org/slnparse/exc"
	"gopkg.microglot.org/slnparse/sln"
)

type parse struct {
	s *scanner
}

// applyUntilTerminator repeatedly applies parser while the terminator is not
// visible under lookahead, then consumes the terminator. The repetition
// never consumes the terminator itself and allows zero occurrences.
func applyUntilTerminator[R any](p *parse, terminator string, parser func() (R, error)) ([]R, error) {
	var values []R
	for {
		p.s.skipSpace()
		if p.s.hasPrefix(terminator) {
			break
		}
		if p.s.eof() {
			return nil, exc.New(p.s.location(), exc.CodeUnexpectedEOF, fmt.Sprintf("unexpected EOF (expecting %q)", terminator))
		}
		value, err := parser()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	if err := p.s.expectLiteral(terminator); err != nil {
		return nil, err
	}
	return values, nil
}

// Identifier = "{" hex-and-hyphen run "}"
func (p *parse) parseIdentifier() (uuid.UUID, error) {
	if err := p.s.expect('{'); err != nil {
		return uuid.UUID{}, err
	}
	loc := p.s.location()
	start := p.s.pos
	for {
		r, ok := p.s.peek()
		if !ok {
			return uuid.UUID{}, p.s.errUnexpected(`'}'`)
		}
		if !isHexOrHyphen(r) {
			break
		}
		p.s.next()
	}
	run := p.s.src[start:p.s.pos]
	if err := p.s.expect('}'); err != nil {
		return uuid.UUID{}, err
	}
	id, err := uuid.Parse(run)
	if err != nil {
		return uuid.UUID{}, exc.New(loc, exc.CodeInvalidIdentifier, fmt.Sprintf("%q is not a valid project identifier", run))
	}
	return id, nil
}

func isHexOrHyphen(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	case r == '-':
		return true
	}
	return false
}

// QuotedString = '"' any-but-quote '"'
//
// There is no escape mechanism: a string containing a double quote is not
// representable in this format.
func (p *parse) parseQuoted() (string, error) {
	if err := p.s.expect('"'); err != nil {
		return "", err
	}
	return p.s.takeUntil('"')
}

func (p *parse) parseQuotedIdentifier() (uuid.UUID, error) {
	if err := p.s.expect('"'); err != nil {
		return uuid.UUID{}, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return uuid.UUID{}, err
	}
	if err := p.s.expect('"'); err != nil {
		return uuid.UUID{}, err
	}
	return id, nil
}

// KeyValue = text "=" rest-of-line. The name is trimmed of surrounding
// whitespace, the value keeps everything after the whitespace that follows
// the equals sign.
func (p *parse) parseKeyValueLine() (string, string, error) {
	name, err := p.s.takeUntilInLine('=')
	if err != nil {
		return "", "", err
	}
	p.s.skipInline()
	value := p.s.restOfLine()
	return strings.TrimSpace(name), value, nil
}

func (p *parse) parseProjectSectionMarker() (sln.ProjectSectionMarker, error) {
	loc := p.s.location()
	marker, err := sln.ParseProjectSectionMarker(strings.TrimSpace(p.s.restOfLine()))
	if err != nil {
		return 0, exc.Wrap(loc, exc.CodeUnknownEnumLiteral, err)
	}
	return marker, nil
}

func (p *parse) parseGlobalSectionMarker() (sln.GlobalSectionMarker, error) {
	loc := p.s.location()
	marker, err := sln.ParseGlobalSectionMarker(strings.TrimSpace(p.s.restOfLine()))
	if err != nil {
		return 0, exc.Wrap(loc, exc.CodeUnknownEnumLiteral, err)
	}
	return marker, nil
}

// ProjectSection = "ProjectSection(SolutionItems) =" marker { KeyValue }
// "EndProjectSection"
func (p *parse) parseProjectSection() (*sln.ProjectSectionItems, error) {
	if err := p.s.expectLiteral("ProjectSection(SolutionItems)"); err != nil {
		return nil, err
	}
	p.s.skipInline()
	if err := p.s.expect('='); err != nil {
		return nil, err
	}
	p.s.skipInline()
	marker, err := p.parseProjectSectionMarker()
	if err != nil {
		return nil, err
	}
	items, err := applyUntilTerminator(p, "EndProjectSection", func() (sln.SolutionItem, error) {
		name, value, err := p.parseKeyValueLine()
		if err != nil {
			return sln.SolutionItem{}, err
		}
		return sln.SolutionItem{Name: name, Path: value}, nil
	})
	if err != nil {
		return nil, err
	}
	return &sln.ProjectSectionItems{Marker: marker, Items: items}, nil
}

// Project = "Project(" QuotedIdentifier ") =" QuotedString "," QuotedString
// "," QuotedIdentifier { ProjectSection } "EndProject"
//
// The three quoted fields are positional; the source text never names them.
func (p *parse) parseProject() (*sln.SolutionProject, error) {
	if err := p.s.expectLiteral("Project("); err != nil {
		return nil, err
	}
	typeID, err := p.parseQuotedIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.s.expect(')'); err != nil {
		return nil, err
	}
	p.s.skipInline()
	if err := p.s.expect('='); err != nil {
		return nil, err
	}
	p.s.skipInline()
	path, err := p.parseQuoted()
	if err != nil {
		return nil, err
	}
	if err := p.s.expect(','); err != nil {
		return nil, err
	}
	p.s.skipInline()
	relativePath, err := p.parseQuoted()
	if err != nil {
		return nil, err
	}
	if err := p.s.expect(','); err != nil {
		return nil, err
	}
	p.s.skipInline()
	id, err := p.parseQuotedIdentifier()
	if err != nil {
		return nil, err
	}
	sections, err := applyUntilTerminator(p, "EndProject", func() (sln.ProjectSectionItems, error) {
		section, err := p.parseProjectSection()
		if err != nil {
			return sln.ProjectSectionItems{}, err
		}
		return *section, nil
	})
	if err != nil {
		return nil, err
	}
	return &sln.SolutionProject{
		TypeID:       typeID,
		Path:         path,
		RelativePath: relativePath,
		ID:           id,
		Sections:     sections,
	}, nil
}
