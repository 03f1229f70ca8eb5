// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"context"

	"gopkg.microglot.org/slnparse/exc"
	"gopkg.microglot.org/slnparse/sln"
)

// Parse runs the whole grammar over one solution text. Arbitrary preamble
// (format banners, editor version lines) before the first project or the
// global block is skipped one character at a time; everything after the
// closing EndGlobal is left unread.
func Parse(ctx context.Context, uri string, text string) (*sln.SolutionFile, error) {
	p := &parse{s: newScanner(uri, text)}

	for {
		if p.s.hasPrefix("Project(") || p.s.hasPrefix("Global") {
			break
		}
		if _, ok := p.s.next(); !ok {
			return nil, exc.New(p.s.location(), exc.CodeUnexpectedEOF, "unexpected EOF (expecting a project or the global block)")
		}
	}

	var projects []sln.SolutionProject
	for !p.s.hasPrefix("Global") {
		project, err := p.parseProject()
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
		p.s.skipSpace()
	}

	global, err := p.parseGlobal()
	if err != nil {
		return nil, err
	}

	return &sln.SolutionFile{
		Projects: projects,
		Global:   *global,
	}, nil
}

// Global = "Global" { GlobalSection } "EndGlobal"
func (p *parse) parseGlobal() (*sln.SolutionGlobal, error) {
	if err := p.s.expectLiteral("Global"); err != nil {
		return nil, err
	}
	sections, err := applyUntilTerminator(p, "EndGlobal", p.parseGlobalSection)
	if err != nil {
		return nil, err
	}
	return &sln.SolutionGlobal{Sections: sections}, nil
}
