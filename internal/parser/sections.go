// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"strings"

	"gopkg.microglot.org/slnparse/exc"
	"gopkg.microglot.org/slnparse/sln"
)

// tryParseSectionHeader attempts "GlobalSection(<kind>) =" marker. A header
// that does not match rewinds and reports no match; once the header matches
// the choice is committed and later failures are fatal.
func (p *parse) tryParseSectionHeader(kind string) (sln.GlobalSectionMarker, bool, error) {
	m := p.s.mark()
	if err := p.s.expectLiteral("GlobalSection(" + kind + ")"); err != nil {
		p.s.reset(m)
		return 0, false, nil
	}
	p.s.skipInline()
	if err := p.s.expect('='); err != nil {
		return 0, true, err
	}
	p.s.skipInline()
	marker, err := p.parseGlobalSectionMarker()
	if err != nil {
		return 0, true, err
	}
	return marker, true, nil
}

// SolutionConfigurationPlatforms records look like
//
//	Debug|Any CPU = Debug|Any CPU
//
// The configuration before the first pipe is parsed, the span between the
// first and second pipes is captured and discarded, and the remainder of the
// line is parsed as the platform. The retained pair is therefore the
// left-hand configuration and the right-hand platform; the two sides are
// never compared.
func (p *parse) parseSolutionConfigurationPlatform() (sln.SolutionConfigurationPlatform, error) {
	loc := p.s.location()
	configurationText, err := p.s.takeUntilInLine('|')
	if err != nil {
		return sln.SolutionConfigurationPlatform{}, err
	}
	configuration, err := sln.ParseBuildConfigurationKind(strings.TrimSpace(configurationText))
	if err != nil {
		return sln.SolutionConfigurationPlatform{}, exc.Wrap(loc, exc.CodeUnknownEnumLiteral, err)
	}
	if _, err := p.s.takeUntilInLine('|'); err != nil {
		return sln.SolutionConfigurationPlatform{}, err
	}
	loc = p.s.location()
	platform, err := sln.ParsePlatformKind(strings.TrimSpace(p.s.restOfLine()))
	if err != nil {
		return sln.SolutionConfigurationPlatform{}, exc.Wrap(loc, exc.CodeUnknownEnumLiteral, err)
	}
	return sln.SolutionConfigurationPlatform{
		Configuration: configuration,
		Platform:      platform,
	}, nil
}

// ProjectConfigurationPlatforms records look like
//
//	{8CDD8387-B905-44A8-B5D5-07BB50E05BEA}.Debug|Any CPU.ActiveCfg = Debug|Any CPU
//
// Everything between the first and second pipes is retained verbatim as the
// configuration label, so the label usually spans the platform of the build
// context, the context name, and the left-hand side of the assignment.
func (p *parse) parseProjectConfigurationPlatform() (sln.ProjectConfigurationPlatform, error) {
	project, err := p.parseIdentifier()
	if err != nil {
		return sln.ProjectConfigurationPlatform{}, err
	}
	if err := p.s.expect('.'); err != nil {
		return sln.ProjectConfigurationPlatform{}, err
	}
	loc := p.s.location()
	configurationText, err := p.s.takeUntilInLine('|')
	if err != nil {
		return sln.ProjectConfigurationPlatform{}, err
	}
	configuration, err := sln.ParseBuildConfigurationKind(strings.TrimSpace(configurationText))
	if err != nil {
		return sln.ProjectConfigurationPlatform{}, exc.Wrap(loc, exc.CodeUnknownEnumLiteral, err)
	}
	label, err := p.s.takeUntilInLine('|')
	if err != nil {
		return sln.ProjectConfigurationPlatform{}, err
	}
	loc = p.s.location()
	platform, err := sln.ParsePlatformKind(strings.TrimSpace(p.s.restOfLine()))
	if err != nil {
		return sln.ProjectConfigurationPlatform{}, exc.Wrap(loc, exc.CodeUnknownEnumLiteral, err)
	}
	return sln.ProjectConfigurationPlatform{
		Project:            project,
		Configuration:      configuration,
		ConfigurationLabel: label,
		Platform:           platform,
	}, nil
}

// NestedProjects records are edges of the form {child} = {parent}. Edges are
// recorded exactly as declared; duplicates and cycles pass through.
func (p *parse) parseNestedProjectEdge() (sln.NestedProjectEdge, error) {
	child, err := p.parseIdentifier()
	if err != nil {
		return sln.NestedProjectEdge{}, err
	}
	p.s.skipInline()
	if err := p.s.expect('='); err != nil {
		return sln.NestedProjectEdge{}, err
	}
	p.s.skipInline()
	parent, err := p.parseIdentifier()
	if err != nil {
		return sln.NestedProjectEdge{}, err
	}
	return sln.NestedProjectEdge{Child: child, Parent: parent}, nil
}

func (p *parse) parseSolutionProperty() (sln.SolutionProperty, error) {
	name, value, err := p.parseKeyValueLine()
	if err != nil {
		return sln.SolutionProperty{}, err
	}
	return sln.SolutionProperty{Name: name, Value: value}, nil
}

const endGlobalSection = "EndGlobalSection"

// parseGlobalSection is an ordered choice over the four recognized section
// kinds. The order is load-bearing: the first header that matches wins. A
// GlobalSection header outside the recognized set is fatal, never skipped.
func (p *parse) parseGlobalSection() (sln.GlobalSection, error) {
	marker, ok, err := p.tryParseSectionHeader("SolutionConfigurationPlatforms")
	if err != nil {
		return nil, err
	}
	if ok {
		entries, err := applyUntilTerminator(p, endGlobalSection, p.parseSolutionConfigurationPlatform)
		if err != nil {
			return nil, err
		}
		return sln.ConfigurationPlatformsSection{SectionMarker: marker, Entries: entries}, nil
	}

	marker, ok, err = p.tryParseSectionHeader("ProjectConfigurationPlatforms")
	if err != nil {
		return nil, err
	}
	if ok {
		entries, err := applyUntilTerminator(p, endGlobalSection, p.parseProjectConfigurationPlatform)
		if err != nil {
			return nil, err
		}
		return sln.ProjectConfigurationsSection{SectionMarker: marker, Entries: entries}, nil
	}

	marker, ok, err = p.tryParseSectionHeader("SolutionProperties")
	if err != nil {
		return nil, err
	}
	if ok {
		properties, err := applyUntilTerminator(p, endGlobalSection, p.parseSolutionProperty)
		if err != nil {
			return nil, err
		}
		return sln.PropertiesSection{SectionMarker: marker, Properties: properties}, nil
	}

	marker, ok, err = p.tryParseSectionHeader("NestedProjects")
	if err != nil {
		return nil, err
	}
	if ok {
		edges, err := applyUntilTerminator(p, endGlobalSection, p.parseNestedProjectEdge)
		if err != nil {
			return nil, err
		}
		return sln.NestedProjectsSection{SectionMarker: marker, Edges: edges}, nil
	}

	if p.s.hasPrefix("GlobalSection(") {
		m := p.s.mark()
		loc := p.s.location()
		_ = p.s.expectLiteral("GlobalSection(")
		kind, err := p.s.takeUntilInLine(')')
		p.s.reset(m)
		if err == nil {
			return nil, exc.New(loc, exc.CodeUnknownGlobalSection, fmt.Sprintf("%q is not a recognized global section kind", kind))
		}
	}
	return nil, p.s.errUnexpected("a global section header")
}
