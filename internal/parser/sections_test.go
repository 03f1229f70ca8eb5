// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/slnparse/exc"
	"gopkg.microglot.org/slnparse/sln"
)

func TestParseConfigurationPlatformsSection(t *testing.T) {
	t.Parallel()
	input := "GlobalSection(SolutionConfigurationPlatforms) = preSolution\r\n" +
		"\t\tDebug|Any CPU = Debug|Any CPU\r\n" +
		"\t\tRelease|x64 = Release|x64\r\n" +
		"\tEndGlobalSection"
	p := newTestParse(input)
	section, err := p.parseGlobalSection()
	require.NoError(t, err)
	require.Equal(t, sln.ConfigurationPlatformsSection{
		SectionMarker: sln.PreSolution,
		Entries: []sln.SolutionConfigurationPlatform{
			{Configuration: sln.ConfigurationDebug, Platform: sln.PlatformAnyCPU},
			{Configuration: sln.ConfigurationRelease, Platform: sln.PlatformX64},
		},
	}, section)
}

// The span between the two pipes of a record is read and dropped, so the
// retained pair combines the left-hand configuration with the right-hand
// platform and the two sides are never checked against each other.
func TestParseConfigurationPlatformsMiddleSegmentDiscarded(t *testing.T) {
	t.Parallel()
	input := "GlobalSection(SolutionConfigurationPlatforms) = preSolution\r\n" +
		"\t\tRelease|completely unrelated text = Debug|x86\r\n" +
		"\tEndGlobalSection"
	p := newTestParse(input)
	section, err := p.parseGlobalSection()
	require.NoError(t, err)
	require.Equal(t, []sln.SolutionConfigurationPlatform{
		{Configuration: sln.ConfigurationRelease, Platform: sln.PlatformX86},
	}, section.(sln.ConfigurationPlatformsSection).Entries)
}

func TestParseProjectConfigurationsSection(t *testing.T) {
	t.Parallel()
	input := "GlobalSection(ProjectConfigurationPlatforms) = postSolution\r\n" +
		"\t\t{8CDD8387-B905-44A8-B5D5-07BB50E05BEA}.Debug|Any CPU.ActiveCfg = Debug|Any CPU\r\n" +
		"\t\t{8CDD8387-B905-44A8-B5D5-07BB50E05BEA}.Release|x64.Build.0 = Release|x64\r\n" +
		"\tEndGlobalSection"
	p := newTestParse(input)
	section, err := p.parseGlobalSection()
	require.NoError(t, err)
	id := uuid.MustParse("8CDD8387-B905-44A8-B5D5-07BB50E05BEA")
	require.Equal(t, sln.ProjectConfigurationsSection{
		SectionMarker: sln.PostSolution,
		Entries: []sln.ProjectConfigurationPlatform{
			{
				Project:            id,
				Configuration:      sln.ConfigurationDebug,
				ConfigurationLabel: "Any CPU.ActiveCfg = Debug",
				Platform:           sln.PlatformAnyCPU,
			},
			{
				Project:            id,
				Configuration:      sln.ConfigurationRelease,
				ConfigurationLabel: "x64.Build.0 = Release",
				Platform:           sln.PlatformX64,
			},
		},
	}, section)
}

func TestParsePropertiesSection(t *testing.T) {
	t.Parallel()
	input := "GlobalSection(SolutionProperties) = preSolution\r\n" +
		"\t\tHideSolutionNode = FALSE\r\n" +
		"\t\tDescription = a free form value\r\n" +
		"\t\tEmptyAllowed = \r\n" +
		"\tEndGlobalSection"
	p := newTestParse(input)
	section, err := p.parseGlobalSection()
	require.NoError(t, err)
	require.Equal(t, sln.PropertiesSection{
		SectionMarker: sln.PreSolution,
		Properties: []sln.SolutionProperty{
			{Name: "HideSolutionNode", Value: "FALSE"},
			{Name: "Description", Value: "a free form value"},
			{Name: "EmptyAllowed", Value: ""},
		},
	}, section)
}

func TestParseNestedProjectsSection(t *testing.T) {
	t.Parallel()
	input := "GlobalSection(NestedProjects) = preSolution\r\n" +
		"\t\t{AAAAAAAA-0000-0000-0000-000000000001} = {BBBBBBBB-0000-0000-0000-000000000002}\r\n" +
		"\t\t{CCCCCCCC-0000-0000-0000-000000000003} = {BBBBBBBB-0000-0000-0000-000000000002}\r\n" +
		"\t\t{CCCCCCCC-0000-0000-0000-000000000003} = {BBBBBBBB-0000-0000-0000-000000000002}\r\n" +
		"\tEndGlobalSection"
	p := newTestParse(input)
	section, err := p.parseGlobalSection()
	require.NoError(t, err)
	a := uuid.MustParse("AAAAAAAA-0000-0000-0000-000000000001")
	b := uuid.MustParse("BBBBBBBB-0000-0000-0000-000000000002")
	c := uuid.MustParse("CCCCCCCC-0000-0000-0000-000000000003")
	// The duplicate edge is kept: this layer does not deduplicate, detect
	// cycles, or check that either end references a declared project.
	require.Equal(t, sln.NestedProjectsSection{
		SectionMarker: sln.PreSolution,
		Edges: []sln.NestedProjectEdge{
			{Child: a, Parent: b},
			{Child: c, Parent: b},
			{Child: c, Parent: b},
		},
	}, section)
}

func TestParseGlobalSectionEmptyBodies(t *testing.T) {
	t.Parallel()
	for _, kind := range []string{
		"SolutionConfigurationPlatforms",
		"ProjectConfigurationPlatforms",
		"SolutionProperties",
		"NestedProjects",
	} {
		t.Run(kind, func(t *testing.T) {
			p := newTestParse("GlobalSection(" + kind + ") = preSolution\r\nEndGlobalSection")
			section, err := p.parseGlobalSection()
			require.NoError(t, err)
			require.Equal(t, sln.PreSolution, section.Marker())
		})
	}
}

func TestParseGlobalSectionUnknownKindIsFatal(t *testing.T) {
	t.Parallel()
	p := newTestParse("GlobalSection(ExtensibilityGlobals) = postSolution\r\nEndGlobalSection")
	_, err := p.parseGlobalSection()
	require.Error(t, err)
	require.Equal(t, exc.CodeUnknownGlobalSection, exc.CodeOf(err))
	require.Contains(t, err.Error(), "ExtensibilityGlobals")
}

func TestParseGlobalSectionBadMarkerIsCommitted(t *testing.T) {
	t.Parallel()
	// Once a header matches, the choice is committed: a bad marker must fail
	// the parse rather than falling through to the next candidate.
	p := newTestParse("GlobalSection(SolutionProperties) = preProject\r\nEndGlobalSection")
	_, err := p.parseGlobalSection()
	require.Error(t, err)
	require.Equal(t, exc.CodeUnknownEnumLiteral, exc.CodeOf(err))
}

func TestParseGlobalSectionUnknownConfiguration(t *testing.T) {
	t.Parallel()
	input := "GlobalSection(SolutionConfigurationPlatforms) = preSolution\r\n" +
		"\t\tStaging|Any CPU = Staging|Any CPU\r\n" +
		"\tEndGlobalSection"
	p := newTestParse(input)
	_, err := p.parseGlobalSection()
	require.Error(t, err)
	require.Equal(t, exc.CodeUnknownEnumLiteral, exc.CodeOf(err))
	require.Contains(t, err.Error(), "Staging")
}
