// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package sln

import (
	"fmt"
	"strings"

	"gopkg.microglot.org/slnparse/exc"
	"gopkg.microglot.org/slnparse/optional"
)

// PlatformKind is the CPU architecture target of a configuration/platform
// pair. The set is closed: only the three literals below are representable.
type PlatformKind int

const (
	PlatformAnyCPU PlatformKind = iota
	PlatformX86
	PlatformX64
)

func (k PlatformKind) String() string {
	switch k {
	case PlatformAnyCPU:
		return "Any CPU"
	case PlatformX86:
		return "x86"
	case PlatformX64:
		return "x64"
	}
	return fmt.Sprintf("PlatformKind(%d)", int(k))
}

// BuildConfigurationKind is the build profile of a configuration/platform
// pair. The set is closed and known to be incomplete relative to solution
// files found in the wild (custom configurations such as "Staging" are
// rejected).
type BuildConfigurationKind int

const (
	ConfigurationDebug BuildConfigurationKind = iota
	ConfigurationRelease
)

func (k BuildConfigurationKind) String() string {
	switch k {
	case ConfigurationDebug:
		return "Debug"
	case ConfigurationRelease:
		return "Release"
	}
	return fmt.Sprintf("BuildConfigurationKind(%d)", int(k))
}

// ProjectSectionMarker records whether a project section is declared before
// or after the project's own content. It is carried as data only.
type ProjectSectionMarker int

const (
	PreProject ProjectSectionMarker = iota
	PostProject
)

func (m ProjectSectionMarker) String() string {
	switch m {
	case PreProject:
		return "preProject"
	case PostProject:
		return "postProject"
	}
	return fmt.Sprintf("ProjectSectionMarker(%d)", int(m))
}

// GlobalSectionMarker is the solution-scoped analog of ProjectSectionMarker.
type GlobalSectionMarker int

const (
	PreSolution GlobalSectionMarker = iota
	PostSolution
)

func (m GlobalSectionMarker) String() string {
	switch m {
	case PreSolution:
		return "preSolution"
	case PostSolution:
		return "postSolution"
	}
	return fmt.Sprintf("GlobalSectionMarker(%d)", int(m))
}

// matchLiteral is the single normalize-and-compare helper behind every enum
// parser. Comparison is case-insensitive against the canonical String()
// forms, in declaration order.
func matchLiteral[K fmt.Stringer](text string, vocabulary []K) optional.Optional[K] {
	for _, k := range vocabulary {
		if strings.EqualFold(text, k.String()) {
			return optional.Some(k)
		}
	}
	return optional.None[K]()
}

func parseLiteral[K fmt.Stringer](text string, enum string, vocabulary []K) (K, error) {
	maybe := matchLiteral(text, vocabulary)
	if !maybe.IsPresent() {
		var zero K
		return zero, exc.New(exc.Location{}, exc.CodeUnknownEnumLiteral, fmt.Sprintf("%q is not a recognized %s", text, enum))
	}
	return maybe.Value(), nil
}

var (
	platformKinds           = []PlatformKind{PlatformAnyCPU, PlatformX86, PlatformX64}
	buildConfigurationKinds = []BuildConfigurationKind{ConfigurationDebug, ConfigurationRelease}
	projectSectionMarkers   = []ProjectSectionMarker{PreProject, PostProject}
	globalSectionMarkers    = []GlobalSectionMarker{PreSolution, PostSolution}
)

func ParsePlatformKind(text string) (PlatformKind, error) {
	return parseLiteral(text, "PlatformKind", platformKinds)
}

func TryParsePlatformKind(text string) optional.Optional[PlatformKind] {
	return matchLiteral(text, platformKinds)
}

func ParseBuildConfigurationKind(text string) (BuildConfigurationKind, error) {
	return parseLiteral(text, "BuildConfigurationKind", buildConfigurationKinds)
}

func TryParseBuildConfigurationKind(text string) optional.Optional[BuildConfigurationKind] {
	return matchLiteral(text, buildConfigurationKinds)
}

func ParseProjectSectionMarker(text string) (ProjectSectionMarker, error) {
	return parseLiteral(text, "ProjectSectionMarker", projectSectionMarkers)
}

func TryParseProjectSectionMarker(text string) optional.Optional[ProjectSectionMarker] {
	return matchLiteral(text, projectSectionMarkers)
}

func ParseGlobalSectionMarker(text string) (GlobalSectionMarker, error) {
	return parseLiteral(text, "GlobalSectionMarker", globalSectionMarkers)
}

func TryParseGlobalSectionMarker(text string) optional.Optional[GlobalSectionMarker] {
	return matchLiteral(text, globalSectionMarkers)
}

// MarshalText renders enums as their canonical literals in JSON and YAML
// dumps.
func (k PlatformKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k BuildConfigurationKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (m ProjectSectionMarker) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m GlobalSectionMarker) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
