// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package sln holds the typed document model produced by parsing a Visual
// Studio solution file. Every value is constructed once during a parse and
// never mutated afterward.
package sln

import (
	"github.com/google/uuid"
)

// SolutionItem is a loose file reference attached to a solution folder
// through a project section. Name and Path carry the raw text left and
// right of the item's "=" with no escaping applied.
type SolutionItem struct {
	Name string
	Path string
}

// ProjectSectionItems is one ProjectSection(SolutionItems) block. Item order
// follows source order. The marker reflects the literal header text and has
// no behavioral effect.
type ProjectSectionItems struct {
	Marker ProjectSectionMarker
	Items  []SolutionItem
}

// SolutionProperty is a free-form solution-scoped key/value pair.
type SolutionProperty struct {
	Name  string
	Value string
}

// SolutionConfigurationPlatform is a (configuration, platform) pair declared
// at solution scope.
type SolutionConfigurationPlatform struct {
	Configuration BuildConfigurationKind
	Platform      PlatformKind
}

// ProjectConfigurationPlatform maps one project's build context onto a
// configuration/platform pair. ConfigurationLabel is retained verbatim from
// the source record and may span more than a clean label; Project is not
// checked against the declared projects here.
type ProjectConfigurationPlatform struct {
	Project            uuid.UUID
	Configuration      BuildConfigurationKind
	ConfigurationLabel string
	Platform           PlatformKind
}

// NestedProjectEdge is one parent/child relation in the solution folder
// hierarchy. Edges are kept exactly as declared: no deduplication, no cycle
// rejection.
type NestedProjectEdge struct {
	Child  uuid.UUID
	Parent uuid.UUID
}

// GlobalSection is one typed sub-block of the Global block. The variant set
// is closed: exactly the four section types below implement it.
type GlobalSection interface {
	Marker() GlobalSectionMarker
	isGlobalSection()
}

type ConfigurationPlatformsSection struct {
	SectionMarker GlobalSectionMarker
	Entries       []SolutionConfigurationPlatform
}

type ProjectConfigurationsSection struct {
	SectionMarker GlobalSectionMarker
	Entries       []ProjectConfigurationPlatform
}

type PropertiesSection struct {
	SectionMarker GlobalSectionMarker
	Properties    []SolutionProperty
}

type NestedProjectsSection struct {
	SectionMarker GlobalSectionMarker
	Edges         []NestedProjectEdge
}

func (s ConfigurationPlatformsSection) Marker() GlobalSectionMarker { return s.SectionMarker }

func (s ProjectConfigurationsSection) Marker() GlobalSectionMarker { return s.SectionMarker }

func (s PropertiesSection) Marker() GlobalSectionMarker { return s.SectionMarker }

func (s NestedProjectsSection) Marker() GlobalSectionMarker { return s.SectionMarker }

func (s ConfigurationPlatformsSection) isGlobalSection() {}

func (s ProjectConfigurationsSection) isGlobalSection() {}

func (s PropertiesSection) isGlobalSection() {}

func (s NestedProjectsSection) isGlobalSection() {}

// SolutionGlobal is the single Global/EndGlobal block of a document with its
// sections in source order.
type SolutionGlobal struct {
	Sections []GlobalSection
}

// SolutionProject is one top-level Project/EndProject entry. TypeID is the
// braced identifier from the header, ID the project's own identifier. Path
// and RelativePath hold the first and second quoted positional fields of the
// header line; the source text does not name them.
type SolutionProject struct {
	TypeID       uuid.UUID
	Path         string
	RelativePath string
	ID           uuid.UUID
	Sections     []ProjectSectionItems
}

// SolutionFile is the root document.
type SolutionFile struct {
	Projects []SolutionProject
	Global   SolutionGlobal
}
