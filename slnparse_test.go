// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package slnparse_test

import (
	"context"
	iofs "io/fs"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/slnparse"
	"gopkg.microglot.org/slnparse/exc"
	"gopkg.microglot.org/slnparse/fs"
	"gopkg.microglot.org/slnparse/sln"
)

const solutionText = "\r\nMicrosoft Visual Studio Solution File, Format Version 12.00\r\n" +
	"# Visual Studio Version 17\r\n" +
	"VisualStudioVersion = 17.0.31903.59\r\n" +
	"MinimumVisualStudioVersion = 10.0.40219.1\r\n" +
	"Project(\"{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}\") = \"App\", \"App\\App.csproj\", \"{11111111-0000-0000-0000-000000000001}\"\r\n" +
	"EndProject\r\n" +
	"Project(\"{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}\") = \"Lib\", \"Lib\\Lib.csproj\", \"{22222222-0000-0000-0000-000000000002}\"\r\n" +
	"EndProject\r\n" +
	"Project(\"{2150E333-8FDC-42A3-9474-1A3956D46DE8}\") = \"Solution Items\", \"Solution Items\", \"{33333333-0000-0000-0000-000000000003}\"\r\n" +
	"\tProjectSection(SolutionItems) = preProject\r\n" +
	"\t\tREADME.md = README.md\r\n" +
	"\t\t.editorconfig = .editorconfig\r\n" +
	"\tEndProjectSection\r\n" +
	"EndProject\r\n" +
	"Global\r\n" +
	"\tGlobalSection(SolutionConfigurationPlatforms) = preSolution\r\n" +
	"\t\tDebug|Any CPU = Debug|Any CPU\r\n" +
	"\t\tRelease|Any CPU = Release|Any CPU\r\n" +
	"\tEndGlobalSection\r\n" +
	"\tGlobalSection(ProjectConfigurationPlatforms) = postSolution\r\n" +
	"\t\t{11111111-0000-0000-0000-000000000001}.Debug|Any CPU.ActiveCfg = Debug|Any CPU\r\n" +
	"\t\t{11111111-0000-0000-0000-000000000001}.Debug|Any CPU.Build.0 = Debug|Any CPU\r\n" +
	"\t\t{22222222-0000-0000-0000-000000000002}.Release|Any CPU.ActiveCfg = Release|Any CPU\r\n" +
	"\tEndGlobalSection\r\n" +
	"\tGlobalSection(SolutionProperties) = preSolution\r\n" +
	"\t\tHideSolutionNode = FALSE\r\n" +
	"\tEndGlobalSection\r\n" +
	"\tGlobalSection(NestedProjects) = preSolution\r\n" +
	"\t\t{11111111-0000-0000-0000-000000000001} = {33333333-0000-0000-0000-000000000003}\r\n" +
	"\t\t{22222222-0000-0000-0000-000000000002} = {33333333-0000-0000-0000-000000000003}\r\n" +
	"\tEndGlobalSection\r\n" +
	"EndGlobal\r\n"

func TestParse(t *testing.T) {
	t.Parallel()
	doc, err := slnparse.Parse(context.Background(), "/sample.sln", solutionText)
	require.NoError(t, err)

	require.Len(t, doc.Projects, 3)
	require.Equal(t, "App", doc.Projects[0].Path)
	require.Equal(t, "Lib\\Lib.csproj", doc.Projects[1].RelativePath)
	require.Equal(t, uuid.MustParse("33333333-0000-0000-0000-000000000003"), doc.Projects[2].ID)
	require.Len(t, doc.Projects[2].Sections, 1)
	require.Len(t, doc.Projects[2].Sections[0].Items, 2)

	require.Len(t, doc.Global.Sections, 4)
	configurations := doc.Global.Sections[0].(sln.ConfigurationPlatformsSection)
	require.Len(t, configurations.Entries, 2)
	projectConfigurations := doc.Global.Sections[1].(sln.ProjectConfigurationsSection)
	require.Len(t, projectConfigurations.Entries, 3)
	require.Equal(t, "Any CPU.Build.0 = Debug", projectConfigurations.Entries[1].ConfigurationLabel)
	properties := doc.Global.Sections[2].(sln.PropertiesSection)
	require.Equal(t, []sln.SolutionProperty{{Name: "HideSolutionNode", Value: "FALSE"}}, properties.Properties)
	nested := doc.Global.Sections[3].(sln.NestedProjectsSection)
	require.Len(t, nested.Edges, 2)
}

func testFileSystem(t *testing.T) fs.FileSystem {
	t.Helper()
	mapFS := fstest.MapFS{
		"sample.sln":  &fstest.MapFile{Data: []byte(solutionText)},
		"broken.sln":  &fstest.MapFile{Data: []byte("Global\r\n\tGlobalSection(Unknown) = preSolution\r\n\tEndGlobalSection\r\nEndGlobal\r\n")},
		"notes/x.txt": &fstest.MapFile{Data: []byte("not a solution")},
	}
	fsys, err := fs.NewFileSystemLocal(".", fs.WithOptionFSFactory(func(root string) iofs.FS {
		return mapFS
	}))
	require.NoError(t, err)
	return fsys
}

func TestParseFile(t *testing.T) {
	t.Parallel()
	doc, err := slnparse.ParseFile(context.Background(), "sample.sln", slnparse.WithFileSystem(testFileSystem(t)))
	require.NoError(t, err)
	require.Len(t, doc.Projects, 3)
}

func TestParseFileMissingPathIsNotAGrammarFailure(t *testing.T) {
	t.Parallel()
	_, err := slnparse.ParseFile(context.Background(), "missing.sln", slnparse.WithFileSystem(testFileSystem(t)))
	require.Error(t, err)
	require.Equal(t, exc.CodeFileNotFound, exc.CodeOf(err))
	require.True(t, exc.IsFileSystemCode(exc.CodeOf(err)))
}

func TestParseFileGrammarFailure(t *testing.T) {
	t.Parallel()
	_, err := slnparse.ParseFile(context.Background(), "broken.sln", slnparse.WithFileSystem(testFileSystem(t)))
	require.Error(t, err)
	require.Equal(t, exc.CodeUnknownGlobalSection, exc.CodeOf(err))
	require.False(t, exc.IsFileSystemCode(exc.CodeOf(err)))
}
