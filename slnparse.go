// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package slnparse converts the text of a Visual Studio solution file into a
// typed sln.SolutionFile document. Parsing is a pure function over one
// in-memory text: it either yields a fully populated document or a single
// failure, never a partial result.
package slnparse

import (
	"context"
	"path/filepath"

	"gopkg.microglot.org/slnparse/fs"
	"gopkg.microglot.org/slnparse/internal/parser"
	"gopkg.microglot.org/slnparse/sln"
)

// Parse parses solution text already held in memory. The uri only labels
// failure locations.
func Parse(ctx context.Context, uri string, text string) (*sln.SolutionFile, error) {
	return parser.Parse(ctx, uri, text)
}

// ParseFileOption configures ParseFile.
type ParseFileOption func(*parseFileConfig)

type parseFileConfig struct {
	filesystem fs.FileSystem
}

// WithFileSystem supplies the collaborator used to read the target path. The
// default reads from the local file system.
func WithFileSystem(v fs.FileSystem) ParseFileOption {
	return func(cfg *parseFileConfig) {
		cfg.filesystem = v
	}
}

// ParseFile reads the whole file at path and parses it. Read failures
// surface with file-system failure codes, distinct from grammar failures.
func ParseFile(ctx context.Context, path string, options ...ParseFileOption) (*sln.SolutionFile, error) {
	cfg := &parseFileConfig{}
	for _, option := range options {
		option(cfg)
	}
	uri := path
	if cfg.filesystem == nil {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		local, err := fs.NewFileSystemLocal(filepath.Dir(abs))
		if err != nil {
			return nil, err
		}
		cfg.filesystem = local
		uri = filepath.Base(abs)
	}
	files, err := cfg.filesystem.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	f := files[0]
	body, err := f.Body(ctx)
	if err != nil {
		return nil, err
	}
	return parser.Parse(ctx, f.Path(ctx), body)
}
