// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.microglot.org/slnparse/exc"
)

const fileExt = ".sln"

// File is the unit handed to the parser: a named source whose entire content
// is read as one text blob before parsing begins.
type File interface {
	Path(ctx context.Context) string
	Body(ctx context.Context) (string, error)
}

// FileSystem is the external collaborator that resolves a URI to one or more
// files. Opening a directory yields every solution file it contains.
type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
}

var _ FileSystem = FileSystemMulti{}

// FileSystemMulti is an ordered set of FileSystem implementations that are
// tried in order.
type FileSystemMulti []FileSystem

func (r FileSystemMulti) Open(ctx context.Context, uri string) ([]File, error) {
	for _, fs := range r {
		files, err := fs.Open(ctx, uri)
		if err != nil {
			continue
		}
		return files, nil
	}
	return nil, exc.New(exc.Location{URI: uri}, exc.CodeFileNotFound, fmt.Sprintf("could not open %s from any file system", uri))
}

// FileFilter is a filter function type used to select which files to open when
// the path being opened is a directory. Implementations should return true if
// the file should be opened, false otherwise.
type FileFilter func(ctx context.Context, fname string) bool

type FileSystemLocalOption func(*fileSystemLocal)

// WithOptionFSFactory installs a custom factory function used to generate the
// underlying file system handle. The default value is os.DirFS. The string
// value provided to the factory function is the root directory of the file
// system. All paths given to open are considered relative to this root.
func WithOptionFSFactory(v func(root string) fs.FS) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fsFactory = v
	}
}

// WithOptionFileFilter installs a custom filter function used to select files
// when a target is a directory. The default value checks for the solution
// file extension.
func WithOptionFileFilter(v FileFilter) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fileFilter = v
	}
}

type fileSystemLocal struct {
	root       string
	fsFactory  func(string) fs.FS
	fileFilter FileFilter
}

// NewFileSystemLocal creates a new FileSystem that uses the local file system.
func NewFileSystemLocal(root string, options ...FileSystemLocalOption) (FileSystem, error) {
	absroot, err := filepath.Abs(root)
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: root}, err)
	}
	result := &fileSystemLocal{
		root:      absroot,
		fsFactory: os.DirFS,
		fileFilter: func(ctx context.Context, fname string) bool {
			return filepath.Ext(fname) == fileExt
		},
	}
	for _, option := range options {
		option(result)
	}
	return result, nil
}

func (r *fileSystemLocal) Open(ctx context.Context, uri string) ([]File, error) {
	path := uri
	u, err := url.Parse(uri)
	if err == nil {
		path = u.Path
	}
	path = filepath.Join("/", path)

	dir := r.fsFactory(r.root)
	p := filepath.Clean(path)
	if p == "" || p == "/" {
		// fs.ValidPath only allows, and requires, '.' for the root path.
		p = "."
	}
	p = strings.TrimPrefix(p, "/")
	d, err := dir.Open(p)
	if err != nil {
		return nil, fsErr(p, err)
	}
	defer d.Close()
	stat, _ := d.Stat()
	if !stat.IsDir() {
		f := NewFileFN(path, func() (io.ReadCloser, error) {
			return dir.Open(p)
		})
		return []File{f}, nil
	}
	dfs, err := d.(fs.ReadDirFile).ReadDir(0)
	if err != nil {
		return nil, fsErr(p, err)
	}
	files := make([]File, 0, len(dfs))
	for _, df := range dfs {
		if df.IsDir() {
			continue
		}
		if !r.fileFilter(ctx, df.Name()) {
			continue
		}
		dfPath := filepath.Join(p, df.Name())
		f := NewFileFN(dfPath, func() (io.ReadCloser, error) {
			return dir.Open(dfPath)
		})
		files = append(files, f)
	}
	if len(files) < 1 {
		return nil, exc.New(exc.Location{URI: path}, exc.CodeFileNotFound, fmt.Sprintf("found directory %s but it contains no solution files", path))
	}
	return files, nil
}

func fsErr(path string, err error) error {
	if errT, ok := err.(*fs.PathError); ok {
		switch errT.Err {
		case fs.ErrInvalid:
			return exc.WrapUnknown(exc.Location{URI: errT.Path}, errT)
		case fs.ErrNotExist:
			return exc.Wrap(exc.Location{URI: errT.Path}, exc.CodeFileNotFound, errT)
		case fs.ErrPermission:
			return exc.Wrap(exc.Location{URI: errT.Path}, exc.CodePermissionDenied, errT)
		default:
			return exc.WrapUnknown(exc.Location{URI: errT.Path}, errT)
		}
	}
	return exc.WrapUnknown(exc.Location{URI: path}, err)
}
