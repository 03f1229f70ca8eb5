// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"io"
	"strings"
)

// NewFileString wraps static string content in File.
func NewFileString(path string, content string) File {
	return NewFileFN(path, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	})
}

type fileIOFunc struct {
	path string
	body func() (io.ReadCloser, error)
}

// NewFileFN is intended to wrap actual file based content in the File
// interface. The given body function is used each time there is a call to
// the File.Body method so it must return a new io.ReadCloser handle.
func NewFileFN(path string, body func() (io.ReadCloser, error)) File {
	return &fileIOFunc{
		path: path,
		body: body,
	}
}

func (f *fileIOFunc) Path(ctx context.Context) string {
	return f.path
}

func (f *fileIOFunc) Body(ctx context.Context) (string, error) {
	rc, err := f.body()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
