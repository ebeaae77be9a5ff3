// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// NewFileString wraps static string content as a File, for tests and
// other in-memory sources.
func NewFileString(path string, content string) File {
	return NewFileFunc(path, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	})
}

type fileFunc struct {
	path string
	body func() (io.ReadCloser, error)
}

// NewFileFunc wraps a body-producing function as a File. body is called once
// per call to Body, and each call must return a fresh handle.
func NewFileFunc(path string, body func() (io.ReadCloser, error)) File {
	return &fileFunc{path: path, body: body}
}

func (f *fileFunc) Path(ctx context.Context) string {
	return f.path
}

func (f *fileFunc) Body(ctx context.Context) (FileBody, error) {
	rc, err := f.body()
	if err != nil {
		return nil, err
	}
	return &ioFileBody{rc: bufio.NewReader(rc), closer: rc}, nil
}

type ioFileBody struct {
	rc     io.Reader
	closer io.Closer
	buf    []byte
}

func (b *ioFileBody) Read(ctx context.Context, size int32) ([]byte, error) {
	if int32(len(b.buf)) < size {
		b.buf = make([]byte, size)
	}
	n, err := b.rc.Read(b.buf[:size])
	return b.buf[:n], err
}

func (b *ioFileBody) Close(ctx context.Context) error {
	return b.closer.Close()
}
