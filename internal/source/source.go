// SPDX-License-Identifier: Apache-2.0

// Package source loads Vesper source text into the sentinel-terminated byte
// buffers the lexer requires: a small set of interfaces a driver can
// satisfy with a real file system, an in-memory string, or a composite of
// several roots, plus one concrete local-disk implementation.
package source

import (
	"context"
	"errors"
	"io"
)

// Sentinel is the byte the lexer expects to find one past the logical end of
// every buffer it scans. Buffer always appends it.
const Sentinel = 0x1A

type Closer interface {
	Close(ctx context.Context) error
}

// Reader lets callers pull successive chunks of a file's body without
// holding the whole thing in memory at once.
type Reader interface {
	Read(ctx context.Context, size int32) ([]byte, error)
}

type FileBody interface {
	Reader
	Closer
}

// File is a named source unit. Path is used as the filename recorded on
// every token's Location.
type File interface {
	Path(ctx context.Context) string
	Body(ctx context.Context) (FileBody, error)
}

// FileSystem resolves a URI (a path or import specifier) to one or more
// Files, and can write generated content back out.
type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}

// Buffer reads a File's body to completion and returns a sentinel-terminated
// byte slice suitable for passing to lexer.New. The Non-goal of streaming
// input governs the lexer, not how its input is assembled: this may perform
// several chunked Reads before returning one fixed buffer.
func Buffer(ctx context.Context, f File) ([]byte, error) {
	body, err := f.Body(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close(ctx) }()

	var out []byte
	const chunk = 64 * 1024
	for {
		b, err := body.Read(ctx, chunk)
		out = append(out, b...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if len(b) == 0 {
			break
		}
	}
	return append(out, Sentinel), nil
}
