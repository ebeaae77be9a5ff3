// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferAppendsSentinel(t *testing.T) {
	t.Parallel()

	f := NewFileString("a.vsp", "hi")
	buf, err := Buffer(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, []byte{'h', 'i', Sentinel}, buf)
}

func TestBufferHandlesContentLargerThanOneChunk(t *testing.T) {
	t.Parallel()

	content := make([]byte, 200*1024)
	for i := range content {
		content[i] = 'x'
	}
	f := NewFileString("big.vsp", string(content))
	buf, err := Buffer(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, len(content)+1, len(buf))
	require.Equal(t, byte(Sentinel), buf[len(buf)-1])
}

func TestMultiTriesEachFileSystemInOrder(t *testing.T) {
	t.Parallel()

	first := stringFSTest{}
	second := stringFSTest{"a.vsp": "found"}
	m := Multi{first, second}

	files, err := m.Open(context.Background(), "a.vsp")
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "a.vsp", files[0].Path(context.Background()))
}

func TestMultiReturnsNotFoundWhenNoBackendHasIt(t *testing.T) {
	t.Parallel()

	m := Multi{stringFSTest{}}
	_, err := m.Open(context.Background(), "missing.vsp")
	require.Error(t, err)
}

func TestMultiWriteIsUnsupported(t *testing.T) {
	t.Parallel()

	m := Multi{stringFSTest{}}
	err := m.Write(context.Background(), "a.vsp", "content")
	require.Error(t, err)
}

type stringFSTest map[string]string

func (fs stringFSTest) Open(ctx context.Context, uri string) ([]File, error) {
	content, ok := fs[uri]
	if !ok {
		return nil, errNotFoundTest
	}
	return []File{NewFileString(uri, content)}, nil
}

func (fs stringFSTest) Write(ctx context.Context, uri string, content string) error {
	fs[uri] = content
	return nil
}

var errNotFoundTest = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "not found" }
