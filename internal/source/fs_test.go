// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalOpenSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.vsp"), []byte("let x = 1"), 0o644))

	fs, err := NewLocal(dir)
	require.NoError(t, err)

	files, err := fs.Open(context.Background(), "/a.vsp")
	require.NoError(t, err)
	require.Len(t, files, 1)

	body, err := files[0].Body(context.Background())
	require.NoError(t, err)
	defer body.Close(context.Background())

	b, err := body.Read(context.Background(), 1024)
	require.NoError(t, err)
	require.Equal(t, "let x = 1", string(b))
}

func TestLocalOpenDirectoryListsVspFilesOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.vsp"), []byte("1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	fs, err := NewLocal(dir)
	require.NoError(t, err)

	files, err := fs.Open(context.Background(), "/")
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestLocalOpenMissingFileReturnsNotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fs, err := NewLocal(dir)
	require.NoError(t, err)

	_, err = fs.Open(context.Background(), "/missing.vsp")
	require.Error(t, err)
}

func TestLocalWriteThenOpenRoundTrips(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fs, err := NewLocal(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Write(context.Background(), "/out.vsp", "generated"))

	files, err := fs.Open(context.Background(), "/out.vsp")
	require.NoError(t, err)
	require.Len(t, files, 1)
}
