// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vesper-lang/vesperc/internal/source"
	"github.com/vesper-lang/vesperc/internal/token"
)

// stringFS resolves every uri to one in-memory file with the content
// registered for that uri, for tests that don't want to touch disk.
type stringFS map[string]string

func (fs stringFS) Open(ctx context.Context, uri string) ([]source.File, error) {
	content, ok := fs[uri]
	if !ok {
		return nil, context.DeadlineExceeded
	}
	return []source.File{source.NewFileString(uri, content)}, nil
}

func (fs stringFS) Write(ctx context.Context, uri string, content string) error {
	fs[uri] = content
	return nil
}

func TestLexFile(t *testing.T) {
	t.Parallel()

	fs := stringFS{"a.vsp": "1 + 2"}
	d := New(WithFS(fs))

	results, err := d.LexFile(context.Background(), "a.vsp")
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	require.False(t, r.HasErrors)
	require.Equal(t, []token.Kind{token.KindIntegerI32, token.KindPlus, token.KindIntegerI32, token.KindEOF}, kindsOf(r.Tokens))
}

func TestLexAllSharesInternPool(t *testing.T) {
	t.Parallel()

	fs := stringFS{
		"a.vsp": "shared",
		"b.vsp": "shared",
	}
	d := New(WithFS(fs))

	results, err := d.LexAll(context.Background(), []string{"a.vsp", "b.vsp"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	byPath := map[string]*Result{}
	for _, r := range results {
		byPath[r.Path] = r
	}
	require.Equal(t, byPath["a.vsp"].Tokens[0].Ident, byPath["b.vsp"].Tokens[0].Ident)
}

func TestLexAllReportsMissingFile(t *testing.T) {
	t.Parallel()

	d := New(WithFS(stringFS{}))
	_, err := d.LexAll(context.Background(), []string{"missing.vsp"})
	require.Error(t, err)
}

func kindsOf(toks []*token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}
