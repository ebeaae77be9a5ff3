// SPDX-License-Identifier: Apache-2.0

package iterutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func drain[T any](t *testing.T, it Iterator[T]) []T {
	t.Helper()
	var out []T
	for {
		v := it.Next(context.Background())
		if !v.IsPresent() {
			return out
		}
		out = append(out, v.Value())
	}
}

func TestSliceIteratorYieldsInOrder(t *testing.T) {
	t.Parallel()

	it := NewSlice([]int{1, 2, 3})
	require.Equal(t, []int{1, 2, 3}, drain(t, it))
}

func TestFilterKeepsOnlyMatching(t *testing.T) {
	t.Parallel()

	it := NewIteratorFilter(NewSlice([]int{1, 2, 3, 4}), FilterFunc[int](func(ctx context.Context, v int) bool {
		return v%2 == 0
	}))
	require.Equal(t, []int{2, 4}, drain(t, it))
}

func TestLookaheadPeeksWithoutConsuming(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	look := NewLookahead(NewSlice([]int{10, 20, 30}), 1)

	require.Equal(t, 10, look.Lookahead(ctx, 0).Value())
	require.Equal(t, 20, look.Lookahead(ctx, 1).Value())
	require.False(t, look.Lookahead(ctx, 2).IsPresent())

	require.Equal(t, 10, look.Next(ctx).Value())
	require.Equal(t, 20, look.Next(ctx).Value())
	require.Equal(t, 30, look.Next(ctx).Value())
	require.False(t, look.Next(ctx).IsPresent())
}
