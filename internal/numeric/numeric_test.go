// SPDX-License-Identifier: Apache-2.0

package numeric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFloatDecimal(t *testing.T) {
	t.Parallel()

	v, err := Default.ParseFloat("1.5", 64)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)
}

func TestParseFloatHex(t *testing.T) {
	t.Parallel()

	v, err := Default.ParseFloat("0x1.8p3", 64)
	require.NoError(t, err)
	require.Equal(t, 12.0, v)
}

func TestParseFloat80RemapsTo64(t *testing.T) {
	t.Parallel()

	v, err := Default.ParseFloat("1.5", 80)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)
}

func TestParseFloatInvalid(t *testing.T) {
	t.Parallel()

	_, err := Default.ParseFloat("not-a-number", 64)
	require.Error(t, err)
}
