// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExceptionError(t *testing.T) {
	t.Parallel()

	e := New(Location{URI: "a.vsp", Line: 3, Column: 5}, CodeInvalidEscape, "bad escape")
	require.Equal(t, "a.vsp:3:5 -- L0001: bad escape", e.Error())
	require.Equal(t, SeverityLexical, e.Severity())
}

func TestNewDeprecationIsAlwaysDeprecationSeverity(t *testing.T) {
	t.Parallel()

	e := NewDeprecation(Location{URI: "a.vsp"}, CodeDeprecatedOctal, "use 0o instead")
	require.Equal(t, SeverityDeprecation, e.Severity())
}

func TestWrapPreservesUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	wrapped := WrapUnknown(Location{URI: "a.vsp"}, cause)
	require.ErrorIs(t, wrapped, cause)
}

func TestWrapNilReturnsNil(t *testing.T) {
	t.Parallel()

	require.Nil(t, Wrap(Location{}, CodeUnknownFatal, nil))
}

func TestReporterAccumulatesAndDetectsErrors(t *testing.T) {
	t.Parallel()

	r := NewReporter(false)
	lexErr := New(Location{URI: "a.vsp"}, CodeInvalidEscape, "bad escape")
	dep := NewDeprecation(Location{URI: "a.vsp"}, CodeDeprecatedOctal, "use 0o instead")

	require.Equal(t, lexErr, r.Report(lexErr))
	require.Nil(t, r.Report(dep))

	require.True(t, r.HasErrors())
	require.Len(t, r.Reported(), 2)
}

func TestReporterDeprecationsAsErrors(t *testing.T) {
	t.Parallel()

	r := NewReporter(true)
	dep := NewDeprecation(Location{URI: "a.vsp"}, CodeDeprecatedOctal, "use 0o instead")

	require.Equal(t, dep, r.Report(dep))
	require.True(t, r.HasErrors())
}
