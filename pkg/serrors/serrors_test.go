package serrors_test

import (
	"errors"
	"fmt"
	"linkaudit/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type readError struct{ path string }

func (e readError) Error() string { return "cannot read " + e.path }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrDeadLinks,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("permission denied")

	e1 := serrors.With(serrors.ErrNotFound, "run %s not found", "abc")
	require.Equal(t, "run abc not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrInternal, base, "reading notebook")
	require.Equal(t, "reading notebook: permission denied", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrDeadLinks)
	require.Equal(t, "DEAD_LINKS", e3.Error())

	// the report is kept verbatim as the message
	e4 := serrors.With(serrors.ErrDeadLinks, "%s", "nb.ipynb:\n- http://x is dead\n")
	require.Equal(t, "nb.ipynb:\n- http://x is dead\n", e4.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := readError{"a.ipynb"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "loading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrDeadLinks)

	wrapped := fmt.Errorf("outer: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrNotFound)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &readError{"a.ipynb"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "loading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var re *readError
	require.ErrorAs(t, e, &re)
	require.Equal(t, base, re)
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))

	err := fmt.Errorf("ctx: %w", serrors.With(serrors.ErrBadRequest, "bad id"))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}
