package petite_test

import (
	"os"
	"testing"

	"github.com/advdv/petite"
	"github.com/advdv/petite/markup"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	err1 := petite.NewError(petite.CodeInvalid, errors.New("foo"))
	require.Equal(t, petite.Code(400), err1.Code())
	require.Equal(t, petite.CodeInvalid, petite.CodeOf(err1))
	require.Equal(t, "Bad Request: foo", err1.Error())

	require.Equal(t, petite.CodeInternal, petite.CodeOf(errors.New("bar")))
	require.Equal(t, petite.CodeUnknown, petite.CodeOf(nil))
	require.Equal(t, "Unknown: rab", petite.NewError(900, errors.New("rab")).Error())
}

func TestErrorHelpers(t *testing.T) {
	require.Equal(t, petite.CodeInvalid, petite.CodeOf(petite.Invalid("missing name")))
	require.Equal(t, "Not Found: visitor not found", petite.NotFound("visitor").Error())
	require.Equal(t, petite.CodeNotFound, petite.CodeOf(errors.Wrap(petite.NotFound("x"), "lookup")))

	require.NoError(t, petite.Internal(nil))
	wrapped := petite.Internal(os.ErrNotExist)
	require.Equal(t, petite.CodeInternal, petite.CodeOf(wrapped))
	require.ErrorIs(t, wrapped, os.ErrNotExist)
}

func TestErrorWithoutUnderlying(t *testing.T) {
	err := petite.NewError(petite.CodeInvalid, nil)
	require.NotPanics(t, func() { _ = err.Error() })
	require.Equal(t, "Bad Request", err.Error())
	require.Equal(t, "Unknown", petite.NewError(900, nil).Error())
	require.Equal(t, petite.CodeInvalid, petite.CodeOf(err))
}

func TestTemplateErrorsAreInternal(t *testing.T) {
	_, err := markup.Render("{nope}")
	require.Equal(t, petite.CodeInternal, petite.CodeOf(err))
}
