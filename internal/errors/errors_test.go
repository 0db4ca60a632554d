package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Unwrap(t *testing.T) {
	err := NewUserError(ErrUnknownContentUnit, "run: promptpack list")

	assert.True(t, stderrors.Is(err, ErrUnknownContentUnit))

	var exitErr *ExitError
	require.True(t, stderrors.As(err, &exitErr))
	assert.Equal(t, ExitUser, exitErr.Code)
	assert.Equal(t, "run: promptpack list", exitErr.Suggestion)
}

func TestExitError_Error(t *testing.T) {
	assert.Equal(t, "exit code 2", NewExitError(nil, ExitSystem).Error())
	assert.Equal(t, ErrFlushIncomplete.Error(), NewSystemError(ErrFlushIncomplete, "").Error())
}
