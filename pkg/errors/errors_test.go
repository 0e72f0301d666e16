package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unikit-dev/unikit/pkg/errors"
)

func TestErrorFormatting(t *testing.T) {
	err := errors.New(errors.ErrNoTargetResolved, "no target could be determined")
	assert.Equal(t, "[NO_TARGET_RESOLVED] no target could be determined", err.Error())

	wrapped := errors.Wrap(stderrors.New("boom"), errors.ErrInternal, "engine failed")
	assert.Equal(t, "[INTERNAL] engine failed: boom", wrapped.Error())
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
}

func TestIsErrorCode_ThroughWrapping(t *testing.T) {
	inner := errors.New(errors.ErrConflictingOption, "conflict")
	outer := fmt.Errorf("configure failed: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrConflictingOption))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrMissingOptionValue))
	assert.Equal(t, errors.ErrConflictingOption, errors.GetErrorCode(outer))
}

func TestGetErrorCode_NonUnikitError(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestMissingComponent(t *testing.T) {
	err := errors.MissingComponent("lwip")

	require.True(t, errors.IsErrorCode(err, errors.ErrMissingComponent))
	assert.Equal(t, "lwip", errors.ComponentName(err))
	assert.Contains(t, err.Error(), "lwip")

	wrapped := fmt.Errorf("apply: %w", err)
	assert.Equal(t, "lwip", errors.ComponentName(wrapped))
}

func TestComponentName_OtherErrors(t *testing.T) {
	assert.Equal(t, "", errors.ComponentName(stderrors.New("plain")))
	assert.Equal(t, "", errors.ComponentName(errors.New(errors.ErrNotFound, "x")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConflictingOption, "conflict").
		WithDetail("option", "CONFIG_a")
	assert.Equal(t, "CONFIG_a", err.Details["option"])
}
