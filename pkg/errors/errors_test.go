// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/codepack/codepack/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "output_create",
			code:    errors.ErrOutputCreate,
			message: "cannot create codebase.txt",
			wantStr: "[OUTPUT_CREATE] cannot create codebase.txt",
		},
		{
			name:    "config_invalid",
			code:    errors.ErrConfigInvalid,
			message: "extension set is empty",
			wantStr: "[CONFIG_INVALID] extension set is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrWalk, "cannot list %s (%d)", "./src", 2)
	assert.Equal(t, "cannot list ./src (2)", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrOutputWrite, "write failed")

		assert.Equal(t, errors.ErrOutputWrite, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[OUTPUT_WRITE] write failed: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})

	t.Run("wrapf_formats", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrWalk, "listing %s", "./a")
		assert.Equal(t, "[WALK] listing ./a: base error", err.Error())
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileRead, "unreadable").
		WithDetail("path", "./a/x.cpp").
		WithDetail("size", 12)

	assert.Equal(t, "./a/x.cpp", err.Details["path"])
	assert.Equal(t, 12, err.Details["size"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrWalk, "error 1")
	err2 := errors.New(errors.ErrWalk, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrOutputCreate, "nope"),
			code:     errors.ErrOutputCreate,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrOutputCreate, "nope"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(fs.ErrPermission, errors.ErrFileRead, "denied"),
			code:     errors.ErrFileRead,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrWalk,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrWalk,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrEncoding, errors.GetErrorCode(errors.New(errors.ErrEncoding, "bad utf-8")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := fs.ErrNotExist
	readErr := errors.Wrap(rootCause, errors.ErrFileRead, "cannot read file")
	walkErr := errors.Wrap(readErr, errors.ErrWalk, "walk aborted")

	assert.True(t, errors.IsErrorCode(walkErr, errors.ErrWalk))

	var inner *errors.CodepackError
	require.True(t, stderrors.As(walkErr.Unwrap(), &inner))
	assert.Equal(t, errors.ErrFileRead, inner.Code)

	assert.True(t, stderrors.Is(walkErr, fs.ErrNotExist))
}
