package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/npaths/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid input",
			code:    errors.ErrInvalidInput,
			message: "path is nil",
			wantStr: "[INVALID_INPUT] path is nil",
		},
		{
			name:    "unknown charset",
			code:    errors.ErrCharset,
			message: "unsupported charset: klingon",
			wantStr: "[CHARSET] unsupported charset: klingon",
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
	err := errors.Newf(errors.ErrInvalidInput, "startIndex < 0: %d", -3)
	assert.Equal(t, "startIndex < 0: -3", err.Message)
}

func TestWrap(t *testing.T) {
	t.Run("keeps cause", func(t *testing.T) {
		err := errors.Wrap(fs.ErrPermission, errors.ErrConfigLoad, "failed to load config")
		require.NotNil(t, err)

		assert.Equal(t, errors.ErrConfigLoad, err.Code)
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.Equal(t, "[CONFIG_LOAD] failed to load config: permission denied", err.Error())
	})

	t.Run("nil cause returns nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
	})
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrInvalidInput, "bad start index").
		WithDetail("startIndex", -1).
		WithDetails(map[string]interface{}{"mode": "name"})

	assert.Equal(t, -1, err.Details["startIndex"])
	assert.Equal(t, "name", err.Details["mode"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	a := errors.New(errors.ErrInvalidInput, "a")
	b := errors.New(errors.ErrInvalidInput, "b")
	c := errors.New(errors.ErrCharset, "c")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching", errors.New(errors.ErrNotFound, "x"), errors.ErrNotFound, true},
		{"different", errors.New(errors.ErrNotFound, "x"), errors.ErrInternal, false},
		{"wrapped", errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"), errors.ErrFileAccess, true},
		{"plain error", stderrors.New("plain"), errors.ErrNotFound, false},
		{"nil", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}

	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(errors.New(errors.ErrConfigParse, "x")))
}

func TestErrorChaining(t *testing.T) {
	root := stderrors.New("root cause")
	fileErr := errors.Wrap(root, errors.ErrFileAccess, "cannot read config")
	cfgErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(cfgErr, errors.ErrConfigLoad))

	var middle *errors.NpathsError
	require.True(t, stderrors.As(cfgErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrFileAccess, middle.Code)
	assert.ErrorIs(t, cfgErr, root)
}
