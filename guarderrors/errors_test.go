package guarderrors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewNotFoundError("api/openapi.yaml", cause)

	assert.Contains(t, err.Error(), "document not found")
	assert.Contains(t, err.Error(), "api/openapi.yaml")
	assert.True(t, errors.Is(err, ErrNotFound), "should match ErrNotFound sentinel")
	assert.False(t, errors.Is(err, ErrSyntax), "should not match ErrSyntax sentinel")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "should unwrap to the underlying cause")
}

func TestNotFoundErrorThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading contract: %w", NewNotFoundError("missing.yaml", nil))

	assert.True(t, errors.Is(err, ErrNotFound))

	var nfErr *NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "missing.yaml", nfErr.Path)
}

func TestSyntaxError(t *testing.T) {
	cause := errors.New("yaml: line 3: did not find expected key")
	err := NewSyntaxError("bad.yaml", cause)

	assert.Contains(t, err.Error(), "syntax error in bad.yaml")
	assert.Contains(t, err.Error(), "did not find expected key", "should carry the parser diagnostic")
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestSyntaxErrorWithoutCause(t *testing.T) {
	err := &SyntaxError{Path: "stdin", Message: "unexpected end of stream"}
	assert.Equal(t, "syntax error in stdin: unexpected end of stream", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "format", Message: "must be one of: text, json, yaml"}

	assert.Equal(t, "configuration error: format: must be one of: text, json, yaml", err.Error())
	assert.True(t, errors.Is(err, ErrConfig))
	assert.False(t, errors.Is(err, ErrNotFound))
}
