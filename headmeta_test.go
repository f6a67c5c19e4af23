package headmeta_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/headmeta"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := headmeta.Errorf(headmeta.EINVALID, "source %q unreadable", "a.html")

	assert.Equal(t, headmeta.EINVALID, headmeta.ErrorCode(err))
	assert.Equal(t, "source \"a.html\" unreadable", headmeta.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, headmeta.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, headmeta.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract a.html: %w", headmeta.Errorf(headmeta.EINVALID, "failed to parse HTML"))

	assert.Equal(t, headmeta.EINVALID, headmeta.ErrorCode(err))
	assert.Equal(t, "failed to parse HTML", headmeta.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, headmeta.EINTERNAL, headmeta.ErrorCode(err))
	assert.Equal(t, "Internal error", headmeta.ErrorMessage(err))
}
