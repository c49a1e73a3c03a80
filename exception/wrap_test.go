package exception_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/pms-exceptions/code"
	"github.com/next-trace/pms-exceptions/exception"
)

func TestEnsure(t *testing.T) {
	t.Parallel()

	assert.Nil(t, exception.Ensure(nil))

	e := exception.NewTimeout("slow")
	assert.Same(t, e, exception.Ensure(e))
	assert.Same(t, e, exception.Ensure(fmt.Errorf("call: %w", e)))

	plain := errors.New("boom")
	wrapped := exception.Ensure(plain)
	require.NotNil(t, wrapped)
	assert.Equal(t, code.SomethingWentWrong, wrapped.Code())
	assert.Equal(t, "boom", wrapped.Error())
	require.ErrorIs(t, wrapped, plain)
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, code.Code(""), exception.CodeOf(nil))
	assert.Equal(t, code.SomethingWentWrong, exception.CodeOf(errors.New("plain")))
	assert.Equal(t, code.MaxRetriesExceeded,
		exception.CodeOf(fmt.Errorf("retry: %w", exception.NewMaxRetriesExceeded("gave up"))))
}
