package code_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/next-trace/pms-exceptions/code"
)

func TestWireValuesAreStable(t *testing.T) {
	t.Parallel()

	want := map[code.Code]string{
		code.ObjectNotFound:       "OBJECT_NOT_FOUND",
		code.InvalidAuthorization: "INVALID_AUTHORIZATION",
		code.InvalidMessage:       "INVALID_MESSAGE",
		code.DatabaseRowLocked:    "DATABASE_ROW_LOCKED",
		code.DatabaseConcurrency:  "DATABASE_CONCURRENCY",
		code.Timeout:              "TIMEOUT",
		code.MaxRetriesExceeded:   "MAX_RETRIES_EXCEEDED",
		code.OperationNotAllowed:  "OPERATION_NOT_ALLOWED",
		code.SomethingWentWrong:   "SOMETHING_WENT_WRONG",
	}

	assert.Len(t, code.Known(), len(want))

	for c, s := range want {
		assert.Equal(t, s, c.String())
		assert.True(t, code.IsKnown(s), s)
	}
}

func TestKnownReturnsCopy(t *testing.T) {
	t.Parallel()

	k := code.Known()
	k[0] = "MUTATED"

	assert.Equal(t, code.ObjectNotFound, code.Known()[0])
}

func TestParse(t *testing.T) {
	t.Parallel()

	for _, c := range code.Known() {
		assert.Equal(t, c, code.Parse(string(c)))
	}

	for _, s := range []string{"", "UNKNOWN_CODE", "timeout", "TIMEOUT ", "OBJECT_NOT_FOUND_X", "NOT_FOUND"} {
		assert.False(t, code.IsKnown(s), s)
		assert.Equal(t, code.SomethingWentWrong, code.Parse(s), s)
	}
}
