package exception_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/pms-exceptions/code"
	"github.com/next-trace/pms-exceptions/exception"
	"github.com/next-trace/pms-exceptions/level"
	"github.com/next-trace/pms-exceptions/response"
)

func TestFromPmsResponse(t *testing.T) {
	t.Parallel()

	e := exception.FromPmsResponse("OBJECT_NOT_FOUND", "User not found", exception.WithDetail("user_id: 999"))

	assert.IsType(t, &exception.ObjectNotFoundException{}, e)
	assert.Equal(t, code.ObjectNotFound, e.Code())
	assert.Equal(t, "User not found", e.Error())

	detail, ok := e.Detail()
	assert.True(t, ok)
	assert.Equal(t, "user_id: 999", detail)
}

func TestFromPmsResponse_UnknownCode(t *testing.T) {
	t.Parallel()

	e := exception.FromPmsResponse("UNKNOWN_CODE", "Unknown error")

	assert.IsType(t, &exception.SomethingWentWrongException{}, e)
	assert.Equal(t, code.SomethingWentWrong, e.Code())
	assert.Equal(t, "Unknown error", e.Error())

	_, ok := e.Detail()
	assert.False(t, ok)
}

func TestFromPmsResponse_EveryCodeUsesDefaultLevel(t *testing.T) {
	t.Parallel()

	for _, v := range variants {
		e := exception.FromPmsResponse(v.code.String(), "msg", exception.WithDetail("d"))
		assert.Equal(t, v.code, e.Code())
		assert.Equal(t, v.level, e.Level(), v.code)
	}
}

func TestFromPmsResponse_NearMisses(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", " ", "timeout", "TIMEOUT\n", "XOBJECT_NOT_FOUND", "OBJECT_NOT", "INVALID_AUTHORIZATION_"} {
		assert.Equal(t, code.SomethingWentWrong, exception.FromPmsResponse(s, "m").Code(), "%q", s)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range variants {
		v := v
		t.Run(v.code.String(), func(t *testing.T) {
			t.Parallel()

			sent := v.withLevel("Request timed out after 30s", level.Info, exception.WithDetail("endpoint: /api/users"))

			payload, err := response.Marshal(sent.ToPmsResponse())
			require.NoError(t, err)

			wire, err := response.Unmarshal(payload)
			require.NoError(t, err)

			got := exception.FromResponse(wire)
			assert.Equal(t, sent.Code(), got.Code())
			assert.Equal(t, sent.Error(), got.Error())
			// level is not part of the wire record
			assert.Equal(t, v.level, got.Level())

			detail, ok := got.Detail()
			assert.True(t, ok)
			assert.Equal(t, "endpoint: /api/users", detail)
		})
	}
}

func TestFromResponse_NullDetailIsAbsent(t *testing.T) {
	t.Parallel()

	got := exception.FromResponse(exception.NewSecurity("Error").ToPmsResponse())
	assert.Equal(t, code.InvalidAuthorization, got.Code())

	_, ok := got.Detail()
	assert.False(t, ok)
}

func FuzzFromPmsResponse(f *testing.F) {
	for _, c := range code.Known() {
		f.Add(c.String(), "message", "detail")
	}

	f.Add("", "", "")
	f.Add("UNKNOWN_CODE", "Unknown error", "null")
	f.Fuzz(func(t *testing.T, c, msg, detail string) {
		e := exception.FromPmsResponse(c, msg, exception.WithDetail(detail))
		require.NotNil(t, e)

		if code.IsKnown(c) {
			assert.Equal(t, code.Code(c), e.Code())
		} else {
			assert.Equal(t, code.SomethingWentWrong, e.Code())
		}

		assert.Equal(t, msg, e.Error())

		r := e.ToPmsResponse()
		assert.True(t, code.IsKnown(r.Code))
		assert.Equal(t, detail, r.Detail)
	})
}
