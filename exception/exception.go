package exception

import (
	"reflect"

	"github.com/rs/zerolog"

	"github.com/next-trace/pms-exceptions/code"
	"github.com/next-trace/pms-exceptions/contract"
	"github.com/next-trace/pms-exceptions/level"
	"github.com/next-trace/pms-exceptions/response"
)

// kind binds an exception type to its code and default level.
// Every kind is an empty unexported type declared in variants.go.
type kind interface {
	code() code.Code
	defaultLevel() level.Level
}

// base holds the per-instance state shared by every exception type.
// The code is not stored here; it comes from the kind.
type base struct {
	message   string
	detail    string
	hasDetail bool
	level     level.Level
	cause     error
}

// Exception is the implementation behind every exception type.
// Use the named aliases (ObjectNotFoundException, ...) and their constructors.
//
// All methods are safe on a nil receiver.
type Exception[K kind] struct {
	base
}

func newException[K kind](message string, lvl level.Level, opts []Option) *Exception[K] {
	e := &Exception[K]{base: base{
		message: message,
		level:   lvl,
	}}
	for _, o := range opts {
		if o != nil {
			o(&e.base)
		}
	}

	return e
}

func newDefault[K kind](message string, opts []Option) *Exception[K] {
	var k K
	return newException[K](message, k.defaultLevel(), opts)
}

// Code returns the code bound to the exception type.
func (*Exception[K]) Code() code.Code {
	var k K
	return k.code()
}

// Error returns the message exactly as given at construction.
func (e *Exception[K]) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.message
}

func (e *Exception[K]) Level() level.Level {
	if e == nil {
		return level.Default()
	}

	return e.level
}

func (e *Exception[K]) Detail() (string, bool) {
	if e == nil {
		return "", false
	}

	return e.detail, e.hasDetail
}

// SetDetail replaces any previous detail. It is a no-op on nil.
func (e *Exception[K]) SetDetail(detail string) {
	if e == nil {
		return
	}

	e.detail = detail
	e.hasDetail = true
}

func (e *Exception[K]) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// ToPmsResponse converts the exception to its wire record.
// A nil exception yields its code with an empty message and no detail.
func (e *Exception[K]) ToPmsResponse() response.PmsResponse {
	if e == nil {
		return response.New(string(e.Code()), "", nil)
	}

	var detail *string
	if e.hasDetail {
		detail = &e.detail
	}

	return response.New(string(e.Code()), e.message, detail)
}

// MarshalZerologObject lets an exception be attached with event.Object.
func (e *Exception[K]) MarshalZerologObject(ev *zerolog.Event) {
	if e == nil {
		return
	}

	writeFields(ev, e)
}

func writeFields(ev *zerolog.Event, err contract.BaseError) {
	ev.Str("code", err.Code().String()).
		Str("level", err.Level().String()).
		Str("message", err.Error())

	if detail, ok := err.Detail(); ok {
		ev.Str("detail", detail)
	}

	if cause := err.Unwrap(); cause != nil {
		ev.AnErr("cause", cause)
	}
}

// isNil reports whether err is nil or a typed nil pointer.
func isNil(err contract.BaseError) bool {
	if err == nil {
		return true
	}

	v := reflect.ValueOf(err)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
