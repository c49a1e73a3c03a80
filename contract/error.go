// Package contract exposes the capability set shared by every PMS exception.
//
// Host services should depend on BaseError rather than on concrete
// exception types when they only need to report or forward an error.
package contract

import (
	"github.com/next-trace/pms-exceptions/code"
	"github.com/next-trace/pms-exceptions/level"
	"github.com/next-trace/pms-exceptions/response"
)

// BaseError is the stable surface of a PMS exception.
//
// Implementations must:
//   - Return the construction message verbatim from Error().
//   - Return the single code statically bound to the concrete type from Code().
//   - Encode an absent detail as response.NullDetail in ToPmsResponse().
type BaseError interface {
	error
	Code() code.Code
	Level() level.Level
	// Detail returns the optional detail; ok is false when none was set.
	Detail() (detail string, ok bool)
	// SetDetail replaces any previous detail.
	SetDetail(detail string)
	ToPmsResponse() response.PmsResponse
	Unwrap() error
}
