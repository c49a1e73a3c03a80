package exception

import (
	"github.com/next-trace/pms-exceptions/code"
	"github.com/next-trace/pms-exceptions/contract"
	"github.com/next-trace/pms-exceptions/response"
)

// FromPmsResponse rebuilds an exception from its code and message.
//
// The code is matched exactly against the registry and the matching type
// is created at its default level. Any other string, including the empty
// string, yields a SomethingWentWrongException. It never fails.
func FromPmsResponse(c, message string, opts ...Option) contract.BaseError {
	switch code.Code(c) {
	case code.ObjectNotFound:
		return NewObjectNotFound(message, opts...)
	case code.InvalidAuthorization:
		return NewSecurity(message, opts...)
	case code.InvalidMessage:
		return NewValidation(message, opts...)
	case code.DatabaseRowLocked:
		return NewDBRowLocked(message, opts...)
	case code.DatabaseConcurrency:
		return NewDBUpdateConcurrency(message, opts...)
	case code.Timeout:
		return NewTimeout(message, opts...)
	case code.MaxRetriesExceeded:
		return NewMaxRetriesExceeded(message, opts...)
	case code.OperationNotAllowed:
		return NewOperationNotAllowed(message, opts...)
	default:
		return NewSomethingWentWrong(message, opts...)
	}
}

// FromResponse rebuilds an exception from a decoded wire record.
// A detail equal to response.NullDetail is treated as absent.
func FromResponse(r response.PmsResponse) contract.BaseError {
	if !r.HasDetail() {
		return FromPmsResponse(r.Code, r.Message)
	}

	return FromPmsResponse(r.Code, r.Message, WithDetail(r.Detail))
}
