package exception

import (
	"errors"

	"github.com/next-trace/pms-exceptions/code"
	"github.com/next-trace/pms-exceptions/contract"
)

// Ensure converts any error to a contract.BaseError.
//
// Behavior:
//   - nil input => nil output
//   - if err's chain holds a BaseError => that value is returned as-is
//   - otherwise err becomes the cause of a SomethingWentWrongException
//     whose message is err.Error()
func Ensure(err error) contract.BaseError {
	if err == nil {
		return nil
	}

	var be contract.BaseError
	if errors.As(err, &be) {
		return be
	}

	return NewSomethingWentWrong(err.Error(), WithCause(err))
}

// CodeOf returns the code of the first BaseError in err's chain.
// Errors without one report code.SomethingWentWrong; nil reports "".
func CodeOf(err error) code.Code {
	if err == nil {
		return ""
	}

	var be contract.BaseError
	if errors.As(err, &be) {
		return be.Code()
	}

	return code.SomethingWentWrong
}
