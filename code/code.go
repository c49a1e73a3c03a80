// Package code holds the closed registry of PMS exception codes.
//
// Code values cross process boundaries in the PMS wire format. Renaming a
// value breaks every deployed peer that still emits or expects it.
package code

// Code is a stable, machine-facing exception identifier.
type Code string

const (
	// ObjectNotFound is the code of ObjectNotFoundException.
	ObjectNotFound Code = "OBJECT_NOT_FOUND"
	// InvalidAuthorization is the code of SecurityException.
	InvalidAuthorization Code = "INVALID_AUTHORIZATION"
	// InvalidMessage is the code of ValidationException.
	InvalidMessage Code = "INVALID_MESSAGE"
	// DatabaseRowLocked is the code of DbRowLockedException.
	DatabaseRowLocked Code = "DATABASE_ROW_LOCKED"
	// DatabaseConcurrency is the code of DbUpdateConcurrencyException.
	DatabaseConcurrency Code = "DATABASE_CONCURRENCY"
	// Timeout is the code of TimeoutException.
	Timeout Code = "TIMEOUT"
	// MaxRetriesExceeded is the code of MaxRetriesExceededException.
	MaxRetriesExceeded Code = "MAX_RETRIES_EXCEEDED"
	// OperationNotAllowed is the code of OperationNotAllowedException.
	OperationNotAllowed Code = "OPERATION_NOT_ALLOWED"
	// SomethingWentWrong is the code of the catch-all SomethingWentWrongException.
	// Unrecognized codes resolve to it.
	SomethingWentWrong Code = "SOMETHING_WENT_WRONG"
)

var known = [...]Code{
	ObjectNotFound,
	InvalidAuthorization,
	InvalidMessage,
	DatabaseRowLocked,
	DatabaseConcurrency,
	Timeout,
	MaxRetriesExceeded,
	OperationNotAllowed,
	SomethingWentWrong,
}

func (c Code) String() string { return string(c) }

// Known returns every registered code in declaration order.
// The returned slice is a fresh copy.
func Known() []Code {
	out := make([]Code, len(known))
	copy(out, known[:])

	return out
}

// IsKnown reports whether s exactly matches a registered code.
func IsKnown(s string) bool {
	for _, c := range known {
		if string(c) == s {
			return true
		}
	}

	return false
}

// Parse resolves s to a registered code, falling back to SomethingWentWrong.
func Parse(s string) Code {
	if IsKnown(s) {
		return Code(s)
	}

	return SomethingWentWrong
}
