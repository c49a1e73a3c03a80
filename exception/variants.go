package exception

import (
	"github.com/rs/zerolog"

	"github.com/next-trace/pms-exceptions/code"
	"github.com/next-trace/pms-exceptions/contract"
	"github.com/next-trace/pms-exceptions/level"
)

// compile-time guarantee that every exception implements contract.BaseError
// and zerolog.LogObjectMarshaler
var (
	_ contract.BaseError = (*ObjectNotFoundException)(nil)
	_ contract.BaseError = (*SecurityException)(nil)
	_ contract.BaseError = (*ValidationException)(nil)
	_ contract.BaseError = (*DBRowLockedException)(nil)
	_ contract.BaseError = (*DBUpdateConcurrencyException)(nil)
	_ contract.BaseError = (*TimeoutException)(nil)
	_ contract.BaseError = (*MaxRetriesExceededException)(nil)
	_ contract.BaseError = (*OperationNotAllowedException)(nil)
	_ contract.BaseError = (*SomethingWentWrongException)(nil)

	_ zerolog.LogObjectMarshaler = (*ObjectNotFoundException)(nil)
	_ zerolog.LogObjectMarshaler = (*SecurityException)(nil)
	_ zerolog.LogObjectMarshaler = (*ValidationException)(nil)
	_ zerolog.LogObjectMarshaler = (*DBRowLockedException)(nil)
	_ zerolog.LogObjectMarshaler = (*DBUpdateConcurrencyException)(nil)
	_ zerolog.LogObjectMarshaler = (*TimeoutException)(nil)
	_ zerolog.LogObjectMarshaler = (*MaxRetriesExceededException)(nil)
	_ zerolog.LogObjectMarshaler = (*OperationNotAllowedException)(nil)
	_ zerolog.LogObjectMarshaler = (*SomethingWentWrongException)(nil)
)

type (
	objectNotFound      struct{}
	security            struct{}
	validation          struct{}
	dbRowLocked         struct{}
	dbUpdateConcurrency struct{}
	timeout             struct{}
	maxRetriesExceeded  struct{}
	operationNotAllowed struct{}
	somethingWentWrong  struct{}
)

func (objectNotFound) code() code.Code { return code.ObjectNotFound }
func (objectNotFound) defaultLevel() level.Level { return level.Warning }

// ObjectNotFoundException reports that a requested entity does not exist.
// Code code.ObjectNotFound, default level Warning.
type ObjectNotFoundException = Exception[objectNotFound]

// NewObjectNotFound creates an ObjectNotFoundException at level Warning.
func NewObjectNotFound(message string, opts ...Option) *ObjectNotFoundException {
	return newDefault[objectNotFound](message, opts)
}

// NewObjectNotFoundWithLevel creates an ObjectNotFoundException at lvl.
func NewObjectNotFoundWithLevel(message string, lvl level.Level, opts ...Option) *ObjectNotFoundException {
	return newException[objectNotFound](message, lvl, opts)
}

func (security) code() code.Code { return code.InvalidAuthorization }
func (security) defaultLevel() level.Level { return level.Error }

// SecurityException reports missing or rejected credentials.
// Code code.InvalidAuthorization, default level Error.
type SecurityException = Exception[security]

// NewSecurity creates a SecurityException at level Error.
func NewSecurity(message string, opts ...Option) *SecurityException {
	return newDefault[security](message, opts)
}

// NewSecurityWithLevel creates a SecurityException at lvl.
func NewSecurityWithLevel(message string, lvl level.Level, opts ...Option) *SecurityException {
	return newException[security](message, lvl, opts)
}

func (validation) code() code.Code { return code.InvalidMessage }
func (validation) defaultLevel() level.Level { return level.Error }

// ValidationException reports an invalid request or message payload.
// Code code.InvalidMessage, default level Error.
type ValidationException = Exception[validation]

// NewValidation creates a ValidationException at level Error.
func NewValidation(message string, opts ...Option) *ValidationException {
	return newDefault[validation](message, opts)
}

// NewValidationWithLevel creates a ValidationException at lvl.
func NewValidationWithLevel(message string, lvl level.Level, opts ...Option) *ValidationException {
	return newException[validation](message, lvl, opts)
}

func (dbRowLocked) code() code.Code { return code.DatabaseRowLocked }
func (dbRowLocked) defaultLevel() level.Level { return level.Error }

// DBRowLockedException reports that a database row is locked by another transaction.
// Code code.DatabaseRowLocked, default level Error.
type DBRowLockedException = Exception[dbRowLocked]

// NewDBRowLocked creates a DBRowLockedException at level Error.
func NewDBRowLocked(message string, opts ...Option) *DBRowLockedException {
	return newDefault[dbRowLocked](message, opts)
}

// NewDBRowLockedWithLevel creates a DBRowLockedException at lvl.
func NewDBRowLockedWithLevel(message string, lvl level.Level, opts ...Option) *DBRowLockedException {
	return newException[dbRowLocked](message, lvl, opts)
}

func (dbUpdateConcurrency) code() code.Code { return code.DatabaseConcurrency }
func (dbUpdateConcurrency) defaultLevel() level.Level { return level.Error }

// DBUpdateConcurrencyException reports an optimistic concurrency conflict on update.
// Code code.DatabaseConcurrency, default level Error.
type DBUpdateConcurrencyException = Exception[dbUpdateConcurrency]

// NewDBUpdateConcurrency creates a DBUpdateConcurrencyException at level Error.
func NewDBUpdateConcurrency(message string, opts ...Option) *DBUpdateConcurrencyException {
	return newDefault[dbUpdateConcurrency](message, opts)
}

// NewDBUpdateConcurrencyWithLevel creates a DBUpdateConcurrencyException at lvl.
func NewDBUpdateConcurrencyWithLevel(message string, lvl level.Level, opts ...Option) *DBUpdateConcurrencyException {
	return newException[dbUpdateConcurrency](message, lvl, opts)
}

func (timeout) code() code.Code { return code.Timeout }
func (timeout) defaultLevel() level.Level { return level.Error }

// TimeoutException reports that an operation did not complete in time.
// Code code.Timeout, default level Error.
type TimeoutException = Exception[timeout]

// NewTimeout creates a TimeoutException at level Error.
func NewTimeout(message string, opts ...Option) *TimeoutException {
	return newDefault[timeout](message, opts)
}

// NewTimeoutWithLevel creates a TimeoutException at lvl.
func NewTimeoutWithLevel(message string, lvl level.Level, opts ...Option) *TimeoutException {
	return newException[timeout](message, lvl, opts)
}

func (maxRetriesExceeded) code() code.Code { return code.MaxRetriesExceeded }
func (maxRetriesExceeded) defaultLevel() level.Level { return level.Error }

// MaxRetriesExceededException reports that an operation gave up after its retry budget.
// Code code.MaxRetriesExceeded, default level Error.
type MaxRetriesExceededException = Exception[maxRetriesExceeded]

// NewMaxRetriesExceeded creates a MaxRetriesExceededException at level Error.
func NewMaxRetriesExceeded(message string, opts ...Option) *MaxRetriesExceededException {
	return newDefault[maxRetriesExceeded](message, opts)
}

// NewMaxRetriesExceededWithLevel creates a MaxRetriesExceededException at lvl.
func NewMaxRetriesExceededWithLevel(message string, lvl level.Level, opts ...Option) *MaxRetriesExceededException {
	return newException[maxRetriesExceeded](message, lvl, opts)
}

func (operationNotAllowed) code() code.Code { return code.OperationNotAllowed }
func (operationNotAllowed) defaultLevel() level.Level { return level.Error }

// OperationNotAllowedException reports an operation forbidden in the current state.
// Code code.OperationNotAllowed, default level Error.
type OperationNotAllowedException = Exception[operationNotAllowed]

// NewOperationNotAllowed creates an OperationNotAllowedException at level Error.
func NewOperationNotAllowed(message string, opts ...Option) *OperationNotAllowedException {
	return newDefault[operationNotAllowed](message, opts)
}

// NewOperationNotAllowedWithLevel creates an OperationNotAllowedException at lvl.
func NewOperationNotAllowedWithLevel(message string, lvl level.Level, opts ...Option) *OperationNotAllowedException {
	return newException[operationNotAllowed](message, lvl, opts)
}

func (somethingWentWrong) code() code.Code { return code.SomethingWentWrong }
func (somethingWentWrong) defaultLevel() level.Level { return level.Error }

// SomethingWentWrongException is the catch-all for unclassified failures.
// Code code.SomethingWentWrong, default level Error.
type SomethingWentWrongException = Exception[somethingWentWrong]

// NewSomethingWentWrong creates a SomethingWentWrongException at level Error.
func NewSomethingWentWrong(message string, opts ...Option) *SomethingWentWrongException {
	return newDefault[somethingWentWrong](message, opts)
}

// NewSomethingWentWrongWithLevel creates a SomethingWentWrongException at lvl.
func NewSomethingWentWrongWithLevel(message string, lvl level.Level, opts ...Option) *SomethingWentWrongException {
	return newException[somethingWentWrong](message, lvl, opts)
}
