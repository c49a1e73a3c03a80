package exception

import (
	"github.com/rs/zerolog"

	"github.com/next-trace/pms-exceptions/contract"
	"github.com/next-trace/pms-exceptions/level"
)

// loggable adapts BaseError implementations from outside this package.
type loggable struct {
	err contract.BaseError
}

func (l loggable) MarshalZerologObject(e *zerolog.Event) {
	if isNil(l.err) {
		return
	}

	writeFields(e, l.err)
}

// Object adapts err for zerolog, e.g. log.Error().Object("exception", Object(err)).
// Exceptions from this package can be passed to event.Object directly.
func Object(err contract.BaseError) zerolog.LogObjectMarshaler {
	if m, ok := err.(zerolog.LogObjectMarshaler); ok {
		return m
	}

	return loggable{err: err}
}

// Log writes err to logger at the zerolog level matching err.Level().
// Fatal is logged without exiting the process. Nil errors, typed or not,
// are ignored.
func Log(logger zerolog.Logger, err contract.BaseError) {
	if isNil(err) {
		return
	}

	logger.WithLevel(zerologLevel(err.Level())).
		Str("error_code", err.Code().String()).
		Object("exception", Object(err)).
		Msg(err.Error())
}

func zerologLevel(lvl level.Level) zerolog.Level {
	switch lvl {
	case level.Debug:
		return zerolog.DebugLevel
	case level.Info:
		return zerolog.InfoLevel
	case level.Warning:
		return zerolog.WarnLevel
	case level.Error:
		return zerolog.ErrorLevel
	case level.Fatal:
		return zerolog.FatalLevel
	default:
		return zerolog.ErrorLevel
	}
}
