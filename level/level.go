// Package level defines the severity rank carried by every exception.
//
// A bare `var lvl level.Level` is Debug, not the default; use Default for Error.
package level

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown level")

// Level is an ordered severity rank. Comparison follows declaration order.
//
// The zero value is Debug; use Default for the conventional default.
type Level int8

const (
	Debug Level = iota
	Info
	Warning
	Error
	Fatal
)

var names = [...]string{
	Debug:   "Debug",
	Info:    "Info",
	Warning: "Warning",
	Error:   "Error",
	Fatal:   "Fatal",
}

// Default returns the level used when none is specified: Error.
func Default() Level { return Error }

// IsValid reports whether l is one of the declared levels.
func (l Level) IsValid() bool { return l >= Debug && l <= Fatal }

func (l Level) String() string {
	if !l.IsValid() {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}

	return names[l]
}

// Parse maps a level name (case-insensitive) to a Level.
// "warn" is accepted as an alias of Warning.
func Parse(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	case "fatal":
		return Fatal, nil
	}

	return Default(), fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText encodes the level by name.
func (l Level) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int8(l))
	}

	return []byte(names[l]), nil
}

// UnmarshalText decodes a level name produced by MarshalText.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}
