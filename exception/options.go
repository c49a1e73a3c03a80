package exception

import "github.com/next-trace/pms-exceptions/level"

// Option configures an exception during construction.
type Option func(*base)

// WithDetail sets the detail.
func WithDetail(detail string) Option {
	return func(b *base) {
		b.detail = detail
		b.hasDetail = true
	}
}

// WithLevel overrides the severity level.
func WithLevel(lvl level.Level) Option { return func(b *base) { b.level = lvl } }

// WithCause sets the underlying cause returned by Unwrap.
func WithCause(cause error) Option { return func(b *base) { b.cause = cause } }
