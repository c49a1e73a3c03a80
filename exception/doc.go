// Package exception implements the closed set of PMS exceptions and their
// conversion to and from the PMS wire record.
//
// Every exception type carries:
//   - a code statically bound to the type (see package code)
//   - the message given at construction, returned verbatim by Error
//   - an optional detail, the only field that may change after construction
//   - a severity level, the type's default unless overridden at construction
//   - an optional cause preserved for errors.Is / errors.As via Unwrap
//
// FromPmsResponse and FromResponse rebuild an exception on the receiving
// side. They are total: an unrecognized code yields SomethingWentWrongException.
package exception
