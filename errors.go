package doby

import (
	"errors"
	"fmt"
)

// Error categories mirror spec.md §7's taxonomy: ConfigError, IOError,
// FormatError, AuthFailure, and PasswordMismatch.

// ConfigError represents an invalid configuration or parameter —
// invalid KDF cost tuple, a chunk size too small, an unsupported
// cipher kind, no password available. The cost-tuple and chunk-size
// checks run before anything is written to the output.
type ConfigError struct {
	Field   string // the field or flag that failed validation
	Message string // human-readable detail
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// IOError wraps an underlying read or write failure with the stream
// name and operation, when known.
type IOError struct {
	Op     string // "read" or "write"
	Stream string // path or stream name, if known
	Err    error
}

func (e *IOError) Error() string {
	if e.Stream != "" {
		return fmt.Sprintf("io error: %s %s: %s", e.Op, e.Stream, e.Err)
	}
	return fmt.Sprintf("io error: %s: %s", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FormatError means the magic bytes matched but the header failed to
// parse (unknown cipher id or unacceptable KDF costs). Distinct from
// "magic didn't match", which falls back to plaintext handling instead
// of erroring (spec.md §4.7).
type FormatError struct {
	Message string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("format error: %s: %s", e.Message, e.Err)
	}
	return fmt.Sprintf("format error: %s", e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Sentinel errors for conditions with no extra context to carry.
var (
	// ErrAuthFailed reports that the trailing tag did not match the
	// computed one. Decrypt signals this as verified == false rather
	// than as an error; the CLI returns ErrAuthFailed in that case.
	// Plaintext already written up to that point must not be trusted.
	ErrAuthFailed = errors.New("authentication failed: tag mismatch, data may be corrupted or tampered")

	// ErrPasswordMismatch is returned when interactive encrypt password
	// confirmation does not match the first entry.
	ErrPasswordMismatch = errors.New("passwords did not match")

	// ErrUnsupportedCipher is returned when a cipher id or name is not
	// one of the closed enumeration's members.
	ErrUnsupportedCipher = errors.New("unsupported cipher kind")

	// ErrNotRecognized signals that input bytes did not parse as a doby
	// container (a header that fails to parse, or, in InspectHeader,
	// wrong magic). The mode selector wraps it in a FormatError and
	// aborts rather than encrypting the stream as-is.
	ErrNotRecognized = errors.New("input is not a recognized doby container")
)

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsIOError reports whether err is (or wraps) an IOError.
func IsIOError(err error) bool {
	var ie *IOError
	return errors.As(err, &ie)
}

// IsFormatError reports whether err is (or wraps) a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
