package doby

import "fmt"

// Defensive input validation, kept separate from the domain types in
// types.go and container.go so callers constructing buffers and paths
// by hand get the same error shape as the pipeline does internally.

// validateBuffer checks that buf is non-nil and at least minSize
// bytes. Used by the encrypt/decrypt pipelines to guard chunk buffers
// before passing them to the cipher and authenticator.
func validateBuffer(buf []byte, name string, minSize int) error {
	if buf == nil {
		return &ConfigError{Field: name, Message: "buffer cannot be nil"}
	}
	if minSize > 0 && len(buf) < minSize {
		return &ConfigError{
			Field:   name,
			Message: fmt.Sprintf("buffer too small: got %d bytes, need at least %d", len(buf), minSize),
		}
	}
	return nil
}

// ValidateFilePath rejects an empty path. The CLI layer uses "-" to
// mean stdin/stdout, which is a non-empty string and passes this
// check; an actually empty argument means a flag was misused.
func ValidateFilePath(path string, field string) error {
	if path == "" {
		return &ConfigError{Field: field, Message: "path cannot be empty"}
	}
	return nil
}

// ValidateKeySize checks that key is exactly expectedSize bytes. Used
// by newCipherState to check the key and nonce it is given.
func ValidateKeySize(key []byte, expectedSize int, name string) error {
	if len(key) != expectedSize {
		return &ConfigError{
			Field:   name,
			Message: fmt.Sprintf("must be %d bytes, got %d", expectedSize, len(key)),
		}
	}
	return nil
}
