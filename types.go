package doby

import "fmt"

// CipherKind selects the stream cipher used for a container. It is
// serialised as a single byte in the header (see container.go).
type CipherKind uint8

const (
	// CipherAESCTR uses AES-256 in counter mode.
	CipherAESCTR CipherKind = 0
	// CipherXChaCha20 uses the XChaCha20 stream cipher.
	CipherXChaCha20 CipherKind = 1
)

// String returns the string representation of the cipher kind.
func (c CipherKind) String() string {
	switch c {
	case CipherAESCTR:
		return "aes-ctr"
	case CipherXChaCha20:
		return "xchacha20"
	default:
		return "unknown"
	}
}

// NonceSize returns the nonce length required by this cipher, or 0 for
// an unrecognised kind.
func (c CipherKind) NonceSize() int {
	switch c {
	case CipherAESCTR:
		return aesCTRNonceSize
	case CipherXChaCha20:
		return xChaCha20NonceSize
	default:
		return 0
	}
}

// valid reports whether c is one of the closed enumeration's members.
func (c CipherKind) valid() bool {
	return c == CipherAESCTR || c == CipherXChaCha20
}

// ParseCipherKind maps a CLI-facing name ("aes" or "xchacha20") to a
// CipherKind.
func ParseCipherKind(name string) (CipherKind, error) {
	switch name {
	case "aes", "aes-ctr":
		return CipherAESCTR, nil
	case "xchacha20", "chacha20":
		return CipherXChaCha20, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCipher, name)
	}
}

// KDFCostParameters bundles the Argon2id cost tuple. All three fields
// must be non-zero and within the range Argon2id itself accepts;
// constructing an EncryptionParameters value enforces this before any
// I/O happens.
type KDFCostParameters struct {
	TimeCost    uint32 // number of passes
	MemoryCost  uint32 // memory in KiB
	Parallelism uint8  // lanes, 1..=255
}

// Validate checks that the cost tuple is non-zero. This is the
// condition spec.md ties to ConfigError: invalid costs must surface
// before any output is written.
func (c KDFCostParameters) Validate() error {
	if c.TimeCost == 0 {
		return &ConfigError{Field: "time-cost", Message: "time cost must be non-zero"}
	}
	if c.MemoryCost == 0 {
		return &ConfigError{Field: "memory-cost", Message: "memory cost must be non-zero"}
	}
	if c.Parallelism == 0 {
		return &ConfigError{Field: "parallelism", Message: "parallelism must be non-zero"}
	}
	return nil
}

// DefaultKDFCostParameters matches the CLI surface's documented
// defaults (spec.md §6).
func DefaultKDFCostParameters() KDFCostParameters {
	return KDFCostParameters{
		TimeCost:    10,
		MemoryCost:  4096,
		Parallelism: 4,
	}
}

// minChunkSize is the smallest chunk size the decrypt pipeline's
// look-behind buffer (tagSize bytes) can safely operate with; see
// decrypt.go.
const minChunkSize = tagSize + 1

// ValidateChunkSize rejects chunk sizes that would make the decrypt
// pipeline's look-behind buffer degenerate (spec.md §4.6 edge case).
func ValidateChunkSize(size int) error {
	if size < minChunkSize {
		return &ConfigError{
			Field:   "block-size",
			Message: fmt.Sprintf("chunk size must be at least %d bytes, got %d", minChunkSize, size),
		}
	}
	return nil
}
