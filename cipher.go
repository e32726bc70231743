package doby

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// Nonce sizes for the two supported stream ciphers.
const (
	aesCTRNonceSize    = 16
	xChaCha20NonceSize = 24
)

// cipherState is a uniform keystream facade over the two supported
// stream ciphers: AES-256 in CTR mode and XChaCha20. Both are
// unauthenticated XOR keystreams — authentication is the separate
// concern handled by authState — and both can apply their keystream
// across arbitrary chunk boundaries without resetting state, which is
// what makes the streaming pipeline in encrypt.go/decrypt.go possible.
type cipherState struct {
	stream cipher.Stream
}

// newCipherState builds the keystream for kind, keyed with key and
// seeded with nonce. key must be 32 bytes; nonce must be exactly
// kind.NonceSize() bytes.
func newCipherState(kind CipherKind, key, nonce []byte) (*cipherState, error) {
	if err := ValidateKeySize(key, encryptionKeySize, "cipher key"); err != nil {
		return nil, err
	}
	if err := ValidateKeySize(nonce, kind.NonceSize(), "nonce"); err != nil {
		return nil, err
	}

	switch kind {
	case CipherAESCTR:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("construct aes-ctr cipher: %w", err)
		}
		return &cipherState{stream: cipher.NewCTR(block, nonce)}, nil
	case CipherXChaCha20:
		stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
		if err != nil {
			return nil, fmt.Errorf("construct xchacha20 cipher: %w", err)
		}
		return &cipherState{stream: stream}, nil
	default:
		return nil, fmt.Errorf("%w: cipher id %d", ErrUnsupportedCipher, kind)
	}
}

// applyKeystream XORs buf with the next len(buf) bytes of the
// keystream, in place. The keystream position carries over between
// calls, so callers must invoke this once per chunk, in stream order,
// with no chunk skipped or replayed.
func (c *cipherState) applyKeystream(buf []byte) {
	c.stream.XORKeyStream(buf, buf)
}
