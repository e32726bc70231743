package doby

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// HKDF context strings used to domain-separate the three sub-keys
// expanded from the Argon2id master key. These are fixed and must
// never change, or existing containers become undecryptable.
const (
	hkdfContextNonce    = "doby_nonce"
	hkdfContextEncKey   = "doby_encryption_key"
	hkdfContextAuthKey  = "doby_authentication_key"
	masterKeySize       = 32
	encryptionKeySize   = 32
	authenticationKeySize = 32
)

// keySchedule runs the key schedule described in spec.md §4.2: Argon2id
// turns (password, salt, costs) into a 32-byte master key; HKDF-SHA256
// expands that master key, seeded with the same salt, into a nonce, an
// encryption key, and an authentication key, using three fixed context
// strings. Every intermediate key is zeroed before this function
// returns. The returned AuthState has already absorbed the 77-byte
// header.
//
// password is zeroed by this function once Argon2id has consumed it —
// callers must not read it afterward.
func keySchedule(password []byte, params *EncryptionParameters) (*cipherState, *authState, error) {
	defer zero(password)

	master := argon2.IDKey(
		password,
		params.Salt,
		params.Costs.TimeCost,
		params.Costs.MemoryCost,
		params.Costs.Parallelism,
		masterKeySize,
	)

	nonceSize := params.Kind.NonceSize()
	nonce, err := hkdfExpand(master, params.Salt, hkdfContextNonce, nonceSize)
	if err != nil {
		zero(master)
		return nil, nil, err
	}
	encKey, err := hkdfExpand(master, params.Salt, hkdfContextEncKey, encryptionKeySize)
	if err != nil {
		zero(master)
		zero(nonce)
		return nil, nil, err
	}
	authKey, err := hkdfExpand(master, params.Salt, hkdfContextAuthKey, authenticationKeySize)
	if err != nil {
		zero(master)
		zero(nonce)
		zero(encKey)
		return nil, nil, err
	}
	zero(master)

	cs, err := newCipherState(params.Kind, encKey, nonce)
	zero(encKey)
	zero(nonce)
	if err != nil {
		zero(authKey)
		return nil, nil, err
	}

	as := newAuthState(authKey)
	zero(authKey)

	headerBuf := make([]byte, headerSize)
	params.marshal(headerBuf)
	as.update(headerBuf)

	return cs, as, nil
}

// hkdfExpand runs HKDF-SHA256 extract-and-expand with ikm as the input
// keying material, salt as the HKDF salt, and context as the fixed
// ASCII info string, producing exactly size bytes. A failure here
// indicates a programmer error (the context strings and sizes are
// fixed and small) rather than a user-facing condition.
func hkdfExpand(ikm, salt []byte, context string, size int) ([]byte, error) {
	r := hkdf.New(sha256.New, ikm, salt, []byte(context))
	out := make([]byte, size)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("hkdf expand %q: %w", context, err)
	}
	return out, nil
}
