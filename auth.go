package doby

import (
	"crypto/hmac"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// authState is a keyed BLAKE2b-256 running authenticator. It absorbs
// the header bytes and then every chunk of ciphertext in stream order,
// producing a 32-byte tag that covers the entire container except the
// magic bytes and the tag itself (spec.md §4.4).
type authState struct {
	hasher hash.Hash
}

// newAuthState builds an authenticator keyed with authKey, which must
// be exactly 32 bytes (BLAKE2b itself accepts keys of up to 64 bytes).
func newAuthState(authKey []byte) *authState {
	h, err := blake2b.New256(authKey)
	if err != nil {
		// authKey is always exactly 32 bytes, well under blake2b's
		// 64-byte key limit, so this can only indicate a programming
		// error in keyschedule.go.
		panic(fmt.Sprintf("doby: construct blake2b authenticator: %v", err))
	}
	return &authState{hasher: h}
}

// update feeds buf into the running authenticator. Must be called in
// the exact order the corresponding bytes appear in the container:
// header first, then each ciphertext chunk as it is produced or
// confirmed.
func (a *authState) update(buf []byte) {
	// hash.Hash.Write never returns an error.
	_, _ = a.hasher.Write(buf)
}

// finalize returns the 32-byte authentication tag for everything fed
// to update so far. Calling update after finalize starts accumulating
// a new tag over the combined input; the pipelines never do this.
func (a *authState) finalize() []byte {
	return a.hasher.Sum(nil)
}

// verify reports whether tag matches the tag computed over everything
// fed to update so far, comparing in constant time so a byte-by-byte
// timing oracle can't help an attacker forge a tag.
func (a *authState) verify(tag []byte) bool {
	return hmac.Equal(a.finalize(), tag)
}
