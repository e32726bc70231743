// Package doby implements symmetric, authenticated, streaming encryption
// of arbitrary byte streams.
//
// # Overview
//
// A password and a per-invocation 64-byte salt are run through Argon2id
// to produce a master key, which is then expanded with HKDF-SHA256 into
// a nonce, an encryption key, and an authentication key. The payload is
// streamed through a chunk-sized buffer, XORed with a stream cipher
// keystream (AES-CTR or XChaCha20), and authenticated with a keyed
// BLAKE2b-256 tag that covers the header and every ciphertext byte.
//
// # Container format
//
//	offset  length  field
//	 0       4      magic = "DOBY"
//	 4      64      salt
//	68       4      time_cost        (big-endian u32)
//	72       4      memory_cost      (big-endian u32)
//	76       4      parallelism      (big-endian u32)
//	80       1      cipher_kind      (0 = AES-CTR, 1 = XChaCha20)
//	81      N       ciphertext
//	81+N    32      authentication tag
//
// Total overhead is exactly 113 bytes regardless of cipher or payload
// size. The nonce is never stored — it is re-derived from the salt via
// HKDF, so every encryption MUST draw a fresh salt from a CSPRNG.
//
// # Basic usage
//
//	params, err := doby.NewEncryptionParameters(doby.CipherXChaCha20, doby.KDFCostParameters{
//		TimeCost:    10,
//		MemoryCost:  4096,
//		Parallelism: 4,
//	})
//	err = doby.Encrypt(reader, writer, []byte("my password"), params, 64*1024, nil)
//
//	params, err = doby.InspectHeader(reader) // consumes the magic bytes and header
//	verified, err := doby.Decrypt(reader, writer, []byte("my password"), params, 64*1024)
//
// # Security considerations
//
// Protected against: offline brute-force of the password (Argon2id is
// memory-hard), tampering with header or ciphertext (authenticated,
// constant-time tag verification), accidental re-encryption of an
// already-encrypted container (magic-byte recognition).
//
// Not protected against: loss of the password, multi-bit corruption
// recovery (the whole stream is invalidated by a single flipped bit),
// random access or in-place editing of ciphertext.
package doby
