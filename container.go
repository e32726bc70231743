package doby

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// magic identifies a doby container: ASCII "DOBY".
	magic = "DOBY"

	// magicSize is the length of the magic prefix in bytes.
	magicSize = 4

	// saltSize is the length of the random salt stored in the header.
	saltSize = 64

	// headerSize is the fixed size of EncryptionParameters on the wire:
	// 64 (salt) + 4 (time) + 4 (memory) + 4 (parallelism, widened to a
	// uint32 for layout alignment) + 1 (cipher id) = 77 bytes.
	headerSize = saltSize + 4 + 4 + 4 + 1

	// tagSize is the length of the authentication tag.
	tagSize = 32

	// containerOverhead is magic + header + tag, constant regardless of
	// cipher kind or payload size.
	containerOverhead = magicSize + headerSize + tagSize
)

// EncryptionParameters is the bundle carried verbatim in every
// container's header: the salt used to derive keys, the KDF cost
// tuple, and the cipher kind. It is constructed fresh on every encrypt
// invocation and reconstructed from the header on every decrypt
// invocation; it is never mutated after construction.
type EncryptionParameters struct {
	Salt  []byte
	Costs KDFCostParameters
	Kind  CipherKind
}

// NewEncryptionParameters validates the cost tuple and cipher kind and
// draws a fresh 64-byte salt from the OS CSPRNG. Reusing a salt across
// distinct payloads breaks the nonce-derivation scheme in keyschedule.go
// and must never be done.
func NewEncryptionParameters(kind CipherKind, costs KDFCostParameters) (*EncryptionParameters, error) {
	if !kind.valid() {
		return nil, &ConfigError{Field: "cipher", Message: fmt.Sprintf("unsupported cipher kind %d", kind)}
	}
	if err := costs.Validate(); err != nil {
		return nil, err
	}
	salt, err := randomBytes(saltSize)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return &EncryptionParameters{Salt: salt, Costs: costs, Kind: kind}, nil
}

// writeHeader serialises the 77-byte header (everything after the
// magic bytes) to w. The magic bytes themselves are written separately
// by the caller (they are not authenticated — see keyschedule.go).
func (p *EncryptionParameters) writeHeader(w io.Writer) error {
	buf := make([]byte, headerSize)
	p.marshal(buf)
	n, err := w.Write(buf)
	if err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if n != headerSize {
		return &IOError{Op: "write", Err: io.ErrShortWrite}
	}
	return nil
}

// marshal writes the header fields into buf, which must be headerSize
// bytes long. Exposed separately from writeHeader so keySchedule can
// feed the same header bytes to the authenticator without an io.Writer.
func (p *EncryptionParameters) marshal(buf []byte) {
	copy(buf[0:saltSize], p.Salt)
	off := saltSize
	binary.BigEndian.PutUint32(buf[off:], p.Costs.TimeCost)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], p.Costs.MemoryCost)
	off += 4
	binary.BigEndian.PutUint32(buf[off:], uint32(p.Costs.Parallelism))
	off += 4
	buf[off] = byte(p.Kind)
}

// readHeaderBytes reads the fixed-size 77-byte header block from r,
// returning the raw bytes alongside the parsed parameters. Any short
// read is a hard I/O error. A recognisable-but-invalid cipher id or
// cost tuple yields ErrNotRecognized rather than an IOError, per
// spec.md §4.1; the mode selector and InspectHeader report it to
// their caller wrapped in a FormatError.
func readHeaderBytes(r io.Reader) ([]byte, *EncryptionParameters, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, nil, &IOError{Op: "read", Err: err}
	}

	params, err := unmarshalHeader(buf)
	if err != nil {
		return buf, nil, err
	}
	return buf, params, nil
}

// unmarshalHeader parses a headerSize-byte buffer into
// EncryptionParameters. Returns ErrNotRecognized (wrapped) for the two
// recoverable conditions spec.md §4.1 names: an unknown cipher id, or
// a KDF cost tuple the Argon2id wrapper rejects.
func unmarshalHeader(buf []byte) (*EncryptionParameters, error) {
	if len(buf) != headerSize {
		return nil, fmt.Errorf("unmarshal header: need %d bytes, got %d", headerSize, len(buf))
	}

	salt := make([]byte, saltSize)
	copy(salt, buf[0:saltSize])
	off := saltSize

	timeCost := binary.BigEndian.Uint32(buf[off:])
	off += 4
	memoryCost := binary.BigEndian.Uint32(buf[off:])
	off += 4
	parallelism := binary.BigEndian.Uint32(buf[off:])
	off += 4
	kind := CipherKind(buf[off])

	if !kind.valid() {
		return nil, fmt.Errorf("%w: unknown cipher id %d", ErrNotRecognized, kind)
	}
	if parallelism == 0 || parallelism > 255 {
		return nil, fmt.Errorf("%w: parallelism %d out of range", ErrNotRecognized, parallelism)
	}
	costs := KDFCostParameters{
		TimeCost:    timeCost,
		MemoryCost:  memoryCost,
		Parallelism: uint8(parallelism),
	}
	if err := costs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRecognized, err)
	}

	return &EncryptionParameters{Salt: salt, Costs: costs, Kind: kind}, nil
}

// peekMagic reads up to magicSize bytes from r and reports whether
// they exactly equal the container magic. It always returns the bytes
// actually read (possibly fewer than magicSize on a short stream) so
// the caller can re-inject them as carry-over instead of losing them.
func peekMagic(r io.Reader) (read []byte, isMagic bool, err error) {
	buf := make([]byte, magicSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return buf[:n], false, &IOError{Op: "read", Err: err}
	}
	if n < magicSize {
		// Fewer than 4 bytes can never equal "DOBY"; treat as plaintext.
		return buf[:n], false, nil
	}
	return buf[:n], string(buf) == magic, nil
}
