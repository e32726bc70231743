package doby

import (
	"fmt"
	"io"
)

// Encrypt runs the C5 pipeline: write the magic bytes and 77-byte
// header, then stream plaintext from r through the cipher and
// authenticator in chunk-sized pieces, writing ciphertext to w and
// finishing with the 32-byte tag.
//
// carryOver holds bytes already consumed from r by the mode selector's
// magic-byte peek (see modeselect.go); they are encrypted as the start
// of the first chunk so no input byte is lost. Pass nil when there is
// no carry-over.
//
// password is zeroed before this function returns on every exit path,
// success or error. A zero-byte plaintext still produces a well-formed
// 113-byte container.
func Encrypt(r io.Reader, w io.Writer, password []byte, params *EncryptionParameters, chunkSize int, carryOver []byte) error {
	defer zero(password)

	if err := ValidateChunkSize(chunkSize); err != nil {
		return err
	}

	if _, err := w.Write([]byte(magic)); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if err := params.writeHeader(w); err != nil {
		return err
	}

	cs, as, err := keySchedule(password, params)
	if err != nil {
		return err
	}

	buf := make([]byte, chunkSize)
	if err := validateBuffer(buf, "chunk buffer", minChunkSize); err != nil {
		return err
	}

	start := 0
	if len(carryOver) > 0 {
		if len(carryOver) > len(buf) {
			return &ConfigError{Field: "carry-over", Message: fmt.Sprintf("carry-over of %d bytes exceeds chunk buffer of %d bytes", len(carryOver), len(buf))}
		}
		start = copy(buf, carryOver)
	}

	for {
		m, readErr := r.Read(buf[start:])
		if readErr != nil && readErr != io.EOF {
			return &IOError{Op: "read", Err: readErr}
		}

		n := start + m
		if n > 0 {
			chunk := buf[:n]
			cs.applyKeystream(chunk)
			as.update(chunk)
			if _, err := w.Write(chunk); err != nil {
				return &IOError{Op: "write", Err: err}
			}
		}

		start = 0
		if readErr == io.EOF {
			break
		}
	}

	tag := as.finalize()
	if _, err := w.Write(tag); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
