package doby

import "io"

// Decrypt runs the C6 pipeline. r must be positioned immediately after
// the 77-byte header (the caller — normally the mode selector — has
// already consumed the magic bytes and header via readHeaderBytes).
// chunkSize must be greater than tagSize; ValidateChunkSize enforces
// this.
//
// The last tagSize bytes of r are never ciphertext — they are the
// trailing authentication tag — and r is not assumed to be seekable or
// to know its own length. Decrypt holds back a rolling "residual"
// buffer of up to tagSize bytes so it can tell ciphertext from tag
// without look-ahead.
//
// Decrypt writes plaintext to w as it becomes available, before the
// tag has been verified. The returned bool reports whether the tag
// matched; when it is false, everything already written to w must be
// treated as untrusted by the caller. A read or write failure is
// returned as an error instead.
func Decrypt(r io.Reader, w io.Writer, password []byte, params *EncryptionParameters, chunkSize int) (verified bool, err error) {
	defer zero(password)

	if err := ValidateChunkSize(chunkSize); err != nil {
		return false, err
	}

	cs, as, err := keySchedule(password, params)
	if err != nil {
		return false, err
	}

	buf := make([]byte, chunkSize)
	if err := validateBuffer(buf, "chunk buffer", minChunkSize); err != nil {
		return false, err
	}

	var residual []byte

	for {
		r0 := copy(buf, residual)
		m, readErr := r.Read(buf[r0:])
		if readErr != nil && readErr != io.EOF {
			return false, &IOError{Op: "read", Err: readErr}
		}

		available := r0 + m
		var n int
		if available >= tagSize {
			n = available - tagSize
		} else {
			n = 0
		}

		if n > 0 {
			confirmed := buf[:n]
			as.update(confirmed)
			cs.applyKeystream(confirmed)
			if _, err := w.Write(confirmed); err != nil {
				return false, &IOError{Op: "write", Err: err}
			}
		}

		newResidual := make([]byte, available-n)
		copy(newResidual, buf[n:available])
		residual = newResidual

		if readErr == io.EOF {
			break
		}
	}

	return as.verify(residual), nil
}
