package doby

import "io"

// Run is the C7 mode selector: it peeks at most magicSize bytes from
// r and decides whether to run the encrypt or decrypt pipeline.
//
// If forceEncrypt is set, or the peeked bytes don't equal the magic,
// or fewer than magicSize bytes were available, r is treated as
// plaintext: Encrypt runs with the peeked bytes re-injected as
// carry-over so nothing already consumed from r is lost.
//
// Otherwise the 77-byte header is read and parsed. A FormatError here
// (magic matched, header didn't) is reported to the caller and aborts
// — it is not silently re-encryptable, since the magic match means
// this almost certainly was a container the user expected to decrypt.
// A clean parse proceeds straight to Decrypt.
//
// newParams is called only on the encrypt path, to build a fresh
// EncryptionParameters (salt, costs, cipher) for the container about
// to be written; it is not needed on the decrypt path, where the
// parameters come from the input's own header.
func Run(r io.Reader, w io.Writer, password []byte, forceEncrypt bool, chunkSize int, newParams func() (*EncryptionParameters, error)) (verified bool, err error) {
	peeked, isMagic, err := peekMagic(r)
	if err != nil {
		zero(password)
		return false, err
	}
	return runPeeked(r, w, password, forceEncrypt, peeked, isMagic, chunkSize, newParams)
}

// PeekMagic reports whether r begins with a doby container's magic
// bytes, without assuming r is seekable. It returns the bytes actually
// consumed from r (fewer than magicSize on a short read) so the caller
// can feed them back into RunPeeked instead of losing them.
//
// This is exposed separately from Run for callers that need to know
// encrypt-vs-decrypt before committing to anything else that follows
// from it — the CLI, for instance, only prompts for password
// confirmation on the encrypt path, and resolving the password happens
// before Run would otherwise peek.
func PeekMagic(r io.Reader) (peeked []byte, isContainer bool, err error) {
	return peekMagic(r)
}

// RunPeeked is Run for a caller that has already consumed r's leading
// bytes via PeekMagic. peeked and isContainer must be exactly the
// values PeekMagic returned for r's original prefix, or input bytes
// will be lost or misread.
func RunPeeked(r io.Reader, w io.Writer, password []byte, forceEncrypt bool, peeked []byte, isContainer bool, chunkSize int, newParams func() (*EncryptionParameters, error)) (verified bool, err error) {
	return runPeeked(r, w, password, forceEncrypt, peeked, isContainer, chunkSize, newParams)
}

func runPeeked(r io.Reader, w io.Writer, password []byte, forceEncrypt bool, peeked []byte, isMagic bool, chunkSize int, newParams func() (*EncryptionParameters, error)) (verified bool, err error) {
	if forceEncrypt || !isMagic {
		params, err := newParams()
		if err != nil {
			zero(password)
			return false, err
		}
		return true, Encrypt(r, w, password, params, chunkSize, peeked)
	}

	_, params, err := readHeaderBytes(r)
	if err != nil {
		zero(password)
		if IsIOError(err) {
			return false, err
		}
		return false, &FormatError{Message: "container header did not parse", Err: err}
	}

	return Decrypt(r, w, password, params, chunkSize)
}
