package doby

import "io"

// InspectHeader reads the magic bytes and 77-byte header from r and
// returns the parsed EncryptionParameters without running any KDF or
// reading further into the stream. It is the primitive behind the
// CLI's "inspect" subcommand: looking at a container's cost
// parameters and cipher choice should never require a password.
//
// InspectHeader fails with ErrNotRecognized (wrapped in a FormatError)
// if the magic bytes don't match or the header doesn't parse.
func InspectHeader(r io.Reader) (*EncryptionParameters, error) {
	_, isMagic, err := peekMagic(r)
	if err != nil {
		return nil, err
	}
	if !isMagic {
		return nil, &FormatError{Message: "input is not a doby container", Err: ErrNotRecognized}
	}

	_, params, err := readHeaderBytes(r)
	if err != nil {
		if IsIOError(err) {
			return nil, err
		}
		return nil, &FormatError{Message: "container header did not parse", Err: err}
	}
	return params, nil
}
