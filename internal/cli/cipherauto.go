package cli

import (
	"golang.org/x/sys/cpu"

	"github.com/dobycrypt/doby"
)

// ResolveCipher maps the --cipher flag value to a doby.CipherKind.
// "auto" (the default) picks AES-CTR when the CPU advertises both
// AES-NI and PCLMULQDQ — the instruction pair AES-CTR's fast paths
// need — and falls back to XChaCha20 otherwise, since XChaCha20 has
// no hardware dependency and runs at a constant, reasonable speed on
// any CPU.
func ResolveCipher(name string) (doby.CipherKind, error) {
	if name == "auto" || name == "" {
		if cpu.X86.HasAES && cpu.X86.HasPCLMULQDQ {
			return doby.CipherAESCTR, nil
		}
		return doby.CipherXChaCha20, nil
	}
	return doby.ParseCipherKind(name)
}
