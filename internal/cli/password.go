package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dobycrypt/doby"
)

// ResolvePassword returns the password to use for an operation. If
// explicit is non-empty, it is used as-is (the caller owns its
// lifecycle). Otherwise, and only when stdin is a terminal, the user
// is prompted with echo suppressed; on encrypt, confirm requires a
// second, matching entry.
func ResolvePassword(explicit string, confirm bool) ([]byte, error) {
	if explicit != "" {
		return []byte(explicit), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, &doby.ConfigError{Field: "password", Message: "no --password given and stdin is not a terminal"}
	}

	first, err := readPassword(fd, "Password: ")
	if err != nil {
		return nil, err
	}
	if !confirm {
		return first, nil
	}

	second, err := readPassword(fd, "Confirm password: ")
	if err != nil {
		doby.Zero(first)
		return nil, err
	}
	if string(first) != string(second) {
		doby.Zero(first)
		doby.Zero(second)
		return nil, doby.ErrPasswordMismatch
	}
	doby.Zero(second)
	return first, nil
}

func readPassword(fd int, prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, &doby.IOError{Op: "read", Stream: "stdin", Err: err}
	}
	return pw, nil
}

// ConfirmOverwrite prompts y/N on stderr and reports whether the user
// agreed to overwrite an existing file. Used only when --interactive
// is set and the output path already exists.
func ConfirmOverwrite(path string) (bool, error) {
	fmt.Fprintf(os.Stderr, "%s already exists. Overwrite? [y/N]: ", path)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, &doby.IOError{Op: "read", Stream: "stdin", Err: err}
	}
	switch line {
	case "y\n", "Y\n", "yes\n", "Yes\n":
		return true, nil
	default:
		return false, nil
	}
}
