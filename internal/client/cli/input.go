package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// getSimpleText is an indirection used to facilitate testing.
var getSimpleText = GetSimpleText

// GetSimpleText prints prompt to w on the same line and reads one line of
// input from reader, trimmed of surrounding whitespace. If EOF occurs after
// some input was read, the partial line is returned; otherwise io.EOF is.
//
// Example prompt format:
//
//	Item name: _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints prompt to w and reads a password. When fd refers to a
// terminal (fd >= 0) and nothing is already buffered, the password is read
// without echo and a newline is printed afterwards. Otherwise it is read as
// a plain line from reader.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer, fd int) (string, error) {
	if fd < 0 || reader.Buffered() > 0 {
		return GetSimpleText(reader, prompt, w)
	}

	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pw)), nil
}
