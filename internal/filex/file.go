// Package filex holds the small plaintext-file helpers ordercli is built on:
// directory setup, single-write appends, line scans and verbatim dumps.
package filex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrStop can be returned from a ScanLines callback to end the scan early
// without reporting an error.
var ErrStop = errors.New("stop scanning")

// EnsureDir creates dir (and parents) if needed and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return abs, nil
}

// AppendFile appends data to path with a single write, creating the file
// if it does not exist.
func AppendFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ScanLines calls fn for every line of path, top to bottom, without the
// line terminator. Returning ErrStop from fn ends the scan with a nil error.
func ScanLines(path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return scan(f, fn)
}

// Dump copies every line of path to w verbatim, in order. onOpen, when not
// nil, runs once the file has been opened and before the first line is
// written, so callers can print a header only for readable files.
func Dump(w io.Writer, path string, onOpen func()) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if onOpen != nil {
		onOpen()
	}

	return scan(f, func(line string) error {
		_, err := fmt.Fprintln(w, line)
		return err
	})
}

func scan(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if ferr := fn(trimEOL(line)); ferr != nil {
				if errors.Is(ferr, ErrStop) {
					return nil
				}
				return ferr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
	}
}

func trimEOL(s string) string {
	n := len(s)
	if n > 0 && s[n-1] == '\n' {
		n--
		if n > 0 && s[n-1] == '\r' {
			n--
		}
	}
	return s[:n]
}
