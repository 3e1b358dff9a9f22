package filex

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "data", "shop")

	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	first, err := EnsureDir(dir)
	require.NoError(t, err)
	second, err := EnsureDir(dir)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o660))

	_, err := EnsureDir(path)
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestAppendFile_CreatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")

	require.NoError(t, AppendFile(path, []byte("a:1\n")))
	require.NoError(t, AppendFile(path, []byte("b:2\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a:1\nb:2\n", string(data))
}

func TestAppendFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "users.txt")
	require.Error(t, AppendFile(path, []byte("a:1\n")))
}

func TestScanLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\r\ntwo\n\nthree"), 0o600))

	var got []string
	require.NoError(t, ScanLines(path, func(line string) error {
		got = append(got, line)
		return nil
	}))
	require.Equal(t, []string{"one", "two", "", "three"}, got)
}

func TestScanLines_StopAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o600))

	var seen int
	require.NoError(t, ScanLines(path, func(line string) error {
		seen++
		if line == "two" {
			return ErrStop
		}
		return nil
	}))
	require.Equal(t, 2, seen)

	boom := errors.New("boom")
	err := ScanLines(path, func(string) error { return boom })
	require.ErrorIs(t, err, boom)
}

func TestScanLines_MissingFile(t *testing.T) {
	err := ScanLines(filepath.Join(t.TempDir(), "missing.txt"), func(string) error { return nil })
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\n  second  \nthird"), 0o600))

	var out bytes.Buffer
	opened := false
	require.NoError(t, Dump(&out, path, func() {
		opened = true
		out.WriteString("header\n")
	}))
	require.True(t, opened)
	require.Equal(t, "header\nfirst\n  second  \nthird\n", out.String())
}

func TestDump_MissingFilePrintsNothing(t *testing.T) {
	var out bytes.Buffer
	err := Dump(&out, filepath.Join(t.TempDir(), "missing.txt"), func() {
		out.WriteString("header\n")
	})
	require.Error(t, err)
	require.Empty(t, out.String())
}
