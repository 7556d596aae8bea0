package fileutils

import (
	"bytes"
	"io"
	"os"

	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/rtutils"
)

// nullByte represents the null-terminator byte
const nullByte byte = 0

// MaxReadSize caps how much of a single file ReadFile will return, descriptor files are tiny and anything larger
// is not what we are looking for
const MaxReadSize = 1024 * 1024

// IsBinary checks if the given bytes are for a binary file
func IsBinary(fileBytes []byte) bool {
	return bytes.IndexByte(fileBytes, nullByte) != -1
}

// TargetExists checks if the given file or folder exists
func TargetExists(path string) bool {
	_, err1 := os.Stat(path)
	_, err2 := os.Readlink(path) // os.Stat returns false on Symlinks that don't point to a valid file
	return err1 == nil || err2 == nil
}

// FileExists checks if the given file (not folder) exists
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	mode := fi.Mode()
	return mode.IsRegular()
}

// DirExists checks if the given directory exists
func DirExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	mode := fi.Mode()
	return mode.IsDir()
}

// ReadFile reads the content of a file, up to MaxReadSize bytes
func ReadFile(filePath string) (_ []byte, rerr error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errs.Wrap(err, "Could not open file: %s", filePath)
	}
	defer rtutils.Closer(f.Close, &rerr)

	b, err := io.ReadAll(io.LimitReader(f, MaxReadSize))
	if err != nil {
		return nil, errs.Wrap(err, "Could not read file: %s", filePath)
	}
	return b, nil
}
