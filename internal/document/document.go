// Package document reads the text files handed to plagcheck.
package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"plagcheck/internal/failure"
)

// Read returns the UTF-8 contents of the file at path. Missing files are
// reported with failure.ErrNotFound and invalid byte sequences with
// failure.ErrDecode.
func Read(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", failure.Wrap(failure.ErrNotFound, "document", "read", "file does not exist: "+path, err)
		}
		return "", fmt.Errorf("document: open %s: %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(transform.NewReader(file, encoding.UTF8Validator))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return "", failure.Wrap(failure.ErrDecode, "document", "read", "file is not valid UTF-8: "+path, err)
		}
		return "", fmt.Errorf("document: read %s: %w", path, err)
	}
	return string(data), nil
}
