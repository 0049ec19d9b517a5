package fs

import (
	"os"
)

// OSFS implements the app.FileSystem capabilities using the local OS.
type OSFS struct{}

// MkdirAll creates a directory and any missing parents. An existing
// directory is not an error.
func (OSFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFile creates a file with the given content, truncating any
// existing file at that path.
func (OSFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	// #nosec G304 -- paths are derived from the user's own diagram.
	return os.WriteFile(path, data, perm)
}
