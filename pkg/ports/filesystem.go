package ports

// FileSystem abstracts file system operations.
// The temporary frame directory is the hand-off point between the extract,
// patch and assemble steps, so directory-level operations are part of the
// surface here.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Size returns the size of a file in bytes.
	Size(path string) (int64, error)

	// ListDir returns the names of the entries in a directory,
	// sorted lexicographically.
	ListDir(path string) ([]string, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error

	// RemoveAll deletes a path and any children it contains.
	RemoveAll(path string) error
}
