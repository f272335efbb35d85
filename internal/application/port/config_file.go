package port

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrFileIO matches every *FileError.
var ErrFileIO = errors.New("config file i/o failed")

// FileError reports a failed read, stat, backup or write.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFileIO) succeed.
func (e *FileError) Is(target error) bool {
	return target == ErrFileIO
}

// FileInfo is the metadata captured at load time and checked before a save.
type FileInfo struct {
	Path    string
	Exists  bool
	Size    int64
	ModTime time.Time
}

// ConfigFileStore reads and writes configuration files.
// Errors are *FileError values.
type ConfigFileStore interface {
	// Read returns the file content.
	Read(ctx context.Context, path string) ([]byte, error)

	// Stat returns file metadata. A missing file is not an error: Exists is false.
	Stat(ctx context.Context, path string) (FileInfo, error)

	// Backup copies the file to its backup location, replacing any previous
	// backup, and returns the backup path. It returns "" when the file does not exist.
	Backup(ctx context.Context, path string) (string, error)

	// WriteAtomic replaces the file content without ever leaving a partial file.
	WriteAtomic(ctx context.Context, path string, data []byte) error
}
