// Package filesystem stores config files on the local disk.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/logging"
)

// BackupSuffix is appended to a config path to name its single backup.
const BackupSuffix = ".bak"

const (
	defaultFileMode fs.FileMode = 0o644
	defaultDirMode  fs.FileMode = 0o755
)

// Adapter implements port.ConfigFileStore using the OS filesystem.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

var _ port.ConfigFileStore = (*Adapter)(nil)

// BackupPath returns where Backup copies path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

func (a *Adapter) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fileError("read", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError("read", path, err)
	}
	return data, nil
}

func (a *Adapter) Stat(ctx context.Context, path string) (port.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return port.FileInfo{}, fileError("stat", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return port.FileInfo{Path: path}, nil
		}
		return port.FileInfo{}, fileError("stat", path, err)
	}
	if info.IsDir() {
		return port.FileInfo{}, fileError("stat", path, fmt.Errorf("is a directory"))
	}
	return port.FileInfo{
		Path:    path,
		Exists:  true,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Backup copies path to BackupPath(path), replacing the previous backup.
// A backup path that is a symlink keeps pointing at the same file.
func (a *Adapter) Backup(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fileError("backup", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fileError("backup", path, err)
	}

	backup := BackupPath(path)
	if err := writeAtomic(resolve(backup), data, modeOf(path)); err != nil {
		return "", fileError("backup", backup, err)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Str("backup", backup).Msg("config file backed up")
	return backup, nil
}

// WriteAtomic writes data to a temporary file next to path, syncs it and
// renames it over path. The file keeps its permissions. When path is a
// symlink the file it points to is replaced and the link is left alone.
func (a *Adapter) WriteAtomic(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return fileError("write", path, err)
	}
	if err := writeAtomic(resolve(path), data, modeOf(path)); err != nil {
		return fileError("write", path, err)
	}
	return nil
}

func writeAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defaultDirMode); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := f.Name()

	success := false
	defer func() {
		if !success {
			_ = f.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// resolve follows symlinks to the file they name. Paths that do not exist
// yet are returned unchanged.
func resolve(path string) string {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return target
}

func modeOf(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return defaultFileMode
	}
	return info.Mode().Perm()
}

func fileError(op, path string, err error) error {
	return &port.FileError{Op: op, Path: path, Err: err}
}
