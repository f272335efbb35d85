package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logFileName       = "ghostedit.log"
	rotatedTimeLayout = "2006-01-02-15-04-05"
	defaultMaxSizeMB  = 5
)

// Rotator is an io.Writer over LogFilePath(dir). A write that would push the
// file past its size limit first moves it aside as ghostedit.log.<time>,
// gzipped when enabled, and prunes old copies by age and count.
type Rotator struct {
	mu       sync.Mutex
	cfg      FileConfig
	maxBytes int64
	file     *os.File
	size     int64
	now      func() time.Time
}

// NewRotator opens (or creates) the active log file in cfg.LogDir.
func NewRotator(cfg FileConfig) (*Rotator, error) {
	sizeMB := cfg.MaxSizeMB
	if sizeMB <= 0 {
		sizeMB = defaultMaxSizeMB
	}
	r := &Rotator{
		cfg:      cfg,
		maxBytes: int64(sizeMB) << 20,
		now:      time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rotator) path() string {
	return LogFilePath(r.cfg.LogDir)
}

func (r *Rotator) open() error {
	f, err := os.OpenFile(r.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

// Write implements io.Writer.
func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxBytes {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate must be called with r.mu held.
func (r *Rotator) rotate() error {
	closeErr := r.file.Close()
	r.file = nil

	rotated := r.path() + "." + r.now().Format(rotatedTimeLayout)
	if err := os.Rename(r.path(), rotated); err != nil {
		return errors.Join(fmt.Errorf("failed to rotate log file: %w", err), closeErr)
	}

	// A failed compression keeps the plain copy.
	if r.cfg.Compress {
		if err := gzipFile(rotated); err != nil {
			fmt.Fprintf(os.Stderr, "ghostedit: failed to compress %s: %v\n", rotated, err)
		} else {
			_ = os.Remove(rotated)
		}
	}

	keep := r.cfg.MaxBackups
	if keep <= 0 {
		keep = -1
	}
	if _, err := PruneRotated(r.cfg.LogDir, time.Duration(r.cfg.MaxAgeDays)*24*time.Hour, keep); err != nil {
		fmt.Fprintf(os.Stderr, "ghostedit: failed to prune old logs: %v\n", err)
	}

	return r.open()
}

// Close closes the active file.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func gzipFile(path string) (retErr error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// RotatedFiles lists the rotated copies of the log file in dir, oldest
// first. A missing dir has none.
func RotatedFiles(dir string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read log directory: %w", err)
	}

	prefix := logFileName + "."
	var files []os.FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, info)
	}

	sort.SliceStable(files, func(i, j int) bool { return files[i].ModTime().Before(files[j].ModTime()) })
	return files, nil
}

// PruneRotated removes rotated log files in dir older than maxAge, then the
// oldest of the rest beyond keep. maxAge <= 0 skips the age check and keep < 0
// skips the count check. The active file is never touched. Removed names are
// returned oldest first.
func PruneRotated(dir string, maxAge time.Duration, keep int) ([]string, error) {
	files, err := RotatedFiles(dir)
	if err != nil {
		return nil, err
	}

	var doomed, kept []os.FileInfo
	cutoff := time.Now().Add(-maxAge)
	for _, f := range files {
		if maxAge > 0 && f.ModTime().Before(cutoff) {
			doomed = append(doomed, f)
			continue
		}
		kept = append(kept, f)
	}
	if keep >= 0 && len(kept) > keep {
		doomed = append(doomed, kept[:len(kept)-keep]...)
	}

	removed := make([]string, 0, len(doomed))
	for _, f := range doomed {
		if err := os.Remove(filepath.Join(dir, f.Name())); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", f.Name(), err)
		}
		removed = append(removed, f.Name())
	}
	return removed, nil
}
