package port

import "context"

// FileWatcher reports changes made to a file by other processes.
type FileWatcher interface {
	// Watch calls onChange after each write, create, rename or removal of path
	// until ctx is done or Close is called.
	Watch(ctx context.Context, path string, onChange func()) error

	// Close stops watching.
	Close() error
}
