package xlsync

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file or directory does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNotDirectory indicates a directory-mode path is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// SyncError represents a backing-store failure on one document. It is
// caught at the file-pair level; the pair is abandoned and the run
// continues.
type SyncError struct {
	Path string
	Op   string // "open", "read", "save"
	Err  error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError.
func NewSyncError(op, path string, err error) *SyncError {
	return &SyncError{Path: path, Op: op, Err: err}
}
