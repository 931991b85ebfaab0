package progress

import "errors"

var (
	// ErrCorruptState marks an existing state file that cannot be parsed.
	// This is fatal for the session; silently resetting would destroy the
	// user's progress.
	ErrCorruptState = errors.New("corrupt progress state")

	// ErrLocked marks a directory whose session lock is held by another
	// watchnext process.
	ErrLocked = errors.New("directory locked by another session")
)
