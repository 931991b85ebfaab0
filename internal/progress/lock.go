package progress

import (
	"fmt"

	"github.com/gofrs/flock"
)

// Lock acquires an advisory lock for a watched directory so two sessions do
// not race on the same state file. It fails fast with ErrLocked instead of
// blocking. Callers must call the returned release function.
func (s *Store) Lock(dir string) (release func(), err error) {
	lockPath := s.StatePath(dir) + ".lock"
	fileLock := flock.New(lockPath)

	acquired, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire session lock %s: %w", lockPath, err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s", ErrLocked, dir)
	}
	return func() {
		_ = fileLock.Unlock()
	}, nil
}
