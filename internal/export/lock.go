package export

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

var ErrLocked = errors.New("output is locked by another run")

// Lock takes an exclusive lock on <path>.lock without waiting.
// Call the returned func to release it; it also removes the lock file.
func Lock(path string) (unlock func() error, err error) {
	fl := flock.New(path + ".lock")
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", fl.Path(), err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, fl.Path())
	}
	return func() error {
		if err := fl.Unlock(); err != nil {
			return err
		}
		if err := os.Remove(fl.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}, nil
}
