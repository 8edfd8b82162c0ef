// Package flock keeps a second bot from running against the same root.
package flock

import (
	"os"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
)

// ErrLocked is returned by a non-blocking Lock when another process holds
// the lock.
var ErrLocked = errors.New("already locked")

// A Lock is an exclusive flock on a pid file.
type Lock struct {
	Path string
	File *os.File
}

// New creates an unlocked Lock on file.
func New(file string) *Lock {
	return &Lock{Path: file}
}

func lockMode(blocking bool) int {
	if blocking {
		return syscall.LOCK_EX
	}
	return syscall.LOCK_EX | syscall.LOCK_NB
}

// Lock takes the lock and writes the current pid into the lock file. A
// non-blocking Lock fails with ErrLocked if the lock is held.
func (l *Lock) Lock(blocking bool) error {
	if l.File == nil {
		f, err := os.OpenFile(l.Path, os.O_RDWR|os.O_CREATE, 0644)
		if err != nil {
			return errors.Wrapf(err, "open %s", l.Path)
		}
		l.File = f
	}

	if err := syscall.Flock(int(l.File.Fd()), lockMode(blocking)); err != nil {
		l.File.Close()
		l.File = nil
		if err == syscall.EWOULDBLOCK {
			return errors.Wrapf(ErrLocked, "flock %s", l.Path)
		}
		return errors.Wrapf(err, "flock %s", l.Path)
	}
	if err := l.File.Truncate(0); err != nil {
		return errors.Wrapf(err, "truncate %s", l.Path)
	}
	if _, err := l.File.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0); err != nil {
		return errors.Wrapf(err, "write pid to %s", l.Path)
	}
	return nil
}

// Unlock releases the lock and removes the lock file.
func (l *Lock) Unlock() error {
	if l.File == nil {
		return nil
	}
	defer func() {
		l.File.Close()
		os.Remove(l.Path)
		l.File = nil
	}()
	return errors.Wrapf(syscall.Flock(int(l.File.Fd()), syscall.LOCK_UN), "unlock %s", l.Path)
}
