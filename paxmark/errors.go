package paxmark

import (
	"errors"

	"golang.org/x/sys/unix"
)

var (
	// ErrInvalidFlag means a requested letter names no known PaX feature.
	ErrInvalidFlag = errors.New("unknown PaX flag")

	// ErrNotFound means the target path does not exist.
	ErrNotFound = errors.New("target does not exist")

	// ErrPermissionDenied means the caller may not read or change the
	// PaX attribute on the target. Writing commonly needs elevated
	// capabilities.
	ErrPermissionDenied = errors.New("not permitted to access PaX attributes")

	// ErrUnsupportedFilesystem means the filesystem or kernel does not
	// provide the extended-attribute namespace PaX markings live in.
	// This is distinct from the attribute merely being absent.
	ErrUnsupportedFilesystem = errors.New("filesystem does not support PaX attributes")
)

// classify translates errnos from the xattr syscalls into the error
// taxonomy above. Errors that fit no category pass through unchanged.
func classify(err error) error {
	switch {
	case errors.Is(err, unix.ENOENT):
		return ErrNotFound
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return ErrPermissionDenied
	case errors.Is(err, unix.ENOTSUP), errors.Is(err, unix.EOPNOTSUPP):
		return ErrUnsupportedFilesystem
	}
	return err
}
