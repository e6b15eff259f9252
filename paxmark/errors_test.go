package paxmark

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/sys/unix"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		errno unix.Errno
		want  error
	}{
		{errno: unix.ENOENT, want: ErrNotFound},
		{errno: unix.EACCES, want: ErrPermissionDenied},
		{errno: unix.EPERM, want: ErrPermissionDenied},
		{errno: unix.ENOTSUP, want: ErrUnsupportedFilesystem},
		{errno: unix.EOPNOTSUPP, want: ErrUnsupportedFilesystem},
	} {
		wrapped := fmt.Errorf("setxattr: %w", tc.errno)
		if got := classify(wrapped); !errors.Is(got, tc.want) {
			t.Errorf("classify(%v) = %v, want %v", tc.errno, got, tc.want)
		}
	}
}

// Errnos outside the taxonomy must pass through unchanged.
func TestClassifyPassThrough(t *testing.T) {
	for _, errno := range []unix.Errno{unix.EIO, unix.ENOSPC, unix.EINTR} {
		wrapped := fmt.Errorf("setxattr: %w", errno)
		got := classify(wrapped)
		if got != wrapped {
			t.Errorf("classify(%v) = %v, want the input unchanged", errno, got)
		}
		for _, sentinel := range []error{ErrNotFound, ErrPermissionDenied, ErrUnsupportedFilesystem} {
			if errors.Is(got, sentinel) {
				t.Errorf("classify(%v) matches %v, want no sentinel", errno, sentinel)
			}
		}
	}
}
