// Package paxtest has helpers for tests that store PaX markings on
// real files.
package paxtest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/xattr"
)

// RequireXattrs skips the test if user-namespace extended attributes
// cannot be stored under the test temp directory. Notably, tmpfs only
// accepts user xattrs on recent kernels.
func RequireXattrs(t testing.TB) {
	t.Helper()

	if !xattr.XATTR_SUPPORTED {
		t.Skip("extended attributes are not supported on this platform")
	}
	probe := filepath.Join(t.TempDir(), "xattrprobe")
	if err := os.WriteFile(probe, nil, 0o600); err != nil {
		t.Fatalf("os.WriteFile(%q): %v", probe, err)
	}
	if err := xattr.Set(probe, "user.paxmark.probe", []byte{1}); err != nil {
		t.Skipf("user xattrs unavailable here: %v", err)
	}
}

// MakeBinary creates a throwaway target file to mark.
func MakeBinary(t testing.TB) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "somebinary")
	if err := os.WriteFile(path, []byte("#!/bin/true\n"), 0o755); err != nil {
		t.Fatalf("os.WriteFile(%q): %v", path, err)
	}
	return path
}
