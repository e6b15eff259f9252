package paxmark

import (
	"errors"
	"fmt"

	"github.com/pkg/xattr"

	"github.com/edera-dev/paxmark/paxmark/paxabi"
)

// Read returns the raw PaX attribute value stored on path. A file
// that has never been marked yields a nil slice; the kernel treats
// that the same as every flag in its default state.
func Read(path string) ([]byte, error) {
	if !xattr.XATTR_SUPPORTED {
		return nil, fmt.Errorf("reading %v from %q: %w", paxabi.XattrName, path, ErrUnsupportedFilesystem)
	}
	raw, err := xattr.Get(path, paxabi.XattrName)
	if err != nil {
		if errors.Is(err, xattr.ENOATTR) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %v from %q: %w", paxabi.XattrName, path, classify(err))
	}
	return raw, nil
}

// View reads and decodes the flags currently set on path.
func View(path string) (FlagSet, error) {
	raw, err := Read(path)
	if err != nil {
		return 0, err
	}
	return Decode(rawByte(raw)), nil
}

// Apply runs one read-merge-write cycle against path. Toggles are
// validated up front, so an unknown flag never causes a partial
// write. The write itself is a single setxattr call; if it fails, the
// previous marking is still intact and no rollback is needed.
func Apply(path string, toggles []Toggle) error {
	for _, t := range toggles {
		if !t.Flag.valid() {
			return fmt.Errorf("%w %v", ErrInvalidFlag, t.Flag)
		}
	}

	raw, err := Read(path)
	if err != nil {
		return err
	}

	// Known flag bits all live in the first byte. Anything beyond it
	// is not ours to interpret and is written back as found.
	buf := append([]byte{Merge(rawByte(raw), toggles)}, rest(raw)...)
	if err := xattr.Set(path, paxabi.XattrName, buf); err != nil {
		return fmt.Errorf("writing %v to %q: %w", paxabi.XattrName, path, classify(err))
	}
	return nil
}

// ApplyAll applies the same toggles to every path. A failed path does
// not stop the remaining ones; the returned error joins one error per
// failed path.
func ApplyAll(paths []string, toggles []Toggle) error {
	var errs []error
	for _, p := range paths {
		if err := Apply(p, toggles); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reset removes the PaX marking from path entirely, returning the
// binary to the kernel-default state. A file with no marking is left
// alone.
func Reset(path string) error {
	if !xattr.XATTR_SUPPORTED {
		return fmt.Errorf("removing %v from %q: %w", paxabi.XattrName, path, ErrUnsupportedFilesystem)
	}
	if err := xattr.Remove(path, paxabi.XattrName); err != nil {
		if errors.Is(err, xattr.ENOATTR) {
			return nil
		}
		return fmt.Errorf("removing %v from %q: %w", paxabi.XattrName, path, classify(err))
	}
	return nil
}

func rawByte(raw []byte) byte {
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}

func rest(raw []byte) []byte {
	if len(raw) < 2 {
		return nil
	}
	return raw[1:]
}
