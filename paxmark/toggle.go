package paxmark

import "fmt"

// Toggle is a request to switch one PaX flag on or off.
type Toggle struct {
	Flag   Flag
	Enable bool
}

// ParseToggles maps a cluster of flag letters to toggles. An
// uppercase letter enables the corresponding feature, a lowercase
// letter disables it. An unknown letter fails with ErrInvalidFlag, so
// a bad cluster is rejected before any file is touched.
//
// Letters are kept in argument order; if a cluster names the same
// flag more than once, the last occurrence wins when the toggles are
// merged.
func ParseToggles(letters string) ([]Toggle, error) {
	var toggles []Toggle
	for _, c := range letters {
		f, enable, ok := lookupLetter(c)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrInvalidFlag, string(c))
		}
		toggles = append(toggles, Toggle{Flag: f, Enable: enable})
	}
	return toggles, nil
}

func lookupLetter(c rune) (f Flag, enable bool, ok bool) {
	for _, e := range flagTable {
		switch c {
		case e.enable:
			return e.flag, true, true
		case e.disable:
			return e.flag, false, true
		}
	}
	return 0, false, false
}

// Merge applies toggles to the raw attribute byte, setting or
// clearing only the bit each toggle names. Reserved bits pass through
// unchanged. Merging is idempotent, toggles on distinct flags
// commute, and an empty toggle list returns raw as-is.
func Merge(raw byte, toggles []Toggle) byte {
	for _, t := range toggles {
		if t.Enable {
			raw |= byte(t.Flag)
		} else {
			raw &^= byte(t.Flag)
		}
	}
	return raw
}
