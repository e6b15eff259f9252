// Package paxmark marks executable binaries with PaX
// memory-protection flags stored in a filesystem extended attribute,
// so a PaX-enforcing kernel can relax or tighten protections per
// binary (e.g. permit writable+executable pages for a JIT).
package paxmark

import (
	"fmt"
	"strings"

	"github.com/edera-dev/paxmark/paxmark/paxabi"
)

// Flag identifies one controllable PaX protection feature. Each Flag
// owns exactly one bit position in the stored attribute byte.
type Flag uint8

const (
	PageExec Flag = paxabi.FlagPageExec
	EmuTramp Flag = paxabi.FlagEmuTramp
	MProtect Flag = paxabi.FlagMProtect
	RandMMap Flag = paxabi.FlagRandMMap
	SegmExec Flag = paxabi.FlagSegmExec
)

// flagTable is the closed alphabet of controllable features. The
// uppercase letter enables a feature on the command line, the
// lowercase letter disables it.
var flagTable = []struct {
	flag    Flag
	enable  rune
	disable rune
	name    string
}{
	{PageExec, 'P', 'p', "PAGEEXEC"},
	{EmuTramp, 'E', 'e', "EMUTRAMP"},
	{MProtect, 'M', 'm', "MPROTECT"},
	{RandMMap, 'R', 'r', "RANDMMAP"},
	{SegmExec, 'S', 's', "SEGMEXEC"},
}

func (f Flag) String() string {
	for _, e := range flagTable {
		if e.flag == f {
			return e.name
		}
	}
	return fmt.Sprintf("Flag(0x%x)", uint8(f))
}

// valid is true if f names exactly one known feature bit.
func (f Flag) valid() bool {
	for _, e := range flagTable {
		if e.flag == f {
			return true
		}
	}
	return false
}

// FlagSet is a set of enabled PaX protection features.
type FlagSet uint8

// Has reports whether every bit of f is enabled in the set.
func (s FlagSet) Has(f Flag) bool {
	return uint8(s)&uint8(f) == uint8(f)
}

// String builds a human-readable representation of the FlagSet.
func (s FlagSet) String() string {
	if s == 0 {
		return "∅"
	}
	var b strings.Builder
	b.WriteByte('{')
	for _, e := range flagTable {
		if !s.Has(e.flag) {
			continue
		}
		if b.Len() > 1 {
			b.WriteByte(',')
		}
		b.WriteString(e.name)
	}
	b.WriteByte('}')
	return b.String()
}

// Decode reads the recognized flag bits out of a raw attribute byte.
// It is total: every byte value decodes, and reserved bits are
// dropped from the result rather than treated as an error.
func Decode(raw byte) FlagSet {
	return FlagSet(raw & paxabi.FlagMask)
}
