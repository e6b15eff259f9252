// Package paxabi defines the fixed kernel interface for PaX markings
// stored in filesystem extended attributes.
//
// A PaX-enabled kernel reads the marking when it executes a binary;
// this package only describes that interface, it does not define it.
package paxabi

// XattrName is the extended attribute a PaX-enabled kernel consults
// for per-binary protection flags.
const XattrName = "user.pax.flags"

// PaX feature bits, for use in the stored attribute byte.
//
// The bit positions are kernel ABI and must never be renumbered.
const (
	FlagPageExec = (1 << 0) // paging-based non-executable pages
	FlagEmuTramp = (1 << 1) // trampoline emulation
	FlagMProtect = (1 << 2) // mprotect hardening
	FlagRandMMap = (1 << 3) // mmap base randomization
	FlagSegmExec = (1 << 4) // segmentation-based non-executable pages
)

// FlagMask covers every bit position this ABI assigns. The remaining
// bits of the attribute byte are reserved and must be left untouched.
const FlagMask = FlagPageExec | FlagEmuTramp | FlagMProtect | FlagRandMMap | FlagSegmExec
