package optimize

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// Wide-load capability detection
var useWide bool

func init() {
	// Check CPU features based on architecture
	if cpu.ARM64.HasASIMD {
		// ARM64: unaligned 8-byte loads are cheap with ASIMD
		useWide = true
	}
	if cpu.X86.HasSSE42 || cpu.X86.HasAVX2 {
		// x86_64: unaligned 8-byte loads are cheap on SSE4.2+ parts
		useWide = true
	}
}

// EqualFoldASCII reports whether a and b are equal under ASCII case folding.
// HTTP field names are a token grammar, so only 'A'..'Z' fold; no Unicode.
// Uses 8-byte wide loads on capable CPUs, otherwise a plain byte loop.
func EqualFoldASCII(a, b []byte) bool {
	// Quick length check
	if len(a) != len(b) {
		return false
	}

	// For short names, the byte loop is faster
	if len(a) < 16 || !useWide {
		return foldEqual(a, b)
	}

	i := 0
	for ; i+8 <= len(a); i += 8 {
		// Identical words need no folding at all
		if binary.LittleEndian.Uint64(a[i:]) == binary.LittleEndian.Uint64(b[i:]) {
			continue
		}
		if !foldEqual(a[i:i+8], b[i:i+8]) {
			return false
		}
	}

	return foldEqual(a[i:], b[i:])
}

// foldEqual is the scalar fallback over equal-length slices.
func foldEqual(a, b []byte) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if lowerASCII(ca) != lowerASCII(cb) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
