package common

import "unsafe"

// Pointer helpers shared by the strview package. Everything here is a thin,
// inlinable wrapper over unsafe; the caller owns the lifetime of the memory
// the pointers refer to.

// Add returns p advanced by off bytes. No range check is performed.
func Add(p *byte, off int) *byte {
	return (*byte)(unsafe.Add(unsafe.Pointer(p), off))
}

// Distance returns the number of bytes from first to last. Both pointers
// must refer into (or one past the end of) the same allocation.
func Distance(first, last *byte) int {
	return int(uintptr(unsafe.Pointer(last)) - uintptr(unsafe.Pointer(first)))
}

// AliasBytes aliases [p, p+n) as a []byte without copying. The slice becomes
// invalid the moment the backing memory is freed or reused.
func AliasBytes(p *byte, n int) []byte {
	return unsafe.Slice(p, n)
}

// AliasString aliases [p, p+n) as a string without copying. The usual string
// immutability guarantee does not hold if a writer mutates the backing
// memory; caller must ensure buf lifetime.
func AliasString(p *byte, n int) string {
	if n == 0 {
		return ""
	}
	return unsafe.String(p, n)
}

// StringPtr returns a pointer to the first byte of s, or nil for an empty
// string.
func StringPtr(s string) *byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.StringData(s)
}

// BytesPtr returns a pointer to the first byte of b, or nil for an empty
// slice.
func BytesPtr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return unsafe.SliceData(b)
}
