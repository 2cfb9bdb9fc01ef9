// Package strview provides View, a non-owning read-only window over a
// contiguous run of bytes, represented as a raw (pointer, length) pair.
//
// A View never copies, allocates or frees the memory it refers to; the
// caller must ensure the backing storage outlives every view derived from
// it. Using a view after its storage is freed or reused is undefined
// behaviour.
package strview

import (
	"iter"

	"github.com/rawbytedev/strview/internal/common"
)

// NotFound is returned by the search operations when the needle does not
// occur in the view.
const NotFound = -1

// Unbounded as a count means "to the end of the view".
const Unbounded = int(^uint(0) >> 1)

// View is a non-owning reference to len bytes starting at ptr. The zero
// value is the canonical empty view (nil base, length 0). Views are plain
// values: copying one copies the pair, never the bytes.
type View struct {
	ptr *byte
	n   int
}

// Of returns a zero-copy view of s. Since s is an ordinary Go string this
// is the literal shorthand: Of("hello") wraps the literal's storage
// directly, no allocation.
func Of(s string) View {
	return View{ptr: common.StringPtr(s), n: len(s)}
}

// OfBytes returns a zero-copy view of b. Mutations of b remain visible
// through the view.
func OfBytes(b []byte) View {
	return View{ptr: common.BytesPtr(b), n: len(b)}
}

// Make constructs a view from an explicit pointer and length, stored
// verbatim with no validation.
func Make(ptr *byte, n int) View {
	return View{ptr: ptr, n: n}
}

// MakeCStr constructs a view over a NUL-terminated buffer; the length is the
// number of bytes before the first zero byte. A nil pointer yields the empty
// view.
func MakeCStr(ptr *byte) View {
	if ptr == nil {
		return View{}
	}
	n := 0
	for *common.Add(ptr, n) != 0 {
		n++
	}
	return View{ptr: ptr, n: n}
}

// MakeRange constructs a view from a [first, last) pointer pair into the
// same allocation.
func MakeRange(first, last *byte) View {
	return View{ptr: first, n: common.Distance(first, last)}
}

// Data returns the base pointer exactly as stored. Views built by this
// package's constructors have a nil base only when empty; Make stores
// whatever pointer it was given verbatim, so a Make-constructed view may
// carry a nil base it must never dereference.
func (v View) Data() *byte {
	return v.ptr
}

// Size returns the number of bytes in the view.
func (v View) Size() int {
	return v.n
}

// IsEmpty reports whether the view has length 0.
func (v View) IsEmpty() bool {
	return v.n == 0
}

// At returns the byte at offset i with no bounds check: the read goes
// straight through the base pointer, and i outside [0, Size()) is undefined
// behaviour. This is the deliberate zero-overhead contract; use Substr for
// the clamped, total operations.
func (v View) At(i int) byte {
	return *common.Add(v.ptr, i)
}

// Front returns the first byte. Undefined behaviour on an empty view.
func (v View) Front() byte {
	return *v.ptr
}

// Back returns the last byte. Undefined behaviour on an empty view.
func (v View) Back() byte {
	return *common.Add(v.ptr, v.n-1)
}

// Begin returns a pointer to the first byte of the view.
func (v View) Begin() *byte {
	return v.ptr
}

// End returns the one-past-the-end pointer. Dereferencing it is undefined
// behaviour.
func (v View) End() *byte {
	return common.Add(v.ptr, v.n)
}

// Chars iterates the view front to back, yielding offset and byte.
func (v View) Chars() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

// ReverseChars iterates the view back to front, yielding offset and byte.
func (v View) ReverseChars() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

// Bytes aliases the viewed memory as a []byte without copying. The slice is
// only valid while the backing storage is.
func (v View) Bytes() []byte {
	return common.AliasBytes(v.ptr, v.n)
}

// UnsafeString aliases the viewed memory as a string without copying.
// The caller must guarantee the backing memory is neither freed nor
// mutated while the string is live.
func (v View) UnsafeString() string {
	return common.AliasString(v.ptr, v.n)
}

// String returns the viewed bytes as a newly allocated string. This is the
// one copying convenience; every other operation is allocation-free.
func (v View) String() string {
	return string(common.AliasBytes(v.ptr, v.n))
}
