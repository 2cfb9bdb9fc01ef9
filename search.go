package strview

import "github.com/rawbytedev/strview/internal/common"

// Substring search. The needle search is the naive O(haystack*needle) scan
// with a first-byte gate before the full prefix comparison; views are
// typically short and the constant factor beats a fancier algorithm there.
//
// An empty needle matches at offset 0 for forward search and at Size() for
// reverse search, the usual "empty string is a prefix/suffix of everything"
// boundary convention.

// IndexByte returns the offset of the first occurrence of c, or NotFound.
func (v View) IndexByte(c byte) int {
	for i := 0; i < v.n; i++ {
		if v.At(i) == c {
			return i
		}
	}
	return NotFound
}

// Index returns the offset of the first occurrence of needle, or NotFound.
// The result i satisfies v.SubstrFrom(i).HasPrefix(needle).
func (v View) Index(needle View) int {
	switch {
	case needle.IsEmpty():
		return 0
	case v.n == needle.n:
		if v.Equal(needle) {
			return 0
		}
	case v.n > needle.n:
		first := needle.Front()
		end := v.End()
		for i := 0; i <= v.n-needle.n; i++ {
			start := common.Add(v.ptr, i)
			if *start == first && MakeRange(start, end).HasPrefix(needle) {
				return i
			}
		}
	}
	return NotFound
}

// LastIndexByte returns the offset of the last occurrence of c, or NotFound.
func (v View) LastIndexByte(c byte) int {
	for i := v.n; i > 0; i-- {
		if v.At(i-1) == c {
			return i - 1
		}
	}
	return NotFound
}

// LastIndex returns the offset of the last occurrence of needle, or
// NotFound. An empty needle yields Size().
func (v View) LastIndex(needle View) int {
	switch {
	case needle.IsEmpty():
		return v.n
	case v.n == needle.n:
		if v.Equal(needle) {
			return 0
		}
	case v.n > needle.n:
		first := needle.Front()
		end := v.End()
		for i := v.n - needle.n + 1; i > 0; i-- {
			start := common.Add(v.ptr, i-1)
			if *start == first && MakeRange(start, end).HasPrefix(needle) {
				return i - 1
			}
		}
	}
	return NotFound
}

// IndexNth returns the offset of the nth (0-based) occurrence of needle, or
// NotFound if fewer than nth+1 occurrences exist. The search window advances
// one past the start of each match, not past its end, so occurrences of
// needle overlapping a previous match are counted:
// Of("aaaaaaaaaa").IndexNth(Of("a"), 5) == 5.
func (v View) IndexNth(needle View, nth int) int {
	rest := v
	for i := 0; i <= nth && rest.n >= needle.n; i++ {
		found := rest.Index(needle)
		if found == NotFound {
			return NotFound
		}
		if i == nth {
			return common.Distance(v.ptr, rest.ptr) + found
		}
		// +1 to step over the start of the found occurrence.
		rest.RemovePrefix(found + 1)
	}
	return NotFound
}

// Contains reports whether needle occurs in the view.
func (v View) Contains(needle View) bool {
	return v.Index(needle) != NotFound
}

// ContainsByte reports whether c occurs in the view.
func (v View) ContainsByte(c byte) bool {
	return v.IndexByte(c) != NotFound
}
