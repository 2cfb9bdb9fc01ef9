package strview

import "github.com/rawbytedev/strview/internal/common"

// Range derivation and trimming. Unlike At/Front/Back these operations are
// total: any pos or n outside the view's range clamps instead of reading
// out of range. A negative pos is treated like an out-of-range one (so
// v.SubstrFrom(v.Index(absent)) is the anchored-empty view, never a view
// reaching outside the buffer), a negative count or trim amount clamps to
// zero, and an out-of-range Substr stays anchored at the parent's end so
// chained operations and comparisons against the empty view remain
// well-defined.

// Substr returns the view [pos, pos+count) clamped to this view's range.
// If pos is negative or >= Size() the result is the empty view anchored at
// End(); NotFound is therefore safe to pass through. A negative count
// yields an empty view at pos. Pass Unbounded as count to take everything
// from pos onward.
func (v View) Substr(pos, count int) View {
	if pos < 0 || pos >= v.n {
		return View{ptr: v.End()}
	}
	if count < 0 {
		count = 0
	}
	if rest := v.n - pos; count > rest {
		count = rest
	}
	return View{ptr: common.Add(v.ptr, pos), n: count}
}

// SubstrFrom returns the suffix starting at pos, clamped like Substr.
func (v View) SubstrFrom(pos int) View {
	return v.Substr(pos, Unbounded)
}

// StartingWith returns the suffix beginning at the first occurrence of
// needle, or the end-anchored empty view when needle is absent.
func (v View) StartingWith(needle View) View {
	if i := v.Index(needle); i != NotFound {
		return v.SubstrFrom(i)
	}
	return View{ptr: v.End()}
}

// RemovePrefix rebinds the view to drop its first n bytes and returns a view
// of the removed portion. n clamps to [0, Size()]: a negative n removes
// nothing, and n larger than Size() consumes the whole view, leaving it
// empty and anchored at the old end.
func (v *View) RemovePrefix(n int) View {
	if n < 0 {
		n = 0
	}
	removed := v.Substr(0, n)
	*v = v.SubstrFrom(n)
	return removed
}

// RemoveSuffix rebinds the view to drop its last n bytes and returns a view
// of the removed portion. n clamps to [0, Size()]: a negative n removes
// nothing, and n larger than Size() consumes the whole view.
func (v *View) RemoveSuffix(n int) View {
	if n < 0 {
		n = 0
	}
	if n > v.n {
		n = v.n
	}
	removed := v.SubstrFrom(v.n - n)
	v.n -= n
	return removed
}

// HasPrefix reports whether the view starts with p. An empty p is a prefix
// of everything.
func (v View) HasPrefix(p View) bool {
	return v.Substr(0, p.n).Equal(p)
}

// HasSuffix reports whether the view ends with s. An empty s is a suffix of
// everything.
func (v View) HasSuffix(s View) bool {
	if v.n >= s.n {
		return v.SubstrFrom(v.n - s.n).Equal(s)
	}
	return false
}
