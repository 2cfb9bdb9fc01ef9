package strview

// Compare three-way compares the two views byte-wise over their overlapping
// prefix; if that prefix is entirely equal the shorter view compares less.
// Only the sign of the result is meaningful.
func (v View) Compare(o View) int {
	m := v.n
	if o.n < m {
		m = o.n
	}
	for i := 0; i < m; i++ {
		a, b := v.At(i), o.At(i)
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	switch {
	case v.n < o.n:
		return -1
	case v.n > o.n:
		return 1
	}
	return 0
}

// Equal reports whether the two views have the same length and content.
// Pointer identity is irrelevant: views over distinct allocations holding
// the same bytes are equal. The length check is a fast path over what
// Compare already decides.
func (v View) Equal(o View) bool {
	return v.n == o.n && v.Compare(o) == 0
}
