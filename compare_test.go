package strview

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Of("abc").Compare(Of("abcd")))
	assert.Positive(t, Of("abcd").Compare(Of("abc")))
	assert.Zero(t, Of("abc").Compare(Of("abc")))
	assert.Zero(t, Of("").Compare(Of("")))

	assert.Negative(t, Of("abc").Compare(Of("abd")))
	assert.Positive(t, Of("b").Compare(Of("abc")))
	assert.Negative(t, Of("").Compare(Of("a")))
}

func TestEquality(t *testing.T) {
	assert.True(t, Of("hello").Equal(Of("hello")))
	assert.True(t, Of("hello world").Substr(0, 5).Equal(Of("hello")))
	assert.False(t, Of("hello").Equal(Of("world")))
	assert.False(t, Of("hello").Equal(Of("hell")))
	assert.True(t, View{}.Equal(Of("")))

	// equality is content based, not pointer based
	a := []byte("same bytes")
	b := []byte("same bytes")
	assert.True(t, OfBytes(a).Equal(OfBytes(b)))
}

func TestHasPrefixSuffix(t *testing.T) {
	data := Of("hello world")

	assert.True(t, data.HasPrefix(Of("hello world")))
	assert.True(t, data.HasPrefix(Of("hello ")))
	assert.True(t, data.HasPrefix(Of("")))

	assert.True(t, data.HasSuffix(Of("hello world")))
	assert.True(t, data.HasSuffix(Of(" world")))
	assert.True(t, data.HasSuffix(Of("")))

	assert.False(t, data.HasPrefix(Of("world")))
	assert.False(t, data.HasSuffix(Of("hello")))

	assert.False(t, data.HasPrefix(Of("hello world ")))
	assert.False(t, data.HasSuffix(Of("hello world ")))

	assert.True(t, View{}.HasPrefix(Of("")))
	assert.True(t, View{}.HasSuffix(Of("")))
}

func TestCompareProperties(t *testing.T) {
	antisymmetric := func(a, b string) bool {
		x, y := Of(a), Of(b)
		return sign(x.Compare(y)) == -sign(y.Compare(x))
	}
	require.NoError(t, quick.Check(antisymmetric, &quick.Config{}))

	equalIffZero := func(a, b string) bool {
		x, y := Of(a), Of(b)
		return x.Equal(y) == (x.Compare(y) == 0)
	}
	require.NoError(t, quick.Check(equalIffZero, &quick.Config{}))

	prefixOrdering := func(a, b string) bool {
		x, y := Of(a), Of(b)
		return x.HasPrefix(y) == strings.HasPrefix(a, b) &&
			x.HasSuffix(y) == strings.HasSuffix(a, b)
	}
	require.NoError(t, quick.Check(prefixOrdering, &quick.Config{}))
}

func FuzzCompareParity(f *testing.F) {
	f.Add("abc", "abcd")
	f.Add("", "")
	f.Add("a", "b")
	f.Fuzz(func(t *testing.T, a, b string) {
		require.Equal(t, sign(strings.Compare(a, b)), sign(Of(a).Compare(Of(b))))
		require.Equal(t, a == b, Of(a).Equal(Of(b)))
	})
}
