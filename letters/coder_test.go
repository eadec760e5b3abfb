package letters_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordproblem/stephen/letters"
)

func TestCoder_CodeAssignsDenseFirstSeenOrder(t *testing.T) {
	t.Parallel()

	c := letters.NewCoder()
	require.Equal(t, letters.Letter(0), c.Code("a"))
	require.Equal(t, letters.Letter(1), c.Code("b"))
	require.Equal(t, letters.Letter(0), c.Code("a"))
	require.Equal(t, 2, c.Len())
}

func TestCoder_LookupFailsFastOnUnknownSymbol(t *testing.T) {
	t.Parallel()

	c := letters.NewCoder()
	c.Code("a")
	_, err := c.Lookup("b")
	require.ErrorIs(t, err, letters.ErrUnknownSymbol)

	l, err := c.Lookup("a")
	require.NoError(t, err)
	require.Equal(t, letters.Letter(0), l)
}

func TestCoder_CodeWord(t *testing.T) {
	t.Parallel()

	c := letters.NewCoder()
	w := c.CodeWord([]string{"a", "b", "a"})
	require.Equal(t, letters.Word{0, 1, 0}, w)
}

func TestCoder_SymbolRoundTrips(t *testing.T) {
	t.Parallel()

	c := letters.NewCoder()
	c.Code("a")
	c.Code("b")

	sym, ok := c.Symbol(1)
	require.True(t, ok)
	require.Equal(t, "b", sym)

	_, ok = c.Symbol(5)
	require.False(t, ok)
}
