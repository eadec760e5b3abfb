package letters_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordproblem/stephen/letters"
)

func TestShortlexLess_ShorterFirst(t *testing.T) {
	t.Parallel()

	require.True(t, letters.ShortlexLess(letters.Word{1}, letters.Word{0, 0}))
	require.False(t, letters.ShortlexLess(letters.Word{0, 0}, letters.Word{1}))
}

func TestShortlexLess_LexicographicTiebreak(t *testing.T) {
	t.Parallel()

	require.True(t, letters.ShortlexLess(letters.Word{0, 1}, letters.Word{0, 2}))
	require.False(t, letters.ShortlexLess(letters.Word{0, 2}, letters.Word{0, 1}))
	require.False(t, letters.ShortlexLess(letters.Word{0, 1}, letters.Word{0, 1}))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	require.True(t, letters.Equal(letters.Word{1, 2}, letters.Word{1, 2}))
	require.False(t, letters.Equal(letters.Word{1, 2}, letters.Word{1}))
	require.True(t, letters.Equal(nil, letters.Word{}))
}

func TestConcat_DoesNotAliasInputs(t *testing.T) {
	t.Parallel()

	a := letters.Word{0, 1}
	b := letters.Word{2}
	c := letters.Concat(a, b)
	require.Equal(t, letters.Word{0, 1, 2}, c)
	c[0] = 9
	require.Equal(t, letters.Letter(0), a[0])
}
