package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordproblem/stephen/letters"
	"github.com/wordproblem/stephen/presentation"
)

func TestNew_WithAlphabetSize(t *testing.T) {
	t.Parallel()

	p := presentation.New(presentation.WithAlphabetSize(3))
	require.Equal(t, []letters.Letter{0, 1, 2}, p.Alphabet())
	require.False(t, p.ContainsEmptyWord())
}

func TestAddRuleChecked_RejectsOutOfRangeLetter(t *testing.T) {
	t.Parallel()

	p := presentation.New(presentation.WithAlphabetSize(2))
	err := p.AddRuleChecked(letters.Word{0, 5}, letters.Word{1})
	require.ErrorIs(t, err, presentation.ErrLetterOutOfRange)
}

func TestAddRuleChecked_RejectsEmptySideWithoutEmptyWord(t *testing.T) {
	t.Parallel()

	p := presentation.New(presentation.WithAlphabetSize(2))
	err := p.AddRuleChecked(letters.Word{0}, letters.Word{})
	require.ErrorIs(t, err, presentation.ErrEmptyRuleSide)
}

func TestAddRuleChecked_AllowsEmptySideWithEmptyWord(t *testing.T) {
	t.Parallel()

	p := presentation.New(presentation.WithAlphabetSize(2), presentation.WithEmptyWord())
	require.NoError(t, p.AddRuleChecked(letters.Word{0}, letters.Word{}))
	require.Len(t, p.Rules, 2)
}

func TestAddRule_Unchecked_SkipsValidation(t *testing.T) {
	t.Parallel()

	p := presentation.New(presentation.WithAlphabetSize(1))
	p.AddRule(letters.Word{9}, letters.Word{})
	require.Error(t, p.Validate())
}

func TestValidate_RejectsDuplicateLetter(t *testing.T) {
	t.Parallel()

	p := presentation.New(presentation.WithAlphabetLetters([]letters.Letter{0, 0}))
	require.ErrorIs(t, p.Validate(), presentation.ErrDuplicateLetter)
}

func TestInversePresentation_ValidatesInvolution(t *testing.T) {
	t.Parallel()

	// alphabet {0,1,2,3}: 0<->1, 2<->3.
	ip := presentation.NewInverse(
		[]letters.Letter{1, 0, 3, 2},
		presentation.WithAlphabetSize(4),
	)
	require.NoError(t, ip.Validate())

	inv, ok := ip.InverseOf(2)
	require.True(t, ok)
	require.Equal(t, letters.Letter(3), inv)
}

func TestInversePresentation_RejectsFixedPoint(t *testing.T) {
	t.Parallel()

	ip := presentation.NewInverse(
		[]letters.Letter{0, 1},
		presentation.WithAlphabetSize(2),
	)
	require.ErrorIs(t, ip.Validate(), presentation.ErrInvolutionFixedPoint)
}

func TestInversePresentation_RejectsNonSelfInverse(t *testing.T) {
	t.Parallel()

	// 0 -> 1, 1 -> 2, 2 -> 0: not an involution (ι∘ι != id).
	ip := presentation.NewInverse(
		[]letters.Letter{1, 2, 0},
		presentation.WithAlphabetSize(3),
	)
	require.ErrorIs(t, ip.Validate(), presentation.ErrInvolutionNotSelfInverse)
}
