package stephen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordproblem/stephen/letters"
	"github.com/wordproblem/stephen/presentation"
	"github.com/wordproblem/stephen/stephen"
	"github.com/wordproblem/stephen/wgraph"
)

func mustRun(t *testing.T, s *stephen.Stephen) {
	t.Helper()
	require.NoError(t, s.Run(context.Background()))
}

// --- Boundary behaviours (spec.md §8) ---

func TestBoundary_EmptyAlphabetEmptyWord(t *testing.T) {
	t.Parallel()

	p := presentation.New(presentation.WithEmptyWord())
	s, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, s.SetWord(letters.Word{}))
	mustRun(t, s)

	accept, err := s.AcceptState()
	require.NoError(t, err)
	require.EqualValues(t, 0, accept)
	require.Equal(t, 1, s.Graph().NumberOfNodes())
}

func TestBoundary_FreeMonoidPath(t *testing.T) {
	t.Parallel()

	p := presentation.FreeMonoid(1)
	s, err := stephen.Init(p)
	require.NoError(t, err)
	w := letters.Word{0, 0, 0, 0}
	require.NoError(t, s.SetWord(w))
	mustRun(t, s)

	accept, err := s.AcceptState()
	require.NoError(t, err)
	require.EqualValues(t, len(w), accept)
	require.Equal(t, len(w)+1, s.Graph().NumberOfNodes())
}

func TestBoundary_IdempotentRelationCollapses(t *testing.T) {
	t.Parallel()

	p := presentation.New(presentation.WithAlphabetSize(1))
	require.NoError(t, p.AddRuleChecked(letters.Word{0, 0}, letters.Word{0}))
	s, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, s.SetWord(letters.Word{0, 0, 0}))
	mustRun(t, s)

	require.Equal(t, 2, s.Graph().NumberOfNodes())
	accept, err := s.AcceptState()
	require.NoError(t, err)
	require.EqualValues(t, 1, accept)

	for k := 1; k <= 5; k++ {
		w := make(letters.Word, k)
		ok, err := stephen.Accepts(s, w)
		require.NoError(t, err)
		require.Truef(t, ok, "accepts(0^%d) should hold", k)
	}
}

func TestBoundary_Commutation(t *testing.T) {
	t.Parallel()

	p := presentation.Commutation()
	s, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, s.SetWord(letters.Word{0, 1, 0, 1}))
	mustRun(t, s)

	for _, w := range []letters.Word{{0, 1, 0, 1}, {1, 0, 1, 0}, {0, 0, 1, 1}, {1, 1, 0, 0}} {
		ok, err := stephen.Accepts(s, w)
		require.NoError(t, err)
		require.Truef(t, ok, "accepts(%v) should hold under commutation", w)
	}
}

// TestBoundary_InverseCollapse exercises the "a then its inverse returns to
// origin" boundary behaviour: the presentation states a·ι(a) = ε explicitly
// (the same way every other collapse in this suite is driven by an
// ordinary rule); the inverse-presentation machinery's own contribution is
// the involution consistency check running underneath without firing a
// false positive.
func TestBoundary_InverseCollapse(t *testing.T) {
	t.Parallel()

	p := presentation.NewInverse([]letters.Letter{1, 0},
		presentation.WithAlphabetSize(2), presentation.WithEmptyWord())
	require.NoError(t, p.AddRuleChecked(letters.Word{0, 1}, letters.Word{}))
	require.NoError(t, p.AddRuleChecked(letters.Word{1, 0}, letters.Word{}))
	s, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, s.SetWord(letters.Word{0, 1}))
	mustRun(t, s)

	accept, err := s.AcceptState()
	require.NoError(t, err)
	require.EqualValues(t, 0, accept)
}

// --- End-to-end scenarios (spec.md §8) ---

func TestE2E_CommutativeBand(t *testing.T) {
	t.Parallel()

	p := presentation.New(presentation.WithAlphabetSize(2))
	require.NoError(t, p.AddRuleChecked(letters.Word{0, 0}, letters.Word{0}))
	require.NoError(t, p.AddRuleChecked(letters.Word{1, 1}, letters.Word{1}))
	require.NoError(t, p.AddRuleChecked(letters.Word{0, 1}, letters.Word{1, 0}))
	s, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, s.SetWord(letters.Word{0, 1, 0, 1}))
	mustRun(t, s)

	ok, err := stephen.Accepts(s, letters.Word{1, 0})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = stephen.Accepts(s, letters.Word{1, 0, 1, 0})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = stephen.Accepts(s, letters.Word{0, 0, 0})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestE2E_FreeSemigroupNoRules(t *testing.T) {
	t.Parallel()

	p := presentation.FreeMonoid(2)
	s, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, s.SetWord(letters.Word{0, 1, 1, 0}))
	mustRun(t, s)

	require.Equal(t, 5, s.Graph().NumberOfNodes())

	ok, err := stephen.Accepts(s, letters.Word{0, 1, 1, 0})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = stephen.Accepts(s, letters.Word{0, 1})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = stephen.IsLeftFactor(s, letters.Word{0, 1})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestE2E_MergeStress(t *testing.T) {
	t.Parallel()

	p := presentation.New(presentation.WithAlphabetSize(2))
	require.NoError(t, p.AddRuleChecked(letters.Word{0}, letters.Word{1}))
	s, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, s.SetWord(letters.Word{0, 1, 0}))
	mustRun(t, s)

	require.Equal(t, 1, s.Graph().NumberOfNodes())
	accept, err := s.AcceptState()
	require.NoError(t, err)
	require.EqualValues(t, 0, accept)
}

// TestE2E_Cancellation exercises spec.md §8's cancellation scenario: a
// context cancelled before the relation-closure loop even starts leaves
// Run returning promptly with finished == false (state Paused, queues
// preserved), and a subsequent Run with a fresh context resumes from
// exactly that point and converges.
func TestE2E_Cancellation(t *testing.T) {
	t.Parallel()

	p := presentation.Commutation()
	s, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, s.SetWord(letters.Word{0, 1, 0, 1}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Run(ctx))

	_, err = s.AcceptState()
	require.ErrorIs(t, err, stephen.ErrNotFinished)

	require.NoError(t, s.Run(context.Background()))
	_, err = s.AcceptState()
	require.NoError(t, err)

	ok, err := stephen.Accepts(s, letters.Word{1, 0, 1, 0})
	require.NoError(t, err)
	require.True(t, ok)
}

// --- Algebraic laws (spec.md §8) ---

func TestAlgebraic_RunIsIdempotentOnceFinished(t *testing.T) {
	t.Parallel()

	p := presentation.FreeMonoid(1)
	s, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, s.SetWord(letters.Word{0, 0}))
	mustRun(t, s)

	before, err := s.AcceptState()
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))
	after, err := s.AcceptState()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestAlgebraic_AcceptsIsSymmetric(t *testing.T) {
	t.Parallel()

	p := presentation.Commutation()
	u, v := letters.Word{0, 1}, letters.Word{1, 0}

	su, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, su.SetWord(u))
	mustRun(t, su)

	sv, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, sv.SetWord(v))
	mustRun(t, sv)

	uAcceptsV, err := stephen.Accepts(su, v)
	require.NoError(t, err)
	vAcceptsU, err := stephen.Accepts(sv, u)
	require.NoError(t, err)
	require.Equal(t, uAcceptsV, vAcceptsU)
}

func TestAlgebraic_LeftFactorClosure(t *testing.T) {
	t.Parallel()

	p := presentation.FreeMonoid(2)
	s, err := stephen.Init(p)
	require.NoError(t, err)
	w := letters.Word{0, 1, 0}
	require.NoError(t, s.SetWord(w))
	mustRun(t, s)

	ok, err := stephen.Accepts(s, w)
	require.NoError(t, err)
	require.True(t, ok)

	leftFactor, err := stephen.IsLeftFactor(s, letters.Word{0, 1})
	require.NoError(t, err)
	require.True(t, leftFactor)
}

func TestAlgebraic_Reflexivity(t *testing.T) {
	t.Parallel()

	p := presentation.IdempotentBand()
	s, err := stephen.Init(p)
	require.NoError(t, err)
	w := letters.Word{0, 0, 0}
	require.NoError(t, s.SetWord(w))
	mustRun(t, s)

	ok, err := stephen.Accepts(s, w)
	require.NoError(t, err)
	require.True(t, ok)
}

// --- Error handling (spec.md §7) ---

func TestErrors_WordNotInAlphabet(t *testing.T) {
	t.Parallel()

	p := presentation.FreeMonoid(1)
	s, err := stephen.Init(p)
	require.NoError(t, err)
	err = s.SetWord(letters.Word{5})
	require.ErrorIs(t, err, stephen.ErrLetterOutOfRange)
}

func TestErrors_UninitialisedQuery(t *testing.T) {
	t.Parallel()

	p := presentation.FreeMonoid(1)
	s, err := stephen.Init(p)
	require.NoError(t, err)
	_, err = s.AcceptState()
	require.ErrorIs(t, err, stephen.ErrUninitialised)
}

func TestErrors_RunBeforeSetWord(t *testing.T) {
	t.Parallel()

	p := presentation.FreeMonoid(1)
	s, err := stephen.Init(p)
	require.NoError(t, err)
	err = s.Run(context.Background())
	require.ErrorIs(t, err, stephen.ErrUninitialised)
}

func TestErrors_InvalidPresentationRejectedAtInit(t *testing.T) {
	t.Parallel()

	p := presentation.NewInverse([]letters.Letter{0, 1}, presentation.WithAlphabetSize(2))
	_, err := stephen.Init(p)
	require.Error(t, err)
}

// --- Options ---

func TestStandardiseOnFinish_PreservesCorrectness(t *testing.T) {
	t.Parallel()

	p := presentation.CyclicMonoid(4)
	// standardisation runs by default; no option needed.
	s, err := stephen.Init(p)
	require.NoError(t, err)
	require.NoError(t, s.SetWord(letters.Word{0, 0, 0, 0, 0, 0}))
	mustRun(t, s)

	require.NoError(t, s.Graph().CheckInvariants(wgraph.Node(s.Graph().NumberOfNodes())))

	ok, err := stephen.Accepts(s, letters.Word{0, 0})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = stephen.Accepts(s, letters.Word{0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestStandardiseDisabled_PreservesCorrectness(t *testing.T) {
	t.Parallel()

	p := presentation.CyclicMonoid(4)
	s, err := stephen.Init(p, stephen.WithStandardiseDisabled())
	require.NoError(t, err)
	require.NoError(t, s.SetWord(letters.Word{0, 0, 0, 0, 0, 0}))
	mustRun(t, s)

	require.NoError(t, s.Graph().CheckInvariants(wgraph.Node(s.Graph().NumberOfNodes())))

	ok, err := stephen.Accepts(s, letters.Word{0, 0})
	require.NoError(t, err)
	require.True(t, ok)
}
