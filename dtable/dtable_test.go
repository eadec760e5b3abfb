package dtable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordproblem/stephen/dtable"
)

func TestNew_InitialisesToUndefined(t *testing.T) {
	t.Parallel()

	tbl, err := dtable.New(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Rows())
	require.Equal(t, 3, tbl.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t, dtable.Undefined, tbl.Get(r, c))
		}
	}
}

func TestNew_RejectsNegativeDimensions(t *testing.T) {
	t.Parallel()

	_, err := dtable.New(-1, 3)
	require.ErrorIs(t, err, dtable.ErrInvalidDimensions)
}

func TestSetGet_RoundTrips(t *testing.T) {
	t.Parallel()

	tbl, err := dtable.New(3, 3)
	require.NoError(t, err)
	tbl.Set(1, 2, 42)
	require.EqualValues(t, 42, tbl.Get(1, 2))
	require.Equal(t, dtable.Undefined, tbl.Get(0, 0))
}

func TestTryGet_OutOfBounds(t *testing.T) {
	t.Parallel()

	tbl, err := dtable.New(1, 1)
	require.NoError(t, err)
	_, err = tbl.TryGet(5, 0)
	require.ErrorIs(t, err, dtable.ErrIndexOutOfBounds)
}

func TestAddRows_PreservesExistingCellsAndInitialisesNewToUndefined(t *testing.T) {
	t.Parallel()

	tbl, err := dtable.New(1, 2)
	require.NoError(t, err)
	tbl.Set(0, 0, 7)
	tbl.AddRows(2)
	require.Equal(t, 3, tbl.Rows())
	require.EqualValues(t, 7, tbl.Get(0, 0))
	require.Equal(t, dtable.Undefined, tbl.Get(1, 0))
	require.Equal(t, dtable.Undefined, tbl.Get(2, 1))
}

func TestAddCols_PreservesRowLayout(t *testing.T) {
	t.Parallel()

	tbl, err := dtable.New(2, 1)
	require.NoError(t, err)
	tbl.Set(0, 0, 1)
	tbl.Set(1, 0, 2)
	tbl.AddCols(2)
	require.Equal(t, 3, tbl.Cols())
	require.EqualValues(t, 1, tbl.Get(0, 0))
	require.EqualValues(t, 2, tbl.Get(1, 0))
	require.Equal(t, dtable.Undefined, tbl.Get(0, 1))
	require.Equal(t, dtable.Undefined, tbl.Get(1, 2))
}

func TestShrinkRowsTo_DropsTrailingRows(t *testing.T) {
	t.Parallel()

	tbl, err := dtable.New(4, 1)
	require.NoError(t, err)
	tbl.Set(3, 0, 9)
	tbl.ShrinkRowsTo(2)
	require.Equal(t, 2, tbl.Rows())
}

func TestSwapRows_ExchangesContents(t *testing.T) {
	t.Parallel()

	tbl, err := dtable.New(2, 2)
	require.NoError(t, err)
	tbl.Set(0, 0, 1)
	tbl.Set(0, 1, 2)
	tbl.Set(1, 0, 3)
	tbl.Set(1, 1, 4)
	tbl.SwapRows(0, 1)
	require.EqualValues(t, 3, tbl.Get(0, 0))
	require.EqualValues(t, 4, tbl.Get(0, 1))
	require.EqualValues(t, 1, tbl.Get(1, 0))
	require.EqualValues(t, 2, tbl.Get(1, 1))
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	tbl, err := dtable.New(1, 1)
	require.NoError(t, err)
	tbl.Set(0, 0, 5)
	clone := tbl.Clone()
	clone.Set(0, 0, 6)
	require.EqualValues(t, 5, tbl.Get(0, 0))
	require.EqualValues(t, 6, clone.Get(0, 0))
}
