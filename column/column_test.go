package column_test

import (
	"testing"

	"github.com/katalvlaran/homology/column"
	"github.com/stretchr/testify/require"
)

func TestLow(t *testing.T) {
	require.Equal(t, column.NoIndex, column.Column{}.Low())
	require.Equal(t, column.Index(5), column.Column{1, 3, 5}.Low())
}

func TestAdd(t *testing.T) {
	a := column.Column{1, 2, 4}
	b := column.Column{2, 3, 4}
	got := column.Add(a, b)
	require.Equal(t, column.Column{1, 3}, got)

	// operands are not mutated
	require.Equal(t, column.Column{1, 2, 4}, a)
	require.Equal(t, column.Column{2, 3, 4}, b)
}

func TestAddSelfCancels(t *testing.T) {
	a := column.Column{1, 2, 3}
	got := column.Add(a, a.Clone())
	require.True(t, got.IsEmpty())
}

func TestValidate(t *testing.T) {
	require.NoError(t, column.Column{1, 2, 3}.Validate())
	require.ErrorIs(t, column.Column{2, 1}.Validate(), column.ErrNotIncreasing)
	require.ErrorIs(t, column.Column{1, 1}.Validate(), column.ErrNotIncreasing)
}

func TestCloneIndependent(t *testing.T) {
	a := column.Column{1, 2, 3}
	b := a.Clone()
	b[0] = 99
	require.Equal(t, column.Index(1), a[0])
}
