package persist_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/genmatrix"
	"github.com/katalvlaran/homology/pairs"
	"github.com/katalvlaran/homology/persist"
	"github.com/katalvlaran/homology/reduce"
	"github.com/stretchr/testify/require"
)

func TestMatrixASCIIRoundTrip(t *testing.T) {
	m := genmatrix.FilledTetrahedron()
	var buf bytes.Buffer
	require.NoError(t, persist.WriteMatrixASCII(&buf, m))

	got, err := persist.ReadMatrixASCII(&buf)
	require.NoError(t, err)
	require.True(t, boundary.Equal(m, got))
}

func TestMatrixBinaryRoundTrip(t *testing.T) {
	m := genmatrix.Triangle()
	var buf bytes.Buffer
	require.NoError(t, persist.WriteMatrixBinary(&buf, m))

	got, err := persist.ReadMatrixBinary(&buf)
	require.NoError(t, err)
	require.True(t, boundary.Equal(m, got))
}

func TestMatrixBinaryRejectsBadMagic(t *testing.T) {
	_, err := persist.ReadMatrixBinary(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	require.ErrorIs(t, err, persist.ErrMalformed)
}

func TestPairsASCIIRoundTrip(t *testing.T) {
	m := genmatrix.FilledTetrahedron()
	require.NoError(t, reduce.Standard(m))
	p := pairs.Extract(m)

	var buf bytes.Buffer
	require.NoError(t, persist.WritePairsASCII(&buf, p))

	got, err := persist.ReadPairsASCII(&buf)
	require.NoError(t, err)
	require.True(t, pairs.Equal(p, got))
}

func TestPairsBinaryRoundTrip(t *testing.T) {
	m := genmatrix.FilledTetrahedron()
	require.NoError(t, reduce.Standard(m))
	p := pairs.Extract(m)

	var buf bytes.Buffer
	require.NoError(t, persist.WritePairsBinary(&buf, p))

	got, err := persist.ReadPairsBinary(&buf)
	require.NoError(t, err)
	require.True(t, pairs.Equal(p, got))
}
