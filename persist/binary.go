package persist

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
	"github.com/katalvlaran/homology/reps"
)

// binaryMagic tags the start of the binary matrix format, guarding against
// accidentally reading an unrelated stream.
const binaryMagic uint64 = 0x504849544d415458 // "PHITMATX"

// WriteMatrixBinary writes m in a compact little-endian binary form:
// magic, column count, then per column a dimension, an entry count, and
// the entries themselves, all as int64/uint64.
func WriteMatrixBinary(w io.Writer, m boundary.Matrix) error {
	if err := binary.Write(w, binary.LittleEndian, binaryMagic); err != nil {
		return err
	}
	n := int64(m.NumCols())
	if err := binary.Write(w, binary.LittleEndian, n); err != nil {
		return err
	}
	for i := 0; i < m.NumCols(); i++ {
		col := m.Col(i)
		if err := binary.Write(w, binary.LittleEndian, int64(m.Dim(i))); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int64(len(col))); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, []int64(col)); err != nil {
			return err
		}
	}
	return nil
}

// ReadMatrixBinary reads the format WriteMatrixBinary produces into a
// fresh reps.VectorVector.
func ReadMatrixBinary(r io.Reader) (boundary.Matrix, error) {
	var magic uint64
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, err
	}
	if magic != binaryMagic {
		return nil, fmt.Errorf("persist: bad magic: %w", ErrMalformed)
	}
	var n int64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("persist: column count %d: %w", n, ErrMalformed)
	}

	m := reps.NewVectorVector(int(n))
	for i := int64(0); i < n; i++ {
		var dim, count int64
		if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, fmt.Errorf("persist: column %d: entry count %d: %w", i, count, ErrMalformed)
		}
		col := make(column.Column, count)
		if count > 0 {
			if err := binary.Read(r, binary.LittleEndian, []int64(col)); err != nil {
				return nil, err
			}
		}
		if err := col.Validate(); err != nil {
			return nil, fmt.Errorf("persist: column %d: %w", i, err)
		}
		m.SetDim(int(i), int(dim))
		m.SetCol(int(i), col)
	}
	return m, nil
}
