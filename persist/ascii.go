package persist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
	"github.com/katalvlaran/homology/reps"
)

// WriteMatrixASCII writes m as one line per column: its dimension, then
// its entries in increasing order, space-separated. No header line — the
// column count is implicit in the number of lines, matching
// original_source's save_ascii format.
func WriteMatrixASCII(w io.Writer, m boundary.Matrix) error {
	bw := bufio.NewWriter(w)
	n := m.NumCols()
	for i := 0; i < n; i++ {
		col := m.Col(i)
		var b strings.Builder
		b.WriteString(strconv.Itoa(m.Dim(i)))
		for _, idx := range col {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatInt(idx, 10))
		}
		if _, err := fmt.Fprintln(bw, b.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadMatrixASCII reads the format WriteMatrixASCII produces into a fresh
// reps.VectorVector. The column count is not stored; it is the number of
// lines read before EOF.
func ReadMatrixASCII(r io.Reader) (boundary.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)

	var dims []int
	var cols []column.Column
	for i := 0; sc.Scan(); i++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			return nil, fmt.Errorf("persist: column %d: empty line: %w", i, ErrMalformed)
		}
		dim, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("persist: column %d: dimension %q: %w", i, fields[0], ErrMalformed)
		}
		col := make(column.Column, 0, len(fields)-1)
		for _, f := range fields[1:] {
			idx, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("persist: column %d: entry %q: %w", i, f, ErrMalformed)
			}
			col = append(col, column.Index(idx))
		}
		if err := col.Validate(); err != nil {
			return nil, fmt.Errorf("persist: column %d: %w", i, err)
		}
		dims = append(dims, dim)
		cols = append(cols, col)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	m := reps.NewVectorVector(len(dims))
	for i, dim := range dims {
		m.SetDim(i, dim)
		m.SetCol(i, cols[i])
	}
	return m, nil
}
