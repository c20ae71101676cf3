package genmatrix

import (
	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
	"github.com/katalvlaran/homology/reps"
)

// Triangle returns the boundary matrix of a filled triangle: 3 vertices,
// 3 edges, 1 face. 7 columns, indices 0-2 vertices, 3-5 edges, 6 the face.
func Triangle() boundary.Matrix {
	return build(
		[]int{0, 0, 0, 1, 1, 1, 2},
		[][]column.Index{
			{}, {}, {},
			{0, 1}, {1, 2}, {0, 2},
			{3, 4, 5},
		},
	)
}

// TwoPoints returns the boundary matrix of two disjoint points: 2 columns,
// both dimension 0, both empty. Every class is essential.
func TwoPoints() boundary.Matrix {
	return build([]int{0, 0}, [][]column.Index{{}, {}})
}

// Edge returns the boundary matrix of a single edge joining two points: 2
// vertices and 1 edge, 3 columns total.
func Edge() boundary.Matrix {
	return build(
		[]int{0, 0, 1},
		[][]column.Index{{}, {}, {0, 1}},
	)
}

// FilledTetrahedron returns the boundary matrix of a solid tetrahedron: 4
// vertices, 6 edges, 4 triangular faces, 1 solid, 15 columns total.
func FilledTetrahedron() boundary.Matrix {
	return build(
		[]int{
			0, 0, 0, 0, // vertices 0-3
			1, 1, 1, 1, 1, 1, // edges 4-9: (0,1)(0,2)(0,3)(1,2)(1,3)(2,3)
			2, 2, 2, 2, // triangles 10-13: (0,1,2)(0,1,3)(0,2,3)(1,2,3)
			3, // tetrahedron 14
		},
		[][]column.Index{
			{}, {}, {}, {},
			{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
			{4, 5, 7}, {4, 6, 8}, {5, 6, 9}, {7, 8, 9},
			{10, 11, 12, 13},
		},
	)
}

func build(dims []int, cols [][]column.Index) boundary.Matrix {
	m := reps.NewVectorVector(len(dims))
	for i, d := range dims {
		m.SetDim(i, d)
		m.SetCol(i, column.Column(cols[i]))
	}
	return m
}
