// Package genmatrix builds boundary.Matrix fixtures: the small named
// complexes used throughout this module's tests (a filled triangle, two
// disjoint points, an edge joining two points, a filled tetrahedron) and
// Random, a parameterized generator for the larger matrices exercised by
// reducer-agreement and parallel-vs-sequential tests. It never constructs
// a boundary matrix from a simplicial complex or point cloud description —
// complex construction proper is out of this module's scope — only the
// resulting matrices directly.
package genmatrix
