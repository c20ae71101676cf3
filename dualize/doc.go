// Package dualize implements §4.4's anti-transpose transform: given a
// boundary matrix over N simplices with top dimension D, it produces the
// matrix of the same complex read in reverse filtration order, converting
// homology computations into cohomology computations and back. Dualize is
// an involution (testable property 5) and DualizePairs carries persistence
// pairs computed on a dualized matrix back into the original matrix's
// index space (testable property 6).
package dualize
