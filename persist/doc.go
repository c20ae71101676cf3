// Package persist implements the ASCII and binary formats of §6: reading
// and writing a boundary.Matrix and a pairs.Pairs to a stream. Both
// formats are simplex-index based, matching the in-memory model exactly;
// neither format encodes geometric or simplicial-complex information,
// since constructing a boundary matrix from a complex or point cloud is
// out of this module's scope.
//
// No suitable third-party codec was found in the example corpus for this:
// google.golang.org/protobuf appears in one example's dependency graph,
// but using it would mean generating bindings from a .proto schema via
// protoc, a code-generation step this exercise cannot run. The formats
// here are accordingly built on bufio and encoding/binary.
package persist
