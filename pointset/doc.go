// Package pointset defines the shared data model of pointgo.
//
// A PointSet is an immutable, indexed sequence of 3D points. Point i is
// referenced by the integer i everywhere in the library: samplers return a
// Selection of indices, neighborhood queries return a NeighborList of
// indices paired with their Euclidean distances.
//
// Every precondition violation in the library is reported as an error that
// satisfies errors.Is(err, ErrInvalidArgument). The concrete type is
// *ArgumentError, which names the operation and the offending argument.
package pointset
