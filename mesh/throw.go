package mesh

import "github.com/pkg/errors"

// Threading errors up and down the topology edits would add a ton of
// complexity: a single constraint insertion walks, splits, removes, and
// re-fills through half a dozen layers. Instead, contract violations panic
// with a MeshError, and the public API boundary recovers and converts to an
// ordinary error.

type MeshError error

// Sentinel causes for MeshErrors. Callers can classify a returned error with
// errors.Cause.
var (
	// ErrExhausted: a walk or search visited more halfedges than the mesh
	// contains. The topology is cyclic garbage or the input was non-simple.
	ErrExhausted = errors.New("exhausted halfedges or points")
	// ErrMissing: an operation referenced a point or halfedge that is not in
	// the mesh.
	ErrMissing = errors.New("missing halfedge or point")
	// ErrIdentical: two arguments that must be distinct are the same object.
	ErrIdentical = errors.New("identical halfedges or points")
	// ErrCoincident: two points that must be distinct lie within epsilon.
	ErrCoincident = errors.New("coincident points")
	// ErrType: an edge of the wrong type, e.g. flipping a boundary edge.
	ErrType = errors.New("incorrect edge type")
	// ErrPolygon: a face cycle that is not a legal polygonal region.
	ErrPolygon = errors.New("illegal polygonal region")
	// ErrHalfEdge: a halfedge pair argument that is not actually linked.
	ErrHalfEdge = errors.New("mismatched halfedge")
	// ErrDegenerate: degenerate geometry, e.g. intersecting parallel
	// overlapping segments.
	ErrDegenerate = errors.New("degenerate geometry")
	// ErrOutOfBounds: a query or constraint endpoint outside the boundary.
	ErrOutOfBounds = errors.New("outside the mesh boundary")
)

// Panic with a MeshError built from a fresh message.
func fatalf(format string, args ...interface{}) {
	panic(MeshError(errors.Errorf(format, args...)))
}

// Panic with a MeshError wrapping a sentinel cause.
func fatalc(cause error, format string, args ...interface{}) {
	panic(MeshError(errors.Wrapf(cause, format, args...)))
}

// HandlePanicRecover converts a recovered MeshError into an ordinary error.
// Any other panic value is re-raised. Use as:
//
//	defer func() { err = mesh.HandlePanicRecover(recover()) }()
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if meshError, ok := r.(MeshError); ok {
			return meshError
		}
		panic(r)
	}
	return nil
}
