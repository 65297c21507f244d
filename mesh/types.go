package mesh

// Note that all points and halfedges in the mesh are pointers, and pointer
// identity is meaningful: two vertices are "the same vertex" iff they are the
// same *Point. We never copy a live point, since halfedges hold it as their
// origin, and callers hold it to request constraints or removal later.

// PointType classifies a vertex within the triangulation.
type PointType int

const (
	PointInterior PointType = iota
	PointBoundary
	PointDeleted
	// PointTranslated is an interior point that has been relocated by a
	// caller. It behaves as interior everywhere in the engine.
	PointTranslated
	// PointXsection marks a vertex created by a constraint-constraint
	// crossing. It behaves as boundary for the purpose of keeping a stable
	// incident halfedge.
	PointXsection
)

func (t PointType) String() string {
	switch t {
	case PointInterior:
		return "interior"
	case PointBoundary:
		return "boundary"
	case PointDeleted:
		return "deleted"
	case PointTranslated:
		return "translated"
	case PointXsection:
		return "xsection"
	}
	return "unknown"
}

// EdgeType classifies an undirected edge. Auxiliary edges are the only ones
// the Delaunay maintenance is allowed to flip.
type EdgeType int

const (
	EdgeAuxiliary EdgeType = iota
	EdgeBoundary
	EdgeConstraint
)

func (t EdgeType) String() string {
	switch t {
	case EdgeAuxiliary:
		return "auxiliary"
	case EdgeBoundary:
		return "boundary"
	case EdgeConstraint:
		return "constraint"
	}
	return "unknown"
}

// Transient halfedge marks used by traversal algorithms. Every algorithm that
// sweeps the halfedge set clears its own flag first, so the bits never need
// to be globally reset.
const (
	FlagRead uint8 = 1 << iota
	FlagAlgorithm
	FlagDraw
	FlagContour
)

// Coords3D is an application-supplied payload carried on each vertex. The
// engine never reads it; consumers meshing in 3D attach their coordinates
// here and read them back per face.
type Coords3D struct {
	X, Y, Z float64
}

// Point is a vertex of the triangulation.
type Point struct {
	X, Y float64

	// He is one halfedge whose origin is this point. Boundary points keep a
	// stable boundary-incident halfedge; interior points may have it
	// reassigned by any edit. Nil once the point has been removed.
	He *HalfEdge

	Type     PointType
	Coords3D Coords3D

	// Users counts callers that inserted this (possibly deduplicated) point.
	Users int
}

// Is reports whether the point behaves as the given type. Translated points
// count as interior, and cross-section points count as boundary.
func (p *Point) Is(t PointType) bool {
	if p.Type == t {
		return true
	}
	if t == PointInterior && p.Type == PointTranslated {
		return true
	}
	if t == PointBoundary && p.Type == PointXsection {
		return true
	}
	return false
}

func (p *Point) distanceSquared(q *Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// HalfEdge is one directed side of an undirected edge. The face to its left
// is traversed counter-clockwise by following Next. Boundary halfedges have
// no sibling; all others satisfy he.Sibling.Sibling == he and
// he.Next.Origin == he.Sibling.Origin.
type HalfEdge struct {
	Origin  *Point
	Next    *HalfEdge
	Sibling *HalfEdge

	Type  EdgeType
	flags uint8
}

func (he *HalfEdge) IsType(t EdgeType) bool {
	return he.Type == t
}

// Constrain retags the halfedge as a constraint. Boundary halfedges keep
// their type.
func (he *HalfEdge) Constrain() {
	if he.Type != EdgeBoundary {
		he.Type = EdgeConstraint
	}
}

func (he *HalfEdge) flag(f uint8)           { he.flags |= f }
func (he *HalfEdge) unflag(f uint8)         { he.flags &^= f }
func (he *HalfEdge) isFlagged(f uint8) bool { return he.flags&f != 0 }

// flagEdge marks both directed sides of the undirected edge.
func (he *HalfEdge) flagEdge(f uint8) {
	he.flag(f)
	if he.Sibling != nil {
		he.Sibling.flag(f)
	}
}

// Edge pairs the endpoints of one undirected edge for readback.
type Edge struct {
	P1, P2 *Point
	Type   EdgeType
}

// Adjacent reports whether two edges share an endpoint.
func Adjacent(e1, e2 Edge) bool {
	return e1.P1 == e2.P1 || e1.P1 == e2.P2 || e1.P2 == e2.P1 || e1.P2 == e2.P2
}

// WalkStatus is the outcome of a face walk.
type WalkStatus int

const (
	// WalkClockwise: the query point lies strictly inside the face whose
	// first halfedge is returned.
	WalkClockwise WalkStatus = iota
	// WalkCoincident: the query point lies within epsilon of the returned
	// halfedge or an existing vertex on it.
	WalkCoincident
	// WalkFailed: the locator exhausted its halfedge budget. Indicates a
	// malformed boundary or a query outside the domain.
	WalkFailed
)

// FaceWalk is the transient result of locating a point in the mesh.
type FaceWalk struct {
	He     *HalfEdge
	Status WalkStatus
}
