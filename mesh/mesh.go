// Package mesh implements an interactive 2D constrained Delaunay
// triangulation over points and halfedges. Point insertion uses Lawson's
// algorithm; constraint insertion and removal, vertex removal, and vertex
// relocation are supported.
//
// This is the unguarded API: contract violations (missing points, constraints
// crossing the boundary, exhausted walks) panic with a MeshError. The root
// cdtmesh package wraps every entry point with a recover boundary and returns
// ordinary errors; use it unless you are prepared to recover yourself.
//
// For the algorithm, see the "Interactive Constrained Delaunay Triangulation"
// section of Howison, "CAD Tools for Creating Space-filling 3D Escher Tiles",
// U.C. Berkeley Tech Report EECS-2009-56.
package mesh

import "math"

// Triangle is one triangular face, wound counter-clockwise.
type Triangle struct {
	A, B, C *Point
}

// Mesh is a constrained Delaunay triangulation. It exclusively owns its
// points and halfedges; callers may hold points they inserted (to constrain
// or remove them later) but must not touch topology fields. A Mesh is not
// safe for concurrent mutation.
type Mesh struct {
	// Epsilon is the squared coincidence tolerance used by all predicates:
	// two points within sqrt(Epsilon) of each other are the same point.
	Epsilon float64

	// Single-level floating point filter bounds (Shewchuk). Computed at
	// construction; see predicates.go for why they are currently inert.
	orientErrorBound   float64
	incircleErrorBound float64

	points        []*Point
	pointIndex    map[*Point]int
	halfEdges     []*HalfEdge
	halfEdgeIndex map[*HalfEdge]int
	nBoundary     int

	// Halfedges awaiting a Delaunay test.
	delaunayQueue []*HalfEdge

	// Far endpoints of constraints removed during a vertex relocation,
	// replayed by RestoreConstraints.
	removedConstraints  []*Point
	removeConstraintPeg *Point

	name string
}

// New returns an empty mesh with the given squared coincidence tolerance.
// Call Init before anything else.
func New(epsilon float64) *Mesh {
	e := machineEpsilon()
	return &Mesh{
		Epsilon:            epsilon,
		orientErrorBound:   (3.0 + 16.0*e) * e,
		incircleErrorBound: (10.0 + 96.0*e) * e,
		pointIndex:         make(map[*Point]int),
		halfEdgeIndex:      make(map[*HalfEdge]int),
		name:               "(unnamed mesh)",
	}
}

// SetName names the mesh in dumps and error messages.
func (m *Mesh) SetName(s string) { m.name = s }

// Size returns the number of live points.
func (m *Mesh) Size() int { return len(m.points) }

// BoundarySize returns the number of boundary points.
func (m *Mesh) BoundarySize() int { return m.nBoundary }

func (m *Mesh) clear() {
	m.points = nil
	m.pointIndex = make(map[*Point]int)
	m.halfEdges = nil
	m.halfEdgeIndex = make(map[*HalfEdge]int)
	m.nBoundary = 0
	m.delaunayQueue = nil
	m.removedConstraints = nil
	m.removeConstraintPeg = nil
}

// Init builds the initial triangulation from a boundary polygon given in
// clockwise order. The polygon must be simple; at least 3 points are
// required. Each boundary point gets a sibling-less boundary halfedge, the
// interior is ear-clipped, and the result is made Delaunay.
func (m *Mesh) Init(pts []*Point) {
	s := len(pts)
	if s < 3 {
		fatalf("initialization requires at least 3 points, got %d", s)
	}
	m.clear()
	boundary := make([]*HalfEdge, 0, s)
	for _, p := range pts {
		p.Type = PointBoundary
		he := &HalfEdge{Origin: p, Type: EdgeBoundary}
		p.He = he
		m.addPoint(p)
		m.registerHalfEdge(he)
		boundary = append(boundary, he)
	}
	// The interior face cycle runs counter-clockwise, which is opposite to
	// the clockwise input order.
	for i := range boundary {
		boundary[i].Next = boundary[(s+i-1)%s]
	}
	m.nBoundary = s
	polygon := make([]*HalfEdge, s)
	for i := range boundary {
		polygon[i] = boundary[s-1-i]
	}
	m.fillGeneralPolygon(polygon)
	m.UpdateDelaunay()
}

// AddInteriorPoint inserts p into the triangulation. If p lies within
// epsilon of an existing point, that point's user count is bumped and it is
// returned instead; otherwise p is returned. The caller must ensure p lies
// inside the boundary.
func (m *Mesh) AddInteriorPoint(p *Point) *Point {
	// Find the closest existing point, deduplicating on the way.
	min := math.MaxFloat64
	var pNearest *Point
	for _, pTest := range m.points {
		dist := p.distanceSquared(pTest)
		if dist < m.Epsilon {
			pTest.Users++
			return pTest
		}
		if dist < min {
			min = dist
			pNearest = pTest
		}
	}
	if pNearest == nil {
		fatalc(ErrMissing, "%s: adding interior point to empty mesh", m.name)
	}
	// Walk to the face containing p, starting at the nearest point.
	walk := m.findFace(pNearest.He, p)
	m.addPoint(p)
	if walk.Status == WalkCoincident {
		m.splitEdge(p, walk.He)
	} else {
		m.splitFace(p, walk.He)
	}
	m.UpdateDelaunay()
	return p
}

// AddBoundaryPoint inserts p onto the boundary halfedge he0, splitting it.
// p must lie within the epsilon tube of he0; if it is coincident with either
// endpoint, the existing point is returned unchanged.
func (m *Mesh) AddBoundaryPoint(p *Point, he0 *HalfEdge) *Point {
	if !m.containsHalfEdge(he0) {
		fatalc(ErrMissing, "%s: AddBoundaryPoint on unknown halfedge", m.name)
	}
	if !m.between(he0.Origin, he0.Next.Origin, p) {
		fatalf("%s: boundary point does not lie on the boundary edge", m.name)
	}
	if m.coincident(p, he0.Origin) {
		return he0.Origin
	}
	if m.coincident(p, he0.Next.Origin) {
		return he0.Next.Origin
	}
	p.Type = PointBoundary
	m.addPoint(p)
	he2 := he0.Next
	// Split the existing boundary edge at p.
	he1 := &HalfEdge{Origin: p, Type: EdgeBoundary}
	m.registerHalfEdge(he1)
	p.He = he1
	he0.Next = he1
	he1.Next = he2
	m.fillQuadrilateral(he0)
	m.UpdateDelaunay()
	m.nBoundary++
	return p
}

// UpdateInteriorPoint re-triangulates around p after the caller has changed
// its coordinates: constraints touching p are recorded, p is removed and
// re-inserted at its new position, and the constraints are replayed. Returns
// the live point, which differs from p only if the new position deduplicated
// onto an existing point.
func (m *Mesh) UpdateInteriorPoint(p *Point) *Point {
	if !m.Contains(p) {
		fatalc(ErrMissing, "%s: UpdateInteriorPoint of unknown point", m.name)
	}
	m.InitRemoveConstraints(p)
	m.RemoveInteriorPoint(p)
	p = m.AddInteriorPoint(p)
	p.Type = PointInterior
	m.RestoreConstraints(p)
	m.UpdateDelaunay()
	return p
}

// UpdateBoundaryPointOutside re-triangulates around the boundary point p
// after the caller has moved it outward (away from the interior): the
// interior star of p is cleared, the resulting polygon is re-filled, and
// constraints touching p are replayed.
func (m *Mesh) UpdateBoundaryPointOutside(p *Point) {
	if !m.Contains(p) {
		fatalc(ErrMissing, "%s: UpdateBoundaryPointOutside of unknown point", m.name)
	}
	m.InitRemoveConstraints(p)
	he := p.He.Next.Next
	if he.Next != p.He {
		fatalc(ErrPolygon, "%s: boundary point face is not a triangle", m.name)
	}
	for i := 0; ; i++ {
		if i > len(m.halfEdges) {
			fatalc(ErrExhausted, "%s: clearing star of boundary point", m.name)
		}
		if he.IsType(EdgeBoundary) {
			break
		}
		m.removeEdge(he.Sibling)
		// walk around p counter-clockwise
		he = he.Sibling.Next.Next
	}
	m.fillGeneralPolygon(m.constructPolygon(p.He))
	m.RestoreConstraints(p)
	m.UpdateDelaunay()
}

// Translate rigidly moves every point in the mesh.
func (m *Mesh) Translate(x, y float64) {
	for _, p := range m.points {
		p.X += x
		p.Y += y
	}
}

// Points returns the live points. The slice is a copy; the points are not.
func (m *Mesh) Points() []*Point {
	pts := make([]*Point, len(m.points))
	copy(pts, m.points)
	return pts
}

// PointCoordinates3D returns the application-supplied 3D payload of every
// live point.
func (m *Mesh) PointCoordinates3D() []Coords3D {
	coords := make([]Coords3D, len(m.points))
	for i, p := range m.points {
		coords[i] = p.Coords3D
	}
	return coords
}

// Faces enumerates every triangular face exactly once, wound
// counter-clockwise.
func (m *Mesh) Faces() []Triangle {
	m.clearFlags(FlagRead)
	faces := make([]Triangle, 0, len(m.halfEdges)/3)
	for _, he0 := range m.halfEdges {
		if he0.isFlagged(FlagRead) {
			continue
		}
		he1 := he0.Next
		he2 := he1.Next
		faces = append(faces, Triangle{he0.Origin, he1.Origin, he2.Origin})
		he0.flag(FlagRead)
		he1.flag(FlagRead)
		he2.flag(FlagRead)
	}
	return faces
}

// FaceCoordinates returns the 2D coordinates of every face as flattened CCW
// triples.
func (m *Mesh) FaceCoordinates() [][2]float64 {
	faces := m.Faces()
	coords := make([][2]float64, 0, 3*len(faces))
	for _, f := range faces {
		coords = append(coords,
			[2]float64{f.A.X, f.A.Y},
			[2]float64{f.B.X, f.B.Y},
			[2]float64{f.C.X, f.C.Y})
	}
	return coords
}

// FaceCoordinates3D returns the 3D payloads of every face as flattened
// CCW triples.
func (m *Mesh) FaceCoordinates3D() []Coords3D {
	faces := m.Faces()
	coords := make([]Coords3D, 0, 3*len(faces))
	for _, f := range faces {
		coords = append(coords, f.A.Coords3D, f.B.Coords3D, f.C.Coords3D)
	}
	return coords
}

// Edges enumerates every undirected edge exactly once, tagged with its type.
func (m *Mesh) Edges() []Edge {
	m.clearFlags(FlagRead)
	edges := make([]Edge, 0, len(m.halfEdges)/2)
	for _, he := range m.halfEdges {
		if he.isFlagged(FlagRead) {
			continue
		}
		edges = append(edges, Edge{P1: he.Origin, P2: he.Next.Origin, Type: he.Type})
		he.flagEdge(FlagRead)
	}
	return edges
}
