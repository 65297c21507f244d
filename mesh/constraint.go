package mesh

import "log"

// Constraint insertion. A constraint is an edge the triangulation must
// contain, pinned against Delaunay flipping. Inserting one clears every
// auxiliary edge crossing the segment, splits any constraint it crosses at
// the intersection point, then stitches the two edge-visible polygons left
// behind.

// AddConstraint constrains the segment from pStart to pEnd, both of which
// must already be vertices. Returns the halfedge of the first constrained
// span out of pStart, or nil if the span lies on the boundary (which is
// already unflippable). Crossing constraints are split at the intersection,
// introducing a new vertex.
func (m *Mesh) AddConstraint(pStart, pEnd *Point) *HalfEdge {
	if !m.Contains(pStart) || !m.Contains(pEnd) {
		fatalc(ErrMissing, "%s: constraining unknown points", m.name)
	}
	if pStart == pEnd {
		fatalc(ErrIdentical, "%s: constraining a point to itself", m.name)
	}
	if m.coincident(pStart, pEnd) {
		fatalc(ErrCoincident, "%s: constraining coincident points", m.name)
	}
	// find the halfedge at pStart that lies on or below the constraint
	walk := m.startFaceWalk(pStart, pEnd)
	if walk.Status == WalkFailed {
		fatalc(ErrExhausted, "%s: no face at (%g, %g) toward (%g, %g)",
			m.name, pStart.X, pStart.Y, pEnd.X, pEnd.Y)
	}
	// trivial case: the edge already exists
	if walk.Status == WalkCoincident {
		if m.constrainEdge(walk.He) {
			return walk.He
		}
		return nil
	}
	// clear edges that cross the constraint
	heStart := walk.He
	heStartPrev := m.findPrevious(heStart)
	heSearch := heStart.Next
	for i := 0; ; i++ {
		if i > len(m.halfEdges) {
			fatalc(ErrExhausted, "%s: constraint walk (%g, %g) -> (%g, %g)",
				m.name, pStart.X, pStart.Y, pEnd.X, pEnd.Y)
		}
		pSearch0 := heSearch.Origin
		pSearch1 := heSearch.Next.Origin
		if pSearch1 == pEnd {
			break
		}
		if m.coincident(pSearch1, pStart) || m.coincident(pSearch1, pEnd) {
			fatalc(ErrCoincident, "%s: constraint endpoint within epsilon of another vertex", m.name)
		}
		if m.intersect(pStart, pEnd, pSearch0, pSearch1) {
			switch {
			case heSearch.IsType(EdgeBoundary):
				fatalc(ErrOutOfBounds, "%s: constraint crosses the boundary", m.name)
			case heSearch.IsType(EdgeAuxiliary):
				m.removeEdge(heSearch)
				heSearch = heSearch.Sibling
			case heSearch.IsType(EdgeConstraint):
				// split the crossed constraint at the intersection, pin the
				// span walked so far, and restart from the new vertex
				x, y, err := intersection(pStart, pEnd, pSearch0, pSearch1)
				if err != nil {
					fatalc(err, "%s: crossing constraints are collinear", m.name)
				}
				m.splitConstraint(heSearch, x, y)
				m.addConstraintEdge(heStart, heSearch.Next, heStartPrev, heSearch)
				heSearch = heSearch.Sibling
				heStart = heSearch
				heStartPrev = m.findPrevious(heStart)
				pStart = heSearch.Origin
			}
		}
		heSearch = heSearch.Next
	}
	heAdd := m.addConstraintEdge(heStart, heSearch.Next, heStartPrev, heSearch)
	m.UpdateDelaunay()
	return heAdd
}

// addConstraintEdge adds the edge from he1.Origin to he2.Origin, pins it, and
// re-triangulates the polygon on each side.
func (m *Mesh) addConstraintEdge(he1, he2, he1prev, he2prev *HalfEdge) *HalfEdge {
	if he1prev.Next != he1 || he2prev.Next != he2 {
		fatalc(ErrHalfEdge, "%s: constraint edge predecessors are not linked", m.name)
	}
	heAdd := m.addEdge(he1, he2, he1prev, he2prev)
	m.constrainEdge(heAdd)
	m.fillEdgeVisiblePolygon(heAdd)
	m.fillEdgeVisiblePolygon(heAdd.Sibling)
	return heAdd
}

// constrainEdge pins the undirected edge of he. Boundary edges are already
// unflippable; constraining one reports false and changes nothing.
func (m *Mesh) constrainEdge(he *HalfEdge) bool {
	if !m.containsHalfEdge(he) {
		fatalc(ErrMissing, "%s: constraining unknown halfedge", m.name)
	}
	if he.IsType(EdgeBoundary) {
		return false
	}
	he.Constrain()
	he.Sibling.Constrain()
	return true
}

// ConstrainAllEdges pins every interior edge, freezing the current
// triangulation against future Delaunay flips.
func (m *Mesh) ConstrainAllEdges() {
	for _, he := range m.halfEdges {
		if !he.IsType(EdgeBoundary) {
			he.Constrain()
		}
	}
}

// InitRemoveConstraints begins recording constraints incident to p that the
// following removal or relocation destroys. Pair with RestoreConstraints on
// the same point.
func (m *Mesh) InitRemoveConstraints(p *Point) {
	if !m.Contains(p) {
		fatalc(ErrMissing, "%s: recording constraints of unknown point", m.name)
	}
	m.removeConstraintPeg = p
	m.removedConstraints = m.removedConstraints[:0]
}

// RestoreConstraints replays the constraints recorded since
// InitRemoveConstraints, from p to each surviving far endpoint. Failures are
// logged and skipped; a relocation can legitimately make a recorded
// constraint impossible.
func (m *Mesh) RestoreConstraints(p *Point) {
	if !m.Contains(p) {
		fatalc(ErrMissing, "%s: restoring constraints of unknown point", m.name)
	}
	if p != m.removeConstraintPeg {
		fatalf("%s: restoring constraints of a different point than recorded", m.name)
	}
	for _, p0 := range m.removedConstraints {
		if p0 == p || p0.Is(PointDeleted) {
			continue
		}
		if err := m.tryAddConstraint(p, p0); err != nil {
			log.Printf("%s: dropping constraint to (%g, %g): %v", m.name, p0.X, p0.Y, err)
		}
	}
	m.removedConstraints = m.removedConstraints[:0]
	m.removeConstraintPeg = nil
}

func (m *Mesh) tryAddConstraint(pStart, pEnd *Point) (err error) {
	defer func() {
		err = HandlePanicRecover(recover())
	}()
	m.AddConstraint(pStart, pEnd)
	return nil
}
