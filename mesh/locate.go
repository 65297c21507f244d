package mesh

// Point location. Both locators return a FaceWalk: either the face containing
// the query (WalkClockwise, with one of its halfedges) or an existing edge the
// query lies on (WalkCoincident).

// findFace locates the face containing p by walking from heStart: if p is on
// the wrong side of any edge of the current face, cross to the sibling face
// and retry. Faces are marked as they are visited; when the walk re-enters a
// marked face, which happens around concave boundaries, it falls back to
// sweeping the remaining faces in order.
func (m *Mesh) findFace(heStart *HalfEdge, p *Point) FaceWalk {
	var ccw [3]float64

	m.clearFlags(FlagAlgorithm)
	queue := make([]*HalfEdge, 0, len(m.halfEdges)+1)
	queue = append(queue, heStart)
	queue = append(queue, m.halfEdges...)
	he0 := queue[0]
	queue = queue[1:]
	for i := 0; i <= len(m.halfEdges); i++ {
		if he0.isFlagged(FlagAlgorithm) {
			if len(queue) == 0 {
				break
			}
			he0 = queue[0]
			queue = queue[1:]
			continue
		}
		he1 := he0.Next
		he2 := he1.Next
		if he2.Next != he0 {
			fatalc(ErrPolygon, "%s: face walk entered a non-triangular face", m.name)
		}
		he0.flag(FlagAlgorithm)
		he1.flag(FlagAlgorithm)
		he2.flag(FlagAlgorithm)
		ccw[0] = m.orient(he0.Origin, he1.Origin, p)
		if ccw[0] < 0 {
			if he0.Sibling == nil {
				return FaceWalk{He: he0, Status: WalkClockwise}
			}
			he0 = he0.Sibling
			continue
		}
		ccw[1] = m.orient(he1.Origin, he2.Origin, p)
		if ccw[1] < 0 {
			if he1.Sibling == nil {
				return FaceWalk{He: he0, Status: WalkClockwise}
			}
			he0 = he1.Sibling
			continue
		}
		ccw[2] = m.orient(he2.Origin, he0.Origin, p)
		if ccw[2] < 0 {
			if he2.Sibling == nil {
				return FaceWalk{He: he0, Status: WalkClockwise}
			}
			he0 = he2.Sibling
			continue
		}
		if ccw[0] == 0 {
			return FaceWalk{He: he0, Status: WalkCoincident}
		}
		if ccw[1] == 0 {
			return FaceWalk{He: he1, Status: WalkCoincident}
		}
		if ccw[2] == 0 {
			return FaceWalk{He: he2, Status: WalkCoincident}
		}
		return FaceWalk{He: he0, Status: WalkClockwise}
	}
	fatalc(ErrExhausted, "%s: face walk to (%g, %g)", m.name, p.X, p.Y)
	return FaceWalk{Status: WalkFailed}
}

// findFaceBruteForce checks every face for containment of p, with no start
// hint. Works for any simple boundary; used as a cross-check in tests.
func (m *Mesh) findFaceBruteForce(p *Point) FaceWalk {
	var ccw [3]float64

	m.clearFlags(FlagAlgorithm)
	for _, he0 := range m.halfEdges {
		if he0.isFlagged(FlagAlgorithm) {
			continue
		}
		he1 := he0.Next
		he2 := he1.Next
		if he2.Next != he0 {
			fatalc(ErrPolygon, "%s: face sweep entered a non-triangular face", m.name)
		}
		he0.flag(FlagAlgorithm)
		he1.flag(FlagAlgorithm)
		he2.flag(FlagAlgorithm)
		ccw[0] = m.orient(he0.Origin, he1.Origin, p)
		if ccw[0] < 0 {
			continue
		}
		ccw[1] = m.orient(he1.Origin, he2.Origin, p)
		if ccw[1] < 0 {
			continue
		}
		ccw[2] = m.orient(he2.Origin, he0.Origin, p)
		if ccw[2] < 0 {
			continue
		}
		if ccw[0] == 0 {
			return FaceWalk{He: he0, Status: WalkCoincident}
		}
		if ccw[1] == 0 {
			return FaceWalk{He: he1, Status: WalkCoincident}
		}
		if ccw[2] == 0 {
			return FaceWalk{He: he2, Status: WalkCoincident}
		}
		return FaceWalk{He: he0, Status: WalkClockwise}
	}
	return FaceWalk{Status: WalkFailed}
}

// startFaceWalk finds the face incident to pStart that the segment from
// pStart to pEnd enters, by pivoting counter-clockwise around pStart.
// Returns WalkCoincident when an edge from pStart to pEnd already exists,
// with that edge's halfedge. Robust with non-triangular faces around pStart.
func (m *Mesh) startFaceWalk(pStart, pEnd *Point) FaceWalk {
	if !m.Contains(pStart) || !m.Contains(pEnd) {
		fatalc(ErrMissing, "%s: face walk between unknown points", m.name)
	}
	if pStart == pEnd {
		fatalc(ErrIdentical, "%s: face walk from a point to itself", m.name)
	}
	if m.coincident(pStart, pEnd) {
		fatalc(ErrCoincident, "%s: face walk between coincident points", m.name)
	}

	he := pStart.He
	pTrailing := he.Next.Origin
	ccwTrailing := m.orient(pStart, pEnd, pTrailing)
	// Boundary points keep a boundary-incident halfedge, so the first
	// trailing edge runs along the boundary itself.
	if pStart.Is(PointBoundary) {
		if pTrailing == pEnd {
			return FaceWalk{He: he, Status: WalkCoincident}
		}
		if ccwTrailing > 0 {
			fatalc(ErrOutOfBounds, "%s: segment (%g, %g) -> (%g, %g) leaves the domain",
				m.name, pStart.X, pStart.Y, pEnd.X, pEnd.Y)
		}
		if ccwTrailing == 0 &&
			(m.betweenProper(pStart, pEnd, pTrailing) || m.betweenProper(pStart, pTrailing, pEnd)) {
			return FaceWalk{He: he, Status: WalkClockwise}
		}
	}
	for i := 0; i <= len(m.halfEdges); i++ {
		// the face may be a polygon mid-edit, so find the leading spoke by
		// searching forward
		hePrev := m.findPrevious(he)
		pTrailing = he.Next.Origin
		pLeading := hePrev.Origin
		if pTrailing == pEnd {
			return FaceWalk{He: he, Status: WalkCoincident}
		}
		if pLeading == pEnd {
			return FaceWalk{He: hePrev, Status: WalkCoincident}
		}
		// the segment enters this face when the leading spoke is at or left
		// of it and the trailing spoke strictly right
		ccwLeading := m.orient(pStart, pEnd, pLeading)
		if ccwLeading >= 0 && ccwTrailing < 0 {
			return FaceWalk{He: he, Status: WalkClockwise}
		}
		ccwTrailing = ccwLeading
		if hePrev.Sibling == nil {
			fatalc(ErrOutOfBounds, "%s: segment (%g, %g) -> (%g, %g) leaves the domain",
				m.name, pStart.X, pStart.Y, pEnd.X, pEnd.Y)
		}
		he = hePrev.Sibling
	}
	return FaceWalk{Status: WalkFailed}
}
