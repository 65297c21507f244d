package mesh

// Topology edits: the split, flip, and removal operators that every public
// operation is built from. Each edit leaves the mesh with valid triangular
// faces and queues the perimeter of the edited region for Delaunay testing;
// none of them run the test themselves.

// splitEdge splits the two faces sharing the interior edge he into four by
// inserting p on the edge.
func (m *Mesh) splitEdge(p *Point, he *HalfEdge) {
	if he.IsType(EdgeBoundary) {
		fatalc(ErrType, "%s: splitting a boundary edge", m.name)
	}
	he1 := m.findPrevious(he)
	he2 := he.Sibling.Next
	he3 := m.findPrevious(he.Sibling)
	// split the halfedge
	he.Origin = p
	p.He = he
	// spokes from p to the four corners
	heAdd1 := m.addHalfEdge(p, he1.Origin)
	heAdd2 := m.addHalfEdge(p, he2.Origin)
	heAdd3 := m.addHalfEdge(p, he3.Origin)
	heAdd1.Next = he1
	heAdd2.Next = he2
	heAdd3.Next = he3
	he.Next.Next = heAdd1.Sibling
	he1.Next = heAdd2.Sibling
	he2.Next = heAdd3.Sibling
	heAdd1.Sibling.Next = he
	heAdd2.Sibling.Next = heAdd1
	heAdd3.Sibling.Next = heAdd2
	he.Sibling.Next = heAdd3
	m.updateHalfEdgeOwner(he2)
	m.queueDelaunay(he, he1, he2, he3)
}

// splitFace splits the face with halfedge he1 into three by inserting p
// inside it.
func (m *Mesh) splitFace(p *Point, he1 *HalfEdge) {
	if !m.containsHalfEdge(he1) {
		fatalc(ErrMissing, "%s: splitFace of unknown halfedge", m.name)
	}
	he2 := he1.Next
	he3 := he2.Next
	heAdd1 := m.addHalfEdge(p, he1.Origin)
	heAdd2 := m.addHalfEdge(p, he2.Origin)
	heAdd3 := m.addHalfEdge(p, he3.Origin)
	p.He = heAdd1
	heAdd1.Next = he1
	heAdd2.Next = he2
	heAdd3.Next = he3
	he1.Next = heAdd2.Sibling
	he2.Next = heAdd3.Sibling
	he3.Next = heAdd1.Sibling
	heAdd1.Sibling.Next = heAdd3
	heAdd3.Sibling.Next = heAdd2
	heAdd2.Sibling.Next = heAdd1
	m.queueDelaunay(heAdd1, heAdd2, heAdd3, he1, he2, he3)
}

// splitConstraint splits the constraint edge he at the crossing point (x, y),
// inserting a new vertex there. Both halves remain constrained. Returns the
// new vertex.
func (m *Mesh) splitConstraint(he *HalfEdge, x, y float64) *Point {
	if he.IsType(EdgeBoundary) {
		fatalc(ErrType, "%s: splitting a boundary edge", m.name)
	}
	p0 := &Point{X: x, Y: y, Type: PointInterior}
	m.addPoint(p0)
	he0 := m.addHalfEdge(p0, he.Sibling.Origin)
	he0.Constrain()
	he0.Sibling.Constrain()
	he.Sibling.Origin = p0
	p0.He = he0
	m.updateHalfEdgeOwner(he0.Sibling)
	he0.Next = he.Next
	he.Next = he0
	he0.Sibling.Next = he.Sibling
	// redirect the halfedge that pointed at he.Sibling
	heTest := he.Sibling
	for i := 0; ; i++ {
		if i > len(m.halfEdges) {
			fatalc(ErrExhausted, "%s: splitConstraint relink did not close", m.name)
		}
		if heTest.Next == he.Sibling {
			heTest.Next = he0.Sibling
			break
		}
		heTest = heTest.Next
	}
	return p0
}

// removeEdge deletes the interior edge he, merging the two faces it
// separates. If the edge was a constraint, its far endpoint is recorded for
// RestoreConstraints. The origin of a halfedge that loses its last spoke has
// its incident pointer cleared.
func (m *Mesh) removeEdge(he *HalfEdge) {
	if !m.containsHalfEdge(he) {
		fatalc(ErrMissing, "%s: removeEdge of unknown halfedge", m.name)
	}
	if he.IsType(EdgeBoundary) {
		fatalc(ErrType, "%s: removing a boundary edge", m.name)
	}
	hePrev := m.findPrevious(he)
	heSibPrev := m.findPrevious(he.Sibling)
	m.unregisterHalfEdge(he)
	m.unregisterHalfEdge(he.Sibling)
	// cache constraints for replay after a relocation
	if he.IsType(EdgeConstraint) {
		m.removedConstraints = append(m.removedConstraints, he.Next.Origin)
	}
	if he.Sibling == hePrev {
		// last spoke out of he.Origin
		he.Origin.He = nil
		m.updateHalfEdgeOwner(he.Next)
	} else if he.Next == he.Sibling {
		// last spoke out of the far endpoint
		he.Next.Origin.He = nil
		m.updateHalfEdgeOwner(he.Sibling.Next)
	} else {
		m.updateHalfEdgeOwner(he.Next)
		m.updateHalfEdgeOwner(he.Sibling.Next)
	}
	hePrev.Next = he.Sibling.Next
	heSibPrev.Next = he.Next
}

// RemoveInteriorPoint deletes p and re-triangulates the hole it leaves. The
// star of p is reduced to degree 3 or 4 by flipping edges outward, then the
// remaining spokes are removed and the hole refilled.
func (m *Mesh) RemoveInteriorPoint(p *Point) {
	if !m.Contains(p) {
		fatalc(ErrMissing, "%s: RemoveInteriorPoint of unknown point", m.name)
	}
	var star []*HalfEdge
	heSearch := p.He
	for i := 0; ; i++ {
		if i > len(m.halfEdges) {
			fatalc(ErrExhausted, "%s: collecting star of interior point", m.name)
		}
		star = append(star, heSearch)
		heSearch = heSearch.Next.Next.Sibling
		if heSearch == p.He {
			break
		}
	}
	if len(star) < 3 {
		fatalc(ErrPolygon, "%s: interior point of degree %d", m.name, len(star))
	}
	if len(star) == 3 {
		for _, he := range star {
			m.removeEdge(he)
		}
	} else {
		// Reduce the star to a quadrilateral. A spoke is flippable when the
		// far triangle's apexes straddle the spoke's outer edge; each flip
		// lowers the degree of p by one.
		sinceFlip := 0
		for len(star) > 4 {
			if sinceFlip > len(star) {
				fatalc(ErrExhausted, "%s: reducing star of interior point", m.name)
			}
			heFlip := star[0]
			star = star[1:]
			p1 := heFlip.Sibling.Origin
			p2 := heFlip.Next.Next.Origin
			p3 := heFlip.Sibling.Next.Next.Origin
			if heFlip.IsType(EdgeAuxiliary) &&
				m.orient(p2, p3, p)*m.orient(p2, p3, p1) < 0 {
				m.flipEdge(heFlip)
				sinceFlip = 0
			} else {
				star = append(star, heFlip)
				sinceFlip++
			}
		}
		heSearch = star[0].Next
		for _, he := range star {
			m.removeEdge(he)
		}
		m.fillQuadrilateral(heSearch)
	}
	p.He = nil
	m.removePoint(p)
	p.Type = PointDeleted
	m.UpdateDelaunay()
}

// RemovePoint deletes every edge incident to p and then p itself, without
// refilling the hole. The caller is responsible for re-triangulating the
// region, e.g. with a subsequent fill of the surrounding polygon.
func (m *Mesh) RemovePoint(p *Point) {
	if !m.Contains(p) {
		fatalc(ErrMissing, "%s: removing spokes of unknown point", m.name)
	}
	if p.Is(PointDeleted) {
		fatalc(ErrType, "%s: re-removing a deleted point", m.name)
	}
	he := p.He
	for i := 0; ; i++ {
		if i > len(m.halfEdges) {
			fatalc(ErrExhausted, "%s: removing spokes of a point", m.name)
		}
		if he.Origin != p {
			fatalc(ErrHalfEdge, "%s: spoke does not originate at its point", m.name)
		}
		m.removeEdge(he)
		if p.He == nil {
			break
		}
		he = he.Sibling.Next
	}
	m.removePoint(p)
	p.Type = PointDeleted
	p.He = nil
}

// flipEdge rotates the auxiliary edge he to the opposite diagonal of the
// quadrilateral formed by its two faces.
func (m *Mesh) flipEdge(he *HalfEdge) {
	if !m.containsHalfEdge(he) {
		fatalc(ErrMissing, "%s: flipEdge of unknown halfedge", m.name)
	}
	if !he.IsType(EdgeAuxiliary) {
		fatalc(ErrType, "%s: flipping a %s edge", m.name, he.Type)
	}
	he1 := he.Next
	he2 := he1.Next
	he3 := he.Sibling.Next
	he4 := he3.Next
	// rotate the diagonal
	he.Origin = he2.Origin
	he.Sibling.Origin = he4.Origin
	m.updateHalfEdgeOwner(he3)
	m.updateHalfEdgeOwner(he1)
	he1.Next = he
	he.Next = he4
	he4.Next = he1
	he3.Next = he.Sibling
	he.Sibling.Next = he2
	he2.Next = he3
	m.queueDelaunay(he1, he2, he3, he4)
}
