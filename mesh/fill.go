package mesh

// Polygon filling. Two fillers cover the two holes that editing operations
// open up: fillGeneralPolygon triangulates an arbitrary simple polygon by ear
// clipping, and fillEdgeVisiblePolygon triangulates a polygon whose interior
// is entirely visible from its first edge, as left behind by constraint
// insertion. Both run iteratively with an explicit worklist so that large
// polygons cannot blow the stack.

// addEdge connects the origins of he1 and he2 with a new auxiliary edge,
// splicing it into both face cycles. he1prev and he2prev must be the cycle
// predecessors of he1 and he2. Returns the halfedge from he1.Origin to
// he2.Origin.
func (m *Mesh) addEdge(he1, he2, he1prev, he2prev *HalfEdge) *HalfEdge {
	if he1prev.Next != he1 || he2prev.Next != he2 {
		fatalc(ErrHalfEdge, "%s: addEdge predecessors are not linked", m.name)
	}
	if he1 == he2 {
		fatalc(ErrIdentical, "%s: addEdge between a halfedge and itself", m.name)
	}
	if he1.Origin == he2.Origin {
		fatalc(ErrIdentical, "%s: addEdge between coincident origins", m.name)
	}
	heAdd := m.addHalfEdge(he1.Origin, he2.Origin)
	m.queueDelaunay(heAdd)
	heAdd.Next = he2
	he1prev.Next = heAdd
	heAdd.Sibling.Next = he1
	he2prev.Next = heAdd.Sibling
	return heAdd
}

// fillQuadrilateral splits the four-sided face starting at he1 along
// whichever diagonal yields two valid (non-reflex) triangles.
func (m *Mesh) fillQuadrilateral(he1 *HalfEdge) {
	he2 := he1.Next
	he3 := he2.Next
	he4 := he3.Next
	if he4.Next != he1 {
		fatalc(ErrPolygon, "%s: fillQuadrilateral of a non-quadrilateral", m.name)
	}
	if m.orient(he1.Origin, he3.Origin, he2.Origin)*
		m.orient(he1.Origin, he3.Origin, he4.Origin) < 0 {
		m.addEdge(he1, he3, he4, he2)
	} else {
		m.addEdge(he2, he4, he1, he3)
	}
}

// constructPolygon collects the face cycle starting at he into a slice.
func (m *Mesh) constructPolygon(he *HalfEdge) []*HalfEdge {
	if !m.containsHalfEdge(he) {
		fatalc(ErrMissing, "%s: constructPolygon of unknown halfedge", m.name)
	}
	polygon := []*HalfEdge{he}
	heSearch := he.Next
	for i := 0; ; i++ {
		if i > len(m.halfEdges) {
			fatalc(ErrExhausted, "%s: polygon cycle at %s did not close",
				m.name, he.DbgName())
		}
		if heSearch == he {
			break
		}
		polygon = append(polygon, heSearch)
		heSearch = heSearch.Next
	}
	return polygon
}

// fillGeneralPolygon triangulates the simple polygon given as a face cycle by
// ear clipping, then queues the perimeter for Delaunay testing.
func (m *Mesh) fillGeneralPolygon(polygon []*HalfEdge) {
	if len(polygon) < 3 {
		fatalc(ErrPolygon, "%s: filling polygon with %d sides", m.name, len(polygon))
	}
	m.clipEars(polygon)
	m.delaunayQueue = append(m.delaunayQueue, polygon...)
}

// clipEars repeatedly cuts an ear off the polygon until a triangle remains.
// A simple polygon always has two non-overlapping ears, so the candidate scan
// terminates; an ear edge p0->p2 is valid when it lies strictly inside the
// polygon and clears every non-adjacent side.
func (m *Mesh) clipEars(polygon []*HalfEdge) {
	for s := len(polygon); s > 3; s = len(polygon) {
		var n int
		var heTest0 *HalfEdge
		var p0, p2 *Point
	earWalk:
		for i := 0; i < s; i++ {
			n = i
			heTest0 = polygon[i]
			p0 = heTest0.Origin
			p1 := heTest0.Next.Origin
			p2 = polygon[(i+2)%s].Origin
			if m.orient(p0, p1, p2) > 0 && !m.between(p0, p2, p1) {
				heTest1 := heTest0.Next.Next
				for j := 0; j < s-3; j++ {
					if m.intersectProper(p0, p2, heTest1.Origin, heTest1.Next.Origin) {
						continue earWalk
					}
					heTest1 = heTest1.Next
				}
				break
			}
		}
		heAdd := m.addHalfEdge(p0, p2)
		m.queueDelaunay(heAdd)
		// close the ear
		heAdd.Sibling.Next = heTest0
		polygon[(n+1)%s].Next = heAdd.Sibling
		// link the remaining polygon of size s-1
		heAdd.Next = polygon[(n+2)%s]
		polygon[(n+s-1)%s].Next = heAdd
		remaining := make([]*HalfEdge, 0, s-1)
		he := heAdd
		for j := 0; j < s-1; j++ {
			remaining = append(remaining, he)
			he = he.Next
		}
		polygon = remaining
	}
}

// fillEdgeVisiblePolygon triangulates the face cycle starting at he, which
// must be entirely visible from he. Each polygon is split at the vertex with
// the largest circumcircle against the base edge, and the two remainders go
// back on the worklist.
func (m *Mesh) fillEdgeVisiblePolygon(he *HalfEdge) {
	polygon := m.constructPolygon(he)
	worklist := [][]*HalfEdge{polygon}
	for len(worklist) > 0 {
		poly := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		s := len(poly)
		if s < 3 {
			fatalc(ErrPolygon, "%s: filling polygon with %d sides", m.name, s)
		}
		if s == 3 {
			continue
		}
		pa := poly[0].Origin
		pb := poly[1].Origin
		pc := poly[2].Origin
		c := 2
		for i := 3; i < s; i++ {
			p := poly[i].Origin
			if m.incircle(pa, pb, pc, p) > 0 {
				pc = p
				c = i
			}
		}
		// connect pa -> pc
		if c < s-1 {
			heAdd := m.addEdge(poly[0], poly[c], poly[s-1], poly[c-1])
			worklist = append(worklist, m.constructPolygon(heAdd))
		}
		// connect pb -> pc
		if c > 2 {
			heAdd := m.addEdge(poly[1], poly[c-1].Next, poly[0], poly[c-1])
			worklist = append(worklist, m.constructPolygon(heAdd.Sibling))
		}
	}
	m.delaunayQueue = append(m.delaunayQueue, polygon...)
}
