package mesh

// The topology store: ownership of the point and halfedge sets, and the
// traversal primitives everything else is built on. Sets are slices with an
// index map so that add and remove are O(1); removal swaps the last element
// into the vacated slot, so iteration order is not insertion order, which no
// algorithm here depends on.
//
// The store never rewrites Next, Sibling, or Origin. Those fields are
// mutated only by the edit and fill operators.

func (m *Mesh) addPoint(p *Point) {
	m.pointIndex[p] = len(m.points)
	m.points = append(m.points, p)
	if p.Users == 0 {
		p.Users = 1
	}
}

func (m *Mesh) removePoint(p *Point) {
	i, ok := m.pointIndex[p]
	if !ok {
		fatalc(ErrMissing, "removing point %s not in mesh", p.DbgName())
	}
	last := len(m.points) - 1
	m.points[i] = m.points[last]
	m.pointIndex[m.points[i]] = i
	m.points = m.points[:last]
	delete(m.pointIndex, p)
}

// Contains reports whether p is a live vertex of this mesh.
func (m *Mesh) Contains(p *Point) bool {
	_, ok := m.pointIndex[p]
	return ok
}

func (m *Mesh) registerHalfEdge(he *HalfEdge) {
	m.halfEdgeIndex[he] = len(m.halfEdges)
	m.halfEdges = append(m.halfEdges, he)
}

func (m *Mesh) unregisterHalfEdge(he *HalfEdge) {
	i, ok := m.halfEdgeIndex[he]
	if !ok {
		fatalc(ErrMissing, "removing halfedge %s not in mesh", he.DbgName())
	}
	last := len(m.halfEdges) - 1
	m.halfEdges[i] = m.halfEdges[last]
	m.halfEdgeIndex[m.halfEdges[i]] = i
	m.halfEdges = m.halfEdges[:last]
	delete(m.halfEdgeIndex, he)
}

func (m *Mesh) containsHalfEdge(he *HalfEdge) bool {
	_, ok := m.halfEdgeIndex[he]
	return ok
}

// addHalfEdge allocates both directed sides of a new undirected edge from
// origin to destination, linked as siblings, and registers them together.
// The Next pointers are left nil; the caller must link them into face cycles
// before the operation completes.
func (m *Mesh) addHalfEdge(origin, destination *Point) *HalfEdge {
	he1 := &HalfEdge{Origin: origin}
	he2 := &HalfEdge{Origin: destination}
	he1.Sibling = he2
	he2.Sibling = he1
	m.registerHalfEdge(he1)
	m.registerHalfEdge(he2)
	return he1
}

// findPrevious walks the face cycle of he to find the halfedge whose Next is
// he. Linear in the cycle length; panics if the cycle does not close within
// the halfedge budget.
func (m *Mesh) findPrevious(he *HalfEdge) *HalfEdge {
	if !m.containsHalfEdge(he) {
		fatalc(ErrMissing, "findPrevious of %s", he.DbgName())
	}
	heSearch := he.Next
	for i := 0; i <= len(m.halfEdges); i++ {
		if heSearch.Next == he {
			return heSearch
		}
		heSearch = heSearch.Next
	}
	fatalc(ErrExhausted, "findPrevious of %s did not close", he.DbgName())
	return nil
}

// updateHalfEdgeOwner reassigns the origin's incident halfedge to he, but
// only for interior points. Boundary points keep a stable boundary-incident
// halfedge for the lifetime of the mesh.
func (m *Mesh) updateHalfEdgeOwner(he *HalfEdge) {
	if !m.containsHalfEdge(he) {
		fatalc(ErrMissing, "updateHalfEdgeOwner of %s", he.DbgName())
	}
	if he.Origin.Is(PointInterior) {
		he.Origin.He = he
	}
}

// clearFlags removes the given transient mark from every halfedge.
func (m *Mesh) clearFlags(f uint8) {
	for _, he := range m.halfEdges {
		he.unflag(f)
	}
}
