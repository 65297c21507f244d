package mesh

// Lawson's algorithm: every edit queues the halfedges around the region it
// touched, and UpdateDelaunay flips queued auxiliary edges that fail the
// incircle test until the queue drains. Flips re-queue the surrounding
// quadrilateral, so the test propagates outward exactly as far as it needs
// to.

func (m *Mesh) queueDelaunay(hes ...*HalfEdge) {
	m.delaunayQueue = append(m.delaunayQueue, hes...)
}

// UpdateDelaunay drains the test queue, flipping auxiliary edges whose
// adjacent triangles violate the Delaunay criterion. Boundary and constraint
// edges are never flipped. Edges removed since they were queued are skipped.
func (m *Mesh) UpdateDelaunay() {
	for len(m.delaunayQueue) > 0 {
		he := m.delaunayQueue[0]
		m.delaunayQueue = m.delaunayQueue[1:]
		if !m.containsHalfEdge(he) {
			continue
		}
		if !he.IsType(EdgeAuxiliary) {
			continue
		}
		p1 := he.Next.Origin
		p2 := he.Next.Next.Origin
		p3 := he.Origin
		p4 := he.Sibling.Next.Next.Origin
		if m.incircle(p1, p2, p3, p4) > 0 || m.incircle(p3, p4, p1, p2) > 0 {
			m.flipEdge(he)
		}
	}
}

// UpdateDelaunayAll re-tests every edge in the mesh. Used after bulk
// coordinate changes.
func (m *Mesh) UpdateDelaunayAll() {
	m.delaunayQueue = append(m.delaunayQueue, m.halfEdges...)
	m.UpdateDelaunay()
}
