package mesh

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Structural validation and table dumps. Validate is cheap enough to call
// after every mutation in tests, and expensive enough that production callers
// should not.

// Validate checks every structural invariant of the mesh and returns an
// error describing all violations found, or nil. Checked per halfedge: a
// registered origin and next, non-coincident endpoints, sibling symmetry, and
// next/sibling origin alignment. Checked per point: a registered incident
// halfedge originating at the point, and no other point within epsilon.
// Checked per face: next-cycles close with exactly three halfedges.
func (m *Mesh) Validate() error {
	var problems []string
	complain := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for i, p1 := range m.points {
		for _, p2 := range m.points[i+1:] {
			if m.coincident(p1, p2) {
				complain("coincident points %s and %s", p1.DbgName(), p2.DbgName())
			}
		}
		if !m.containsHalfEdge(p1.He) {
			complain("point %s has an unregistered halfedge", p1.DbgName())
			continue
		}
		if p1.He.Origin != p1 {
			complain("point %s does not originate its halfedge", p1.DbgName())
		}
	}

	for _, he := range m.halfEdges {
		if !m.Contains(he.Origin) {
			complain("halfedge %s has an unregistered origin", he.DbgName())
		}
		if !m.containsHalfEdge(he.Next) {
			complain("halfedge %s has an unregistered next", he.DbgName())
			continue
		}
		if m.coincident(he.Origin, he.Next.Origin) {
			complain("halfedge %s has coincident endpoints", he.DbgName())
		}
		if !he.IsType(EdgeBoundary) {
			if !m.containsHalfEdge(he.Sibling) {
				complain("halfedge %s has an unregistered sibling", he.DbgName())
				continue
			}
			if he.Sibling.Sibling != he {
				complain("halfedge %s has a mismatched sibling", he.DbgName())
			}
			if he.Next.Origin != he.Sibling.Origin {
				complain("halfedge %s has unaligned next and sibling", he.DbgName())
			}
		}
	}

	m.clearFlags(FlagAlgorithm)
	for _, he := range m.halfEdges {
		if he.isFlagged(FlagAlgorithm) {
			continue
		}
		size := 0
		heTest := he
		for i := 0; ; i++ {
			if i > len(m.halfEdges) {
				complain("face cycle at %s does not close", he.DbgName())
				size = -1
				break
			}
			heTest.flag(FlagAlgorithm)
			size++
			heTest = heTest.Next
			if heTest == nil {
				complain("face cycle at %s has a nil next", he.DbgName())
				size = -1
				break
			}
			if heTest == he {
				break
			}
		}
		if size >= 0 && size != 3 {
			complain("face cycle at %s has %d sides", he.DbgName(), size)
		}
	}

	if len(problems) > 0 {
		return errors.Errorf("%s: invalid mesh:\n\t%s",
			m.name, strings.Join(problems, "\n\t"))
	}
	return nil
}

// DumpPoints renders the point table, one line per point.
func (m *Mesh) DumpPoints() string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s points ###\n", m.name)
	fmt.Fprintf(&b, "%24s | %24s | %10s | %5s | %s\n",
		"point", "halfedge", "type", "users", "position")
	for _, p := range m.points {
		fmt.Fprintf(&b, "%24s | %24s | %10s | %5d | (%g, %g)\n",
			p.DbgName(), p.He.DbgName(), p.Type, p.Users, p.X, p.Y)
	}
	return b.String()
}

// DumpHalfEdges renders the halfedge table, one line per halfedge.
func (m *Mesh) DumpHalfEdges() string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s halfedges ###\n", m.name)
	fmt.Fprintf(&b, "%24s | %24s -> %-24s | %24s | %24s | %s\n",
		"halfedge", "origin", "dest", "next", "sibling", "type")
	for _, he := range m.halfEdges {
		dest := "Ø"
		if he.Next != nil {
			dest = he.Next.Origin.DbgName()
		}
		fmt.Fprintf(&b, "%24s | %24s -> %-24s | %24s | %24s | %s\n",
			he.DbgName(), he.Origin.DbgName(), dest,
			he.Next.DbgName(), he.Sibling.DbgName(), he.Type)
	}
	return b.String()
}
