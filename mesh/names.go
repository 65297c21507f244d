package mesh

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/cdtmesh/dbg"
)

// Readable names for debugging. Points and halfedges are identified by
// pointer, which is useless when staring at a dump, so we lease each one a
// colored pet name instead.

func (p *Point) DbgName() string {
	if p == nil {
		return "Ø"
	}
	name := dbg.Name(p)
	switch {
	case p.Is(PointDeleted):
		name = aurora.Red(name).String()
	case p.Is(PointBoundary):
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}

func (p *Point) String() string {
	if p == nil {
		return "Ø"
	}
	return fmt.Sprintf("%s (%g, %g)", p.DbgName(), p.X, p.Y)
}

func (he *HalfEdge) DbgName() string {
	if he == nil {
		return "Ø"
	}
	name := dbg.Name(he)
	switch he.Type {
	case EdgeBoundary:
		name = aurora.Cyan(name).String()
	case EdgeConstraint:
		name = aurora.Magenta(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}

func (he *HalfEdge) String() string {
	if he == nil {
		return "Ø"
	}
	dest := "Ø"
	if he.Next != nil {
		dest = he.Next.Origin.DbgName()
	}
	return fmt.Sprintf("%s %s -> %s <next: %s, sibling: %s>",
		he.DbgName(),
		he.Origin.DbgName(),
		dest,
		he.Next.DbgName(),
		he.Sibling.DbgName(),
	)
}
