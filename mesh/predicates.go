package mesh

import (
	"math"

	"github.com/pkg/errors"
)

// Geometric predicates. orient and incircle are adapted from Jonathan
// Shewchuk's predicates.c orient2d() and incircle() routines, but carry only
// a single-level floating-point filter: the error bounds are computed at
// construction, yet when the determinant falls inside the bound we still
// return the unfiltered value instead of falling back to exact arithmetic.
// This is a known robustness gap in near-degenerate configurations,
// deliberately kept, because the behavior of downstream topology code was
// tuned against it.

// machineEpsilon finds the threshold at which predicate calculations become
// unreliable, by repeatedly halving until adding to one rounds off. Adapted
// from Shewchuk's exactinit().
func machineEpsilon() float64 {
	e := 1.0
	check := 1.0
	for {
		lastcheck := check
		e *= 0.5
		check = 1.0 + e
		if check == 1.0 || check == lastcheck {
			break
		}
	}
	return e
}

// projNorm computes the normalized projection of ac onto ab.
func projNorm(a, b, c *Point) float64 {
	x1 := b.X - a.X
	x2 := c.X - a.X
	y1 := b.Y - a.Y
	y2 := c.Y - a.Y
	return (x1*x2 + y1*y2) / (x1*x1 + y1*y1)
}

// perpDistSq computes the squared perpendicular distance of c from line ab.
func perpDistSq(a, b, c *Point) float64 {
	x1 := b.X - a.X
	x2 := c.X - a.X
	y1 := b.Y - a.Y
	y2 := c.Y - a.Y
	cross := x1*y2 - y1*x2
	return cross * cross / (x1*x1 + y1*y1)
}

// coincident reports whether two points lie within the epsilon tolerance.
// Epsilon is a squared distance.
func (m *Mesh) coincident(a, b *Point) bool {
	return a.distanceSquared(b) < m.Epsilon
}

// intersection returns the intersection point of segments ab and cd as a
// point on ab, computed from the perpendicular distances of a and b to cd.
// Fails when the segments are parallel and overlapping, in which case no
// single crossing point exists.
func intersection(a, b, c, d *Point) (x, y float64, err error) {
	cdx := c.X - d.X
	cdy := c.Y - d.Y
	// distance from a to cd
	l1 := math.Abs((a.X-d.X)*cdy - (a.Y-d.Y)*cdx)
	// distance from b to cd
	l2 := math.Abs((b.X-d.X)*cdy - (b.Y-d.Y)*cdx)
	if l1+l2 == 0 {
		return 0, 0, errors.Wrap(ErrDegenerate,
			"intersection of parallel overlapping segments")
	}
	t := l1 / (l1 + l2)
	return (1-t)*a.X + t*b.X, (1-t)*a.Y + t*b.Y, nil
}

// intersect reports whether segments ab and cd intersect, including improper
// (touching or collinear within epsilon) configurations. From O'Rourke's
// Computational Geometry in C.
func (m *Mesh) intersect(a, b, c, d *Point) bool {
	if m.intersectProper(a, b, c, d) {
		return true
	}
	return m.between(a, b, c) ||
		m.between(a, b, d) ||
		m.between(c, d, a) ||
		m.between(c, d, b)
}

// intersectProper reports whether segments ab and cd cross at a single
// interior point, rejecting any collinear or touching configuration. From
// O'Rourke's Computational Geometry in C.
func (m *Mesh) intersectProper(a, b, c, d *Point) bool {
	if m.orient(a, b, c) == 0 ||
		m.orient(a, b, d) == 0 ||
		m.orient(c, d, a) == 0 ||
		m.orient(c, d, b) == 0 {
		return false
	}
	if m.orient(a, b, c)*m.orient(a, b, d) > 0 ||
		m.orient(c, d, a)*m.orient(c, d, b) > 0 {
		return false
	}
	return true
}

// between tests whether c is within the epsilon tubular neighborhood around
// segment ab, including the epsilon balls at the endpoints.
func (m *Mesh) between(a, b, c *Point) bool {
	if m.coincident(a, c) || m.coincident(b, c) {
		return true
	}
	if perpDistSq(a, b, c) < m.Epsilon {
		d := projNorm(a, b, c)
		if 0 < d && d < 1 {
			return true
		}
	}
	return false
}

// betweenProper tests whether c is within the epsilon tubular neighborhood
// around segment ab, excluding the epsilon balls at the endpoints.
func (m *Mesh) betweenProper(a, b, c *Point) bool {
	if m.coincident(a, c) || m.coincident(b, c) {
		return false
	}
	if perpDistSq(a, b, c) < m.Epsilon {
		d := projNorm(a, b, c)
		if 0 < d && d < 1 {
			return true
		}
	}
	return false
}

// orient returns a positive value if ray a->b must turn counter-clockwise to
// intersect vertex c, i.e. c lies to the left of a->b.
func (m *Mesh) orient(pa, pb, pc *Point) float64 {
	detleft := (pa.X - pc.X) * (pb.Y - pc.Y)
	detright := (pa.Y - pc.Y) * (pb.X - pc.X)
	det := detleft - detright

	var detsum float64
	if detleft > 0 {
		if detright <= 0 {
			return det
		}
		detsum = detleft + detright
	} else if detleft < 0 {
		if detright >= 0 {
			return det
		}
		detsum = -detleft - detright
	} else {
		return det
	}

	// Single-level filter. The bound is computed but the exact fallback is
	// absent, so near-degenerate inputs get the raw determinant.
	_ = detsum * m.orientErrorBound
	return det
}

// incircle returns a positive value if pd lies inside the circumcircle
// through pa, pb, pc, which must wind counter-clockwise.
func (m *Mesh) incircle(pa, pb, pc, pd *Point) float64 {
	adx := pa.X - pd.X
	bdx := pb.X - pd.X
	cdx := pc.X - pd.X
	ady := pa.Y - pd.Y
	bdy := pb.Y - pd.Y
	cdy := pc.Y - pd.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) +
		blift*(cdxady-adxcdy) +
		clift*(adxbdy-bdxady)

	// Same filter caveat as orient: the permanent and bound are available,
	// the exact fallback is not.
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	_ = permanent * m.incircleErrorBound
	return det
}
