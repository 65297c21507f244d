package mesh

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into boundary point lists. It is not a
// full (or even correct) svg parser: it finds whatever the first polygon is
// and converts it into a clockwise point list, since that is the winding Init
// expects. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	points := []*Point{}
	for _, pairString := range strings.Fields(pointString) {
		coords := strings.Split(pairString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pairString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, &Point{X: x, Y: y})
	}
	if len(points) < 3 {
		log.Fatalf("Fixture %q has only %d points", name, len(points))
	}

	// Init expects a clockwise boundary
	if signedArea(points) > 0 {
		reversePoints(points)
	}
	return points
}

func signedArea(points []*Point) float64 {
	area := 0.0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

func reversePoints(points []*Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// squarePoints returns the unit-scaled test square, clockwise from the
// origin.
func squarePoints() []*Point {
	return []*Point{
		{X: 0, Y: 0},
		{X: 0, Y: 10},
		{X: 10, Y: 10},
		{X: 10, Y: 0},
	}
}

func squareMesh() (*Mesh, []*Point) {
	pts := squarePoints()
	m := New(1e-9)
	m.SetName("square")
	m.Init(pts)
	return m, pts
}

// starPoints generates a clockwise 2n-gon star, a convenient concave
// boundary.
func starPoints(n int, rOuter, rInner float64) []*Point {
	points := make([]*Point, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		r := rOuter
		if i%2 == 1 {
			r = rInner
		}
		// negative angle step winds clockwise
		a := -float64(i) * math.Pi / float64(n)
		points = append(points, &Point{
			X: r * math.Cos(a),
			Y: r * math.Sin(a),
		})
	}
	return points
}

// meshEdge finds the undirected edge between two points, or nil.
func meshEdge(m *Mesh, p1, p2 *Point) *HalfEdge {
	for _, he := range m.halfEdges {
		if he.Origin == p1 && he.Next.Origin == p2 {
			return he
		}
	}
	return nil
}

// isDelaunay checks that every auxiliary edge satisfies the incircle
// criterion from both sides.
func isDelaunay(m *Mesh) bool {
	for _, he := range m.halfEdges {
		if !he.IsType(EdgeAuxiliary) {
			continue
		}
		p1 := he.Next.Origin
		p2 := he.Next.Next.Origin
		p3 := he.Origin
		p4 := he.Sibling.Next.Next.Origin
		if m.incircle(p1, p2, p3, p4) > 0 || m.incircle(p3, p4, p1, p2) > 0 {
			return false
		}
	}
	return true
}
