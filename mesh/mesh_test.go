package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSquare(t *testing.T) {
	m, pts := squareMesh()

	require.NoError(t, m.Validate())
	assert.Equal(t, 4, m.Size())
	assert.Equal(t, 4, m.BoundarySize())
	assert.Len(t, m.Faces(), 2)
	assert.Len(t, m.Edges(), 5)

	// the square is cocircular, so the ear-clipped diagonal survives the
	// Delaunay pass untouched
	diagonal := meshEdge(m, pts[3], pts[1])
	require.NotNil(t, diagonal)
	assert.True(t, diagonal.IsType(EdgeAuxiliary))
	assert.True(t, isDelaunay(m))
}

func TestInitRejectsDegenerate(t *testing.T) {
	m := New(1e-9)
	assert.Panics(t, func() {
		m.Init([]*Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	})
}

func TestInitFixtures(t *testing.T) {
	for _, name := range []string{"lshape", "arrow"} {
		m := New(1e-9)
		m.SetName(name)
		pts := LoadFixture(name)
		m.Init(pts)

		require.NoError(t, m.Validate(), name)
		assert.Equal(t, len(pts), m.Size(), name)
		// a triangulated simple polygon always has n-2 faces
		assert.Len(t, m.Faces(), len(pts)-2, name)
		assert.True(t, isDelaunay(m), name)
	}
}

func TestInitStar(t *testing.T) {
	m := New(1e-9)
	m.SetName("star")
	pts := starPoints(5, 100, 40)
	m.Init(pts)

	require.NoError(t, m.Validate())
	assert.Equal(t, 10, m.Size())
	assert.Len(t, m.Faces(), 8)
	assert.True(t, isDelaunay(m))
}

func TestAddInteriorPoint(t *testing.T) {
	m, _ := squareMesh()
	p := m.AddInteriorPoint(&Point{X: 5, Y: 5})

	require.NoError(t, m.Validate())
	assert.Equal(t, 5, m.Size())
	// (5,5) lands on the diagonal, splitting both faces
	assert.Len(t, m.Faces(), 4)
	assert.Len(t, m.Edges(), 8)
	assert.True(t, m.Contains(p))
	assert.True(t, p.Is(PointInterior))
	assert.True(t, isDelaunay(m))
}

func TestAddInteriorPointOffDiagonal(t *testing.T) {
	m, _ := squareMesh()
	p := m.AddInteriorPoint(&Point{X: 3, Y: 4})

	require.NoError(t, m.Validate())
	assert.Equal(t, 5, m.Size())
	assert.Len(t, m.Faces(), 4)
	assert.True(t, m.Contains(p))
	assert.True(t, isDelaunay(m))
}

func TestAddInteriorPointDeduplicates(t *testing.T) {
	m, _ := squareMesh()
	p1 := m.AddInteriorPoint(&Point{X: 5, Y: 5})
	p2 := m.AddInteriorPoint(&Point{X: 5 + 1e-5, Y: 5})

	assert.Same(t, p1, p2)
	assert.Equal(t, 2, p1.Users)
	assert.Equal(t, 5, m.Size())
	require.NoError(t, m.Validate())
}

func TestAddBoundaryPoint(t *testing.T) {
	m, pts := squareMesh()
	// pts[0]'s halfedge runs along the bottom edge toward (10,0)
	he := pts[0].He
	require.True(t, he.IsType(EdgeBoundary))
	require.Same(t, pts[3], he.Next.Origin)

	p := m.AddBoundaryPoint(&Point{X: 5, Y: 0}, he)

	require.NoError(t, m.Validate())
	assert.Equal(t, 5, m.Size())
	assert.Equal(t, 5, m.BoundarySize())
	assert.Len(t, m.Faces(), 3)
	assert.True(t, p.Is(PointBoundary))
	assert.True(t, isDelaunay(m))
}

func TestAddBoundaryPointDeduplicates(t *testing.T) {
	m, pts := squareMesh()
	he := pts[0].He

	p := m.AddBoundaryPoint(&Point{X: 1e-6, Y: 0}, he)
	assert.Same(t, pts[0], p)
	assert.Equal(t, 4, m.Size())
	assert.Equal(t, 4, m.BoundarySize())
}

func TestRemoveInteriorPoint(t *testing.T) {
	m, _ := squareMesh()
	p := m.AddInteriorPoint(&Point{X: 5, Y: 5})
	m.RemoveInteriorPoint(p)

	require.NoError(t, m.Validate())
	assert.Equal(t, 4, m.Size())
	assert.Len(t, m.Faces(), 2)
	assert.Len(t, m.Edges(), 5)
	assert.False(t, m.Contains(p))
	assert.True(t, p.Is(PointDeleted))
	assert.Nil(t, p.He)
	assert.True(t, isDelaunay(m))
}

func TestRemoveHighDegreePoint(t *testing.T) {
	m, _ := squareMesh()
	p := m.AddInteriorPoint(&Point{X: 5, Y: 5})
	// raise the degree of p past the trivial cases
	for _, q := range []*Point{{X: 3, Y: 2}, {X: 7, Y: 2}, {X: 5, Y: 8}} {
		m.AddInteriorPoint(q)
	}
	require.NoError(t, m.Validate())

	m.RemoveInteriorPoint(p)

	require.NoError(t, m.Validate())
	assert.Equal(t, 7, m.Size())
	assert.False(t, m.Contains(p))
	assert.True(t, isDelaunay(m))
}

func TestUpdateInteriorPoint(t *testing.T) {
	m, _ := squareMesh()
	p := m.AddInteriorPoint(&Point{X: 5, Y: 5})

	p.X = 3
	p.Y = 4
	p = m.UpdateInteriorPoint(p)

	require.NoError(t, m.Validate())
	assert.True(t, m.Contains(p))
	assert.Equal(t, 5, m.Size())
	assert.Len(t, m.Faces(), 4)
	assert.True(t, isDelaunay(m))
}

func TestUpdateBoundaryPointOutside(t *testing.T) {
	m, pts := squareMesh()

	// drag the corner with the diagonal spoke outward
	pts[3].X = 14
	pts[3].Y = -2
	m.UpdateBoundaryPointOutside(pts[3])

	require.NoError(t, m.Validate())
	assert.Equal(t, 4, m.Size())
	assert.Equal(t, 4, m.BoundarySize())
	assert.Len(t, m.Faces(), 2)
	assert.Len(t, m.Edges(), 5)
	assert.True(t, pts[3].Is(PointBoundary))
	assert.True(t, isDelaunay(m))
}

func TestTranslate(t *testing.T) {
	m, pts := squareMesh()
	m.Translate(100, -50)

	assert.Equal(t, 100.0, pts[0].X)
	assert.Equal(t, -50.0, pts[0].Y)
	require.NoError(t, m.Validate())

	m.UpdateDelaunayAll()
	require.NoError(t, m.Validate())
	assert.True(t, isDelaunay(m))
}

func TestCoords3DReadback(t *testing.T) {
	m, pts := squareMesh()
	for i, p := range pts {
		p.Coords3D = Coords3D{X: p.X, Y: p.Y, Z: float64(i)}
	}

	coords := m.PointCoordinates3D()
	assert.Len(t, coords, 4)

	faceCoords := m.FaceCoordinates3D()
	assert.Len(t, faceCoords, 6)

	flat := m.FaceCoordinates()
	assert.Len(t, flat, 6)
}

func TestDumps(t *testing.T) {
	m, _ := squareMesh()
	assert.Contains(t, m.DumpPoints(), "square")
	assert.Contains(t, m.DumpHalfEdges(), "square")
}
