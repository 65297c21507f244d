package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFace(t *testing.T) {
	m, pts := squareMesh()

	// strictly inside the lower face
	walk := m.findFace(pts[0].He, &Point{X: 8, Y: 1})
	assert.Equal(t, WalkClockwise, walk.Status)

	// exactly on the diagonal
	walk = m.findFace(pts[0].He, &Point{X: 5, Y: 5})
	assert.Equal(t, WalkCoincident, walk.Status)
}

func TestFindFaceAgreesWithBruteForce(t *testing.T) {
	m := New(1e-9)
	m.SetName("arrow")
	m.Init(LoadFixture("arrow"))
	queries := []*Point{
		{X: 10, Y: 6},
		{X: 30, Y: 6},
		{X: 22, Y: 18},
	}
	for _, q := range queries {
		brute := m.findFaceBruteForce(q)
		require.Equal(t, WalkClockwise, brute.Status)
		walk := m.findFace(m.points[0].He, q)
		require.Equal(t, WalkClockwise, walk.Status)
		// both locators must land in the same face
		assert.ElementsMatch(t, facePoints(brute.He), facePoints(walk.He))
	}
}

func facePoints(he *HalfEdge) []*Point {
	return []*Point{he.Origin, he.Next.Origin, he.Next.Next.Origin}
}

func TestStartFaceWalkFindsExistingEdge(t *testing.T) {
	m, pts := squareMesh()

	// the diagonal (10,0) -> (0,10) exists
	walk := m.startFaceWalk(pts[3], pts[1])
	require.Equal(t, WalkCoincident, walk.Status)
	edge := walk.He
	onDiagonal := (edge.Origin == pts[3] && edge.Next.Origin == pts[1]) ||
		(edge.Origin == pts[1] && edge.Next.Origin == pts[3])
	assert.True(t, onDiagonal)
}

func TestStartFaceWalkEntersFace(t *testing.T) {
	m, pts := squareMesh()

	// no edge (0,0) -> (10,10); the walk reports the face the segment enters
	walk := m.startFaceWalk(pts[0], pts[2])
	require.Equal(t, WalkClockwise, walk.Status)
	assert.Same(t, pts[0], walk.He.Origin)
}

func TestStartFaceWalkOutOfDomain(t *testing.T) {
	m := New(1e-9)
	m.SetName("lshape")
	pts := LoadFixture("lshape")
	m.Init(pts)

	var pTop, pRight *Point
	for _, p := range pts {
		if p.X == 10 && p.Y == 30 {
			pTop = p
		}
		if p.X == 30 && p.Y == 10 {
			pRight = p
		}
	}
	require.NotNil(t, pTop)
	require.NotNil(t, pRight)

	assert.Panics(t, func() {
		m.startFaceWalk(pTop, pRight)
	})
}
