package cdtmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests for the error boundary. The engine itself is tested in the mesh
// package.

func clockwiseSquare() []*Point {
	return []*Point{
		{X: 0, Y: 0},
		{X: 0, Y: 10},
		{X: 10, Y: 10},
		{X: 10, Y: 0},
	}
}

func TestNew(t *testing.T) {
	m, err := New(clockwiseSquare(), 1e-9)
	require.NoError(t, err)
	assert.Len(t, m.Faces(), 2)
	assert.NoError(t, m.Validate())
}

func TestNewDegenerate(t *testing.T) {
	m, err := New([]*Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1e-9)
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestInsertAndConstrain(t *testing.T) {
	boundary := clockwiseSquare()
	m, err := New(boundary, 1e-9)
	require.NoError(t, err)

	p, err := m.AddInteriorPoint(&Point{X: 3, Y: 4})
	require.NoError(t, err)

	he, err := m.AddConstraint(boundary[0], p)
	require.NoError(t, err)
	assert.NotNil(t, he)

	require.NoError(t, m.Validate())
	assert.Equal(t, 5, m.Size())
}

func TestConstraintOutsideDomainErrors(t *testing.T) {
	// an L shape: the two notch corners see each other only outside it
	boundary := []*Point{
		{X: 0, Y: 0},
		{X: 0, Y: 30},
		{X: 10, Y: 30},
		{X: 10, Y: 10},
		{X: 30, Y: 10},
		{X: 30, Y: 0},
	}
	m, err := New(boundary, 1e-9)
	require.NoError(t, err)

	_, err = m.AddConstraint(boundary[2], boundary[4])
	assert.Error(t, err)
}

func TestRemoveUnknownPointErrors(t *testing.T) {
	m, err := New(clockwiseSquare(), 1e-9)
	require.NoError(t, err)

	err = m.RemoveInteriorPoint(&Point{X: 5, Y: 5})
	assert.Error(t, err)
}
