package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineEpsilon(t *testing.T) {
	// the returned epsilon is the largest value that rounds away when added
	// to one
	e := machineEpsilon()
	assert.Equal(t, 1.0, 1.0+e)
	assert.NotEqual(t, 1.0, 1.0+2*e)
}

func TestOrient(t *testing.T) {
	m := New(1e-9)
	a := &Point{X: 0, Y: 0}
	b := &Point{X: 10, Y: 0}

	assert.Positive(t, m.orient(a, b, &Point{X: 5, Y: 1}))
	assert.Negative(t, m.orient(a, b, &Point{X: 5, Y: -1}))
	assert.Zero(t, m.orient(a, b, &Point{X: 5, Y: 0}))
	assert.Zero(t, m.orient(a, b, &Point{X: 20, Y: 0}))
}

func TestIncircle(t *testing.T) {
	m := New(1e-9)
	// CCW triangle on the unit circle
	a := &Point{X: 1, Y: 0}
	b := &Point{X: 0, Y: 1}
	c := &Point{X: -1, Y: 0}

	assert.Positive(t, m.incircle(a, b, c, &Point{X: 0, Y: -0.5}))
	assert.Negative(t, m.incircle(a, b, c, &Point{X: 0, Y: -2}))
	assert.Zero(t, m.incircle(a, b, c, &Point{X: 0, Y: -1}))
}

func TestCoincident(t *testing.T) {
	m := New(1e-4)
	a := &Point{X: 1, Y: 1}

	assert.True(t, m.coincident(a, &Point{X: 1.001, Y: 1}))
	assert.False(t, m.coincident(a, &Point{X: 1.1, Y: 1}))
}

func TestBetween(t *testing.T) {
	m := New(1e-9)
	a := &Point{X: 0, Y: 0}
	b := &Point{X: 10, Y: 0}

	on := &Point{X: 5, Y: 0}
	off := &Point{X: 5, Y: 1}
	beyond := &Point{X: 11, Y: 0}

	assert.True(t, m.between(a, b, on))
	assert.False(t, m.between(a, b, off))
	assert.False(t, m.between(a, b, beyond))
	// endpoints count for between, not for betweenProper
	assert.True(t, m.between(a, b, a))
	assert.False(t, m.betweenProper(a, b, a))
	assert.True(t, m.betweenProper(a, b, on))
}

func TestIntersect(t *testing.T) {
	m := New(1e-9)
	a := &Point{X: 0, Y: 0}
	b := &Point{X: 10, Y: 10}
	c := &Point{X: 0, Y: 10}
	d := &Point{X: 10, Y: 0}

	assert.True(t, m.intersectProper(a, b, c, d))
	assert.True(t, m.intersect(a, b, c, d))

	// sharing an endpoint is improper
	assert.False(t, m.intersectProper(a, b, a, d))
	assert.True(t, m.intersect(a, b, a, d))

	// disjoint
	e := &Point{X: 20, Y: 20}
	f := &Point{X: 30, Y: 20}
	assert.False(t, m.intersect(a, b, e, f))
}

func TestIntersection(t *testing.T) {
	a := &Point{X: 0, Y: 0}
	b := &Point{X: 10, Y: 10}
	c := &Point{X: 0, Y: 10}
	d := &Point{X: 10, Y: 0}

	x, y, err := intersection(a, b, c, d)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, x, 1e-12)
	assert.InDelta(t, 5.0, y, 1e-12)

	// parallel overlapping segments have no single crossing
	_, _, err = intersection(a, b, a, b)
	assert.Error(t, err)
}
