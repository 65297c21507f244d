package mesh

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 100

// dbgDraw dumps the current mesh to /tmp/cdtmesh.png and cats it inline if
// the terminal supports it. Faces are filled dark, auxiliary edges drawn
// green, constraints magenta, the boundary cyan, points as white dots.
func (m *Mesh) dbgDraw(scale float64) {
	c := m.Draw(scale)
	c.SavePNG("/tmp/cdtmesh.png")
	imgcat.CatFile("/tmp/cdtmesh.png", os.Stdout)
}

// Draw renders the mesh into a fresh gg context at the given pixel scale.
func (m *Mesh) Draw(scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range m.points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Faces
	for _, f := range m.Faces() {
		c.MoveTo(f.A.X, f.A.Y)
		c.LineTo(f.B.X, f.B.Y)
		c.LineTo(f.C.X, f.C.Y)
		c.ClosePath()
	}
	c.SetRGB(0.1, 0.2, 0.1)
	c.Fill()

	// Edges, by type
	c.SetLineWidth(2)
	for _, pass := range []struct {
		t       EdgeType
		r, g, b float64
	}{
		{EdgeAuxiliary, 0, 0.6, 0},
		{EdgeConstraint, 0.8, 0, 0.8},
		{EdgeBoundary, 0, 0.8, 0.8},
	} {
		for _, e := range m.Edges() {
			if e.Type != pass.t {
				continue
			}
			c.MoveTo(e.P1.X, e.P1.Y)
			c.LineTo(e.P2.X, e.P2.Y)
		}
		c.SetRGB(pass.r, pass.g, pass.b)
		c.Stroke()
	}

	// Points
	c.SetRGB(1, 1, 1)
	for _, p := range m.points {
		c.DrawCircle(p.X, p.Y, 3/scale)
	}
	c.Fill()

	return c
}
