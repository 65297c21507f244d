// An interactive constrained Delaunay triangulation package for Go.
//
// This package triangulates the interior of a simple polygon and keeps the
// triangulation Delaunay while points are inserted, removed, relocated, and
// constrained edges are pinned. The triangulation is stored as a halfedge
// mesh; callers hold the *Point values they inserted and pass them back to
// constrain or remove them later.
//
// This is the guarded surface: invalid input surfaces as an error. The mesh
// subpackage exposes the same engine with panics instead, for callers
// composing many edits that want a single recover boundary.
package cdtmesh

import "github.com/osuushi/cdtmesh/mesh"

type Point = mesh.Point
type HalfEdge = mesh.HalfEdge
type Edge = mesh.Edge
type Triangle = mesh.Triangle
type Coords3D = mesh.Coords3D

// Mesh is a constrained Delaunay triangulation of a simple polygon.
type Mesh struct {
	m *mesh.Mesh
}

// New triangulates the interior of the boundary polygon, given in clockwise
// order, and returns the live mesh. epsilon is the squared distance below
// which two points are considered the same point.
func New(boundary []*Point, epsilon float64) (result *Mesh, err error) {
	defer func() {
		if recoveredErr := mesh.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	m := mesh.New(epsilon)
	m.Init(boundary)
	return &Mesh{m: m}, nil
}

// SetName names the mesh in diagnostics.
func (mw *Mesh) SetName(s string) { mw.m.SetName(s) }

// AddInteriorPoint inserts p, which must lie inside the boundary. Returns
// the live point: p itself, or the existing point p deduplicated onto.
func (mw *Mesh) AddInteriorPoint(p *Point) (result *Point, err error) {
	defer func() {
		if recoveredErr := mesh.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return mw.m.AddInteriorPoint(p), nil
}

// AddBoundaryPoint inserts p onto the boundary edge he, splitting it.
func (mw *Mesh) AddBoundaryPoint(p *Point, he *HalfEdge) (result *Point, err error) {
	defer func() {
		if recoveredErr := mesh.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return mw.m.AddBoundaryPoint(p, he), nil
}

// AddConstraint pins the segment between two existing vertices so that the
// triangulation always contains it. Returns the first constrained halfedge
// out of pStart, or nil if the segment lies on the boundary.
func (mw *Mesh) AddConstraint(pStart, pEnd *Point) (result *HalfEdge, err error) {
	defer func() {
		if recoveredErr := mesh.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return mw.m.AddConstraint(pStart, pEnd), nil
}

// RemoveInteriorPoint deletes p and re-triangulates the hole.
func (mw *Mesh) RemoveInteriorPoint(p *Point) (err error) {
	defer func() {
		if recoveredErr := mesh.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	mw.m.RemoveInteriorPoint(p)
	return nil
}

// UpdateInteriorPoint re-triangulates around p after its coordinates were
// changed, replaying constraints that touched it. Returns the live point.
func (mw *Mesh) UpdateInteriorPoint(p *Point) (result *Point, err error) {
	defer func() {
		if recoveredErr := mesh.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return mw.m.UpdateInteriorPoint(p), nil
}

// UpdateBoundaryPointOutside re-triangulates around the boundary point p
// after it was moved away from the interior.
func (mw *Mesh) UpdateBoundaryPointOutside(p *Point) (err error) {
	defer func() {
		if recoveredErr := mesh.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	mw.m.UpdateBoundaryPointOutside(p)
	return nil
}

// ConstrainAllEdges pins every interior edge of the current triangulation.
func (mw *Mesh) ConstrainAllEdges() { mw.m.ConstrainAllEdges() }

// UpdateDelaunayAll re-tests every edge, e.g. after translating the mesh.
func (mw *Mesh) UpdateDelaunayAll() { mw.m.UpdateDelaunayAll() }

// Translate rigidly moves every point.
func (mw *Mesh) Translate(x, y float64) { mw.m.Translate(x, y) }

// Validate checks the structural invariants of the mesh.
func (mw *Mesh) Validate() (err error) {
	defer func() {
		if recoveredErr := mesh.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return mw.m.Validate()
}

func (mw *Mesh) Size() int                      { return mw.m.Size() }
func (mw *Mesh) BoundarySize() int              { return mw.m.BoundarySize() }
func (mw *Mesh) Points() []*Point               { return mw.m.Points() }
func (mw *Mesh) Faces() []Triangle              { return mw.m.Faces() }
func (mw *Mesh) Edges() []Edge                  { return mw.m.Edges() }
func (mw *Mesh) FaceCoordinates() [][2]float64  { return mw.m.FaceCoordinates() }
func (mw *Mesh) FaceCoordinates3D() []Coords3D  { return mw.m.FaceCoordinates3D() }
func (mw *Mesh) PointCoordinates3D() []Coords3D { return mw.m.PointCoordinates3D() }
func (mw *Mesh) DumpPoints() string             { return mw.m.DumpPoints() }
func (mw *Mesh) DumpHalfEdges() string          { return mw.m.DumpHalfEdges() }

// Engine exposes the unguarded engine for callers composing many edits under
// their own recover boundary.
func (mw *Mesh) Engine() *mesh.Mesh { return mw.m }
