package pointset

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"
)

// Triangles is an Mx3 table of vertex indices describing triangular faces.
type Triangles [][3]int

// MeshPair couples a coordinate array with a face-index table. It is the
// plainest mesh input shape.
type MeshPair struct {
	Coords    CoordinateArray
	Triangles Triangles
}

// MeshLike is satisfied by values exposing coordinate and face accessors.
type MeshLike interface {
	Coords() CoordinateArray
	Triangles() Triangles
}

// MeshAccessor is satisfied by values that produce their mesh on demand.
type MeshAccessor interface {
	GetMesh() (CoordinateArray, Triangles)
}

// TriangularMesh is a point set whose faces are triplets of vertex indices
// into the coordinate table.
type TriangularMesh struct {
	PointSet
	triangles Triangles
}

// NewTriangularMesh builds a mesh from any of the recognized input shapes: a
// MeshPair, a MeshLike, or a MeshAccessor. Face indices are not range-checked
// here; see ValidateTriangles.
func NewTriangularMesh(input interface{}) (*TriangularMesh, error) {
	coords, triangles, err := resolveMeshInput(input)
	if err != nil {
		return nil, err
	}
	ps, err := NewPointSet(coords, nil, false)
	if err != nil {
		return nil, err
	}
	return &TriangularMesh{PointSet: *ps, triangles: triangles}, nil
}

// resolveMeshInput reduces any recognized input shape to the canonical
// (coords, triangles) pair.
func resolveMeshInput(input interface{}) (CoordinateArray, Triangles, error) {
	switch m := input.(type) {
	case MeshPair:
		return m.Coords, m.Triangles, nil
	case *MeshPair:
		return m.Coords, m.Triangles, nil
	case MeshLike:
		return m.Coords(), m.Triangles(), nil
	case MeshAccessor:
		coords, triangles := m.GetMesh()
		return coords, triangles, nil
	}
	return nil, nil, NewUnsupportedInputError(input)
}

// NumTriangles returns the number of faces.
func (tm *TriangularMesh) NumTriangles() int {
	return len(tm.triangles)
}

// GetTriangles returns the face-index table unchanged.
func (tm *TriangularMesh) GetTriangles() Triangles {
	return tm.triangles
}

// GetMesh returns the transformed coordinates together with the face table.
// The base mesh has a single coordinate set, so name is ignored.
func (tm *TriangularMesh) GetMesh(name string) (*mat.Dense, Triangles, error) {
	return tm.Coords(false), tm.triangles, nil
}

// Names reports the selectable coordinate-set names. A plain triangular mesh
// has none.
func (tm *TriangularMesh) Names() ([]string, error) {
	return nil, ErrUnnamedMesh
}

// ValidateTriangles checks that every face references a valid vertex row,
// reporting all violations at once. Construction never runs this; callers
// opt in.
func (tm *TriangularMesh) ValidateTriangles() error {
	rows, _ := tm.Shape()
	var result error
	for i, tri := range tm.triangles {
		for _, vertex := range tri {
			if vertex < 0 || vertex >= rows {
				result = multierr.Append(result,
					errors.Errorf("triangle %d references vertex %d outside [0, %d)", i, vertex, rows))
			}
		}
	}
	return result
}

// Face resolves face i against the current transformed coordinates. The mesh
// must be three-dimensional.
func (tm *TriangularMesh) Face(i int) (Face, error) {
	if i < 0 || i >= len(tm.triangles) {
		return Face{}, errors.Errorf("face %d out of range [0, %d)", i, len(tm.triangles))
	}
	if tm.Dim() != 3 {
		return Face{}, errors.Errorf("faces need 3D coordinates, mesh is %dD", tm.Dim())
	}
	coords := tm.Coords(false)
	rows, _ := coords.Dims()
	var pts [3]r3.Vector
	for k, vertex := range tm.triangles[i] {
		if vertex < 0 || vertex >= rows {
			return Face{}, errors.Errorf("triangle %d references vertex %d outside [0, %d)", i, vertex, rows)
		}
		pts[k] = r3.Vector{X: coords.At(vertex, 0), Y: coords.At(vertex, 1), Z: coords.At(vertex, 2)}
	}
	return Face{p0: pts[0], p1: pts[1], p2: pts[2]}, nil
}

// Face is a triangle resolved to its vertex positions.
type Face struct {
	p0, p1, p2 r3.Vector
}

// Points returns the three vertices of the face.
func (f Face) Points() []r3.Vector {
	return []r3.Vector{f.p0, f.p1, f.p2}
}

// Normal returns the unit normal of the face plane.
func (f Face) Normal() r3.Vector {
	return f.p1.Sub(f.p0).Cross(f.p2.Sub(f.p0)).Normalize()
}

// Area returns the area of the face.
func (f Face) Area() float64 {
	return f.p1.Sub(f.p0).Cross(f.p2.Sub(f.p0)).Norm() / 2
}

// Centroid returns the mean of the three vertices.
func (f Face) Centroid() r3.Vector {
	return f.p0.Add(f.p1).Add(f.p2).Mul(1.0 / 3.0)
}
