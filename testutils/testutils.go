// Package testutils provides fixtures shared by the pointset and volume
// tests.
package testutils

import (
	"gonum.org/v1/gonum/mat"

	"github.com/voxelspace/neuroset/pointset"
	"github.com/voxelspace/neuroset/volume"
)

// TetrahedronCoords returns the four vertices of a unit tetrahedron.
func TetrahedronCoords() *mat.Dense {
	return mat.NewDense(4, 3, []float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// TetrahedronTriangles returns the four faces of a tetrahedron, indexing into
// TetrahedronCoords.
func TetrahedronTriangles() pointset.Triangles {
	return pointset.Triangles{
		{0, 1, 2},
		{0, 1, 3},
		{0, 2, 3},
		{1, 2, 3},
	}
}

// Tetrahedron returns a ready-made triangular mesh over the fixture vertices.
func Tetrahedron() *pointset.TriangularMesh {
	tm, err := pointset.NewTriangularMesh(pointset.MeshPair{
		Coords:    pointset.NewDenseCoordinates(TetrahedronCoords()),
		Triangles: TetrahedronTriangles(),
	})
	if err != nil {
		panic(err)
	}
	return tm
}

// AttrMesh exposes its mesh through accessors, exercising the MeshLike input
// shape.
type AttrMesh struct {
	C pointset.CoordinateArray
	T pointset.Triangles
}

// Coords returns the coordinate table.
func (m AttrMesh) Coords() pointset.CoordinateArray { return m.C }

// Triangles returns the face table.
func (m AttrMesh) Triangles() pointset.Triangles { return m.T }

// AccessorMesh produces its mesh on demand, exercising the MeshAccessor input
// shape.
type AccessorMesh struct {
	C pointset.CoordinateArray
	T pointset.Triangles
}

// GetMesh returns the coordinate table and face table together.
func (m AccessorMesh) GetMesh() (pointset.CoordinateArray, pointset.Triangles) {
	return m.C, m.T
}

// DiagonalMask returns a shape-sized volume with the main diagonal voxels
// set, a small asymmetric fixture for mask round-trips.
func DiagonalMask(extent int) *volume.Volume {
	vol, err := volume.New([]int{extent, extent, extent}, nil)
	if err != nil {
		panic(err)
	}
	for i := 0; i < extent; i++ {
		if err := vol.Set(i, i, i); err != nil {
			panic(err)
		}
	}
	return vol
}
