package pointset

import "gonum.org/v1/gonum/mat"

// CoordinateArray is the minimal contract a coordinate backing must satisfy:
// report its dimensions and densify on demand. Both externally owned dense
// matrices and just-in-time generators such as GridIndices satisfy it, so a
// PointSet never cares which it holds.
type CoordinateArray interface {
	// Dims returns the number of coordinate rows and columns.
	Dims() (rows, cols int)

	// AsDense returns the coordinates as a dense matrix. Implementations
	// backed by real storage return that storage without copying;
	// generators compute a fresh matrix on every call.
	AsDense() *mat.Dense
}

// DenseCoordinates adapts an externally owned dense matrix to the
// CoordinateArray contract. The matrix is held by reference, never copied.
type DenseCoordinates struct {
	m *mat.Dense
}

// NewDenseCoordinates wraps m without copying it.
func NewDenseCoordinates(m *mat.Dense) DenseCoordinates {
	return DenseCoordinates{m: m}
}

// Dims returns the dimensions of the wrapped matrix.
func (c DenseCoordinates) Dims() (int, int) {
	return c.m.Dims()
}

// AsDense returns the wrapped matrix itself.
func (c DenseCoordinates) AsDense() *mat.Dense {
	return c.m
}
