package pointset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// GridIndices generates the integer index lattice for a grid shape just in
// time. It exposes the dimensions of the full [N, ndim] index table without
// ever storing it; every densification recomputes the table from scratch.
type GridIndices struct {
	gridShape []int
	dtype     IntType
}

// NewGridIndices creates a lattice generator over the given per-axis extents.
// The element type is the narrowest integer type fitting the extents. There
// must be at least one axis and every extent must be positive.
func NewGridIndices(extents ...int) *GridIndices {
	if len(extents) == 0 {
		panic("grid needs at least one axis")
	}
	shape := make([]int, len(extents))
	for i, e := range extents {
		if e <= 0 {
			panic(fmt.Sprintf("grid extent %d is not positive: %d", i, e))
		}
		shape[i] = e
	}
	return &GridIndices{gridShape: shape, dtype: FittingIntType(shape...)}
}

// GridShape returns the per-axis extents.
func (g *GridIndices) GridShape() []int {
	shape := make([]int, len(g.gridShape))
	copy(shape, g.gridShape)
	return shape
}

// DType reports the integer element type the indices fit in.
func (g *GridIndices) DType() IntType {
	return g.dtype
}

// Dims returns the dimensions of the index table: the product of the extents
// by the number of axes.
func (g *GridIndices) Dims() (int, int) {
	return g.NumIndices(), len(g.gridShape)
}

// NumIndices returns the number of lattice points.
func (g *GridIndices) NumIndices() int {
	n := 1
	for _, e := range g.gridShape {
		n *= e
	}
	return n
}

// AsDense materializes the full index table in row-major order: the first
// axis varies slowest, the last axis fastest. The result is recomputed on
// every call and never cached.
func (g *GridIndices) AsDense() *mat.Dense {
	rows, cols := g.Dims()
	out := mat.NewDense(rows, cols, nil)
	sub := make([]int, cols)
	for i := 0; i < rows; i++ {
		subscriptFor(sub, i, g.gridShape)
		for j, v := range sub {
			out.Set(i, j, float64(v))
		}
	}
	return out
}

func (g *GridIndices) String() string {
	return fmt.Sprintf("<GridIndices%v>", g.gridShape)
}

// subscriptFor fills sub with the row-major multi-dimensional subscript of
// linear index idx under the given per-axis extents. idx must lie within the
// lattice and sub must have one slot per axis.
func subscriptFor(sub []int, idx int, dims []int) {
	stride := 1
	for i := 1; i < len(dims); i++ {
		stride *= dims[i]
	}
	for i := 0; i < len(dims)-1; i++ {
		sub[i] = idx / stride
		idx -= sub[i] * stride
		stride /= dims[i+1]
	}
	sub[len(dims)-1] = idx
}
