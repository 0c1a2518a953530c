package pointset

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/voxelspace/neuroset/volume"
)

// Image is the collaborator contract for anything carrying a voxel grid and a
// voxel-to-world affine, such as a loaded spatial image.
type Image interface {
	Shape() []int
	Affine() mat.Matrix
}

// MaskImage additionally exposes per-voxel boolean reads.
type MaskImage interface {
	Image
	At(idx ...int) bool
}

// Grid is a regularly spaced point set: voxel indices coupled with their
// affine projection into a reference space.
type Grid struct {
	PointSet
	dtype IntType
}

// NewGrid couples explicit lattice coordinates with an affine. Most callers
// want GridFromImage or GridFromMask instead.
func NewGrid(coords CoordinateArray, affine mat.Matrix) (*Grid, error) {
	ps, err := NewPointSet(coords, affine, false)
	if err != nil {
		return nil, err
	}
	raw := coords.AsDense()
	rows, cols := raw.Dims()
	extents := make([]int, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if v := int(raw.At(i, j)); v+1 > extents[j] {
				extents[j] = v + 1
			}
		}
	}
	return &Grid{PointSet: *ps, dtype: FittingIntType(extents...)}, nil
}

// GridFromImage builds a grid over the image's first three axes. The index
// table is generated just in time, never stored.
func GridFromImage(img Image) (*Grid, error) {
	shape := img.Shape()
	if len(shape) < 3 {
		return nil, errors.Errorf("image shape %v has fewer than 3 axes", shape)
	}
	for i, extent := range shape[:3] {
		if extent <= 0 {
			return nil, errors.Errorf("image shape %v has nonpositive extent %d on axis %d", shape, extent, i)
		}
	}
	indices := NewGridIndices(shape[:3]...)
	ps, err := NewPointSet(indices, img.Affine(), false)
	if err != nil {
		return nil, err
	}
	return &Grid{PointSet: *ps, dtype: indices.DType()}, nil
}

// GridFromMask builds a grid holding the explicit index of every true voxel,
// scanned in row-major order. The element type is the narrowest integer type
// fitting the mask's shape.
func GridFromMask(mask MaskImage) (*Grid, error) {
	shape := mask.Shape()
	ndim := len(shape)
	if ndim == 0 {
		return nil, errors.New("mask has no axes")
	}
	total := 1
	for _, extent := range shape {
		total *= extent
	}

	var rows []float64
	n := 0
	idx := make([]int, ndim)
	for i := 0; i < total; i++ {
		subscriptFor(idx, i, shape)
		if mask.At(idx...) {
			for _, v := range idx {
				rows = append(rows, float64(v))
			}
			n++
		}
	}
	if n == 0 {
		return nil, errors.New("mask selects no voxels")
	}
	ps, err := NewPointSet(NewDenseCoordinates(mat.NewDense(n, ndim, rows)), mask.Affine(), false)
	if err != nil {
		return nil, err
	}
	return &Grid{PointSet: *ps, dtype: FittingIntType(shape...)}, nil
}

// DType reports the integer element type that exactly fits the grid's
// indices.
func (g *Grid) DType() IntType {
	return g.dtype
}

// ToMask scatters the stored indices into a boolean volume carrying the
// grid's affine. A nil shape is inferred as one past the per-axis maximum
// stored index, over the spatial axes only. The stored coordinates must be
// nonnegative integer indices within the shape; the affine is not applied.
func (g *Grid) ToMask(shape []int) (*volume.Volume, error) {
	raw := g.Coordinates().AsDense()
	rows, _ := raw.Dims()
	dim := g.Dim()

	if shape == nil {
		shape = make([]int, dim)
		for j := 0; j < dim; j++ {
			maxIdx := 0.0
			for i := 0; i < rows; i++ {
				if v := raw.At(i, j); v > maxIdx {
					maxIdx = v
				}
			}
			shape[j] = int(maxIdx) + 1
		}
	} else if len(shape) != dim {
		return nil, errors.Errorf("mask shape %v does not match grid dimension %d", shape, dim)
	}

	vol, err := volume.New(shape, g.Affine().Mat())
	if err != nil {
		return nil, err
	}
	idx := make([]int, dim)
	for i := 0; i < rows; i++ {
		for j := 0; j < dim; j++ {
			v := raw.At(i, j)
			rounded := math.Round(v)
			if math.Abs(v-rounded) > 1e-9 {
				return nil, errors.Errorf("coordinate (%d, %d) = %v is not an integer index", i, j, v)
			}
			idx[j] = int(rounded)
		}
		if err := vol.Set(idx...); err != nil {
			return nil, errors.Wrapf(err, "coordinate row %d", i)
		}
	}
	return vol, nil
}
