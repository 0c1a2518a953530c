// Package volume provides a boolean voxel volume: a regularly gridded region
// of space where each cell is either set or unset, plus an affine mapping
// cell indices into a reference space. It is the image-side collaborator for
// grid point sets.
package volume

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MetaData tracks the index bounds of the set voxels.
type MetaData struct {
	MinIndex []int
	MaxIndex []int

	inited bool
}

// Merge extends the bounds to cover idx.
func (m *MetaData) Merge(idx []int) {
	if !m.inited {
		m.MinIndex = append([]int(nil), idx...)
		m.MaxIndex = append([]int(nil), idx...)
		m.inited = true
		return
	}
	for j, v := range idx {
		if v < m.MinIndex[j] {
			m.MinIndex[j] = v
		}
		if v > m.MaxIndex[j] {
			m.MaxIndex[j] = v
		}
	}
}

// Volume is a dense boolean voxel volume with an affine into a reference
// space. The zero value is not usable; construct with New.
type Volume struct {
	shape   []int
	strides []int
	data    []bool
	affine  *mat.Dense
	numSet  int
	meta    MetaData
}

// New creates an empty volume with the given per-axis extents. A nil affine
// defaults to the identity; otherwise it must be square of size one more than
// the number of axes.
func New(shape []int, affine mat.Matrix) (*Volume, error) {
	if len(shape) == 0 {
		return nil, errors.New("volume needs at least one axis")
	}
	total := 1
	for i, extent := range shape {
		if extent <= 0 {
			return nil, errors.Errorf("axis %d has nonpositive extent %d", i, extent)
		}
		total *= extent
	}

	n := len(shape) + 1
	var am *mat.Dense
	if affine == nil {
		am = mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			am.Set(i, i, 1)
		}
	} else {
		r, c := affine.Dims()
		if r != n || c != n {
			return nil, errors.Errorf("affine %dx%d does not fit a %d-axis volume", r, c, len(shape))
		}
		am = mat.DenseCopyOf(affine)
	}

	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return &Volume{
		shape:   append([]int(nil), shape...),
		strides: strides,
		data:    make([]bool, total),
		affine:  am,
	}, nil
}

// NDim returns the number of axes.
func (v *Volume) NDim() int {
	return len(v.shape)
}

// Shape returns the per-axis extents.
func (v *Volume) Shape() []int {
	return append([]int(nil), v.shape...)
}

// Affine returns the index-to-reference transform. Callers must not mutate
// the result.
func (v *Volume) Affine() mat.Matrix {
	return v.affine
}

// NumSet returns the number of set voxels.
func (v *Volume) NumSet() int {
	return v.numSet
}

// Bounds returns the per-axis index bounds of the set voxels. ok is false
// while no voxel has ever been set.
func (v *Volume) Bounds() (min, max []int, ok bool) {
	if !v.meta.inited {
		return nil, nil, false
	}
	return append([]int(nil), v.meta.MinIndex...), append([]int(nil), v.meta.MaxIndex...), true
}

// Set marks the voxel at idx.
func (v *Volume) Set(idx ...int) error {
	off, err := v.offset(idx)
	if err != nil {
		return err
	}
	if !v.data[off] {
		v.data[off] = true
		v.numSet++
		v.meta.Merge(idx)
	}
	return nil
}

// Clear unmarks the voxel at idx. Bounds are not shrunk by clearing.
func (v *Volume) Clear(idx ...int) error {
	off, err := v.offset(idx)
	if err != nil {
		return err
	}
	if v.data[off] {
		v.data[off] = false
		v.numSet--
	}
	return nil
}

// At reports whether the voxel at idx is set. Out-of-range indices read as
// unset.
func (v *Volume) At(idx ...int) bool {
	off, err := v.offset(idx)
	if err != nil {
		return false
	}
	return v.data[off]
}

func (v *Volume) offset(idx []int) (int, error) {
	if len(idx) != len(v.shape) {
		return 0, errors.Errorf("index %v does not match %d-axis volume", idx, len(v.shape))
	}
	off := 0
	for j, i := range idx {
		if i < 0 || i >= v.shape[j] {
			return 0, errors.Errorf("index %d out of bounds for axis %d with extent %d", i, j, v.shape[j])
		}
		off += i * v.strides[j]
	}
	return off, nil
}
