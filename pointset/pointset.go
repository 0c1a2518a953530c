package pointset

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// PointSet is a collection of points described by coordinate rows, together
// with an affine transform into a target space. The coordinate backing is
// held by reference and never copied by transform composition; the affine is
// only applied when coordinates are requested.
type PointSet struct {
	coordinates CoordinateArray
	affine      AffineTransform
	homogeneous bool
}

// NewPointSet couples coords with an affine transform. A nil affine defaults
// to the identity. When homogeneous is true the coordinate rows are taken to
// already carry a trailing 1 (so a row has dim+1 entries). The affine must be
// (dim+1)x(dim+1).
func NewPointSet(coords CoordinateArray, affine mat.Matrix, homogeneous bool) (*PointSet, error) {
	if coords == nil {
		return nil, errors.New("coordinates must not be nil")
	}
	_, cols := coords.Dims()
	dim := cols
	if homogeneous {
		dim--
	}
	if dim < 1 {
		return nil, errors.Errorf("coordinates with %d columns leave no spatial axes", cols)
	}

	var at AffineTransform
	if affine == nil {
		at = IdentityTransform(dim)
	} else {
		var err error
		at, err = NewAffineTransform(affine)
		if err != nil {
			return nil, err
		}
		if at.Dim() != dim {
			r, c := affine.Dims()
			return nil, NewShapeError(r, c, dim+1, dim+1)
		}
	}
	return &PointSet{coordinates: coords, affine: at, homogeneous: homogeneous}, nil
}

// Coordinates returns the raw coordinate backing, untransformed.
func (ps *PointSet) Coordinates() CoordinateArray {
	return ps.coordinates
}

// Affine returns the transform applied when coordinates are requested.
func (ps *PointSet) Affine() AffineTransform {
	return ps.affine
}

// Homogeneous reports whether the stored rows carry a trailing 1.
func (ps *PointSet) Homogeneous() bool {
	return ps.homogeneous
}

// Shape returns the dimensions of the coordinate table.
func (ps *PointSet) Shape() (rows, cols int) {
	return ps.coordinates.Dims()
}

// NumCoords returns the number of points.
func (ps *PointSet) NumCoords() int {
	rows, _ := ps.coordinates.Dims()
	return rows
}

// Dim returns the dimensionality of the space the points live in.
func (ps *PointSet) Dim() int {
	_, cols := ps.coordinates.Dims()
	if ps.homogeneous {
		return cols - 1
	}
	return cols
}

// Coords returns the coordinates with the affine applied, as [N, dim] rows,
// or [N, dim+1] when asHomogeneous is true. When the stored homogeneity
// matches the request and the affine is the identity, the raw densified
// coordinates are returned without transformation or copying.
func (ps *PointSet) Coords(asHomogeneous bool) *mat.Dense {
	ident := ps.affine.IsIdentity()
	if ps.homogeneous == asHomogeneous && ident {
		return ps.coordinates.AsDense()
	}
	coords := ps.homogeneousCoords()
	if !ident {
		coords = ps.affine.Apply(coords)
	}
	if !asHomogeneous {
		rows, cols := coords.Dims()
		coords = coords.Slice(0, rows, 0, cols-1).(*mat.Dense)
	}
	return coords
}

// TransformedBy left-composes m with the stored affine, returning a new
// PointSet that shares this one's coordinate backing. The receiver is
// unchanged; only the affine differs on the result.
func (ps *PointSet) TransformedBy(m mat.Matrix) (*PointSet, error) {
	composed, err := ps.affine.Compose(m)
	if err != nil {
		return nil, err
	}
	return &PointSet{
		coordinates: ps.coordinates,
		affine:      composed,
		homogeneous: ps.homogeneous,
	}, nil
}

// homogeneousCoords densifies the coordinates with a trailing column of ones
// appended when the stored rows are Cartesian.
func (ps *PointSet) homogeneousCoords() *mat.Dense {
	if ps.homogeneous {
		return ps.coordinates.AsDense()
	}
	raw := ps.coordinates.AsDense()
	rows, cols := raw.Dims()
	out := mat.NewDense(rows, cols+1, nil)
	out.Copy(raw)
	for i := 0; i < rows; i++ {
		out.Set(i, cols, 1)
	}
	return out
}
