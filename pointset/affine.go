package pointset

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Tolerances for the approximate identity check. Composed transforms
// accumulate floating error, so exact comparison would defeat the fast path.
const (
	identAbsTol = 1e-8
	identRelTol = 1e-5
)

// AffineTransform is a homogeneous affine map represented as a (d+1)x(d+1)
// matrix. It is an immutable value: composition returns a new transform and
// no method mutates the receiver.
type AffineTransform struct {
	m *mat.Dense
}

// NewAffineTransform validates and wraps the given matrix. The matrix must be
// square and its last row must be exactly [0, ..., 0, 1]. The input is copied
// so later mutation of m cannot alter the transform.
func NewAffineTransform(m mat.Matrix) (AffineTransform, error) {
	r, c := m.Dims()
	if r != c || r < 2 {
		return AffineTransform{}, NewShapeError(r, c, r, r)
	}
	d := mat.DenseCopyOf(m)
	last := d.RawRowView(r - 1)
	for j := 0; j < c-1; j++ {
		if last[j] != 0 {
			return AffineTransform{}, NewInvalidTransformError(last)
		}
	}
	if last[c-1] != 1 {
		return AffineTransform{}, NewInvalidTransformError(last)
	}
	return AffineTransform{m: d}, nil
}

// IdentityTransform returns the identity map over dim spatial dimensions.
func IdentityTransform(dim int) AffineTransform {
	m := mat.NewDense(dim+1, dim+1, nil)
	for i := 0; i <= dim; i++ {
		m.Set(i, i, 1)
	}
	return AffineTransform{m: m}
}

// Dim returns the number of spatial dimensions the transform acts on.
func (a AffineTransform) Dim() int {
	r, _ := a.m.Dims()
	return r - 1
}

// Mat exposes the underlying matrix. Callers must not mutate it.
func (a AffineTransform) Mat() *mat.Dense {
	return a.m
}

// Dims, At and T let an AffineTransform be used anywhere a gonum matrix is
// expected.
func (a AffineTransform) Dims() (int, int) { return a.m.Dims() }

// At returns the matrix entry at row i, column j.
func (a AffineTransform) At(i, j int) float64 { return a.m.At(i, j) }

// T returns the transpose of the matrix.
func (a AffineTransform) T() mat.Matrix { return a.m.T() }

// IsIdentity reports whether the transform is the identity within floating
// tolerance.
func (a AffineTransform) IsIdentity() bool {
	n, _ := a.m.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if !scalar.EqualWithinAbsOrRel(a.m.At(i, j), want, identAbsTol, identRelTol) {
				return false
			}
		}
	}
	return true
}

// Compose returns outer·a as a new transform. The receiver is unchanged. The
// outer matrix must match the transform's size and the product must itself be
// a valid homogeneous transform.
func (a AffineTransform) Compose(outer mat.Matrix) (AffineTransform, error) {
	n, _ := a.m.Dims()
	r, c := outer.Dims()
	if r != n || c != n {
		return AffineTransform{}, NewShapeError(r, c, n, n)
	}
	var out mat.Dense
	out.Mul(outer, a.m)
	return NewAffineTransform(&out)
}

// Apply maps homogeneous coordinate rows through the transform, computing
// (A·Cᵀ)ᵀ as a fresh matrix.
func (a AffineTransform) Apply(coords *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Mul(coords, a.m.T())
	return &out
}
