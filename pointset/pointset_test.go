package pointset_test

import (
	"errors"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"github.com/voxelspace/neuroset/pointset"
)

func samplePoints() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
}

func TestNewPointSet(t *testing.T) {
	coords := pointset.NewDenseCoordinates(samplePoints())

	t.Run("defaults to identity affine", func(t *testing.T) {
		ps, err := pointset.NewPointSet(coords, nil, false)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ps.Dim(), test.ShouldEqual, 3)
		test.That(t, ps.NumCoords(), test.ShouldEqual, 3)
		test.That(t, ps.Affine().IsIdentity(), test.ShouldBeTrue)
	})

	t.Run("homogeneous flag lowers dim", func(t *testing.T) {
		ps, err := pointset.NewPointSet(coords, nil, true)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ps.Dim(), test.ShouldEqual, 2)
	})

	t.Run("wrong-size affine", func(t *testing.T) {
		// valid 3x3 homogeneous transform, but 3D coordinates need 4x4
		small := mat.NewDense(3, 3, []float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		})
		_, err := pointset.NewPointSet(coords, small, false)
		var shapeErr *pointset.ShapeError
		test.That(t, errors.As(err, &shapeErr), test.ShouldBeTrue)
	})

	t.Run("non-square affine", func(t *testing.T) {
		_, err := pointset.NewPointSet(coords, mat.NewDense(4, 3, nil), false)
		var shapeErr *pointset.ShapeError
		test.That(t, errors.As(err, &shapeErr), test.ShouldBeTrue)
	})

	t.Run("malformed last row", func(t *testing.T) {
		m := mat.NewDense(4, 4, nil)
		for i := 0; i < 4; i++ {
			m.Set(i, i, 1)
		}
		m.Set(3, 1, 0.5)
		_, err := pointset.NewPointSet(coords, m, false)
		var transformErr *pointset.InvalidTransformError
		test.That(t, errors.As(err, &transformErr), test.ShouldBeTrue)
	})

	t.Run("nil coordinates", func(t *testing.T) {
		_, err := pointset.NewPointSet(nil, nil, false)
		test.That(t, err, test.ShouldNotBeNil)
	})
}

func TestCoordsFastPath(t *testing.T) {
	raw := samplePoints()
	ps, err := pointset.NewPointSet(pointset.NewDenseCoordinates(raw), nil, false)
	test.That(t, err, test.ShouldBeNil)

	t.Run("identity affine returns the backing array", func(t *testing.T) {
		got := ps.Coords(false)
		test.That(t, got == raw, test.ShouldBeTrue)
	})

	t.Run("homogeneity mismatch appends ones", func(t *testing.T) {
		got := ps.Coords(true)
		test.That(t, got == raw, test.ShouldBeFalse)
		rows, cols := got.Dims()
		test.That(t, rows, test.ShouldEqual, 3)
		test.That(t, cols, test.ShouldEqual, 4)
		for i := 0; i < rows; i++ {
			test.That(t, got.At(i, 3), test.ShouldEqual, 1)
		}
	})

	t.Run("homogeneous storage round-trips", func(t *testing.T) {
		hraw := mat.NewDense(2, 4, []float64{
			1, 2, 3, 1,
			4, 5, 6, 1,
		})
		hps, err := pointset.NewPointSet(pointset.NewDenseCoordinates(hraw), nil, true)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, hps.Coords(true) == hraw, test.ShouldBeTrue)

		cart := hps.Coords(false)
		_, cols := cart.Dims()
		test.That(t, cols, test.ShouldEqual, 3)
		test.That(t, cart.At(1, 2), test.ShouldEqual, 6)
	})
}

func TestCoordsTransformed(t *testing.T) {
	raw := mat.NewDense(2, 3, []float64{
		1, 0, 0,
		0, 1, 0,
	})
	affine := mat.NewDense(4, 4, []float64{
		2, 0, 0, 10,
		0, 2, 0, 20,
		0, 0, 2, 30,
		0, 0, 0, 1,
	})
	ps, err := pointset.NewPointSet(pointset.NewDenseCoordinates(raw), affine, false)
	test.That(t, err, test.ShouldBeNil)

	t.Run("cartesian", func(t *testing.T) {
		want := mat.NewDense(2, 3, []float64{
			12, 20, 30,
			10, 22, 30,
		})
		test.That(t, mat.EqualApprox(ps.Coords(false), want, 1e-12), test.ShouldBeTrue)
	})

	t.Run("homogeneous", func(t *testing.T) {
		got := ps.Coords(true)
		_, cols := got.Dims()
		test.That(t, cols, test.ShouldEqual, 4)
		test.That(t, got.At(0, 3), test.ShouldEqual, 1)
	})

	t.Run("raw coordinates untouched", func(t *testing.T) {
		test.That(t, raw.At(0, 0), test.ShouldEqual, 1)
	})
}

func TestTransformedBy(t *testing.T) {
	raw := samplePoints()
	ps, err := pointset.NewPointSet(pointset.NewDenseCoordinates(raw), nil, false)
	test.That(t, err, test.ShouldBeNil)

	scale := mat.NewDense(4, 4, []float64{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	})
	shift := mat.NewDense(4, 4, []float64{
		1, 0, 0, 7,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})

	t.Run("coordinates shared by reference", func(t *testing.T) {
		scaled, err := ps.TransformedBy(scale)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, scaled.Coordinates().AsDense() == raw, test.ShouldBeTrue)
		test.That(t, ps.Affine().IsIdentity(), test.ShouldBeTrue)
	})

	t.Run("composition is associative", func(t *testing.T) {
		scaled, err := ps.TransformedBy(scale)
		test.That(t, err, test.ShouldBeNil)
		stepwise, err := scaled.TransformedBy(shift)
		test.That(t, err, test.ShouldBeNil)

		var product mat.Dense
		product.Mul(shift, scale)
		atOnce, err := ps.TransformedBy(&product)
		test.That(t, err, test.ShouldBeNil)

		test.That(t, mat.EqualApprox(stepwise.Coords(false), atOnce.Coords(false), 1e-9), test.ShouldBeTrue)
	})

	t.Run("composition with a bad matrix", func(t *testing.T) {
		_, err := ps.TransformedBy(mat.NewDense(3, 3, nil))
		var shapeErr *pointset.ShapeError
		test.That(t, errors.As(err, &shapeErr), test.ShouldBeTrue)
	})
}
