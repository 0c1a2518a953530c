package volume_test

import (
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"github.com/voxelspace/neuroset/volume"
)

func TestNew(t *testing.T) {
	t.Run("identity affine by default", func(t *testing.T) {
		vol, err := volume.New([]int{2, 3, 4}, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, vol.NDim(), test.ShouldEqual, 3)
		test.That(t, vol.Shape(), test.ShouldResemble, []int{2, 3, 4})
		ident := mat.NewDense(4, 4, nil)
		for i := 0; i < 4; i++ {
			ident.Set(i, i, 1)
		}
		test.That(t, mat.Equal(vol.Affine(), ident), test.ShouldBeTrue)
	})

	t.Run("affine is copied", func(t *testing.T) {
		affine := mat.NewDense(4, 4, nil)
		for i := 0; i < 4; i++ {
			affine.Set(i, i, 1)
		}
		vol, err := volume.New([]int{2, 2, 2}, affine)
		test.That(t, err, test.ShouldBeNil)
		affine.Set(0, 3, 42)
		test.That(t, vol.Affine().At(0, 3), test.ShouldEqual, 0)
	})

	t.Run("bad shapes", func(t *testing.T) {
		_, err := volume.New(nil, nil)
		test.That(t, err, test.ShouldNotBeNil)
		_, err = volume.New([]int{2, 0, 2}, nil)
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("affine size mismatch", func(t *testing.T) {
		_, err := volume.New([]int{2, 2, 2}, mat.NewDense(3, 3, nil))
		test.That(t, err, test.ShouldNotBeNil)
	})
}

func TestSetAtClear(t *testing.T) {
	vol, err := volume.New([]int{2, 3, 4}, nil)
	test.That(t, err, test.ShouldBeNil)

	t.Run("set and read back", func(t *testing.T) {
		test.That(t, vol.At(1, 2, 3), test.ShouldBeFalse)
		test.That(t, vol.Set(1, 2, 3), test.ShouldBeNil)
		test.That(t, vol.At(1, 2, 3), test.ShouldBeTrue)
		test.That(t, vol.NumSet(), test.ShouldEqual, 1)
	})

	t.Run("setting twice counts once", func(t *testing.T) {
		test.That(t, vol.Set(1, 2, 3), test.ShouldBeNil)
		test.That(t, vol.NumSet(), test.ShouldEqual, 1)
	})

	t.Run("clear", func(t *testing.T) {
		test.That(t, vol.Clear(1, 2, 3), test.ShouldBeNil)
		test.That(t, vol.At(1, 2, 3), test.ShouldBeFalse)
		test.That(t, vol.NumSet(), test.ShouldEqual, 0)
	})

	t.Run("out of range", func(t *testing.T) {
		test.That(t, vol.Set(2, 0, 0), test.ShouldNotBeNil)
		test.That(t, vol.Set(0, 0, -1), test.ShouldNotBeNil)
		test.That(t, vol.Set(0, 0), test.ShouldNotBeNil)
		test.That(t, vol.At(9, 9, 9), test.ShouldBeFalse)
	})
}

func TestBounds(t *testing.T) {
	vol, err := volume.New([]int{4, 4, 4}, nil)
	test.That(t, err, test.ShouldBeNil)

	_, _, ok := vol.Bounds()
	test.That(t, ok, test.ShouldBeFalse)

	test.That(t, vol.Set(1, 2, 3), test.ShouldBeNil)
	test.That(t, vol.Set(3, 0, 2), test.ShouldBeNil)

	minIdx, maxIdx, ok := vol.Bounds()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, minIdx, test.ShouldResemble, []int{1, 0, 2})
	test.That(t, maxIdx, test.ShouldResemble, []int{3, 2, 3})
}
