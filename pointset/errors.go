package pointset

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnnamedMesh is returned by Names on a mesh with a single, unnamed
// coordinate set.
var ErrUnnamedMesh = errors.New("mesh does not define named coordinate sets")

// ShapeError indicates a matrix whose dimensions do not fit where it is used.
type ShapeError struct {
	GotRows, GotCols   int
	WantRows, WantCols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("expected a %dx%d matrix but got %dx%d",
		e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}

// NewShapeError is used when a matrix has the wrong dimensions.
func NewShapeError(gotRows, gotCols, wantRows, wantCols int) error {
	return &ShapeError{GotRows: gotRows, GotCols: gotCols, WantRows: wantRows, WantCols: wantCols}
}

// InvalidTransformError indicates an affine matrix whose last row is not
// [0, ..., 0, 1].
type InvalidTransformError struct {
	LastRow []float64
}

func (e *InvalidTransformError) Error() string {
	return fmt.Sprintf("invalid affine matrix: last row %v is not [0, ..., 0, 1]", e.LastRow)
}

// NewInvalidTransformError is used when an affine matrix is not a homogeneous
// transform.
func NewInvalidTransformError(lastRow []float64) error {
	row := make([]float64, len(lastRow))
	copy(row, lastRow)
	return &InvalidTransformError{LastRow: row}
}

// UnsupportedInputError indicates a mesh input matching none of the
// recognized shapes.
type UnsupportedInputError struct {
	Input interface{}
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("cannot interpret %T as a triangular mesh", e.Input)
}

// NewUnsupportedInputError is used when mesh construction is given a value it
// cannot interpret.
func NewUnsupportedInputError(input interface{}) error {
	return &UnsupportedInputError{Input: input}
}

// UnknownNameError indicates a coordinate-set name that was never registered.
type UnknownNameError struct {
	Name  string
	Known []string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("no coordinate set named %q (known: %v)", e.Name, e.Known)
}

// NewUnknownNameError is used when a named lookup misses.
func NewUnknownNameError(name string, known []string) error {
	names := make([]string, len(known))
	copy(names, known)
	return &UnknownNameError{Name: name, Known: names}
}
