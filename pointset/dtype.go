package pointset

import "math"

// IntType identifies the signed integer width used to store lattice indices.
type IntType int

// The supported index element types, narrowest first.
const (
	Int8 IntType = iota
	Int16
	Int32
	Int64
)

func (t IntType) String() string {
	switch t {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	default:
		return "int64"
	}
}

// Bits returns the width of the type in bits.
func (t IntType) Bits() int {
	switch t {
	case Int8:
		return 8
	case Int16:
		return 16
	case Int32:
		return 32
	default:
		return 64
	}
}

// FittingIntType returns the narrowest signed integer type that exactly
// represents every one of the given extents.
func FittingIntType(extents ...int) IntType {
	largest := 0
	for _, e := range extents {
		if e > largest {
			largest = e
		}
	}
	switch {
	case largest <= math.MaxInt8:
		return Int8
	case largest <= math.MaxInt16:
		return Int16
	case largest <= math.MaxInt32:
		return Int32
	}
	return Int64
}
