package clblast

import "github.com/fxnlabs/clblast/pkg/clblast/native"

// Scalar is the set of element types CLBlast computes on.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Complex is the subset of Scalar that has a distinct conjugate.
type Complex interface {
	complex64 | complex128
}

// Element is any type a vector buffer may hold. Index results are uint32.
type Element interface {
	Scalar | uint32
}

type precision int

const (
	single precision = iota
	double
	complexSingle
	complexDouble
)

func precisionOf[T Scalar]() precision {
	var zero T
	switch any(zero).(type) {
	case float32:
		return single
	case float64:
		return double
	case complex64:
		return complexSingle
	default:
		return complexDouble
	}
}

// ToFloat2 converts a complex64 to its OpenCL wire form.
func ToFloat2(v complex64) native.Float2 {
	return native.Float2{S: [2]float32{real(v), imag(v)}}
}

// FromFloat2 is the inverse of ToFloat2.
func FromFloat2(v native.Float2) complex64 {
	return complex(v.S[0], v.S[1])
}

// ToDouble2 converts a complex128 to its OpenCL wire form.
func ToDouble2(v complex128) native.Double2 {
	return native.Double2{S: [2]float64{real(v), imag(v)}}
}

// FromDouble2 is the inverse of ToDouble2.
func FromDouble2(v native.Double2) complex128 {
	return complex(v.S[0], v.S[1])
}

func one[T Scalar]() T {
	return T(1)
}
