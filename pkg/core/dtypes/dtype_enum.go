// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

// DType is an enum that represents the data type of the unit element of an array
// (or of a scalar).
//
// The enum values are contiguous, so they can be used as indices of dense tables.
type DType int32

//go:generate go run github.com/dmarkham/enumer -type=DType

const (
	// InvalidDType serves as the default, and is never a valid data type.
	InvalidDType DType = iota

	// Bool is a two-state boolean.
	Bool

	// Int8 to Int64 are signed integers of fixed width.
	Int8
	Int16
	Int32
	Int64

	// Uint8 to Uint64 are unsigned integers of fixed width.
	Uint8
	Uint16
	Uint32
	Uint64

	// Float16 is the IEEE 754 half-precision float, see github.com/x448/float16.
	Float16

	// Float32 and Float64 are the IEEE 754 single- and double-precision floats.
	Float32
	Float64

	// BFloat16 is the truncated 16-bit "brain float": 1 sign bit, 8 exponent
	// bits and 7 mantissa bits. See the bfloat16 subpackage.
	BFloat16

	// Complex64 is a pair of Float32 (real, imag); Complex128 a pair of Float64.
	Complex64
	Complex128
)

// Short aliases for the dtypes, handy when listing shapes.
const (
	I8   = Int8
	I16  = Int16
	I32  = Int32
	I64  = Int64
	U8   = Uint8
	U16  = Uint16
	U32  = Uint32
	U64  = Uint64
	F16  = Float16
	F32  = Float32
	F64  = Float64
	BF16 = BFloat16
	C64  = Complex64
	C128 = Complex128
)

// MapOfNames maps names to their dtypes. It includes also the short aliases to
// the various dtypes, and it is initialized to also include the lower-case
// version of every name.
var MapOfNames = map[string]DType{
	"InvalidDType": InvalidDType,
	"Bool":         Bool,
	"Int8":         Int8,
	"I8":           Int8,
	"Int16":        Int16,
	"I16":          Int16,
	"Int32":        Int32,
	"I32":          Int32,
	"Int64":        Int64,
	"I64":          Int64,
	"Uint8":        Uint8,
	"U8":           Uint8,
	"Uint16":       Uint16,
	"U16":          Uint16,
	"Uint32":       Uint32,
	"U32":          Uint32,
	"Uint64":       Uint64,
	"U64":          Uint64,
	"Float16":      Float16,
	"F16":          Float16,
	"Float32":      Float32,
	"F32":          Float32,
	"Float64":      Float64,
	"F64":          Float64,
	"BFloat16":     BFloat16,
	"BF16":         BFloat16,
	"Complex64":    Complex64,
	"C64":          Complex64,
	"Complex128":   Complex128,
	"C128":         Complex128,
}
