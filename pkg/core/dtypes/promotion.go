// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import (
	"reflect"

	"github.com/gomlx/exceptions"
)

// IsPromotableTo returns whether dtype can be promoted to target without
// changing its kind or losing width.
//
// For example, Int32 can be promoted to Int64, but not to Uint64.
func (dtype DType) IsPromotableTo(target DType) bool {
	if dtype == target {
		return true
	}

	// Check for same dtype category:
	isSameKind := (dtype == Bool && target == Bool) ||
		(dtype.IsInt() && target.IsInt() && dtype.IsUnsigned() == target.IsUnsigned()) ||
		(dtype.IsFloat() && target.IsFloat()) ||
		(dtype.IsComplex() && target.IsComplex())
	if !isSameKind {
		return false
	}
	return dtype.Bits() <= target.Bits()
}

// promotionKind orders the dtype categories for promotion: Bool < unsigned int
// < signed int < float < complex.
func promotionKind(dtype DType) int {
	switch {
	case dtype == Bool:
		return 0
	case dtype.IsUnsigned():
		return 1
	case dtype.IsInt():
		return 2
	case dtype.IsFloat():
		return 3
	case dtype.IsComplex():
		return 4
	}
	exceptions.Panicf("dtype %s has no promotion category", dtype)
	panic(nil)
}

// kindWithBits returns the dtype of the given promotion category with at least
// the given number of bits.
func kindWithBits(kind, bits int) DType {
	var ladder []DType
	switch kind {
	case 0:
		return Bool
	case 1:
		ladder = []DType{Uint8, Uint16, Uint32, Uint64}
	case 2:
		ladder = []DType{Int8, Int16, Int32, Int64}
	case 3:
		// BFloat16 loses to Float16 in mantissa, but both promote to Float32.
		ladder = []DType{Float16, Float32, Float64}
	case 4:
		ladder = []DType{Complex64, Complex128}
	}
	for _, dtype := range ladder {
		if dtype.Bits() >= bits {
			return dtype
		}
	}
	return ladder[len(ladder)-1]
}

// Promote returns the narrowest dtype both dtype and other can be promoted to.
//
// The category of the result is the largest category of the two (Bool <
// unsigned < signed < float < complex), and its width fits both inputs. A
// signed/unsigned integer mix promotes to the signed type with twice the
// unsigned width (capped at Int64), as there is no common lossless width
// otherwise. Float16 and BFloat16 promote to Float32 when mixed.
func (dtype DType) Promote(other DType) DType {
	if dtype == other {
		return dtype
	}
	if !dtype.IsSupported() || !other.IsSupported() {
		exceptions.Panicf("cannot promote invalid dtypes %s and %s", dtype, other)
	}

	kind0, kind1 := promotionKind(dtype), promotionKind(other)
	if kind0 == kind1 {
		if dtype.IsFloat16() && other.IsFloat16() {
			// Float16 x BFloat16: neither holds the other's mantissa/exponent.
			return Float32
		}
		if dtype.Bits() >= other.Bits() {
			return dtype
		}
		return other
	}

	lower, higher := dtype, other
	if kind0 > kind1 {
		lower, higher = higher, lower
	}
	if lower == Bool {
		return higher
	}
	if promotionKind(higher) == 2 && promotionKind(lower) == 1 {
		// Unsigned mixed with signed: need one more bit than the unsigned width.
		bits := max(higher.Bits(), 2*lower.Bits())
		return kindWithBits(2, bits)
	}
	// Crossing into float or complex: keep the higher category, widened to hold
	// the lower input if needed. Complex bit widths count both components.
	bits := higher.Bits()
	lowerBits := lower.Bits()
	if promotionKind(higher) == 4 {
		lowerBits *= 2
		if lower.IsComplex() {
			lowerBits = lower.Bits()
		}
	}
	if lowerBits > bits {
		bits = lowerBits
	}
	return kindWithBits(promotionKind(higher), bits)
}

// ResultDType returns the dtype resulting from combining the given values, the
// dtype inference rule for array-like conversions: each value contributes the
// dtype of its Go type (slices contribute their element type, HasDType values
// their carried dtype), and the contributions are pairwise promoted.
//
// It panics if no value is given or if any value has no inferrable dtype.
func ResultDType(values ...any) DType {
	if len(values) == 0 {
		exceptions.Panicf("ResultDType requires at least one value")
	}
	result := InvalidDType
	for _, value := range values {
		dtype := inferDType(value)
		if dtype == InvalidDType {
			exceptions.Panicf("cannot infer dtype from %v (%T)", value, value)
		}
		if result == InvalidDType {
			result = dtype
			continue
		}
		result = result.Promote(dtype)
	}
	return result
}

// inferDType finds the dtype of a scalar, a (nested) slice or a HasDType value.
func inferDType(value any) DType {
	if hasDType, ok := value.(HasDType); ok {
		return hasDType.DType()
	}
	t := reflect.TypeOf(value)
	if t == nil {
		return InvalidDType
	}
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	return FromGoType(t)
}
