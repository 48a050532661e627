// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package bfloat16 is a trivial implementation for the bfloat16 type,
// based on https://github.com/x448/float16 and the pending issue in
// https://github.com/x448/float16/issues/22
package bfloat16

import (
	"math"
	"strconv"
)

// BFloat16 (brain floating point) floating-point format is a computer number format occupying 16 bits in
// computer memory; it represents a wide dynamic range of numeric values by using a floating radix point.
// This format is a shortened (16-bit) version of the 32-bit IEEE 754 single-precision floating-point format
// (binary32) with the intent of accelerating machine learning and near-sensor computing.
type BFloat16 uint16

// Float32 converts the BFloat16 to a float32: this conversion is exact.
func (f BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(f) << 16)
}

// FromFloat32 converts a float32 to a BFloat16, by truncation of the mantissa.
func FromFloat32(x float32) BFloat16 {
	return BFloat16(math.Float32bits(x) >> 16)
}

// FromFloat64 converts a float64 to a BFloat16.
func FromFloat64(x float64) BFloat16 {
	return FromFloat32(float32(x))
}

// FromBits convert an uint16 to a BFloat16.
func FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}

// Bits convert BFloat16 to an uint16.
func (f BFloat16) Bits() uint16 {
	return uint16(f)
}

// Inf returns the BFloat16 infinity with the given sign: positive infinity
// for sign >= 0 and negative infinity for sign < 0.
func Inf(sign int) BFloat16 {
	if sign < 0 {
		return BFloat16(0xFF80)
	}
	return BFloat16(0x7F80)
}

// SmallestNonzero is the smallest positive non-zero (subnormal) BFloat16 value.
const SmallestNonzero = BFloat16(0x0001)

// IsNaN reports whether f is an IEEE 754 "not-a-number" value.
func (f BFloat16) IsNaN() bool {
	return f&0x7F80 == 0x7F80 && f&0x007F != 0
}

// IsInf reports whether f is an infinity with the sign convention of math.IsInf.
func (f BFloat16) IsInf(sign int) bool {
	return (sign >= 0 && f == Inf(1)) || (sign <= 0 && f == Inf(-1))
}

// String implements fmt.Stringer, and prints a float representation of the BFloat16.
func (f BFloat16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'f', -1, 32)
}
