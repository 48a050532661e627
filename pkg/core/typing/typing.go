// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package typing defines the public type aliases of the library: the "dtype-like" and
// "array-like" denotations accepted at API boundaries, and the conversions that
// normalize them.
//
// A "dtype-like" is anything that denotes an element type: a dtypes.DType itself, a
// name string (e.g. "float32", "f32"), a reflect.Type of a supported Go type, or any
// value implementing dtypes.HasDType. ToDType normalizes all of them to a DType.
//
// An "array-like" is anything convertible to an array: a scalar, a regular
// multidimensional slice, or an Array itself. ToArray normalizes all of them to an
// Array under the value's inferred element type.
package typing

import (
	"github.com/gomlx/arrays/pkg/core/dtypes"
	"github.com/gomlx/arrays/pkg/core/shapes"
	"github.com/gomlx/arrays/pkg/core/tensors"
)

// Re-export core types so typing.DType, typing.Shape etc. still work.
type (
	// DType of an array's elements.
	DType = dtypes.DType

	// Shape of an array: a DType plus its axes' dimensions.
	Shape = shapes.Shape

	// Array is the array instance type of the library.
	Array = *tensors.Tensor

	// HasDType is implemented by any value with a well-defined DType.
	HasDType = dtypes.HasDType

	// DTypeLike is anything that denotes an element type. See ToDType.
	DTypeLike = dtypes.DTypeLike

	// ArrayLike is anything convertible to an Array. See ToArray.
	ArrayLike = any
)

// ToDType normalizes a dtype-like value to its canonical DType.
//
// It accepts a DType, a name string (full, short or lowercase alias), a reflect.Type of
// a supported Go type, or any HasDType value. It panics on anything else.
func ToDType(value DTypeLike) DType {
	return dtypes.FromDTypeLike(value)
}

// ToArray normalizes an array-like value to an Array, under the value's inferred
// element type.
//
// Scalars become one-element arrays of rank 0, regular nested slices become arrays of
// the corresponding rank, and an Array is passed through unchanged. It panics on
// irregular slices or unsupported element types.
func ToArray(value ArrayLike) Array {
	t := tensors.FromAnyValue(value)
	return t.ConvertDType(dtypes.ResultDType(value))
}

// IsArray reports whether value is an Array instance.
func IsArray(value any) bool {
	_, ok := value.(Array)
	return ok
}
