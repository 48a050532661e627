// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package typing

import (
	"reflect"
	"testing"

	"github.com/gomlx/arrays/pkg/core/dtypes"
	"github.com/gomlx/arrays/pkg/core/shapes"
	"github.com/gomlx/arrays/pkg/core/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDType(t *testing.T) {
	// Every accepted denotation of float32 must normalize to Float32.
	float32Array := tensors.FromValue([]float32{0})
	for _, dtypeLike := range []DTypeLike{
		dtypes.Float32,
		"Float32",
		"float32",
		"F32",
		"f32",
		reflect.TypeOf(float32(0)),
		float32Array,
	} {
		assert.Equalf(t, dtypes.Float32, ToDType(dtypeLike), "ToDType(%v %T)", dtypeLike, dtypeLike)
	}

	assert.Equal(t, dtypes.Int64, ToDType("int64"))
	assert.Equal(t, dtypes.Bool, ToDType(reflect.TypeOf(true)))
	assert.Equal(t, dtypes.Complex128, ToDType(dtypes.C128))

	// Anything that doesn't denote a dtype panics.
	require.Panics(t, func() { ToDType("not-a-dtype") })
	require.Panics(t, func() { ToDType(42) })
	require.Panics(t, func() { ToDType(nil) })
}

func TestToArray(t *testing.T) {
	// Scalars become rank-0 arrays of their own dtype.
	for _, test := range []struct {
		value     ArrayLike
		wantDType DType
	}{
		{true, dtypes.Bool},
		{float32(1), dtypes.Float32},
		{3.14, dtypes.Float64},
		{int32(7), dtypes.Int32},
		{uint8(255), dtypes.Uint8},
		{complex64(1 + 2i), dtypes.Complex64},
		{complex128(3i), dtypes.Complex128},
	} {
		array := ToArray(test.value)
		require.Truef(t, array.IsScalar(), "ToArray(%v %T)", test.value, test.value)
		assert.Equalf(t, test.wantDType, array.DType(), "ToArray(%v %T)", test.value, test.value)
		assert.Equalf(t, test.value, array.Value(), "ToArray(%v %T)", test.value, test.value)
	}

	// Sequences become arrays of the corresponding rank and element type.
	for _, test := range []struct {
		value     ArrayLike
		wantShape Shape
	}{
		{[]bool{true, false}, shapes.Make(dtypes.Bool, 2)},
		{[]float32{0, 1, 2}, shapes.Make(dtypes.Float32, 3)},
		{[]float64{0}, shapes.Make(dtypes.Float64, 1)},
		{[][]int32{{1, 2}, {3, 4}, {5, 6}}, shapes.Make(dtypes.Int32, 3, 2)},
		{[][][]complex64{{{1i}}}, shapes.Make(dtypes.Complex64, 1, 1, 1)},
	} {
		array := ToArray(test.value)
		require.Truef(t, array.Shape().Equal(test.wantShape), "ToArray(%v): got shape %s, want %s",
			test.value, array.Shape(), test.wantShape)
		assert.Equalf(t, test.value, array.Value(), "ToArray(%v)", test.value)
	}

	// An array input is passed through unchanged.
	array := tensors.FromValue([]float32{1, 2})
	assert.Same(t, array, ToArray(array))

	// Conversion under the value's own dtype is the identity: it must equal
	// direct construction.
	direct := tensors.FromValue([]float64{1, 2, 3})
	assert.True(t, direct.Equal(ToArray([]float64{1, 2, 3})))

	require.Panics(t, func() { ToArray("blah") })
	require.Panics(t, func() { ToArray([][]float32{{1}, {2, 3}}) })
}

func TestIsArray(t *testing.T) {
	assert.True(t, IsArray(tensors.FromScalar(float32(1))))
	assert.True(t, IsArray(ToArray([]int32{1, 2})))

	assert.False(t, IsArray(float32(1)))
	assert.False(t, IsArray([]float32{1}))
	assert.False(t, IsArray(shapes.Make(dtypes.Float32, 1)))
	assert.False(t, IsArray(nil))
}
