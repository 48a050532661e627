// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"testing"

	"github.com/gomlx/arrays/pkg/core/dtypes"
	"github.com/gomlx/arrays/pkg/core/dtypes/bfloat16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestConvertDType(t *testing.T) {
	// Identity conversion returns the tensor itself.
	tensor := FromValue([]float32{1, 2, 3})
	assert.Same(t, tensor, tensor.ConvertDType(dtypes.Float32))

	// Float to wider float.
	converted := tensor.ConvertDType(dtypes.Float64)
	require.NoError(t, converted.Shape().Check(dtypes.Float64, 3))
	assert.Equal(t, []float64{1, 2, 3}, converted.Value())

	// Float to int truncates.
	converted = FromValue([]float64{1.7, -2.3}).ConvertDType(dtypes.Int32)
	assert.Equal(t, []int32{1, -2}, converted.Value())

	// Int to unsigned.
	converted = FromValue([]int64{1, 255}).ConvertDType(dtypes.Uint8)
	assert.Equal(t, []uint8{1, 255}, converted.Value())

	// The shape's dimensions are preserved.
	converted = FromValue([][]int32{{1, 2}, {3, 4}}).ConvertDType(dtypes.Float32)
	require.NoError(t, converted.Shape().Check(dtypes.Float32, 2, 2))
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, converted.Value())

	require.Panics(t, func() { tensor.ConvertDType(dtypes.InvalidDType) })
}

func TestConvertDType_Bool(t *testing.T) {
	converted := FromValue([]bool{true, false, true}).ConvertDType(dtypes.Int32)
	assert.Equal(t, []int32{1, 0, 1}, converted.Value())

	converted = FromValue([]bool{true, false}).ConvertDType(dtypes.Float64)
	assert.Equal(t, []float64{1, 0}, converted.Value())

	converted = FromValue([]float32{0, 0.5, -1}).ConvertDType(dtypes.Bool)
	assert.Equal(t, []bool{false, true, true}, converted.Value())
}

func TestConvertDType_Float16(t *testing.T) {
	converted := FromValue([]float32{1, -2, 0.5}).ConvertDType(dtypes.Float16)
	require.Equal(t, dtypes.Float16, converted.DType())
	want := []float16.Float16{float16.Fromfloat32(1), float16.Fromfloat32(-2), float16.Fromfloat32(0.5)}
	assert.Equal(t, want, converted.Value())

	back := converted.ConvertDType(dtypes.Float32)
	assert.Equal(t, []float32{1, -2, 0.5}, back.Value())

	bf := FromValue([]float64{1, -3}).ConvertDType(dtypes.BFloat16)
	require.Equal(t, dtypes.BFloat16, bf.DType())
	assert.Equal(t, []bfloat16.BFloat16{bfloat16.FromFloat32(1), bfloat16.FromFloat32(-3)}, bf.Value())
	assert.Equal(t, []float64{1, -3}, bf.ConvertDType(dtypes.Float64).Value())
}

func TestConvertDType_Complex(t *testing.T) {
	converted := FromValue([]float32{1, -2}).ConvertDType(dtypes.Complex64)
	assert.Equal(t, []complex64{1, -2}, converted.Value())

	converted = FromValue([]complex64{1 + 2i}).ConvertDType(dtypes.Complex128)
	assert.Equal(t, []complex128{1 + 2i}, converted.Value())

	// Complex to real keeps the real part.
	converted = FromValue([]complex128{3 + 4i, -1i}).ConvertDType(dtypes.Float64)
	assert.Equal(t, []float64{3, 0}, converted.Value())

	converted = FromValue([]complex64{5 + 1i}).ConvertDType(dtypes.Int32)
	assert.Equal(t, []int32{5}, converted.Value())
}
