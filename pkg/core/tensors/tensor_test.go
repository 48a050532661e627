// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"fmt"
	"path/filepath"
	"strconv"
	"testing"
	"unsafe"

	"github.com/gomlx/arrays/pkg/core/dtypes"
	"github.com/gomlx/arrays/pkg/core/shapes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

func cmpShapes(t *testing.T, shape, wantShape shapes.Shape, err error) {
	if err != nil {
		t.Fatalf("Failed to get shape (wanted %q) from value: %v", wantShape, err)
	}
	if !wantShape.Equal(shape) {
		t.Fatalf("Invalid shape %q, wanted %q", shape, wantShape)
	}
}

func TestFromValue(t *testing.T) {
	wantShape := shapes.Shape{DType: dtypes.Float32, Dimensions: []int{3, 2}}
	shape, err := shapeForValue([][]float32{{0, 0}, {1, 1}, {2, 2}})
	cmpShapes(t, shape, wantShape, err)

	wantShape = shapes.Shape{DType: dtypes.Float64, Dimensions: []int{1, 1, 1}}
	shape, err = shapeForValue([][][]float64{{{1}}})
	cmpShapes(t, shape, wantShape, err)

	if strconv.IntSize == 64 {
		wantShape = shapes.Shape{DType: dtypes.Int64, Dimensions: nil}
		shape, err = shapeForValue(5)
		cmpShapes(t, shape, wantShape, err)
	} else if strconv.IntSize == 32 {
		wantShape = shapes.Shape{DType: dtypes.Int32, Dimensions: nil}
		shape, err = shapeForValue(5)
		cmpShapes(t, shape, wantShape, err)
	}

	wantShape = shapes.Shape{DType: dtypes.Bool, Dimensions: []int{3, 2}}
	shape, err = shapeForValue([][]bool{{true, false}, {false, false}, {false, true}})
	cmpShapes(t, shape, wantShape, err)

	wantShape = shapes.Shape{DType: dtypes.Complex64, Dimensions: []int{2}}
	shape, err = shapeForValue([]complex64{1.0i, 1.0})
	cmpShapes(t, shape, wantShape, err)

	wantShape = shapes.Shape{DType: dtypes.Uint16, Dimensions: []int{1, 1}}
	shape, err = shapeForValue([][]uint16{{3}})
	cmpShapes(t, shape, wantShape, err)

	// Test for invalid `DType`.
	shape, err = shapeForValue([][]string{{"blah"}})
	if shape.DType != dtypes.InvalidDType {
		t.Fatalf("Wanted InvalidDType for string, instead got %q", shape.DType)
	}
	if err == nil {
		t.Fatalf("Should have returned error for unsupported DType")
	}

	// Test for irregularly shaped slices.
	shape, err = shapeForValue([][][]int32{{{1}}, {{1, 2}}})
	if err == nil {
		t.Fatalf("Should have returned error for irregularly shaped slices")
	}
	fmt.Printf("\tExpected error: %v\n", err)

	// Test the correct setting of scalar value, dtype=Int64.
	{
		want := int64(5)
		var tensor *Tensor
		require.NotPanics(t, func() { tensor = FromValue(want) })
		assert.Equal(t, want, tensor.Value())
	}

	// Test the correct setting of scalar value for Go type `int` (maybe dtype=Int64 or Int32).
	if strconv.IntSize == 64 {
		want := int64(5)
		var tensor *Tensor
		require.NotPanics(t, func() { tensor = FromValue(5) })
		assert.Equal(t, want, tensor.Value())
	} else if strconv.IntSize == 32 {
		want := int32(5)
		var tensor *Tensor
		require.NotPanics(t, func() { tensor = FromValue(5) })
		assert.Equal(t, want, tensor.Value())
	}

	// Test the correct setting of 1D slice, dtype=float64
	{
		want := []float64{2, 5}
		var tensor *Tensor
		require.NotPanics(t, func() { tensor = FromValue(want) })
		assert.Equal(t, want, tensor.Value())
	}

	// Test the correct setting of 2D slice, dtype=float32
	{
		want := []float32{1, 2, 3, 10, 11, 12}
		var tensor *Tensor
		require.NotPanics(t, func() { tensor = FromValue([][]float32{{1, 2, 3}, {10, 11, 12}}) })
		tensor.ConstFlatData(func(flat any) {
			got, _ := flat.([]float32)
			require.Equal(t, want, got)
		})
	}

	// Test 2D slice, dtype=Bool
	{
		want := []bool{true, false, false, false, false, true}
		var tensor *Tensor
		require.NotPanics(t, func() {
			tensor = FromFlatDataAndDimensions(want, 3, 2)
		})
		require.NoError(t, tensor.Shape().Check(dtypes.Bool, 3, 2))
		tensor.ConstFlatData(func(flat any) {
			got, _ := flat.([]bool)
			require.Equal(t, want, got)
		})
	}

	// Test 2D slice, Go type=int, dtype=Int32 or Int64
	{
		var tensor *Tensor
		require.NotPanics(t, func() {
			tensor = FromValue([][]int{{1, 3}, {5, 7}})
		})
		if strconv.IntSize == 64 {
			want := []int64{1, 3, 5, 7}
			tensor.ConstFlatData(func(flat any) {
				got, _ := flat.([]int64)
				require.Equal(t, want, got)
			})
		} else if strconv.IntSize == 32 {
			want := []int32{1, 3, 5, 7}
			tensor.ConstFlatData(func(flat any) {
				got, _ := flat.([]int32)
				require.Equal(t, want, got)
			})
		}
	}
}

func TestFromScalarAndDimensions(t *testing.T) {
	tensor := FromScalarAndDimensions(float32(7), 2, 3)
	require.NoError(t, tensor.Shape().Check(dtypes.Float32, 2, 3))
	assert.Equal(t, [][]float32{{7, 7, 7}, {7, 7, 7}}, tensor.Value())

	scalar := FromScalar(int8(-3))
	assert.True(t, scalar.IsScalar())
	assert.Equal(t, int8(-3), ToScalar[int8](scalar))
}

func TestFromFlatDataAndDimensions(t *testing.T) {
	tensor := FromFlatDataAndDimensions([]int8{1, 2, 3, 4}, 2, 2)
	require.NoError(t, tensor.Shape().Check(dtypes.Int8, 2, 2))
	assert.Equal(t, [][]int8{{1, 2}, {3, 4}}, tensor.Value())

	// Go `int` is copied through its bytes to the platform word dtype.
	intTensor := FromFlatDataAndDimensions([]int{1, 3, 5, 7}, 4)
	if strconv.IntSize == 64 {
		assert.Equal(t, []int64{1, 3, 5, 7}, intTensor.Value())
	} else {
		assert.Equal(t, []int32{1, 3, 5, 7}, intTensor.Value())
	}

	require.Panics(t, func() { FromFlatDataAndDimensions([]int8{1, 2, 3}, 2, 2) })
}

func TestFromAnyValue(t *testing.T) {
	tensor := FromValue([]float32{1, 2})
	assert.Same(t, tensor, FromAnyValue(tensor))

	fromAny := FromAnyValue([]uint32{3, 5})
	require.NoError(t, fromAny.Shape().Check(dtypes.Uint32, 2))

	require.Panics(t, func() { FromAnyValue("blah") })
	require.Panics(t, func() { FromAnyValue([][]float32{{1}, {2, 3}}) })
}

func TestFlatDataAccess(t *testing.T) {
	tensor := FromValue([][]float64{{1, 2}, {3, 4}})

	ConstFlatData(tensor, func(flat []float64) {
		assert.Equal(t, []float64{1, 2, 3, 4}, flat)
	})
	require.Panics(t, func() {
		ConstFlatData(tensor, func(flat []float32) {})
	})

	MutableFlatData(tensor, func(flat []float64) {
		flat[0] = 7
	})
	assert.Equal(t, [][]float64{{7, 2}, {3, 4}}, tensor.Value())

	assert.Equal(t, []float64{7, 2, 3, 4}, CopyFlatData[float64](tensor))

	AssignFlatData(tensor, []float64{0, 1, 2, 3})
	assert.Equal(t, [][]float64{{0, 1}, {2, 3}}, tensor.Value())
	require.Panics(t, func() { AssignFlatData(tensor, []float64{0, 1}) })

	assert.Equal(t, []int{2, 1}, tensor.LayoutStrides())
}

func TestBytes(t *testing.T) {
	tensor := FromValue([][]int32{{0, 1}, {3, 5}, {7, 11}})
	tensor.ConstBytes(func(data []byte) {
		require.Equal(t, 6*4 /* sizeof(int32) */, len(data))
		flat := unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), 6)
		require.Equal(t, []int32{0, 1, 3, 5, 7, 11}, flat)
	})
	tensor.MutableBytes(func(data []byte) {
		require.Equal(t, 6*4 /* sizeof(int32) */, len(data))
		flat := unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), 6)
		flat[0] = 13
		flat[5] = 17
	})
	require.Equal(t, [][]int32{{13, 1}, {3, 5}, {7, 17}}, tensor.Value())
}

func TestCloneAndEqual(t *testing.T) {
	tensor := FromValue([][]float32{{1, 2}, {3, 4}})
	clone := tensor.Clone()
	assert.True(t, tensor.Equal(clone))

	MutableFlatData(clone, func(flat []float32) { flat[3] = 100 })
	assert.False(t, tensor.Equal(clone))
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, tensor.Value())

	assert.False(t, tensor.Equal(FromValue([]float32{1, 2})))
	assert.True(t, tensor.Equal(tensor))
}

func TestInDelta(t *testing.T) {
	tensor := FromValue([]float64{1, 2, 3})
	other := FromValue([]float64{1.001, 2, 2.999})
	assert.True(t, tensor.InDelta(other, 0.01))
	assert.False(t, tensor.InDelta(other, 0.0001))
	assert.False(t, tensor.InDelta(FromValue([]float64{1, 2}), 0.01))
}

func TestFinalize(t *testing.T) {
	tensor := FromValue([]int32{1, 2, 3})
	require.True(t, tensor.Ok())
	require.False(t, tensor.IsFinalized())

	tensor.Finalize()
	require.True(t, tensor.IsFinalized())
	require.False(t, tensor.Ok())
	require.Panics(t, func() { tensor.AssertValid() })
	require.Panics(t, func() { _ = tensor.Value() })
}

func TestSaveLoad(t *testing.T) {
	tensor := FromValue([][]float64{{1, 2, 3}, {10, 11, 12}})
	filePath := filepath.Join(t.TempDir(), "tensor.bin")
	require.NoError(t, tensor.Save(filePath))

	loaded := must.M1(Load(filePath))
	require.True(t, tensor.Equal(loaded))

	_, err := Load(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}

func TestString(t *testing.T) {
	tensor := FromValue([]float32{1.5, 2, 3})
	assert.Equal(t, "[3]float32{1.5, 2, 3}", tensor.String())

	scalar := FromScalar(int32(3))
	assert.Equal(t, "int32(3)", scalar.String())

	// Rank-2 tensors with few rows print every row, with balanced braces.
	matrix := FromValue([][]float32{{1, 2}, {3, 4}})
	assert.Equal(t, "[2][2]float32{\n {1, 2},\n {3, 4}}", matrix.Summary(4))

	// Large tensors print only their shape and memory usage.
	large := FromShape(shapes.Make(dtypes.Float32, 100, 100))
	assert.Contains(t, large.String(), large.Shape().String())
	assert.NotContains(t, large.String(), "{")

	assert.Equal(t, "int32(3)", scalar.GoStr())
}
