// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"github.com/gomlx/arrays/pkg/core/dtypes"
	"github.com/gomlx/arrays/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/exceptions"
	"github.com/x448/float16"
)

// ConvertDType returns a tensor with the same shape and values converted to the given
// dtype. If the target dtype is the same as the tensor's, the tensor itself is returned.
//
// Conversions across kinds follow Go conversion semantics: float to int truncates,
// numeric to Bool is `value != 0`, Bool to numeric is 0 or 1, and a complex number
// converted to a non-complex dtype keeps only its real part.
//
// It panics on invalid tensors or an unsupported target dtype.
func (t *Tensor) ConvertDType(target dtypes.DType) *Tensor {
	t.AssertValid()
	if !target.IsSupported() {
		exceptions.Panicf("ConvertDType: target dtype %s is not supported", target)
	}
	if target == t.shape.DType {
		return t
	}
	output := FromShape(t.shape.WithDType(target))
	t.ConstFlatData(func(flat any) {
		switch src := flat.(type) {
		case []bool:
			convertFromBool(src, output)
		case []int8:
			convertFromNumeric(src, output)
		case []int16:
			convertFromNumeric(src, output)
		case []int32:
			convertFromNumeric(src, output)
		case []int64:
			convertFromNumeric(src, output)
		case []uint8:
			convertFromNumeric(src, output)
		case []uint16:
			convertFromNumeric(src, output)
		case []uint32:
			convertFromNumeric(src, output)
		case []uint64:
			convertFromNumeric(src, output)
		case []float32:
			convertFromNumeric(src, output)
		case []float64:
			convertFromNumeric(src, output)
		case []float16.Float16:
			convertFromNumeric(float16ToFloat32(src), output)
		case []bfloat16.BFloat16:
			convertFromNumeric(bfloat16ToFloat32(src), output)
		case []complex64:
			convertFromComplex(src, output)
		case []complex128:
			convertFromComplex(src, output)
		default:
			exceptions.Panicf("ConvertDType: unsupported source dtype %s", t.shape.DType)
		}
	})
	return output
}

func float16ToFloat32(src []float16.Float16) []float32 {
	out := make([]float32, len(src))
	for idx, value := range src {
		out[idx] = value.Float32()
	}
	return out
}

func bfloat16ToFloat32(src []bfloat16.BFloat16) []float32 {
	out := make([]float32, len(src))
	for idx, value := range src {
		out[idx] = value.Float32()
	}
	return out
}

// convertFromNumeric writes the values of src converted to the output's dtype.
func convertFromNumeric[FromT dtypes.NumberNotComplex](src []FromT, output *Tensor) {
	switch dst := output.flat.(type) {
	case []bool:
		for idx, value := range src {
			dst[idx] = value != 0
		}
	case []int8:
		for idx, value := range src {
			dst[idx] = int8(value)
		}
	case []int16:
		for idx, value := range src {
			dst[idx] = int16(value)
		}
	case []int32:
		for idx, value := range src {
			dst[idx] = int32(value)
		}
	case []int64:
		for idx, value := range src {
			dst[idx] = int64(value)
		}
	case []uint8:
		for idx, value := range src {
			dst[idx] = uint8(value)
		}
	case []uint16:
		for idx, value := range src {
			dst[idx] = uint16(value)
		}
	case []uint32:
		for idx, value := range src {
			dst[idx] = uint32(value)
		}
	case []uint64:
		for idx, value := range src {
			dst[idx] = uint64(value)
		}
	case []float32:
		for idx, value := range src {
			dst[idx] = float32(value)
		}
	case []float64:
		for idx, value := range src {
			dst[idx] = float64(value)
		}
	case []float16.Float16:
		for idx, value := range src {
			dst[idx] = float16.Fromfloat32(float32(value))
		}
	case []bfloat16.BFloat16:
		for idx, value := range src {
			dst[idx] = bfloat16.FromFloat32(float32(value))
		}
	case []complex64:
		for idx, value := range src {
			dst[idx] = complex(float32(value), 0)
		}
	case []complex128:
		for idx, value := range src {
			dst[idx] = complex(float64(value), 0)
		}
	default:
		exceptions.Panicf("ConvertDType: unsupported target dtype %s", output.shape.DType)
	}
}

// convertFromBool writes 0 or 1 values (or false/true) to the output's dtype.
func convertFromBool(src []bool, output *Tensor) {
	asInt := make([]int8, len(src))
	for idx, value := range src {
		if value {
			asInt[idx] = 1
		}
	}
	if dst, ok := output.flat.([]bool); ok {
		copy(dst, src)
		return
	}
	convertFromNumeric(asInt, output)
}

// convertFromComplex writes the values of src converted to the output's dtype: for
// non-complex targets only the real part is kept.
func convertFromComplex[FromT complex64 | complex128](src []FromT, output *Tensor) {
	switch output.shape.DType {
	case dtypes.Complex64:
		dst := output.flat.([]complex64)
		for idx, value := range src {
			dst[idx] = complex64(complex128(value))
		}
	case dtypes.Complex128:
		dst := output.flat.([]complex128)
		for idx, value := range src {
			dst[idx] = complex128(value)
		}
	default:
		reals := make([]float64, len(src))
		for idx, value := range src {
			reals[idx] = real(complex128(value))
		}
		convertFromNumeric(reals, output)
	}
}
