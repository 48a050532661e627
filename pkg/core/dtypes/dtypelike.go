// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import (
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// HasDType is the capability interface for values that carry a DType, like the
// arrays of a framework built on top of this package.
type HasDType interface {
	DType() DType
}

// DTypeLike is a documentation alias for the values accepted by FromDTypeLike:
// a DType itself, a dtype name (see MapOfNames), a reflect.Type of a supported
// Go type, or any value implementing HasDType.
type DTypeLike = any

// FromString returns the DType whose name (or alias, case-insensitive) is the
// given string.
func FromString(name string) (DType, error) {
	dtype, found := MapOfNames[name]
	if !found {
		return InvalidDType, errors.Errorf("unknown dtype name %q", name)
	}
	return dtype, nil
}

// MustFromString is like FromString, but panics on unknown names.
func MustFromString(name string) DType {
	dtype, err := FromString(name)
	if err != nil {
		panic(err)
	}
	return dtype
}

// FromDTypeLike normalizes any value that unambiguously denotes a dtype to the
// corresponding DType:
//
//   - A DType is returned as is.
//   - A string is looked up in MapOfNames -- so "float32", "Float32" and "F32"
//     all denote Float32.
//   - A reflect.Type of a supported Go scalar type maps to its dtype, so
//     reflect.TypeOf(float32(0)) denotes Float32.
//   - A value implementing HasDType denotes the dtype it carries.
//
// It panics (with an exceptions error) on anything else, including denotations
// of InvalidDType.
func FromDTypeLike(value DTypeLike) DType {
	var dtype DType
	switch v := value.(type) {
	case DType:
		dtype = v
	case string:
		var err error
		dtype, err = FromString(v)
		if err != nil {
			panic(err)
		}
	case reflect.Type:
		dtype = FromGoType(v)
	case HasDType:
		dtype = v.DType()
	default:
		exceptions.Panicf("value of type %T cannot denote a dtype -- use a DType, a name, a reflect.Type or a HasDType", value)
	}
	if !dtype.IsSupported() {
		exceptions.Panicf("%v (%T) denotes the unsupported dtype %s", value, value, dtype)
	}
	return dtype
}
