// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bfloat16

import (
	"math"
	"testing"
)

func TestConversions(t *testing.T) {
	for _, value := range []float32{0, 1, -1, 0.5, -2, 128, 0.25} {
		bf := FromFloat32(value)
		if bf.Float32() != value {
			t.Fatalf("FromFloat32(%g).Float32() = %g", value, bf.Float32())
		}
	}
	// bfloat16 keeps only 7 mantissa bits, conversion truncates.
	if FromFloat32(1.0001).Float32() == 1.0001 {
		t.Fatal("expected FromFloat32(1.0001) to lose precision")
	}
	if FromFloat64(2.0).Float32() != 2.0 {
		t.Fatalf("FromFloat64(2.0).Float32() = %g", FromFloat64(2.0).Float32())
	}
}

func TestSpecialValues(t *testing.T) {
	if !Inf(1).IsInf(1) || !Inf(-1).IsInf(-1) {
		t.Fatal("expected Inf to be infinite with matching sign")
	}
	nan := FromFloat32(float32(math.NaN()))
	if !nan.IsNaN() {
		t.Fatal("expected NaN to be NaN")
	}
	if SmallestNonzero.Float32() == 0 {
		t.Fatal("expected SmallestNonzero to be non-zero")
	}
	if bits := FromBits(0x3F80).Float32(); bits != 1.0 {
		t.Fatalf("FromBits(0x3F80).Float32() = %g, expected 1.0", bits)
	}
}
