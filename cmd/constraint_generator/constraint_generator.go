// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// constraint_generator prints out the lists of constraints used by generics,
// which can then be copy&pasted into the code.
// It is an internal tool, meant to be used by developers of the library.
package main

import (
	"fmt"
	"strings"
)

var baseTypes = []string{
	"bool", "float32", "float64", "int", "int32", "int64", "uint8", "uint32", "uint64", "complex64", "complex128"}

const SliceLevels = 7

func TensorSlicesConstraints() {
	for slices := 0; slices < SliceLevels; slices++ {
		fmt.Printf("\t")
		for idxType, t := range baseTypes {
			if idxType > 0 {
				fmt.Print(" | ")
			}
			for ii := 0; ii < slices; ii++ {
				fmt.Print("[]")
			}
			fmt.Print(t)
		}
		if slices < SliceLevels-1 {
			fmt.Printf(" |")
		}
		fmt.Println()
	}
}

func main() {
	fmt.Println("type Supported interface {")
	fmt.Printf("\t%s\n", strings.Join(baseTypes, " | "))
	fmt.Println("}")
	fmt.Println()

	fmt.Println("type MultiDimensionSlice interface {")
	TensorSlicesConstraints()
	fmt.Println("}")
}
