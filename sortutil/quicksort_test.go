// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortutil

import (
	"math/rand"
	"sort"
	"testing"
)

func TestKeyPayloadSortsAscending(t *testing.T) {
	arr := []float64{5, 3, 1, 4, 2}
	brr := []int{50, 30, 10, 40, 20}
	if err := KeyPayload(arr, brr); err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(arr); i++ {
		if arr[i-1] > arr[i] {
			t.Fatalf("not sorted at %d: %v", i, arr)
		}
	}
	for i, a := range arr {
		if brr[i] != int(a*10) {
			t.Fatalf("payload desynced: arr=%v brr=%v", arr, brr)
		}
	}
}

func TestKeyPayloadLargeRandom(t *testing.T) {
	n := 5000
	arr := make([]float64, n)
	brr := make([]int, n)
	for i := range arr {
		arr[i] = rand.Float64()
		brr[i] = i
	}
	want := make([]float64, n)
	copy(want, arr)
	sort.Float64s(want)

	if err := KeyPayload(arr, brr); err != nil {
		t.Fatal(err)
	}
	for i := range arr {
		if arr[i] != want[i] {
			t.Fatalf("mismatch at %d: got %v want %v", i, arr[i], want[i])
		}
	}
}

func TestKeyPayloadMismatchedLengths(t *testing.T) {
	err := KeyPayload([]float64{1, 2}, []int{1})
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestKeyPayloadShortCircuitsSmall(t *testing.T) {
	if err := KeyPayload(nil, nil); err != nil {
		t.Fatal(err)
	}
	arr := []float64{1}
	brr := []int{1}
	if err := KeyPayload(arr, brr); err != nil {
		t.Fatal(err)
	}
}
