// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sortutil implements the introsort-style quicksort used by RCB
// (spec.md §4.6) to sort a bucket's members by a coordinate. It keeps the
// exact algorithm of the original hecmw_partition.c quick_sort: insertion
// sort below a cutoff, median-of-three pivoting with explicit side swaps,
// and a bounded explicit stack instead of recursion.
package sortutil

import "github.com/cpmech/ddcomp/errs"

// InsertionCutoff mirrors QSORT_LOWER in the source: a sub-array [l, ir] with
// ir-l below this (at most 50 elements) is finished off by insertion sort
// rather than further partitioned.
const InsertionCutoff = 50

// KeyPayload sorts arr (the sort key) and brr (the payload carried along,
// e.g. an entity id) in place, ascending by arr. It is the Go counterpart of
// quick_sort(no, n, arr, brr, istack): no is implied by len(arr) (the stack
// is sized generously and overflow is reported rather than silently grown,
// matching the source's fixed-size istack).
func KeyPayload(arr []float64, brr []int) error {
	n := len(arr)
	if n != len(brr) {
		return errs.New(errs.InvalidArg, "sortutil.KeyPayload", "arr and brr must have the same length")
	}
	if n < 2 {
		return nil
	}

	// explicit stack of (l, ir) pairs; bounded the same way the source
	// bounds istack: proportional to n, overflow is a real, reportable
	// failure rather than "should not happen".
	maxStack := 2 * n
	stack := make([]int, 0, maxStack)
	push := func(l, ir int) error {
		if len(stack)+2 > maxStack {
			return errs.New(errs.StackOverflow, "sortutil.KeyPayload", "explicit sort stack exceeded %d entries", maxStack)
		}
		stack = append(stack, l, ir)
		return nil
	}
	pop := func() (l, ir int, ok bool) {
		if len(stack) == 0 {
			return 0, 0, false
		}
		ir = stack[len(stack)-1]
		l = stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		return l, ir, true
	}

	l, ir := 0, n-1
	for {
		if ir-l < InsertionCutoff {
			for j := l + 1; j <= ir; j++ {
				a, b := arr[j], brr[j]
				i := j - 1
				for i >= l && arr[i] > a {
					arr[i+1] = arr[i]
					brr[i+1] = brr[i]
					i--
				}
				arr[i+1] = a
				brr[i+1] = b
			}
			var ok bool
			l, ir, ok = pop()
			if !ok {
				return nil
			}
			continue
		}

		k := (l + ir) >> 1
		arr[k], arr[l+1] = arr[l+1], arr[k]
		brr[k], brr[l+1] = brr[l+1], brr[k]

		if arr[l] > arr[ir] {
			arr[l], arr[ir] = arr[ir], arr[l]
			brr[l], brr[ir] = brr[ir], brr[l]
		}
		if arr[l+1] > arr[ir] {
			arr[l+1], arr[ir] = arr[ir], arr[l+1]
			brr[l+1], brr[ir] = brr[ir], brr[l+1]
		}
		if arr[l] > arr[l+1] {
			arr[l], arr[l+1] = arr[l+1], arr[l]
			brr[l], brr[l+1] = brr[l+1], brr[l]
		}

		i, j := l+1, ir
		a, b := arr[l+1], brr[l+1]
		for {
			for i++; arr[i] < a; i++ {
			}
			for j--; arr[j] > a; j-- {
			}
			if j < i {
				break
			}
			arr[i], arr[j] = arr[j], arr[i]
			brr[i], brr[j] = brr[j], brr[i]
		}
		arr[l+1], arr[j] = arr[j], a
		brr[l+1], brr[j] = brr[j], b

		if ir-i+1 >= j-l {
			if err := push(i, ir); err != nil {
				return err
			}
			ir = j - 1
		} else {
			if err := push(l, j-1); err != nil {
				return err
			}
			l = i
		}
	}
}
