// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partition implements the partitioning policy (component C3) and
// the double numbering (component C4): assigning a subdomain id to every
// node/element, deriving the orthogonal side's ownership, and numbering
// each domain's entities 1..n.
package partition

import (
	"github.com/cpmech/ddcomp/control"
	"github.com/cpmech/ddcomp/errs"
	"github.com/cpmech/ddcomp/sortutil"
)

// axisKey returns the coordinate-extraction function for an RCB axis.
func axisKey(axis control.Axis, coordOf func(i int) (x, y, z float64)) func(i int) float64 {
	switch axis {
	case control.Y:
		return func(i int) float64 { _, y, _ := coordOf(i); return y }
	case control.Z:
		return func(i int) float64 { _, _, z := coordOf(i); return z }
	default:
		return func(i int) float64 { x, _, _ := coordOf(i); return x }
	}
}

// RCB bisects n entities (nodes or element centroids) across len(axes)
// rounds, one axis at a time, filling domain (pre-sized to n, pre-zeroed).
func RCB(n int, coordOf func(i int) (x, y, z float64), axes []control.Axis, domain []int) error {
	if len(domain) != n {
		return errs.New(errs.InvalidArg, "partition.RCB", "domain slice must have length n=%d", n)
	}
	// rcb folds axes one at a time; re-derive key per round since the axis
	// can differ round to round.
	for i := 0; i < len(axes); i++ {
		buckets := 1 << uint(i)
		key := axisKey(axes[i], coordOf)
		for b := 0; b < buckets; b++ {
			var ids []int
			var values []float64
			for k := 0; k < n; k++ {
				if domain[k] == b {
					ids = append(ids, k)
					values = append(values, key(k))
				}
			}
			if len(ids) == 0 {
				continue
			}
			if err := sortutil.KeyPayload(values, ids); err != nil {
				return err
			}
			lower := len(ids) / 2
			for k := 0; k < lower; k++ {
				domain[ids[k]] = b + buckets
			}
		}
	}
	return nil
}
