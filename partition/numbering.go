// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import "github.com/cpmech/ddcomp/errs"

// number assigns 1-based local ids to n entities given each entity's
// 0-based domain id, walking domains in ascending order (spec.md §4.2.4):
// the Go counterpart of wnumbering_node/wnumbering_elem. ids[2*i] receives
// the local id, ids[2*i+1] is left untouched (it already holds the domain
// id). nDomain bounds the walk.
func number(n, nDomain int, ids []int) error {
	total := 0
	for d := 0; d < nDomain; d++ {
		local := 1
		for i := 0; i < n; i++ {
			if ids[2*i+1] == d {
				ids[2*i] = local
				local++
				total++
			}
		}
	}
	if total != n {
		return errs.New(errs.InvalidArg, "partition.number", "numbered %d of %d entities; some domain id is out of range", total, n)
	}
	return nil
}

// NumberNodes performs the double numbering (local_id, domain_id) over
// every node.
func NumberNodes(nNode, nDomain int, nodeID []int) error {
	return number(nNode, nDomain, nodeID)
}

// NumberElems performs the double numbering over every element.
func NumberElems(nElem, nDomain int, elemID []int) error {
	return number(nElem, nDomain, elemID)
}
