// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "github.com/cpmech/ddcomp/mesh"

// NodeElem builds the node->element inverse CSR: node i belongs to
// Item[Index[i]:Index[i+1]] (0-based element ids).
func NodeElem(m *mesh.GlobalMesh) CSR {
	deg := make([]int, m.NNode)
	for e := 0; e < m.NElem; e++ {
		for _, gn := range m.ElemNodes(e) {
			deg[gn-1]++
		}
	}
	index := make([]int, m.NNode+1)
	for i := 0; i < m.NNode; i++ {
		index[i+1] = index[i] + deg[i]
	}
	item := make([]int, index[m.NNode])
	cursor := append([]int(nil), index[:m.NNode]...)
	for e := 0; e < m.NElem; e++ {
		for _, gn := range m.ElemNodes(e) {
			n := gn - 1
			item[cursor[n]] = e
			cursor[n]++
		}
	}
	return CSR{Index: index, Item: item}
}

// Elem builds the element adjacency graph: two elements are adjacent iff
// they share at least one node (spec.md §4.1). A scratch array indexed by
// element id, stamped with a per-element generation number instead of being
// cleared between elements, avoids double counting — the Go counterpart of
// the source's per-element mark-and-sweep over a byte array.
func Elem(m *mesh.GlobalMesh) CSR {
	nodeElem := NodeElem(m)

	index := make([]int, m.NElem+1)
	seenGen := make([]int, m.NElem) // generation stamp, avoids clearing each pass
	gen := 0

	neighborsOf := func(e int) []int {
		gen++
		var nbrs []int
		for _, gn := range m.ElemNodes(e) {
			n := gn - 1
			for _, e2 := range nodeElem.Item[nodeElem.Index[n]:nodeElem.Index[n+1]] {
				if e2 == e || seenGen[e2] == gen {
					continue
				}
				seenGen[e2] = gen
				nbrs = append(nbrs, e2)
			}
		}
		return nbrs
	}

	counts := make([][]int, m.NElem)
	for e := 0; e < m.NElem; e++ {
		counts[e] = neighborsOf(e)
		index[e+1] = index[e] + len(counts[e])
	}

	item := make([]int, index[m.NElem])
	for e := 0; e < m.NElem; e++ {
		copy(item[index[e]:index[e+1]], counts[e])
	}
	return CSR{Index: index, Item: item}
}
