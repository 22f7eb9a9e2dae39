// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph builds the nodal and element adjacency graphs needed by
// METIS-class partitioning (component C2, spec.md §4.1). The original
// accumulates each bucket through an intrusive singly-linked list and
// compresses to CSR afterwards; per Design Notes that scaffolding is a
// performance accident of C's allocator story, not a design decision, so
// here both builders do an ordinary two-pass count-then-fill over Go
// slices.
package graph

import "github.com/cpmech/ddcomp/mesh"

// CSR is a compressed sparse row adjacency list: entity i's neighbors are
// Item[Index[i]:Index[i+1]].
type CSR struct {
	Index []int
	Item  []int
}

// Nodal builds the nodal adjacency graph: xadj/adjncy of nodes sharing at
// least one edge (spec.md §4.1). n is the number of nodes.
func Nodal(m *mesh.GlobalMesh) CSR {
	edges := CanonicalEdges(m)
	n := m.NNode

	// pass 1: count
	deg := make([]int, n)
	for _, e := range edges {
		deg[e.U]++
		deg[e.V]++
	}
	index := make([]int, n+1)
	for i := 0; i < n; i++ {
		index[i+1] = index[i] + deg[i]
	}

	// pass 2: fill
	item := make([]int, index[n])
	cursor := append([]int(nil), index[:n]...)
	for _, e := range edges {
		item[cursor[e.U]] = e.V
		cursor[e.U]++
		item[cursor[e.V]] = e.U
		cursor[e.V]++
	}
	return CSR{Index: index, Item: item}
}
