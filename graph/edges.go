// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"sort"

	"github.com/cpmech/ddcomp/mesh"
)

// Edge is one canonical nodal edge, 0-based node ids with U<V.
type Edge struct {
	U, V int
}

// CanonicalEdges derives the stable, duplicate-free edge list used to build
// the nodal graph (spec.md §4.1 step 1). Each element contributes the edges
// of its node-list cycle (e.g. a tri3 contributes (0,1),(1,2),(2,0)); this is
// the hash-sort helper the spec calls an external collaborator, here kept in
// package graph since nothing else in the repo needs to share it.
func CanonicalEdges(m *mesh.GlobalMesh) []Edge {
	seen := make(map[[2]int]bool)
	var edges []Edge
	for e := 0; e < m.NElem; e++ {
		nodes := m.ElemNodes(e)
		n := len(nodes)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := nodes[i] - 1 // 1-based -> 0-based
			b := nodes[(i+1)%n] - 1
			if a == b {
				continue
			}
			u, v := a, b
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if !seen[key] {
				seen[key] = true
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}
