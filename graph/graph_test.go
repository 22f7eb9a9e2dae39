// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/cpmech/ddcomp/mesh"
)

// twoTri is the two-triangle diagonal split of a unit square: nodes 0-3,
// elements {0,1,2} and {0,2,3} (1-based in ElemNodeItem).
func twoTri() *mesh.GlobalMesh {
	return &mesh.GlobalMesh{
		NNode:         4,
		NElem:         2,
		ElemNodeIndex: []int{0, 3, 6},
		ElemNodeItem:  []int{1, 2, 3, 1, 3, 4},
	}
}

func TestCanonicalEdges(t *testing.T) {
	edges := CanonicalEdges(twoTri())
	want := map[[2]int]bool{
		{0, 1}: true, {1, 2}: true, {0, 2}: true, {2, 3}: true, {0, 3}: true,
	}
	if len(edges) != len(want) {
		t.Fatalf("got %d edges, want %d: %v", len(edges), len(want), edges)
	}
	for _, e := range edges {
		if !want[[2]int{e.U, e.V}] {
			t.Fatalf("unexpected edge %v", e)
		}
	}
}

func TestNodal(t *testing.T) {
	g := Nodal(twoTri())
	deg := func(i int) int { return g.Index[i+1] - g.Index[i] }
	// node 0 and node 2 are on the shared diagonal: degree 3 each.
	if deg(0) != 3 || deg(2) != 3 {
		t.Fatalf("expected degree 3 for nodes 0 and 2, got %d and %d", deg(0), deg(2))
	}
	if deg(1) != 2 || deg(3) != 2 {
		t.Fatalf("expected degree 2 for nodes 1 and 3, got %d and %d", deg(1), deg(3))
	}
}

func TestNodeElem(t *testing.T) {
	g := NodeElem(twoTri())
	// node 0 (index 0) and node 2 (index 2) belong to both elements.
	if g.Index[1]-g.Index[0] != 2 {
		t.Fatalf("node 0 should belong to 2 elements")
	}
	if g.Index[3]-g.Index[2] != 2 {
		t.Fatalf("node 2 should belong to 2 elements")
	}
	if g.Index[2]-g.Index[1] != 1 {
		t.Fatalf("node 1 should belong to 1 element")
	}
}

func TestElemAdjacency(t *testing.T) {
	g := Elem(twoTri())
	if g.Index[1]-g.Index[0] != 1 {
		t.Fatalf("element 0 should have exactly 1 neighbor, got %d", g.Index[1]-g.Index[0])
	}
	if g.Item[g.Index[0]] != 1 {
		t.Fatalf("element 0's neighbor should be element 1")
	}
	if g.Index[2]-g.Index[1] != 1 {
		t.Fatalf("element 1 should have exactly 1 neighbor, got %d", g.Index[2]-g.Index[1])
	}
}
