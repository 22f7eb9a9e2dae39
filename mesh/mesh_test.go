// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// twoTri builds the two-triangle beam mesh used throughout spec.md §8's
// scenarios: nodes 0-3 in a unit square split along the diagonal.
func twoTri() *GlobalMesh {
	m := &GlobalMesh{
		NNode:      4,
		NElem:      2,
		NSubdomain: 1,
		PartType:   NodeBased,
		PartDepth:  1,
		NodeCoord: []float64{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		ElemNodeIndex: []int{0, 3, 6},
		ElemNodeItem:  []int{1, 2, 3, 1, 3, 4},
		NodeID:        make([]int, 8),
		ElemID:        make([]int, 4),
		ElemType:      []int{231, 231},
		NodeDOF:       []int{3, 3, 3, 3},
	}
	return m
}

func TestLoadGlobalRoundTrip(t *testing.T) {
	m := twoTri()
	m.PartTypeRaw = "NODE_BASED"
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mesh.json"), b, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadGlobal(dir, "mesh.json")
	if err != nil {
		t.Fatal(err)
	}
	if got.NNode != 4 || got.NElem != 2 {
		t.Fatalf("unexpected sizes: %+v", got)
	}
	if got.PartType != NodeBased {
		t.Fatalf("expected NodeBased, got %v", got.PartType)
	}
	x, y, z := got.NodeXYZ(2)
	if x != 1 || y != 1 || z != 0 {
		t.Fatalf("NodeXYZ(2) = %v %v %v", x, y, z)
	}
	if got.ElemNodes(1)[0] != 1 {
		t.Fatalf("ElemNodes(1) = %v", got.ElemNodes(1))
	}
}

func TestLoadGlobalRejectsBadLengths(t *testing.T) {
	m := twoTri()
	m.PartTypeRaw = "NODE_BASED"
	m.NodeCoord = m.NodeCoord[:3] // too short
	b, _ := json.Marshal(m)
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "mesh.json"), b, 0644)
	if _, err := LoadGlobal(dir, "mesh.json"); err == nil {
		t.Fatal("expected error for short node_coord")
	}
}

func TestLoadGlobalRejectsUnknownPartType(t *testing.T) {
	m := twoTri()
	m.PartTypeRaw = "BOGUS"
	b, _ := json.Marshal(m)
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "mesh.json"), b, 0644)
	if _, err := LoadGlobal(dir, "mesh.json"); err == nil {
		t.Fatal("expected error for unknown part_type")
	}
}

func TestNodeElemOwner(t *testing.T) {
	m := twoTri()
	m.NodeID[2*1+1] = 5
	m.ElemID[2*0+1] = 7
	if m.NodeOwner(1) != 5 {
		t.Fatalf("NodeOwner(1) = %d", m.NodeOwner(1))
	}
	if m.ElemOwner(0) != 7 {
		t.Fatalf("ElemOwner(0) = %d", m.ElemOwner(0))
	}
}

func TestAsGlobalRoundTrip(t *testing.T) {
	lm := &LocalMesh{
		Domain:        0,
		NNode:         4,
		NElem:         2,
		NodeCoord:     twoTri().NodeCoord,
		ElemNodeIndex: []int{0, 3, 6},
		ElemNodeItem:  []int{1, 2, 3, 1, 3, 4},
		NodeID:        make([]int, 8),
		ElemID:        make([]int, 4),
		ElemType:      []int{231, 231},
		NodeDOF:       []int{3, 3, 3, 3},
	}
	g := lm.AsGlobal()
	if g.NNode != 4 || g.NElem != 2 || g.NSubdomain != 1 {
		t.Fatalf("unexpected AsGlobal result: %+v", g)
	}
}
