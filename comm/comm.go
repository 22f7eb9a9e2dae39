// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package comm implements communication-table synthesis (component C6,
// spec.md §4.4): per-neighbor import/export/shared item lists, in global-id
// order, ready for local.Project to translate into local ids.
package comm

import (
	"github.com/cpmech/ddcomp/flagset"
	"github.com/cpmech/ddcomp/graph"
	"github.com/cpmech/ddcomp/halo"
	"github.com/cpmech/ddcomp/mesh"
)

// Tables holds the not-yet-translated (global-id) communication arrays for
// one subdomain.
type Tables struct {
	NeighborPE []int

	ImportIndex []int
	ImportItem  []int // global ids

	ExportIndex []int
	ExportItem  []int // global ids

	SharedIndex []int
	SharedItem  []int // global ids
}

// axisView picks which entity (nodes or elements) the import/export items
// are drawn from, and which entity the shared items are drawn from — the
// orthogonal one (spec.md §4.4 step 3).
type axisView struct {
	n       int
	owner   func(i int) int
	flag    func(mk *halo.Masks) flagset.Workspace
}

func nodeAxis(m *mesh.GlobalMesh) axisView {
	return axisView{n: m.NNode, owner: m.NodeOwner, flag: func(mk *halo.Masks) flagset.Workspace { return mk.NodeFlag }}
}

func elemAxis(m *mesh.GlobalMesh) axisView {
	return axisView{n: m.NElem, owner: m.ElemOwner, flag: func(mk *halo.Masks) flagset.Workspace { return mk.ElemFlag }}
}

// Synthesize builds the import/export/shared tables for the current domain
// against every neighbor in neighbors (already sorted ascending), following
// spec.md §4.4. current is the mask computed for the current domain;
// maskFor(d) computes the mask for neighbor domain d.
func Synthesize(m *mesh.GlobalMesh, partType mesh.PartType, current *halo.Masks, neighbors []int, maskFor func(domain int) *halo.Masks) *Tables {
	mainAxis, orthoAxis := nodeAxis(m), elemAxis(m)
	if partType == mesh.ElemBased {
		mainAxis, orthoAxis = orthoAxis, mainAxis
	}

	t := &Tables{NeighborPE: neighbors}
	t.ImportIndex = []int{0}
	t.ExportIndex = []int{0}
	t.SharedIndex = []int{0}

	for _, d2 := range neighbors {
		mk2 := maskFor(d2)

		var imp, exp, shr []int
		mainFlagCur := mainAxis.flag(current)
		mainFlagNbr := mainAxis.flag(mk2)
		for i := 0; i < mainAxis.n; i++ {
			if !mainFlagCur.Has(i, flagset.Boundary) || !mainFlagNbr.Has(i, flagset.Boundary) {
				continue
			}
			switch mainAxis.owner(i) {
			case d2:
				imp = append(imp, i)
			case current.Domain:
				exp = append(exp, i)
			}
		}

		orthoFlagCur := orthoAxis.flag(current)
		orthoFlagNbr := orthoAxis.flag(mk2)
		for j := 0; j < orthoAxis.n; j++ {
			if orthoFlagCur.Has(j, flagset.Boundary) && orthoFlagNbr.Has(j, flagset.Boundary) {
				shr = append(shr, j)
			}
		}

		t.ImportItem = append(t.ImportItem, imp...)
		t.ImportIndex = append(t.ImportIndex, len(t.ImportItem))

		t.ExportItem = append(t.ExportItem, exp...)
		t.ExportIndex = append(t.ExportIndex, len(t.ExportItem))

		t.SharedItem = append(t.SharedItem, shr...)
		t.SharedIndex = append(t.SharedIndex, len(t.SharedItem))
	}
	return t
}

// EdgeCut counts the graph edges (nodal in NODE_BASED mode, elemental in
// ELEM_BASED mode) whose endpoints lie in different domains — the metric
// recorded in the profile sink (spec.md §4.4 last paragraph).
func EdgeCut(m *mesh.GlobalMesh, partType mesh.PartType) int {
	cut := 0
	if partType == mesh.NodeBased {
		for _, e := range graph.CanonicalEdges(m) {
			if m.NodeOwner(e.U) != m.NodeOwner(e.V) {
				cut++
			}
		}
		return cut
	}
	eg := graph.Elem(m)
	for e := 0; e < m.NElem; e++ {
		for _, e2 := range eg.Item[eg.Index[e]:eg.Index[e+1]] {
			if e2 > e && m.ElemOwner(e) != m.ElemOwner(e2) {
				cut++
			}
		}
	}
	return cut
}
