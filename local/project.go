// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package local implements the per-subdomain local-mesh projection
// (component C7, spec.md §4.5): given the global mesh, the halo masks for
// one domain and its already-synthesized (global-id) communication tables,
// build the LocalMesh that domain's solver sees. It is a direct translation
// of hecmw_partition.c's set_node_global2local/set_elem_global2local/
// const_elem_node_item/const_mpc_info family onto flagset.Workspace.
package local

import (
	"github.com/cpmech/ddcomp/comm"
	"github.com/cpmech/ddcomp/flagset"
	"github.com/cpmech/ddcomp/halo"
	"github.com/cpmech/ddcomp/mesh"
)

// translation is the global<->local id table for one entity kind (node or
// elem) of one LocalMesh, mirroring node_global2local/node_local2global.
// local2global is 0-based by local id; global2local[i]==0 means "not present
// locally" exactly as in source (1-based local ids, 0 is the sentinel).
type translation struct {
	global2local []int // 0-based by global id, 1-based local id or 0
	local2global []int // 0-based by local id, 0-based global id
}

func (t translation) toLocal(globalOneBased int) int { return t.global2local[globalOneBased-1] }

// nodeBasedTranslation implements set_node_global2local_internal +
// set_node_global2local_external: internal nodes first (contiguous
// 1..nn_internal, in ascending global order), then external-boundary nodes
// continuing the count. No explicit internal list is needed since internal
// ids are exactly the prefix 1..nn_internal.
func nodeBasedTranslation(n int, nf flagset.Workspace) (translation, int) {
	g2l := make([]int, n)
	counter := 0
	for i := 0; i < n; i++ {
		if nf.Has(i, flagset.Internal) {
			counter++
			g2l[i] = counter
		}
	}
	nnInternal := counter
	for i := 0; i < n; i++ {
		if nf.Has(i, flagset.External) && nf.Has(i, flagset.Boundary) {
			counter++
			g2l[i] = counter
		}
	}
	l2g := make([]int, counter)
	for i := 0; i < n; i++ {
		if g2l[i] != 0 {
			l2g[g2l[i]-1] = i
		}
	}
	return translation{global2local: g2l, local2global: l2g}, nnInternal
}

// allTranslation implements set_node_global2local_all / set_elem_global2local_all:
// every INTERNAL-or-BOUNDARY entity gets a local id in ascending global order
// (not internal-first), so the internal subset is scattered and needs an
// explicit internal list (const_node_internal_list / const_elem_internal_list).
func allTranslation(n int, f flagset.Workspace) (translation, int, []int) {
	g2l := make([]int, n)
	counter := 0
	for i := 0; i < n; i++ {
		if f.Has(i, flagset.Internal) || f.Has(i, flagset.Boundary) {
			counter++
			g2l[i] = counter
		}
	}
	l2g := make([]int, counter)
	for i := 0; i < n; i++ {
		if g2l[i] != 0 {
			l2g[g2l[i]-1] = i
		}
	}
	var internalList []int
	nInternal := 0
	for i := 0; i < n; i++ {
		if f.Has(i, flagset.Internal) {
			nInternal++
			internalList = append(internalList, g2l[i])
		}
	}
	return translation{global2local: g2l, local2global: l2g}, nInternal, internalList
}

// Project builds the LocalMesh for domain d, following spec.md §4.5. tables
// must already hold global ids (comm.Synthesize's output); Project translates
// them into this local mesh's own local ids exactly as const_import_item/
// const_export_item/const_shared_item do, via this domain's own translation
// tables (not the neighbor's) — both ends of an import/export/shared pair
// are present in the current domain's halo, so one table suffices.
func Project(m *mesh.GlobalMesh, d int, mk *halo.Masks, tables *comm.Tables) *mesh.LocalMesh {
	lm := &mesh.LocalMesh{Domain: d, PartTypeRaw: m.PartType.String()}

	var nodeTr, elemTr translation
	if m.PartType == mesh.NodeBased {
		nodeTr, lm.NNInternal = nodeBasedTranslation(m.NNode, mk.NodeFlag)
		lm.NodeInternalList = nil
		elemTr, lm.NEInternal, lm.ElemInternalList = allTranslation(m.NElem, mk.ElemFlag)
	} else {
		elemTr, lm.NEInternal = nodeBasedTranslation(m.NElem, mk.ElemFlag)
		lm.ElemInternalList = nil
		nodeTr, lm.NNInternal, lm.NodeInternalList = allTranslation(m.NNode, mk.NodeFlag)
	}
	lm.NNode = len(nodeTr.local2global)
	lm.NElem = len(elemTr.local2global)

	projectGeometry(m, lm, nodeTr, elemTr)
	projectGroups(m, lm, nodeTr, elemTr)
	projectMPC(m, lm, nodeTr)
	lm.ContactPair = m.ContactPair
	lm.Section, lm.Material, lm.Amplitude = m.Section, m.Material, m.Amplitude

	projectComm(lm, tables, nodeTr, elemTr, m.PartType)

	return lm
}

// projectGeometry fills coordinates, connectivity, ids, elem_type and
// node_dof, grounded on const_node/const_elem_node_index/const_elem_node_item
// /const_elem_type/const_node_dof.
func projectGeometry(m *mesh.GlobalMesh, lm *mesh.LocalMesh, nodeTr, elemTr translation) {
	lm.NodeCoord = make([]float64, 3*lm.NNode)
	lm.GlobalNodeID = make([]int, lm.NNode)
	lm.NodeID = make([]int, 2*lm.NNode)
	if len(m.NodeDOF) == m.NNode {
		lm.NodeDOF = make([]int, lm.NNode)
	}
	for li, gi := range nodeTr.local2global {
		x, y, z := m.NodeXYZ(gi)
		lm.NodeCoord[3*li], lm.NodeCoord[3*li+1], lm.NodeCoord[3*li+2] = x, y, z
		lm.GlobalNodeID[li] = gi + 1
		// node_id carries the owner-domain numbering computed in C4
		// (partition.NumberNodes) unchanged, not this local array's own
		// position — const_node_id copies it straight from the global mesh.
		lm.NodeID[2*li] = m.NodeID[2*gi]
		lm.NodeID[2*li+1] = m.NodeID[2*gi+1]
		if lm.NodeDOF != nil {
			lm.NodeDOF[li] = m.NodeDOF[gi]
		}
	}

	lm.GlobalElemID = make([]int, lm.NElem)
	lm.ElemID = make([]int, 2*lm.NElem)
	lm.ElemType = make([]int, lm.NElem)
	lm.ElemNodeIndex = make([]int, lm.NElem+1)
	for le, ge := range elemTr.local2global {
		lm.GlobalElemID[le] = ge + 1
		lm.ElemID[2*le] = m.ElemID[2*ge]
		lm.ElemID[2*le+1] = m.ElemID[2*ge+1]
		lm.ElemType[le] = m.ElemType[ge]
		lm.ElemNodeIndex[le+1] = lm.ElemNodeIndex[le] + (m.ElemNodeIndex[ge+1] - m.ElemNodeIndex[ge])
	}
	lm.ElemNodeItem = make([]int, lm.ElemNodeIndex[lm.NElem])
	for le, ge := range elemTr.local2global {
		lstart := lm.ElemNodeIndex[le]
		for j, gn := range m.ElemNodes(ge) {
			lm.ElemNodeItem[lstart+j] = nodeTr.toLocal(gn)
		}
	}
}

// projectGroups filters each group table down to the members present
// locally, dropping entries whose owning entity didn't make it into the
// local id tables (grp_item holding a global id not found keeps local id 0,
// which we drop rather than write a bogus 0 reference).
func projectGroups(m *mesh.GlobalMesh, lm *mesh.LocalMesh, nodeTr, elemTr translation) {
	lm.NodeGroup = filterItemGroup(m.NodeGroup, nodeTr)
	lm.ElemGroup = filterItemGroup(m.ElemGroup, elemTr)
	lm.SurfGroup = filterSurfGroup(m.SurfGroup, elemTr)
}

func filterItemGroup(g mesh.Group, tr translation) mesh.Group {
	out := mesh.Group{NGrp: g.NGrp, GrpName: g.GrpName, GrpIndex: make([]int, g.NGrp+1)}
	for i := 0; i < g.NGrp; i++ {
		for _, gid := range g.GrpItem[g.GrpIndex[i]:g.GrpIndex[i+1]] {
			if lid := tr.toLocal(gid); lid != 0 {
				out.GrpItem = append(out.GrpItem, lid)
			}
		}
		out.GrpIndex[i+1] = len(out.GrpItem)
	}
	return out
}

// filterSurfGroup keeps (elem, surf) pairs whose elem id is present locally.
func filterSurfGroup(g mesh.Group, elemTr translation) mesh.Group {
	out := mesh.Group{NGrp: g.NGrp, GrpName: g.GrpName, GrpIndex: make([]int, g.NGrp+1)}
	for i := 0; i < g.NGrp; i++ {
		items := g.GrpItem[g.GrpIndex[i]:g.GrpIndex[i+1]]
		for j := 0; j+1 < len(items); j += 2 {
			elemID, surfID := items[j], items[j+1]
			if lid := elemTr.toLocal(elemID); lid != 0 {
				out.GrpItem = append(out.GrpItem, lid, surfID)
			}
		}
		out.GrpIndex[i+1] = len(out.GrpItem)
	}
	return out
}

// projectMPC keeps an MPC iff at least one of its term nodes is locally
// internal (const_n_mpc's rule) — Open Question 2's resolution — then
// translates the remaining MPCs' node references to local ids.
func projectMPC(m *mesh.GlobalMesh, lm *mesh.LocalMesh, nodeTr translation) {
	g := m.MPC
	for i := 0; i < g.N; i++ {
		keep := false
		for _, gn := range g.Node[g.Index[i]:g.Index[i+1]] {
			if lid := nodeTr.toLocal(gn); lid != 0 && lid <= lm.NNInternal {
				keep = true
				break
			}
		}
		if !keep {
			continue
		}
		lm.MPC.N++
		for j := g.Index[i]; j < g.Index[i+1]; j++ {
			lm.MPC.Node = append(lm.MPC.Node, nodeTr.toLocal(g.Node[j]))
			lm.MPC.Dof = append(lm.MPC.Dof, g.Dof[j])
			lm.MPC.Value = append(lm.MPC.Value, g.Value[j])
		}
		lm.MPC.Const = append(lm.MPC.Const, g.Const[i])
		lm.MPC.Index = append(lm.MPC.Index, len(lm.MPC.Node))
	}
	if lm.MPC.Index == nil {
		lm.MPC.Index = []int{0}
	} else {
		lm.MPC.Index = append([]int{0}, lm.MPC.Index...)
	}
}

// projectComm translates comm.Tables' global-id import/export/shared items
// into this domain's own local ids (const_import_item/const_export_item/
// const_shared_item: a single global2local table serves all three, since
// every item — whether owned by us or a neighbor — is, by construction,
// present in our own halo).
func projectComm(lm *mesh.LocalMesh, tables *comm.Tables, nodeTr, elemTr translation, partType mesh.PartType) {
	mainTr, orthoTr := nodeTr, elemTr
	if partType == mesh.ElemBased {
		mainTr, orthoTr = orthoTr, mainTr
	}

	lm.NeighborPE = tables.NeighborPE
	lm.NNeighborPE = len(tables.NeighborPE)

	lm.ImportIndex = tables.ImportIndex
	lm.ImportItem = translateItems(tables.ImportItem, mainTr)

	lm.ExportIndex = tables.ExportIndex
	lm.ExportItem = translateItems(tables.ExportItem, mainTr)

	lm.SharedIndex = tables.SharedIndex
	lm.SharedItem = translateItems(tables.SharedItem, orthoTr)
}

func translateItems(globalIDs []int, tr translation) []int {
	if len(globalIDs) == 0 {
		return nil
	}
	out := make([]int, len(globalIDs))
	for i, g := range globalIDs {
		out[i] = tr.global2local[g]
	}
	return out
}
