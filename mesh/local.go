// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/json"
	"os"

	"github.com/cpmech/ddcomp/errs"
	"github.com/cpmech/gosl/io"
)

// LocalMesh is the per-subdomain output of the C7 local-mesh projection
// (spec.md §3). Its fields mirror GlobalMesh's where the semantics carry
// over, plus the numbering/communication tables that only exist locally.
type LocalMesh struct {
	Domain int `json:"domain"` // 0-based subdomain id this mesh belongs to

	NNode           int   `json:"n_node"`
	NNInternal      int   `json:"nn_internal"`
	NodeInternalList []int `json:"node_internal_list"` // empty in node-based mode

	NElem           int   `json:"n_elem"`
	NEInternal      int   `json:"ne_internal"`
	ElemInternalList []int `json:"elem_internal_list"` // empty in elem-based mode

	NodeID []int `json:"node_id"` // interleaved (local_on_owner, owner)
	ElemID []int `json:"elem_id"`

	GlobalNodeID []int `json:"global_node_id"`
	GlobalElemID []int `json:"global_elem_id"`

	NodeCoord     []float64 `json:"node_coord"`
	ElemNodeIndex []int     `json:"elem_node_index"`
	ElemNodeItem  []int     `json:"elem_node_item"` // local node ids

	ElemType []int `json:"elem_type"`
	NodeDOF  []int `json:"node_dof"`

	NodeGroup Group `json:"node_group"`
	ElemGroup Group `json:"elem_group"`
	SurfGroup Group `json:"surf_group"`

	MPC MPC `json:"mpc"`

	// borrowed views; same backing data as the GlobalMesh they came from
	Section     json.RawMessage `json:"section,omitempty"`
	Material    json.RawMessage `json:"material,omitempty"`
	Amplitude   json.RawMessage `json:"amplitude,omitempty"`
	ContactPair ContactPair     `json:"contact_pair"`

	NNeighborPE int   `json:"n_neighbor_pe"`
	NeighborPE  []int `json:"neighbor_pe"`

	ImportIndex []int `json:"import_index"`
	ImportItem  []int `json:"import_item"` // local ids in the owner's table

	ExportIndex []int `json:"export_index"`
	ExportItem  []int `json:"export_item"`

	SharedIndex []int `json:"shared_index"`
	SharedItem  []int `json:"shared_item"`

	PartTypeRaw string `json:"part_type"`
}

// WriteLocal serializes lm and writes it to "<dir>/<header>.<domain>",
// matching spec.md §6: the local-mesh file format is the same shape as the
// global-mesh file.
func WriteLocal(dir, header string, lm *LocalMesh) error {
	b, err := json.MarshalIndent(lm, "", "  ")
	if err != nil {
		return errs.Wrap(errs.InvalidArg, "mesh.WriteLocal", err, "cannot marshal local mesh for domain %d", lm.Domain)
	}
	path := io.Sf("%s/%s.%d", dir, header, lm.Domain)
	if err := os.WriteFile(path, b, 0644); err != nil {
		return errs.Wrap(errs.InvalidArg, "mesh.WriteLocal", err, "cannot write %s", path)
	}
	return nil
}

// AsGlobal converts a LocalMesh back into the GlobalMesh shape it would take
// if it were the only subdomain (n_domain=1 round-trip law, spec.md §8).
// Only meaningful when NNeighborPE==0, i.e. the local mesh has no halo.
func (lm *LocalMesh) AsGlobal() *GlobalMesh {
	return &GlobalMesh{
		NNode:         lm.NNode,
		NElem:         lm.NElem,
		NSubdomain:    1,
		PartDepth:     1,
		NodeCoord:     lm.NodeCoord,
		ElemNodeIndex: lm.ElemNodeIndex,
		ElemNodeItem:  lm.ElemNodeItem,
		NodeID:        lm.NodeID,
		ElemID:        lm.ElemID,
		NodeGroup:     lm.NodeGroup,
		ElemGroup:     lm.ElemGroup,
		SurfGroup:     lm.SurfGroup,
		MPC:           lm.MPC,
		Section:       lm.Section,
		Material:      lm.Material,
		Amplitude:     lm.Amplitude,
		ContactPair:   lm.ContactPair,
		ElemType:      lm.ElemType,
		NodeDOF:       lm.NodeDOF,
	}
}
