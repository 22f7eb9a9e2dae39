// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"github.com/cpmech/ddcomp/control"
	"github.com/cpmech/ddcomp/elemtype"
	"github.com/cpmech/ddcomp/errs"
	"github.com/cpmech/ddcomp/graph"
	"github.com/cpmech/ddcomp/mesh"
	"github.com/cpmech/ddcomp/metis"
)

// AssignNodes runs the partitioning policy in NODE_BASED mode: every node's
// domain id is decided directly (spec.md §4.2); m.NodeID's domain slots are
// filled in place.
func AssignNodes(m *mesh.GlobalMesh, ctrl *control.Control, backend metis.Backend) error {
	domain := make([]int, m.NNode)
	switch ctrl.Method {
	case control.RCB:
		if err := RCB(m.NNode, m.NodeXYZ, ctrl.RCBAxis, domain); err != nil {
			return err
		}
	case control.PMETIS, control.KMETIS:
		g := graph.Nodal(m)
		if err := assignByMetis(ctrl, backend, g, domain); err != nil {
			return err
		}
	default:
		return errs.New(errs.InvalidPartMethod, "partition.AssignNodes", "unknown method")
	}
	for i := 0; i < m.NNode; i++ {
		m.NodeID[2*i+1] = domain[i]
	}
	return nil
}

// AssignElems runs the partitioning policy in ELEM_BASED mode (spec.md
// §4.2): every element's domain id is decided directly. For RCB the sort
// key is the element centroid (Open Question 3: elements with an empty
// node list are rejected rather than causing a divide-by-zero).
func AssignElems(m *mesh.GlobalMesh, ctrl *control.Control, backend metis.Backend) error {
	domain := make([]int, m.NElem)
	switch ctrl.Method {
	case control.RCB:
		centroid, err := elemCentroids(m)
		if err != nil {
			return err
		}
		coordOf := func(i int) (x, y, z float64) {
			return centroid[3*i], centroid[3*i+1], centroid[3*i+2]
		}
		if err := RCB(m.NElem, coordOf, ctrl.RCBAxis, domain); err != nil {
			return err
		}
	case control.PMETIS, control.KMETIS:
		g := graph.Elem(m)
		if err := assignByMetis(ctrl, backend, g, domain); err != nil {
			return err
		}
	default:
		return errs.New(errs.InvalidPartMethod, "partition.AssignElems", "unknown method")
	}
	for i := 0; i < m.NElem; i++ {
		m.ElemID[2*i+1] = domain[i]
	}
	return nil
}

// elemCentroids computes mean(node_coord) over each element's node list
// (spec.md §4.2.1), grounded on hecmw_partition.c's calc_gravity. When
// elem_type is present, elemtype.NumNodes cross-checks each element's node
// count against what its HEC-MW type code declares (an unknown code returns
// 0 and is skipped, rather than flagged as a mismatch).
func elemCentroids(m *mesh.GlobalMesh) ([]float64, error) {
	out := make([]float64, 3*m.NElem)
	haveTypes := len(m.ElemType) == m.NElem
	for e := 0; e < m.NElem; e++ {
		nodes := m.ElemNodes(e)
		if len(nodes) == 0 {
			return nil, errs.New(errs.InvalidArg, "partition.elemCentroids", "element %d has an empty node list", e)
		}
		if haveTypes {
			if want := elemtype.NumNodes(m.ElemType[e]); want != 0 && want != len(nodes) {
				return nil, errs.New(errs.InvalidArg, "partition.elemCentroids",
					"element %d declares type %d (%s, %d nodes) but has %d node refs",
					e, m.ElemType[e], elemtype.Name(m.ElemType[e]), want, len(nodes))
			}
		}
		var x, y, z float64
		for _, gn := range nodes {
			nx, ny, nz := m.NodeXYZ(gn - 1)
			x += nx
			y += ny
			z += nz
		}
		n := float64(len(nodes))
		out[3*e], out[3*e+1], out[3*e+2] = x/n, y/n, z/n
	}
	return out, nil
}

// assignByMetis calls the METIS backend and turns "stub + nparts>1" into a
// BackendMissing configuration error (spec.md §4.2.2, §6).
func assignByMetis(ctrl *control.Control, backend metis.Backend, g graph.CSR, domain []int) error {
	if ctrl.NDomain > 1 && !backend.Available() {
		return errs.New(errs.BackendMissing, "partition.assignByMetis", "method %s requires a compiled-in METIS backend", ctrl.Method)
	}
	method := metis.Recursive
	if ctrl.Method == control.KMETIS {
		method = metis.KWay
	}
	part, _, err := backend.Partition(method, g.Index, g.Item, ctrl.NDomain)
	if err != nil {
		return errs.Wrap(errs.AllocError, "partition.assignByMetis", err, "METIS partition failed")
	}
	copy(domain, part)
	return nil
}
