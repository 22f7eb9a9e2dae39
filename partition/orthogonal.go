// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"github.com/cpmech/ddcomp/errs"
	"github.com/cpmech/ddcomp/mesh"
)

// DeriveElemOwners assigns each element's owner as the minimum domain id
// among its nodes' owners (spec.md §4.2.3, node-based mode): deterministic
// tie-break matching the overlap-side convention that the lowest-id
// neighbor owns shared structure.
func DeriveElemOwners(m *mesh.GlobalMesh) {
	for e := 0; e < m.NElem; e++ {
		owner := m.NSubdomain
		for _, gn := range m.ElemNodes(e) {
			if d := m.NodeOwner(gn - 1); d < owner {
				owner = d
			}
		}
		m.ElemID[2*e+1] = owner
	}
}

// DeriveNodeOwners assigns each node's owner in element-based mode
// (spec.md §4.2.3): initialize every node to the sentinel n_subdomain, then
// for each element with owner d, pull every node's owner down to min(·, d).
// A node left at the sentinel belongs to no element and is an OrphanNode.
func DeriveNodeOwners(m *mesh.GlobalMesh) error {
	for i := 0; i < m.NNode; i++ {
		m.NodeID[2*i+1] = m.NSubdomain
	}
	for e := 0; e < m.NElem; e++ {
		d := m.ElemOwner(e)
		for _, gn := range m.ElemNodes(e) {
			n := gn - 1
			if cur := m.NodeOwner(n); d < cur {
				m.NodeID[2*n+1] = d
			}
		}
	}
	for i := 0; i < m.NNode; i++ {
		if m.NodeOwner(i) == m.NSubdomain {
			return errs.New(errs.OrphanNode, "partition.DeriveNodeOwners", "node %d belongs to no element", i)
		}
	}
	return nil
}
