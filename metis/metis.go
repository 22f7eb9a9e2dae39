// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metis is the external graph-partitioning collaborator (spec.md
// §4.2.2, §6). The core never links METIS directly; it calls through the
// Backend interface, which has two implementations selected by the "metis"
// build tag: a real cgo binding (cgo.go, grounded on the go-metis
// package's METIS_PartGraphRecursive/METIS_PartGraphKway wrappers) and a
// stub used by default. Per spec, the stub never itself errors — it returns
// an all-zero partition and edgecut 0; turning that into a configuration
// error when nparts>1 is the caller's job (partition.assignByMetis).
package metis

// Method selects which METIS algorithm to call.
type Method int

const (
	Recursive Method = iota // pMETIS: multilevel recursive bisection
	KWay                    // kMETIS: multilevel k-way partitioning
)

// Backend is the narrow interface the core calls through.
type Backend interface {
	// Partition runs the partitioner over a graph given as CSR (xadj,
	// adjncy) with nparts target partitions. part[i] is the domain id of
	// vertex i. edgecut is the number of graph edges whose endpoints end
	// up in different partitions.
	Partition(method Method, xadj, adjncy []int, nparts int) (part []int, edgecut int, err error)

	// Available reports whether this backend is a real compiled-in METIS,
	// as opposed to the always-present stub.
	Available() bool
}

// Default returns the build's compiled-in backend: newCompiledBackend is
// defined in cgo.go (build tag "metis") or stub.go (default).
func Default() Backend { return newCompiledBackend() }
