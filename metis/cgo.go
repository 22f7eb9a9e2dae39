// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build metis

package metis

/*
#cgo CFLAGS: -I/usr/local/include
#cgo LDFLAGS: -L/usr/local/lib -lmetis -lm
#cgo darwin CFLAGS: -I/opt/homebrew/include -I/usr/local/include
#cgo darwin LDFLAGS: -L/opt/homebrew/lib -L/usr/local/lib -lmetis

#include <metis.h>
#include <stdlib.h>
*/
import "C"

import (
	"errors"
)

// cgoBackend wraps the real METIS library, grounded on go-metis's
// PartGraphRecursive/PartGraphKway bindings.
type cgoBackend struct{}

func newCompiledBackend() Backend { return cgoBackend{} }

func (cgoBackend) Available() bool { return true }

func (cgoBackend) Partition(method Method, xadj, adjncy []int, nparts int) (part []int, edgecut int, err error) {
	n := len(xadj) - 1
	if n <= 0 {
		return nil, 0, nil
	}

	cxadj := toIdx(xadj)
	cadjncy := toIdx(adjncy)
	nvtxs := C.idx_t(n)
	ncon := C.idx_t(1)
	cnparts := C.idx_t(nparts)
	cpart := make([]C.idx_t, n)
	var objval C.idx_t

	var ret C.int
	switch method {
	case Recursive:
		ret = C.METIS_PartGraphRecursive(
			&nvtxs, &ncon,
			&cxadj[0], &cadjncy[0],
			nil, nil, nil,
			&cnparts, nil, nil, nil,
			&objval, &cpart[0])
	default:
		ret = C.METIS_PartGraphKway(
			&nvtxs, &ncon,
			&cxadj[0], &cadjncy[0],
			nil, nil, nil,
			&cnparts, nil, nil, nil,
			&objval, &cpart[0])
	}
	if ret != C.METIS_OK {
		return nil, 0, metisError(ret)
	}

	part = make([]int, n)
	for i := range part {
		part[i] = int(cpart[i])
	}
	return part, int(objval), nil
}

func toIdx(xs []int) []C.idx_t {
	out := make([]C.idx_t, len(xs))
	for i, x := range xs {
		out[i] = C.idx_t(x)
	}
	return out
}

func metisError(ret C.int) error {
	switch ret {
	case C.METIS_ERROR_INPUT:
		return errors.New("METIS error: erroneous inputs and/or options")
	case C.METIS_ERROR_MEMORY:
		return errors.New("METIS error: insufficient memory")
	default:
		return errors.New("METIS error: general error")
	}
}
