// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elemtype is the descendant of gofem's shp.Shape factory, trimmed
// down to what a partitioner (rather than a solver) needs: given an
// HEC-MW-style element-type code, how many nodes does it have and what VTK
// cell code does it map to for visualization. The shape-function tables
// themselves (shp.Shape.Func, the Jacobian scratchpad, ...) have no use here
// and are not carried over.
package elemtype

// entry describes one HEC-MW element-type code.
type entry struct {
	name    string
	nverts  int
	vtkCode int
}

// factory mirrors shp.factory's role: a lookup table built once at init.
var factory = map[int]entry{
	111: {"lin2", 2, 3},  // VTK_LINE
	231: {"tri3", 3, 5},  // VTK_TRIANGLE
	232: {"tri6", 6, 22}, // VTK_QUADRATIC_TRIANGLE
	241: {"qua4", 4, 9},  // VTK_QUAD
	242: {"qua8", 8, 23}, // VTK_QUADRATIC_QUAD
	341: {"tet4", 4, 10}, // VTK_TETRA
	342: {"tet10", 10, 24},
	351: {"pri6", 6, 13}, // VTK_WEDGE
	361: {"hex8", 8, 12}, // VTK_HEXAHEDRON
	362: {"hex20", 20, 25},
}

// NumNodes returns the number of nodes of the element-type code, or 0 if the
// code is unknown.
func NumNodes(code int) int {
	return factory[code].nverts
}

// VTKCode returns the VTK cell-type code for code, or -1 if unknown (the ucd
// writer falls back to VTK_POLYGON for those).
func VTKCode(code int) int {
	e, ok := factory[code]
	if !ok {
		return -1
	}
	return e.vtkCode
}

// Name returns the human-readable name of code, or "" if unknown.
func Name(code int) string {
	return factory[code].name
}
