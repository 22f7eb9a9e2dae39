// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ucd writes the optional global partition-visualization file
// (spec.md §6, control.Control.IsPrintUCD/UCDFileName): a VTK UnstructuredGrid
// (.vtu) of the whole global mesh with one cell-data scalar, the owning
// subdomain id, coloring every element by partition. Grounded on
// tools/GenVtu.go's header/topology/cell-data buffer-writing style (io.Ff
// into bytes.Buffer, assembled and written once at the end) rather than its
// solution-field machinery, which this partitioner has no use for.
package ucd

import (
	"bytes"
	"os"

	"github.com/cpmech/ddcomp/elemtype"
	"github.com/cpmech/ddcomp/errs"
	"github.com/cpmech/ddcomp/mesh"
	"github.com/cpmech/gosl/io"
)

// VTK_POLYGON is the fallback cell type for element-type codes elemtype does
// not recognize, so a partition dump never fails outright over an unknown
// element.
const vtkPolygon = 7

// Write renders m's elements, colored by each element's owner domain
// (m.ElemOwner, in either partition mode), to path as a .vtu file.
func Write(path string, m *mesh.GlobalMesh) error {
	var b bytes.Buffer

	io.Ff(&b, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&b, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", m.NNode, m.NElem)

	io.Ff(&b, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for i := 0; i < m.NNode; i++ {
		x, y, z := m.NodeXYZ(i)
		io.Ff(&b, "%23.15e %23.15e %23.15e ", x, y, z)
	}
	io.Ff(&b, "\n</DataArray>\n</Points>\n")

	io.Ff(&b, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for e := 0; e < m.NElem; e++ {
		for _, gn := range m.ElemNodes(e) {
			io.Ff(&b, "%d ", gn-1)
		}
	}
	io.Ff(&b, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for e := 0; e < m.NElem; e++ {
		offset += len(m.ElemNodes(e))
		io.Ff(&b, "%d ", offset)
	}
	io.Ff(&b, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for e := 0; e < m.NElem; e++ {
		vtk := elemtype.VTKCode(m.ElemType[e])
		if vtk < 0 {
			vtk = vtkPolygon
		}
		io.Ff(&b, "%d ", vtk)
	}
	io.Ff(&b, "\n</DataArray>\n</Cells>\n")

	io.Ff(&b, "<CellData Scalars=\"domain\">\n<DataArray type=\"Int32\" Name=\"domain\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for e := 0; e < m.NElem; e++ {
		io.Ff(&b, "%d ", m.ElemOwner(e))
	}
	io.Ff(&b, "\n</DataArray>\n</CellData>\n")

	io.Ff(&b, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")

	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		return errs.Wrap(errs.InvalidArg, "ucd.Write", err, "cannot write %s", path)
	}
	return nil
}
