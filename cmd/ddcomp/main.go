// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ddcomp is the partitioner driver: load a global mesh and a control
// file, run the partitioning policy, and write one local mesh per subdomain.
// Grounded on the teacher's top-level main.go: mpi.Start/mpi.Stop guarding a
// recover-and-report defer, utl.Panic on bad usage, utl.DoProf for optional
// profiling.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/ddcomp/comm"
	"github.com/cpmech/ddcomp/control"
	"github.com/cpmech/ddcomp/halo"
	"github.com/cpmech/ddcomp/local"
	"github.com/cpmech/ddcomp/logx"
	"github.com/cpmech/ddcomp/mesh"
	"github.com/cpmech/ddcomp/metis"
	"github.com/cpmech/ddcomp/partition"
	"github.com/cpmech/ddcomp/profile"
	"github.com/cpmech/ddcomp/ucd"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	utl.Tsilent = false
	defer func() {
		failed := false
		if mpi.Rank() == 0 {
			if err := recover(); err != nil {
				utl.PfRed("ERROR: %v\n", err)
				failed = true
			}
		}
		mpi.Stop(false)
		if failed {
			os.Exit(1)
		}
	}()
	mpi.Start(false)

	utl.PfWhite("\nddcomp -- finite-element mesh domain decomposer\n\n")
	utl.Pf("Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.\n")
	utl.Pf("Use of this source code is governed by a BSD-style\n")
	utl.Pf("license that can be found in the LICENSE file.\n\n")

	flag.Parse()
	args := flag.Args()
	if len(args) < 3 {
		utl.Panic("usage: ddcomp <dir> <mesh.json> <control.json> [output-header]\n")
		return
	}
	dir, meshFn, ctrlFn := args[0], args[1], args[2]
	header := "part"
	if len(args) > 3 {
		header = args[3]
	}

	// profiling?
	defer utl.DoProf(false)()

	if logx.Err(logx.Init(dir, header), "cannot open log file") {
		utl.Panic("logx.Init failed\n")
		return
	}
	defer logx.Flush()

	if err := run(dir, meshFn, ctrlFn, header); err != nil {
		logx.Err(err, "ddcomp run failed")
		utl.Panic("%v\n", err)
	}
}

// run drives the full pipeline: load -> partition -> number -> per-domain
// mask/comm/project/write -> optional UCD dump -> profile.
func run(dir, meshFn, ctrlFn, header string) error {
	m, err := mesh.LoadGlobal(dir, meshFn)
	if err != nil {
		return err
	}

	ctrl, err := control.Load(dir, ctrlFn)
	if err != nil {
		return err
	}
	m.PartDepth = ctrl.Depth
	m.NSubdomain = ctrl.NDomain

	backend := metis.Default()

	switch ctrl.Type {
	case mesh.NodeBased:
		if err := partition.AssignNodes(m, ctrl, backend); err != nil {
			return err
		}
		partition.DeriveElemOwners(m)
	case mesh.ElemBased:
		if err := partition.AssignElems(m, ctrl, backend); err != nil {
			return err
		}
		if err := partition.DeriveNodeOwners(m); err != nil {
			return err
		}
	}

	if err := partition.NumberNodes(m.NNode, ctrl.NDomain, m.NodeID); err != nil {
		return err
	}
	if err := partition.NumberElems(m.NElem, ctrl.NDomain, m.ElemID); err != nil {
		return err
	}

	prof := &profile.Profile{
		PartType:   m.PartType.String(),
		Method:     ctrl.Method.String(),
		Depth:      ctrl.Depth,
		NSubdomain: ctrl.NDomain,
		NNode:      m.NNode,
		NElem:      m.NElem,
		EdgeCut:    comm.EdgeCut(m, ctrl.Type),
	}

	maskOf := func(d int) *halo.Masks {
		if ctrl.Type == mesh.NodeBased {
			return halo.MaskNodeBased(m, d, ctrl.Depth)
		}
		return halo.MaskElemBased(m, d)
	}

	for d := 0; d < ctrl.NDomain; d++ {
		mk := maskOf(d)

		var neighbors []int
		if ctrl.Type == mesh.NodeBased {
			neighbors = halo.NeighborsNodeBased(m, mk)
		} else {
			neighbors = halo.NeighborsElemBased(m, mk)
		}

		tables := comm.Synthesize(m, ctrl.Type, mk, neighbors, maskOf)

		lm := local.Project(m, d, mk, tables)
		if err := mesh.WriteLocal(dir, header, lm); err != nil {
			return err
		}

		prof.Add(profile.SubdomainStats{
			Domain:      d,
			NNode:       lm.NNode,
			NElem:       lm.NElem,
			NNInternal:  lm.NNInternal,
			NEInternal:  lm.NEInternal,
			NNeighborPE: lm.NNeighborPE,
		})
	}

	if ctrl.IsPrintUCD {
		name := ctrl.UCDFileName
		if name == "" {
			name = header + ".vtu"
		}
		if err := ucd.Write(dir+"/"+name, m); err != nil {
			return err
		}
	}

	prof.Print(os.Stdout)
	return prof.Save(dir, header)
}
