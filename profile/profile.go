// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile accumulates the partitioning-run counters (spec.md §4.4
// last paragraph, §7) and prints them, in the same vein as fem/summary.go's
// Summary: a small value-typed record, one Save/Print pair, no resident
// state beyond what a single run produces.
package profile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	gosio "github.com/cpmech/gosl/io"

	"github.com/cpmech/ddcomp/errs"
)

// SubdomainStats holds the per-subdomain counters, filled by the driver from
// each LocalMesh that local.Project returns.
type SubdomainStats struct {
	Domain      int `json:"domain"`
	NNode       int `json:"n_node"`
	NElem       int `json:"n_elem"`
	NNInternal  int `json:"nn_internal"`
	NEInternal  int `json:"ne_internal"`
	NNeighborPE int `json:"n_neighbor_pe"`
}

// Profile is the run-wide summary: partitioning configuration plus one
// SubdomainStats per output subdomain and the global edge-cut.
type Profile struct {
	PartType   string `json:"part_type"`
	Method     string `json:"method"`
	Depth      int    `json:"depth"`
	NSubdomain int    `json:"n_subdomain"`
	NNode      int    `json:"n_node"`
	NElem      int    `json:"n_elem"`
	EdgeCut    int    `json:"edge_cut"`

	Subdomains []SubdomainStats `json:"subdomains"`
}

// Add appends one subdomain's stats, in domain-ascending call order.
func (p *Profile) Add(s SubdomainStats) {
	p.Subdomains = append(p.Subdomains, s)
}

// Print writes a human-readable report to w (spec.md's profile/log sink,
// SPEC_FULL.md §8).
func (p *Profile) Print(w io.Writer) {
	fmt.Fprintf(w, "partition type   = %s\n", p.PartType)
	fmt.Fprintf(w, "method           = %s\n", p.Method)
	fmt.Fprintf(w, "depth            = %d\n", p.Depth)
	fmt.Fprintf(w, "n_subdomain      = %d\n", p.NSubdomain)
	fmt.Fprintf(w, "n_node (global)  = %d\n", p.NNode)
	fmt.Fprintf(w, "n_elem (global)  = %d\n", p.NElem)
	fmt.Fprintf(w, "edge_cut         = %d\n", p.EdgeCut)
	fmt.Fprintf(w, "\n%6s%10s%10s%14s%14s%10s\n", "dom", "n_node", "n_elem", "nn_internal", "ne_internal", "n_neighbor")
	for _, s := range p.Subdomains {
		fmt.Fprintf(w, "%6d%10d%10d%14d%14d%10d\n", s.Domain, s.NNode, s.NElem, s.NNInternal, s.NEInternal, s.NNeighborPE)
	}
}

// Save writes the profile as "<dir>/<fnamekey>.profile.json", the same
// JSON-file convention the rest of this module's I/O uses.
func (p *Profile) Save(dir, fnamekey string) error {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errs.Wrap(errs.InvalidArg, "profile.Profile.Save", err, "cannot marshal profile")
	}
	path := gosio.Sf("%s/%s.profile.json", dir, fnamekey)
	if err := os.WriteFile(path, b, 0644); err != nil {
		return errs.Wrap(errs.InvalidArg, "profile.Profile.Save", err, "cannot write %s", path)
	}
	return nil
}
