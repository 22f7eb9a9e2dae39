// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package control parses the partitioner control file (spec.md §6), in the
// same style as gofem's inp/sim.go: a JSON-tagged struct, a SetDefault, and
// a PostProcess/validation step run right after decode.
package control

import (
	"encoding/json"

	"github.com/cpmech/ddcomp/errs"
	"github.com/cpmech/ddcomp/mesh"
	"github.com/cpmech/gosl/io"
)

// Method selects the partitioning backend.
type Method int

const (
	RCB Method = iota
	PMETIS
	KMETIS
)

func (m Method) String() string {
	switch m {
	case PMETIS:
		return "PMETIS"
	case KMETIS:
		return "KMETIS"
	}
	return "RCB"
}

// Axis is one RCB cutting axis.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func parseAxis(s string) (Axis, error) {
	switch s {
	case "X":
		return X, nil
	case "Y":
		return Y, nil
	case "Z":
		return Z, nil
	}
	return X, errs.New(errs.InvalidRcbDir, "control.parseAxis", "unknown rcb_axis %q", s)
}

// Control is the control-file options recognized by the core (spec.md §6).
type Control struct {
	NDomain     int      `json:"n_domain"`
	TypeRaw     string   `json:"type"`
	MethodRaw   string   `json:"method"`
	Depth       int      `json:"depth"`
	RCBAxisRaw  []string `json:"rcb_axis,omitempty"`
	IsPrintUCD  bool     `json:"is_print_ucd"`
	UCDFileName string   `json:"ucd_file_name,omitempty"`

	// recovered from original_source (SPEC_FULL.md §3 item 3): names the
	// node group used as the equation block when placing MPCs that span
	// domains. Empty means "none configured".
	EquationBlockGroup string `json:"equation_block_group,omitempty"`

	// derived
	Type    mesh.PartType
	Method  Method
	RCBAxis []Axis
}

// SetDefault mirrors inp/sim.go's Data.SetDefault.
func (c *Control) SetDefault() {
	c.MethodRaw = "RCB"
	c.Depth = 1
}

// Load reads and validates a control file.
func Load(dir, fn string) (*Control, error) {
	path := dir + "/" + fn
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidArg, "control.Load", err, "cannot read control file %s", path)
	}
	var c Control
	c.SetDefault()
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, errs.Wrap(errs.InvalidArg, "control.Load", err, "cannot unmarshal control file %s", path)
	}
	if err := c.postProcess(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Control) postProcess() error {
	if c.NDomain <= 0 {
		return errs.New(errs.InvalidArg, "control.Control.postProcess", "n_domain must be > 0, got %d", c.NDomain)
	}
	if c.Depth < 1 {
		return errs.New(errs.InvalidArg, "control.Control.postProcess", "depth must be >= 1, got %d", c.Depth)
	}

	pt, err := mesh.ParsePartType(c.TypeRaw)
	if err != nil {
		return err
	}
	c.Type = pt

	// Open Question 1 (SPEC_FULL.md §11): reject depth>1 in ELEM_BASED
	// mode rather than silently ignoring it as the source does.
	if c.Type == mesh.ElemBased && c.Depth > 1 {
		return errs.New(errs.InvalidArg, "control.Control.postProcess", "depth > 1 is not supported in ELEM_BASED mode")
	}

	switch c.MethodRaw {
	case "RCB":
		c.Method = RCB
	case "PMETIS":
		c.Method = PMETIS
	case "KMETIS":
		c.Method = KMETIS
	default:
		return errs.New(errs.InvalidPartMethod, "control.Control.postProcess", "unknown method %q", c.MethodRaw)
	}

	if c.Method == RCB {
		axes := make([]Axis, len(c.RCBAxisRaw))
		for i, a := range c.RCBAxisRaw {
			ax, err := parseAxis(a)
			if err != nil {
				return err
			}
			axes[i] = ax
		}
		c.RCBAxis = axes
		want := 1 << uint(len(axes))
		if c.NDomain != want {
			return errs.New(errs.InvalidArg, "control.Control.postProcess",
				"RCB requires n_domain == 2^len(rcb_axis): n_domain=%d, 2^%d=%d", c.NDomain, len(axes), want)
		}
	}
	return nil
}
