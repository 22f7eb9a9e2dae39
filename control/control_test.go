// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/ddcomp/errs"
	"github.com/cpmech/ddcomp/mesh"
)

func writeControl(t *testing.T, body string) (dir, fn string) {
	t.Helper()
	dir = t.TempDir()
	fn = "control.json"
	if err := os.WriteFile(filepath.Join(dir, fn), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, fn
}

func TestLoadRCBValid(t *testing.T) {
	dir, fn := writeControl(t, `{
		"n_domain": 2,
		"type": "NODE_BASED",
		"method": "RCB",
		"rcb_axis": ["X"]
	}`)
	c, err := Load(dir, fn)
	if err != nil {
		t.Fatal(err)
	}
	if c.Method != RCB || c.Type != mesh.NodeBased || len(c.RCBAxis) != 1 || c.RCBAxis[0] != X {
		t.Fatalf("unexpected control: %+v", c)
	}
	if c.Depth != 1 {
		t.Fatalf("expected default depth 1, got %d", c.Depth)
	}
}

func TestLoadRCBRejectsMismatchedDomainCount(t *testing.T) {
	dir, fn := writeControl(t, `{
		"n_domain": 3,
		"type": "NODE_BASED",
		"method": "RCB",
		"rcb_axis": ["X"]
	}`)
	if _, err := Load(dir, fn); err == nil {
		t.Fatal("expected error: n_domain=3 is not 2^1")
	}
}

func TestLoadElemBasedRejectsDepthGreaterThanOne(t *testing.T) {
	dir, fn := writeControl(t, `{
		"n_domain": 4,
		"type": "ELEM_BASED",
		"method": "KMETIS",
		"depth": 2
	}`)
	_, err := Load(dir, fn)
	if err == nil {
		t.Fatal("expected error for depth>1 in ELEM_BASED mode")
	}
	if !errs.Is(err, errs.InvalidArg) {
		t.Fatalf("expected InvalidArg, got %v", err)
	}
}

func TestLoadRejectsBadNDomain(t *testing.T) {
	dir, fn := writeControl(t, `{"n_domain": 0, "type": "NODE_BASED", "method": "RCB"}`)
	if _, err := Load(dir, fn); err == nil {
		t.Fatal("expected error for n_domain<=0")
	}
}

func TestLoadRejectsUnknownMethod(t *testing.T) {
	dir, fn := writeControl(t, `{"n_domain": 1, "type": "NODE_BASED", "method": "BOGUS"}`)
	if _, err := Load(dir, fn); err == nil {
		t.Fatal("expected error for unknown method")
	}
}
