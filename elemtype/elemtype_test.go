// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elemtype

import "testing"

func TestNumNodesKnownCodes(t *testing.T) {
	cases := map[int]int{111: 2, 231: 3, 232: 6, 241: 4, 242: 8, 341: 4, 342: 10, 351: 6, 361: 8, 362: 20}
	for code, want := range cases {
		if got := NumNodes(code); got != want {
			t.Fatalf("NumNodes(%d) = %d, want %d", code, got, want)
		}
	}
}

func TestNumNodesUnknownCode(t *testing.T) {
	if got := NumNodes(999); got != 0 {
		t.Fatalf("NumNodes(999) = %d, want 0 for an unknown code", got)
	}
}

func TestVTKCodeKnownAndUnknown(t *testing.T) {
	if got := VTKCode(231); got != 5 {
		t.Fatalf("VTKCode(231) = %d, want 5 (VTK_TRIANGLE)", got)
	}
	if got := VTKCode(361); got != 12 {
		t.Fatalf("VTKCode(361) = %d, want 12 (VTK_HEXAHEDRON)", got)
	}
	if got := VTKCode(999); got != -1 {
		t.Fatalf("VTKCode(999) = %d, want -1 for an unknown code", got)
	}
}

func TestNameKnownAndUnknown(t *testing.T) {
	if got := Name(111); got != "lin2" {
		t.Fatalf("Name(111) = %q, want \"lin2\"", got)
	}
	if got := Name(999); got != "" {
		t.Fatalf("Name(999) = %q, want \"\" for an unknown code", got)
	}
}
