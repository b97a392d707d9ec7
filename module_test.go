package netview

import (
	"encoding/json"
	"testing"
)

func TestModuleIRPreservesDeclarationOrder(t *testing.T) {
	const src = `{
		"ports": {
			"zeta": {"direction": "input", "bits": [2]},
			"alpha": {"direction": "output", "bits": [3]},
			"mid": {"direction": "input", "bits": [4]}
		},
		"cells": {
			"c_last": {"type": "$not", "parameters": {}, "attributes": {},
				"port_directions": {"A": "input", "Y": "output"},
				"connections": {"A": [2], "Y": [3]}},
			"c_first": {"type": "$not", "parameters": {}, "attributes": {},
				"port_directions": {"A": "input", "Y": "output"},
				"connections": {"A": [4], "Y": [5]}}
		},
		"netnames": {}
	}`
	var m ModuleIR
	if err := json.Unmarshal([]byte(src), &m); err != nil {
		t.Fatal(err)
	}
	wantPorts := []string{"zeta", "alpha", "mid"}
	if len(m.PortOrder) != len(wantPorts) {
		t.Fatalf("got %v, want %v", m.PortOrder, wantPorts)
	}
	for i := range wantPorts {
		if m.PortOrder[i] != wantPorts[i] {
			t.Errorf("PortOrder[%d]: got %q, want %q", i, m.PortOrder[i], wantPorts[i])
		}
	}
	wantCells := []string{"c_last", "c_first"}
	for i := range wantCells {
		if m.CellOrder[i] != wantCells[i] {
			t.Errorf("CellOrder[%d]: got %q, want %q", i, m.CellOrder[i], wantCells[i])
		}
	}
}

func TestNetlistPreservesModuleOrder(t *testing.T) {
	const src = `{"modules": {"zeta": {"ports":{},"cells":{},"netnames":{}}, "alpha": {"ports":{},"cells":{},"netnames":{}}}}`
	var nl Netlist
	if err := json.Unmarshal([]byte(src), &nl); err != nil {
		t.Fatal(err)
	}
	if len(nl.ModuleOrder) != 2 || nl.ModuleOrder[0] != "zeta" || nl.ModuleOrder[1] != "alpha" {
		t.Errorf("got %v, want [zeta alpha]", nl.ModuleOrder)
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	for _, s := range []string{"input", "output", "inout"} {
		var d Direction
		if err := json.Unmarshal([]byte(`"`+s+`"`), &d); err != nil {
			t.Fatal(err)
		}
		out, err := json.Marshal(d)
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != `"`+s+`"` {
			t.Errorf("got %s, want %q", out, s)
		}
	}
}

func TestDirectionInvalid(t *testing.T) {
	var d Direction
	if err := json.Unmarshal([]byte(`"sideways"`), &d); err == nil {
		t.Errorf("expected error for invalid direction")
	}
}
