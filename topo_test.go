package netview

import "testing"

func cellOfType(t string) *Cell {
	return &Cell{Type: t, Parameters: map[string]Param{}, Attributes: map[string]Param{},
		PortDirs: map[string]Direction{}, Connections: map[string]BitVector{}}
}

func TestSortModulesLinearChain(t *testing.T) {
	nl := &Netlist{
		ModuleOrder: []string{"top", "mid", "leaf"},
		Modules: map[string]*ModuleIR{
			"leaf": {Cells: map[string]*Cell{}},
			"mid": {
				CellOrder: []string{"c0"},
				Cells:     map[string]*Cell{"c0": cellOfType("leaf")},
			},
			"top": {
				CellOrder: []string{"c0"},
				Cells:     map[string]*Cell{"c0": cellOfType("mid")},
			},
		},
	}
	order, err := sortModules(nl)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"leaf", "mid", "top"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestTopModule(t *testing.T) {
	nl := &Netlist{
		ModuleOrder: []string{"top", "leaf"},
		Modules: map[string]*ModuleIR{
			"leaf": {Cells: map[string]*Cell{}},
			"top": {
				CellOrder: []string{"c0"},
				Cells:     map[string]*Cell{"c0": cellOfType("leaf")},
			},
		},
	}
	top, subs, err := topModule(nl)
	if err != nil {
		t.Fatal(err)
	}
	if top != "top" {
		t.Errorf("got top=%q, want %q", top, "top")
	}
	if len(subs) != 1 || subs[0] != "leaf" {
		t.Errorf("got subs=%v, want [leaf]", subs)
	}
}

func TestSortModulesCycle(t *testing.T) {
	nl := &Netlist{
		ModuleOrder: []string{"a", "b"},
		Modules: map[string]*ModuleIR{
			"a": {CellOrder: []string{"c0"}, Cells: map[string]*Cell{"c0": cellOfType("b")}},
			"b": {CellOrder: []string{"c0"}, Cells: map[string]*Cell{"c0": cellOfType("a")}},
		},
	}
	if _, err := sortModules(nl); err == nil {
		t.Errorf("expected cycle error")
	}
}
