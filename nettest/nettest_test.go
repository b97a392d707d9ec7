package nettest_test

import (
	"testing"

	"github.com/db47h/netview"
	"github.com/db47h/netview/nettest"
)

func buildGraph() *netview.ModuleGraph {
	return &netview.ModuleGraph{
		Devices: map[string]*netview.Device{
			"dev0": netview.NewDevice(netview.DevConstant).Set("constant", "1"),
			"dev1": netview.NewDevice(netview.DevConstant).Set("constant", "1"),
			"dev2": netview.NewDevice(netview.DevAnd).Set("bits", 1),
		},
		Connectors: []netview.Connector{
			{From: netview.Endpoint{ID: "dev0", Port: "out"}, To: netview.Endpoint{ID: "dev2", Port: "in1"}},
			{From: netview.Endpoint{ID: "dev1", Port: "out"}, To: netview.Endpoint{ID: "dev2", Port: "in2"}},
		},
	}
}

func TestRequireCount(t *testing.T) {
	g := buildGraph()
	nettest.RequireCount(t, g, netview.DevConstant, 2)
	nettest.RequireCount(t, g, netview.DevAnd, 1)
}

func TestRequireAttr(t *testing.T) {
	g := buildGraph()
	nettest.RequireAttr(t, g, "dev2", "bits", 1)
}

func TestRequireSingleSource(t *testing.T) {
	g := buildGraph()
	ep := nettest.RequireSingleSource(t, g, "dev2", "in1")
	if ep.ID != "dev0" {
		t.Errorf("got %q, want dev0", ep.ID)
	}
}

func TestNoMultiSourcedConstants(t *testing.T) {
	g := buildGraph()
	nettest.NoMultiSourcedConstants(t, g) // one connector per Constant device: passes

	g.Connectors = append(g.Connectors, netview.Connector{
		From: netview.Endpoint{ID: "dev0", Port: "out"}, To: netview.Endpoint{ID: "dev2", Port: "in2"},
	})
	sub := t.Run("expect_failure", func(t *testing.T) {
		nettest.NoMultiSourcedConstants(t, g)
	})
	if sub {
		t.Errorf("expected NoMultiSourcedConstants to flag the duplicate fanout")
	}
}
