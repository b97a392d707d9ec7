package ioui_test

import (
	"testing"

	"github.com/db47h/netview"
	"github.com/db47h/netview/ioui"
)

func TestPromoteClock(t *testing.T) {
	g := &netview.ModuleGraph{Devices: map[string]*netview.Device{
		"dev0": netview.NewDevice(netview.DevInput).Set("bits", 1).Set("net", "clk"),
	}}
	ioui.Promote(g)
	if g.Devices["dev0"].Type != netview.DevClock {
		t.Errorf("got %s, want %s", g.Devices["dev0"].Type, netview.DevClock)
	}
}

func TestPromoteButtonAndNumEntry(t *testing.T) {
	g := &netview.ModuleGraph{Devices: map[string]*netview.Device{
		"btn": netview.NewDevice(netview.DevInput).Set("bits", 1).Set("net", "reset"),
		"num": netview.NewDevice(netview.DevInput).Set("bits", 8).Set("net", "data"),
	}}
	ioui.Promote(g)
	if g.Devices["btn"].Type != netview.DevButton {
		t.Errorf("got %s, want Button", g.Devices["btn"].Type)
	}
	if g.Devices["num"].Type != netview.DevNumEntry {
		t.Errorf("got %s, want NumEntry", g.Devices["num"].Type)
	}
}

func TestPromoteLampDisplay7NumDisplay(t *testing.T) {
	g := &netview.ModuleGraph{Devices: map[string]*netview.Device{
		"lamp":     netview.NewDevice(netview.DevOutput).Set("bits", 1).Set("net", "led"),
		"display7": netview.NewDevice(netview.DevOutput).Set("bits", 8).Set("net", "display7_1"),
		"num":      netview.NewDevice(netview.DevOutput).Set("bits", 8).Set("net", "value"),
	}}
	ioui.Promote(g)
	if g.Devices["lamp"].Type != netview.DevLamp {
		t.Errorf("got %s, want Lamp", g.Devices["lamp"].Type)
	}
	if g.Devices["display7"].Type != netview.DevDisplay7 {
		t.Errorf("got %s, want Display7", g.Devices["display7"].Type)
	}
	if g.Devices["num"].Type != netview.DevNumDisplay {
		t.Errorf("got %s, want NumDisplay", g.Devices["num"].Type)
	}
}

func TestPromoteRecursesIntoSubcircuits(t *testing.T) {
	sub := &netview.ModuleGraph{Devices: map[string]*netview.Device{
		"clk": netview.NewDevice(netview.DevInput).Set("bits", 1).Set("net", "clock"),
	}}
	top := &netview.ModuleGraph{
		Devices:     map[string]*netview.Device{},
		Subcircuits: map[string]*netview.ModuleGraph{"sub": sub},
	}
	ioui.Promote(top)
	if sub.Devices["clk"].Type != netview.DevClock {
		t.Errorf("subcircuit device not promoted: got %s", sub.Devices["clk"].Type)
	}
}
