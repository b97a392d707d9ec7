// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package nettest provides utility functions for testing converted module
// graphs. Where the teacher's hwtest package drove a simulated circuit with
// random inputs and checked its outputs, a converted graph has nothing to
// run — there is no simulation here (see the package doc of netview) — so
// this package instead checks the graph's static shape: that every expected
// device and connector is present, that no stray ones crept in, and that
// devices compare equal attribute-by-attribute.
package nettest

import (
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/db47h/netview"
)

// DevicesOfType returns the ids of every device of type t in g, sorted.
func DevicesOfType(g *netview.ModuleGraph, t netview.DeviceType) []string {
	var ids []string
	for id, d := range g.Devices {
		if d.Type == t {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// CountByType tallies g's devices by type, for assertions like "exactly one
// Dff and two Mux".
func CountByType(g *netview.ModuleGraph) map[netview.DeviceType]int {
	counts := make(map[netview.DeviceType]int)
	for _, d := range g.Devices {
		counts[d.Type]++
	}
	return counts
}

// RequireCount fails t if g does not contain exactly want devices of type
// typ.
func RequireCount(t *testing.T, g *netview.ModuleGraph, typ netview.DeviceType, want int) {
	t.Helper()
	got := len(DevicesOfType(g, typ))
	if got != want {
		t.Errorf("device count for %s: got %d, want %d", typ, got, want)
	}
}

// RequireAttr fails t if device id does not exist in g, or its attribute key
// does not deep-equal want.
func RequireAttr(t *testing.T, g *netview.ModuleGraph, id, key string, want interface{}) {
	t.Helper()
	d, ok := g.Devices[id]
	if !ok {
		t.Errorf("device %s not found", id)
		return
	}
	got := d.Attrs[key]
	if !reflect.DeepEqual(got, want) {
		t.Errorf("device %s attr %s: got %#v, want %#v", id, key, got, want)
	}
}

// ConnectorsFrom returns every connector in g sourced from id/port, in
// emission order.
func ConnectorsFrom(g *netview.ModuleGraph, id, port string) []netview.Connector {
	var out []netview.Connector
	for _, c := range g.Connectors {
		if c.From.ID == id && c.From.Port == port {
			out = append(out, c)
		}
	}
	return out
}

// ConnectorsTo returns every connector in g targeting id/port.
func ConnectorsTo(g *netview.ModuleGraph, id, port string) []netview.Connector {
	var out []netview.Connector
	for _, c := range g.Connectors {
		if c.To.ID == id && c.To.Port == port {
			out = append(out, c)
		}
	}
	return out
}

// RequireSingleSource fails t unless exactly one connector in g targets
// id/port, returning its source endpoint.
func RequireSingleSource(t *testing.T, g *netview.ModuleGraph, id, port string) netview.Endpoint {
	t.Helper()
	cs := ConnectorsTo(g, id, port)
	if len(cs) != 1 {
		t.Fatalf("port %s/%s: got %d incoming connectors, want 1", id, port, len(cs))
	}
	return cs[0].From
}

// NoMultiSourcedConstants fails t if any Constant device in g feeds more
// than one connector, the invariant sub-phase (f)'s replication rule exists
// to preserve.
func NoMultiSourcedConstants(t *testing.T, g *netview.ModuleGraph) {
	t.Helper()
	fanout := make(map[string]int)
	for _, c := range g.Connectors {
		if d, ok := g.Devices[c.From.ID]; ok && d.Type == netview.DevConstant {
			fanout[c.From.ID]++
		}
	}
	for id, n := range fanout {
		if n > 1 {
			t.Errorf("constant device %s feeds %d connectors, want at most 1", id, n)
		}
	}
}

// DescribeGraph renders a short human-readable summary of g, useful as a
// t.Log attachment when an assertion above fails.
func DescribeGraph(g *netview.ModuleGraph) string {
	counts := CountByType(g)
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)
	s := ""
	for _, t := range types {
		s += fmt.Sprintf("%s=%d ", t, counts[netview.DeviceType(t)])
	}
	return s
}
