// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package ioui rewrites a converted module's generic Input/Output devices
// into UI-specific device kinds, an external collaborator to the core
// converter (spec.md §4.5). Nothing here participates in the conversion
// pipeline proper: it is applied afterward, optionally, to the assembled
// graph returned by netview.Convert.
package ioui

import (
	"strings"

	"github.com/db47h/netview"
)

// clockDelay is the propagation delay (in whatever time unit the display
// front-end uses) assigned to every Input rewritten to a Clock.
const clockDelay = 100

// Promote rewrites every Input/Output device in g, and recursively in its
// subcircuits, to a UI-specific device kind:
//
//   - a 1-bit Input labeled "clk" or "clock" becomes a Clock
//   - any other 1-bit Input becomes a Button
//   - any wider Input becomes a NumEntry
//   - a 1-bit Output becomes a Lamp
//   - an 8-bit Output labeled "display7" (or "display7_...") becomes a Display7
//   - any other Output becomes a NumDisplay
func Promote(g *netview.ModuleGraph) {
	for _, d := range g.Devices {
		promoteDevice(d)
	}
	for _, sub := range g.Subcircuits {
		Promote(sub)
	}
}

func promoteDevice(d *netview.Device) {
	switch d.Type {
	case netview.DevInput:
		promoteInput(d)
	case netview.DevOutput:
		promoteOutput(d)
	}
}

func promoteInput(d *netview.Device) {
	bits, _ := d.Attrs["bits"].(int)
	label, _ := d.Attrs["net"].(string)
	if bits == 1 && isClockLabel(label) {
		d.Type = netview.DevClock
		d.Attrs["delay"] = clockDelay
		return
	}
	if bits == 1 {
		d.Type = netview.DevButton
		return
	}
	d.Type = netview.DevNumEntry
}

func promoteOutput(d *netview.Device) {
	bits, _ := d.Attrs["bits"].(int)
	label, _ := d.Attrs["net"].(string)
	switch {
	case bits == 1:
		d.Type = netview.DevLamp
	case bits == 8 && isDisplay7Label(label):
		d.Type = netview.DevDisplay7
	default:
		d.Type = netview.DevNumDisplay
	}
}

func isClockLabel(label string) bool {
	l := strings.ToLower(label)
	return l == "clk" || l == "clock"
}

func isDisplay7Label(label string) bool {
	l := strings.ToLower(label)
	return l == "display7" || strings.HasPrefix(l, "display7_")
}
