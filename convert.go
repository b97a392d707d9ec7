package netview

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// converter builds one module's output graph from its synthesizer IR. It is
// a single-assignment builder: once a device is added it is never removed,
// and net records are only ever extended (source/targets/name/positions),
// mirroring the teacher's chip-building pass in chip.go.
type converter struct {
	nl       *Netlist
	modName  string
	mod      *ModuleIR
	portMaps map[string]portMap

	devices     map[string]*Device
	deviceOrder []string
	nextID      int
	nextSynth   Bit

	nets *netTable
	prov provenanceTable
	idx  portIndex

	warnings []string
}

func newConverter(nl *Netlist, portMaps map[string]portMap, modName string) *converter {
	return &converter{
		nl:        nl,
		modName:   modName,
		mod:       nl.Modules[modName],
		portMaps:  portMaps,
		devices:   make(map[string]*Device),
		nextSynth: synthBase,
		nets:      newNetTable(),
		prov:      make(provenanceTable),
		idx:       make(portIndex),
	}
}

// addDevice allocates a new device id in strict insertion order and
// registers the device (spec.md §5: ids assigned in insertion order).
func (c *converter) addDevice(d *Device) string {
	id := fmt.Sprintf("dev%d", c.nextID)
	c.nextID++
	c.devices[id] = d
	c.deviceOrder = append(c.deviceOrder, id)
	return id
}

// source records id/port as the source of v: it becomes the net's driver.
// Only primary sources populate the provenance table; bus-glue devices
// (BusGroup, ZeroExtend, SignExtend, BusSlice) leave it untouched.
func (c *converter) source(id, port string, v BitVector) error {
	c.idx.set(id, port, v)
	switch c.devices[id].Type {
	case DevBusGroup, DevZeroExtend, DevSignExtend, DevBusSlice:
	default:
		c.prov.record(id, port, v)
	}
	if err := c.nets.setSource(v, Endpoint{ID: id, Port: port}, id); err != nil {
		return wrapf(err, "device %s port %s", id, port)
	}
	return nil
}

// target records id/port as a consumer of v.
func (c *converter) target(id, port string, v BitVector) {
	c.idx.set(id, port, v)
	c.nets.addTarget(v, Endpoint{ID: id, Port: port})
}

// convertModule runs the six sub-phases in strict order and returns the
// resulting module graph (spec.md §4.3).
func convertModule(nl *Netlist, portMaps map[string]portMap, modName string) (*ModuleGraph, []string, error) {
	c := newConverter(nl, portMaps, modName)

	c.harvestNetNames()
	c.materializeIO()
	if err := c.lowerCells(); err != nil {
		return nil, nil, errors.Wrapf(err, "module %s", modName)
	}
	if err := c.groupAndExtend(); err != nil {
		return nil, nil, errors.Wrapf(err, "module %s", modName)
	}
	c.resolveConstantsAndSlices()
	connectors := c.emitConnectors()

	g := newModuleGraph()
	g.Devices = c.devices
	g.Connectors = connectors
	return g, c.warnings, nil
}

// harvestNetNames is sub-phase (a): collect every non-hidden symbolic net
// name and source position, keeping the first name seen per vector.
func (c *converter) harvestNetNames() {
	names := make([]string, 0, len(c.mod.NetNames))
	for name := range c.mod.NetNames {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		nn := c.mod.NetNames[name]
		c.nets.setName(nn.Bits, name, nn.Hidden)
		if posParam, ok := nn.Attributes["src"]; ok {
			c.nets.addSourcePositions(nn.Bits, parseSourcePositions(posParam.String()))
		}
	}
}

// materializeIO is sub-phase (b): create an Input or Output device for
// every port of the module. Inputs are primary sources; outputs are
// targets.
func (c *converter) materializeIO() {
	order := c.mod.PortOrder
	if len(order) == 0 {
		for name := range c.mod.Ports {
			order = append(order, name)
		}
		sort.Strings(order)
	}
	for i, name := range order {
		port := c.mod.Ports[name]
		if port == nil {
			continue
		}
		switch port.Direction {
		case DirOutput:
			d := NewDevice(DevOutput).Set("net", name).Set("order", i).Set("bits", len(port.Bits))
			id := c.addDevice(d)
			c.target(id, "in", port.Bits)
		default: // DirInput, DirInout: materialize as an Input device
			d := NewDevice(DevInput).Set("net", name).Set("order", i).Set("bits", len(port.Bits))
			id := c.addDevice(d)
			_ = c.source(id, "out", port.Bits)
		}
	}
}

// lowerCells is sub-phase (c): create and wire a device for every cell, in
// declaration order.
func (c *converter) lowerCells() error {
	order := c.mod.CellOrder
	if len(order) == 0 {
		for name := range c.mod.Cells {
			order = append(order, name)
		}
		sort.Strings(order)
	}
	for _, name := range order {
		cell := c.mod.Cells[name]
		if err := c.lowerCell(name, cell); err != nil {
			return errors.Wrapf(err, "cell %s", name)
		}
	}
	return nil
}

// lowerCell dispatches a single cell to its per-class lowering rule, or
// falls back to a Subcircuit device when the type names a user-defined
// module, or fails with UnknownCellError otherwise (spec.md §7, kind 3).
func (c *converter) lowerCell(name string, cell *Cell) error {
	if fn, ok := cellLowerers[cell.Type]; ok {
		return fn(c, name, cell)
	}
	if _, ok := c.nl.Modules[cell.Type]; ok {
		return c.lowerSubcircuit(name, cell)
	}
	return &UnknownCellError{CellType: cell.Type}
}

// lowerSubcircuit wires a cell whose type is a user-defined module as a
// Subcircuit device, using the identity port map built for that module.
func (c *converter) lowerSubcircuit(name string, cell *Cell) error {
	d := NewDevice(DevSubcircuit).Set("celltype", cell.Type).Set("label", name)
	id := c.addDevice(d)
	return c.wireGeneric(name, id, cell, c.portMaps[cell.Type])
}

// controlPorts are the clock/reset/enable connections whose width is fixed
// at one bit by convention, independent of a cell's declared WIDTH
// parameter (spec.md §4.3(c)(2)).
var controlPorts = map[string]bool{
	"CLK": true, "ARST": true, "SRST": true,
	"EN": true, "SET": true, "CLR": true, "ALOAD": true,
}

// expectedDirection reports the structural-contract direction for port s of
// cell, when one is known: a sub-circuit's own declared port direction, or
// for primitive cells the convention that Y, Q and CTRL_OUT are outputs and
// every other port is an input. The second
// result is false when no contract applies (e.g. an inout port), in which
// case the caller skips the check rather than asserting on it.
func (c *converter) expectedDirection(cell *Cell, port string) (Direction, bool) {
	if mod, ok := c.nl.Modules[cell.Type]; ok {
		p := mod.Ports[port]
		if p == nil || p.Direction == DirInout {
			return 0, false
		}
		return p.Direction, true
	}
	if port == "Y" || port == "Q" || port == "CTRL_OUT" {
		return DirOutput, true
	}
	return DirInput, true
}

// wireGeneric wires a cell using a static port-map: input connections
// become net targets, output connections become primary net sources,
// exactly as spec.md §4.3(c)(4) describes for cells with a port-map entry.
// Before wiring, it validates every mapped connection's direction against
// the cell's structural contract, and the width of any conventionally
// single-bit control port (spec.md §4.3(c)(2), §7 kind 1).
func (c *converter) wireGeneric(name string, id string, cell *Cell, pm portMap) error {
	syn := make([]string, 0, len(cell.Connections))
	for s := range cell.Connections {
		syn = append(syn, s)
	}
	sort.Strings(syn)
	for _, s := range syn {
		bits := cell.Connections[s]
		disp, ok := pm[s]
		if !ok {
			continue
		}
		if want, ok := c.expectedDirection(cell, s); ok {
			if err := c.assertDirection(name, cell, s, want); err != nil {
				return err
			}
		}
		if controlPorts[s] {
			if err := c.assertWidth(name, cell, s, 1); err != nil {
				return err
			}
		}
		dir := cell.PortDirs[s]
		if dir == DirOutput {
			if err := c.source(id, disp, bits); err != nil {
				return err
			}
		} else {
			c.target(id, disp, bits)
		}
	}
	return nil
}

// assertWidth is the structural width invariant check shared by every
// per-class lowering rule that has a fixed-width port to validate (spec.md
// §4.3(c)(2)).
func (c *converter) assertWidth(name string, cell *Cell, port string, want int) error {
	bits, ok := cell.Connections[port]
	if !ok {
		return structuralErr(name, cell, "missing connection "+port)
	}
	if len(bits) != want {
		return structuralErr(name, cell, fmt.Sprintf("port %s has width %d, expected %d", port, len(bits), want))
	}
	return nil
}

// assertDirection is the structural direction invariant check shared by
// every per-class lowering rule that wires through wireGeneric (spec.md
// §4.3(c)(2), §7 kind 1).
func (c *converter) assertDirection(name string, cell *Cell, port string, want Direction) error {
	got, ok := cell.PortDirs[port]
	if !ok {
		return structuralErr(name, cell, "missing port direction for "+port)
	}
	if got != want {
		return structuralErr(name, cell, "port "+port+" has the wrong direction")
	}
	return nil
}

// intParam reads an integer parameter, defaulting to def when absent.
func intParam(cell *Cell, name string, def int64) int64 {
	p, ok := cell.Parameters[name]
	if !ok {
		return def
	}
	v, ok := p.Int()
	if !ok {
		return def
	}
	return v
}

func boolParam(cell *Cell, name string) bool {
	p, ok := cell.Parameters[name]
	return ok && p.Bool()
}

// cellLowerer lowers one cell of a recognized type into a device, wired
// into the converter's net table.
type cellLowerer func(c *converter, name string, cell *Cell) error

// cellLowerers is the dispatch table assembled from the lower_*.go files.
var cellLowerers = map[string]cellLowerer{}

func registerLowerer(types []string, fn cellLowerer) {
	for _, t := range types {
		cellLowerers[t] = fn
	}
}
