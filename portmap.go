package netview

// portMap maps a cell's synthesizer-level port names to display-level port
// names for one cell type.
type portMap map[string]string

// buildPortMaps returns, for every primitive cell type the converter
// recognizes plus every user-defined module in nl, the mapping from
// synthesizer port name to display port name (spec.md §4.1).
//
// Cells whose port fan-out is structural (memories, the parameter-multiplied
// priority mux) are deliberately absent here: they have bespoke wiring
// routines in the lower_* files instead of a static table.
func buildPortMaps(nl *Netlist) map[string]portMap {
	pm := make(map[string]portMap, len(basePortMaps)+len(nl.Modules))
	for k, v := range basePortMaps {
		pm[k] = v
	}
	for name, mod := range nl.Modules {
		pm[name] = identityPortMap(mod)
	}
	return pm
}

// identityPortMap maps every port of a user-defined module to itself, per
// the open question in spec.md §9: sub-module wiring uses identity naming,
// so the sub-circuit's own device accepts those names verbatim.
func identityPortMap(mod *ModuleIR) portMap {
	m := make(portMap, len(mod.Ports))
	for name := range mod.Ports {
		m[name] = name
	}
	return m
}

var unaryPortMap = portMap{"A": "in", "Y": "out"}
var binaryPortMap = portMap{"A": "in1", "B": "in2", "Y": "out"}
var muxPortMap = portMap{"A": "in0", "B": "in1", "S": "sel", "Y": "out"}
var latchPortMap = portMap{"EN": "en", "D": "in", "Q": "out"}
var srPortMap = portMap{"SET": "set", "CLR": "clr", "Q": "out"}
var fsmPortMap = portMap{"ARST": "arst", "CLK": "clk", "CTRL_IN": "in", "CTRL_OUT": "out"}

// registerPortMap covers every optional control input a register variant
// may carry; wirePinsFor copies only the keys present in a given cell's
// connections.
var registerPortMap = portMap{
	"CLK": "clk", "D": "in", "Q": "out",
	"EN": "en", "ARST": "arst", "SRST": "srst",
	"SET": "set", "CLR": "clr", "ALOAD": "aload", "AD": "ain",
}

// basePortMaps seeds the table for every primitive cell type (spec.md
// §4.1). Binary arithmetic/bitwise/compare/shift cells and logical and/or
// share the binary shape; unary arithmetic, bitwise not, reductions and
// logic_not share the unary shape.
var basePortMaps = buildBasePortMaps()

func buildBasePortMaps() map[string]portMap {
	m := make(map[string]portMap)
	for _, t := range []string{"$neg", "$pos", "$not",
		"$reduce_and", "$reduce_or", "$reduce_xor", "$reduce_xnor", "$reduce_bool", "$logic_not"} {
		m[t] = unaryPortMap
	}
	for _, t := range []string{
		"$add", "$sub", "$mul", "$div", "$mod", "$pow",
		"$and", "$or", "$xor", "$xnor",
		"$eq", "$ne", "$lt", "$le", "$gt", "$ge", "$eqx", "$nex",
		"$shl", "$shr", "$sshl", "$sshr", "$shift", "$shiftx",
		"$logic_and", "$logic_or",
	} {
		m[t] = binaryPortMap
	}
	m["$mux"] = muxPortMap
	m["$dlatch"] = latchPortMap
	m["$adlatch"] = portMap{"ARST": "arst", "EN": "en", "D": "in", "Q": "out"}
	m["$sr"] = srPortMap
	m["$fsm"] = fsmPortMap
	for _, t := range []string{"$dff", "$dffe", "$adff", "$adffe",
		"$sdff", "$sdffe", "$sdffce", "$dffsr", "$dffsre", "$aldff", "$aldffe"} {
		m[t] = registerPortMap
	}
	return m
}

// wirePinsFor returns the subset of registerPortMap relevant to cell,
// limited to the ports the cell actually declares in its connections.
func wirePinsFor(cell *Cell, full portMap) portMap {
	m := make(portMap, len(cell.Connections))
	for syn := range cell.Connections {
		if disp, ok := full[syn]; ok {
			m[syn] = disp
		}
	}
	return m
}
