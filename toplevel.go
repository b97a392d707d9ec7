package netview

import "github.com/pkg/errors"

// Convert runs the full pipeline over a parsed netlist: sort modules into
// dependency order, convert each one, and assemble the top module's
// subcircuits map (spec.md §4.4).
func Convert(nl *Netlist) (*ModuleGraph, []string, error) {
	top, subs, err := topModule(nl)
	if err != nil {
		return nil, nil, err
	}
	portMaps := buildPortMaps(nl)

	var warnings []string
	converted := make(map[string]*ModuleGraph, len(subs))
	for _, name := range subs {
		g, w, err := convertModule(nl, portMaps, name)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "converting module %s", name)
		}
		converted[name] = g
		warnings = append(warnings, w...)
	}

	topGraph, w, err := convertModule(nl, portMaps, top)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "converting module %s", top)
	}
	warnings = append(warnings, w...)

	if len(converted) > 0 {
		topGraph.Subcircuits = converted
	}
	return topGraph, warnings, nil
}
