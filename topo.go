package netview

import (
	"sort"

	"github.com/pkg/errors"
)

// sortModules returns a topological order over nl's user-defined modules
// such that every module instantiated by another appears before it, and the
// top module (the one never instantiated) appears last (spec.md §4.2).
//
// This adapts the teacher's wiring.go node-graph idiom (a map keyed by a
// small value type, edges recorded as outgoing lists, a single pass that
// detects cycles) to an instantiation graph instead of a pin graph.
func sortModules(nl *Netlist) ([]string, error) {
	names := moduleNames(nl)

	indeg := make(map[string]int, len(names))
	out := make(map[string][]string, len(names))
	for _, n := range names {
		indeg[n] = 0
	}
	for _, name := range names {
		mod := nl.Modules[name]
		deps := make(map[string]bool)
		for _, cell := range mod.Cells {
			if _, ok := nl.Modules[cell.Type]; ok {
				deps[cell.Type] = true
			}
		}
		depNames := make([]string, 0, len(deps))
		for d := range deps {
			depNames = append(depNames, d)
		}
		sort.Strings(depNames)
		for _, d := range depNames {
			out[d] = append(out[d], name)
			indeg[name]++
		}
	}

	var queue []string
	for _, n := range names {
		if indeg[n] == 0 {
			queue = append(queue, n)
		}
	}
	sort.Strings(queue)

	order := make([]string, 0, len(names))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)

		var next []string
		for _, m := range out[n] {
			indeg[m]--
			if indeg[m] == 0 {
				next = append(next, m)
			}
		}
		sort.Strings(next)
		queue = append(queue, next...)
		sort.Strings(queue)
	}

	if len(order) != len(names) {
		return nil, errors.New("netview: module instantiation graph contains a cycle")
	}
	return order, nil
}

func moduleNames(nl *Netlist) []string {
	seen := make(map[string]bool, len(nl.Modules))
	names := make([]string, 0, len(nl.Modules))
	for _, n := range nl.ModuleOrder {
		if nl.Modules[n] != nil && !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	for n := range nl.Modules {
		if !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	return names
}

// topModule returns the unique module never instantiated by any other
// module in nl's instantiation graph, i.e. the last entry of sortModules'
// result.
func topModule(nl *Netlist) (string, []string, error) {
	order, err := sortModules(nl)
	if err != nil {
		return "", nil, err
	}
	if len(order) == 0 {
		return "", nil, errors.New("netview: netlist has no modules")
	}
	top := order[len(order)-1]
	subs := order[:len(order)-1]
	return top, subs, nil
}
