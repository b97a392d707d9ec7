/*
Package netview converts a synthesizer's JSON netlist into a display netlist
for an interactive schematic viewer.

Given a hierarchical module graph of ports, cells and bit-level net names as
emitted by a synthesis backend, Convert rebuilds bit-level net identity
across cell boundaries, inserts the bus-grouping/slicing/extension devices
needed to make multi-bit connectivity explicit, lowers every cell to its
display-level equivalent, and assembles the result as a multi-module graph
ordered by instantiation dependency.

netview does not simulate the circuit, place or route anything, or validate
the source hardware description; it is a pure function from a parsed
Netlist value to a ModuleGraph value.
*/
package netview
