package netview

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// A Direction is the signalling direction of a module port or a cell's
// connection to one of its ports.
type Direction int

// Port/connection directions.
const (
	DirInput Direction = iota
	DirOutput
	DirInout
)

// UnmarshalJSON accepts the synthesizer's "input"/"output"/"inout" strings.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "netview: invalid direction")
	}
	dir, err := parseDirection(s)
	if err != nil {
		return err
	}
	*d = dir
	return nil
}

func parseDirection(s string) (Direction, error) {
	switch s {
	case "input":
		return DirInput, nil
	case "output":
		return DirOutput, nil
	case "inout":
		return DirInout, nil
	default:
		return 0, errors.Errorf("netview: invalid port direction %q", s)
	}
}

// MarshalJSON re-emits a direction the way the synthesizer spells it.
func (d Direction) MarshalJSON() ([]byte, error) {
	var s string
	switch d {
	case DirInput:
		s = "input"
	case DirOutput:
		s = "output"
	case DirInout:
		s = "inout"
	}
	return json.Marshal(s)
}

// Port describes one port of a module: its signalling direction and its
// ordered bit-vector.
type Port struct {
	Direction Direction `json:"direction"`
	Bits      BitVector `json:"bits"`
}

// Cell describes one instance inside a module: a primitive gate, an
// arithmetic unit, a flip-flop, a memory, a finite-state machine, or a
// sub-module instance.
type Cell struct {
	Type        string                `json:"type"`
	Parameters  map[string]Param      `json:"parameters"`
	Attributes  map[string]Param      `json:"attributes"`
	PortDirs    map[string]Direction  `json:"port_directions"`
	Connections map[string]BitVector  `json:"connections"`
}

// NetNameInfo records a symbolic net name the synthesizer attached to a
// bit-vector, along with whether the name is internal ("hidden") bookkeeping
// rather than something a user wrote in the source.
type NetNameInfo struct {
	Hidden     bool              `json:"hide_name"`
	Bits       BitVector         `json:"bits"`
	Attributes map[string]Param  `json:"attributes"`
}

// ModuleIR is one module as emitted by the synthesizer.
type ModuleIR struct {
	Ports    map[string]*Port
	Cells    map[string]*Cell
	NetNames map[string]*NetNameInfo

	// PortOrder/CellOrder preserve declaration order, which JSON object
	// decoding into a map does not guarantee on its own; UnmarshalJSON
	// below populates them from the raw token stream so device ids stay
	// deterministic (spec: "device ids are assigned strictly in
	// insertion order").
	PortOrder []string
	CellOrder []string
}

type moduleIRWire struct {
	Ports    map[string]*Port        `json:"ports"`
	Cells    map[string]*Cell        `json:"cells"`
	NetNames map[string]*NetNameInfo `json:"netnames"`
}

// UnmarshalJSON decodes a module and records the declaration order of its
// ports and cells objects.
func (m *ModuleIR) UnmarshalJSON(data []byte) error {
	var w moduleIRWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.Ports, m.Cells, m.NetNames = w.Ports, w.Cells, w.NetNames

	portOrder, err := objectKeyOrder(data, "ports")
	if err != nil {
		return err
	}
	cellOrder, err := objectKeyOrder(data, "cells")
	if err != nil {
		return err
	}
	m.PortOrder, m.CellOrder = portOrder, cellOrder
	return nil
}

// objectKeyOrder returns the key order of the JSON object found under field
// within the top-level object encoded in data.
func objectKeyOrder(data []byte, field string) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	// top-level {
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		if key != field {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
			continue
		}
		return decodeObjectKeyOrder(dec)
	}
	return nil, nil
}

// decodeObjectKeyOrder assumes dec is positioned right before the object
// whose key order is wanted and consumes it fully.
func decodeObjectKeyOrder(dec *json.Decoder) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("netview: expected object")
	}
	var order []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		order = append(order, key)
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil { // closing }
		return nil, err
	}
	return order, nil
}

// Netlist is the top-level synthesizer output: a named collection of
// modules.
type Netlist struct {
	Modules map[string]*ModuleIR

	// ModuleOrder preserves declaration order. The dependency sorter breaks
	// ties between modules alphabetically, so this order does not affect
	// its result.
	ModuleOrder []string
}

type netlistWire struct {
	Modules map[string]*ModuleIR `json:"modules"`
}

// UnmarshalJSON decodes a netlist and records the declaration order of its
// modules object.
func (n *Netlist) UnmarshalJSON(data []byte) error {
	var w netlistWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	n.Modules = w.Modules
	order, err := objectKeyOrder(data, "modules")
	if err != nil {
		return err
	}
	n.ModuleOrder = order
	return nil
}
