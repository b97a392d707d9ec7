package netview

import "encoding/json"

// A DeviceType is one of the closed vocabulary of display device kinds the
// converter ever emits.
type DeviceType string

// Device type tags. This set is closed: the converter never invents a type
// tag outside this list. A cell whose type names a user-defined module
// becomes a Subcircuit; any other cell type it cannot lower is an
// UnknownCellError.
const (
	DevInput   DeviceType = "Input"
	DevOutput  DeviceType = "Output"
	DevClock   DeviceType = "Clock"
	DevButton  DeviceType = "Button"
	DevLamp    DeviceType = "Lamp"
	DevNumEntry   DeviceType = "NumEntry"
	DevNumDisplay DeviceType = "NumDisplay"
	DevDisplay7   DeviceType = "Display7"

	DevConstant DeviceType = "Constant"

	DevNot      DeviceType = "Not"
	DevRepeater DeviceType = "Repeater"
	DevAnd      DeviceType = "And"
	DevNand     DeviceType = "Nand"
	DevOr       DeviceType = "Or"
	DevNor      DeviceType = "Nor"
	DevXor      DeviceType = "Xor"
	DevXnor     DeviceType = "Xnor"

	DevAndReduce  DeviceType = "AndReduce"
	DevNandReduce DeviceType = "NandReduce"
	DevOrReduce   DeviceType = "OrReduce"
	DevNorReduce  DeviceType = "NorReduce"
	DevXorReduce  DeviceType = "XorReduce"
	DevXnorReduce DeviceType = "XnorReduce"

	DevNegation  DeviceType = "Negation"
	DevUnaryPlus DeviceType = "UnaryPlus"

	DevAddition       DeviceType = "Addition"
	DevSubtraction    DeviceType = "Subtraction"
	DevMultiplication DeviceType = "Multiplication"
	DevDivision       DeviceType = "Division"
	DevModulo         DeviceType = "Modulo"
	DevPower          DeviceType = "Power"

	DevShiftLeft  DeviceType = "ShiftLeft"
	DevShiftRight DeviceType = "ShiftRight"

	DevLt DeviceType = "Lt"
	DevLe DeviceType = "Le"
	DevEq DeviceType = "Eq"
	DevNe DeviceType = "Ne"
	DevGt DeviceType = "Gt"
	DevGe DeviceType = "Ge"

	DevMux     DeviceType = "Mux"
	DevMux1Hot DeviceType = "Mux1Hot"

	DevDff    DeviceType = "Dff"
	DevMemory DeviceType = "Memory"
	DevFSM    DeviceType = "FSM"

	DevBusGroup   DeviceType = "BusGroup"
	DevBusUngroup DeviceType = "BusUngroup"
	DevBusSlice   DeviceType = "BusSlice"
	DevZeroExtend DeviceType = "ZeroExtend"
	DevSignExtend DeviceType = "SignExtend"

	DevSubcircuit DeviceType = "Subcircuit"
)

// A Device is one node of the output graph: a display-level gate,
// arithmetic unit, register, mux, memory, bus-glue device, constant or I/O
// control. Attrs carries the type-specific attributes described in spec.md
// §4.3/§6 (bits, signed, polarity, memdata, celltype, ...); it is merged
// into the top level of the JSON object at marshal time so the wire format
// matches the synthesizer's own flat device records.
type Device struct {
	Type  DeviceType
	Attrs map[string]interface{}
}

// NewDevice creates a device of the given type with an empty attribute set.
func NewDevice(t DeviceType) *Device {
	return &Device{Type: t, Attrs: make(map[string]interface{})}
}

// Set stores an attribute on the device and returns it, for chaining.
func (d *Device) Set(key string, value interface{}) *Device {
	d.Attrs[key] = value
	return d
}

// MarshalJSON flattens Attrs alongside the "type" field.
func (d *Device) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(d.Attrs)+1)
	for k, v := range d.Attrs {
		out[k] = v
	}
	out["type"] = string(d.Type)
	return json.Marshal(out)
}

// UnmarshalJSON restores a device from its flattened JSON form.
func (d *Device) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	t, _ := m["type"].(string)
	delete(m, "type")
	d.Type = DeviceType(t)
	d.Attrs = m
	return nil
}
