package netview

func init() {
	registerLowerer([]string{
		"$reduce_and", "$reduce_or", "$reduce_xor", "$reduce_xnor", "$reduce_bool", "$logic_not",
	}, lowerReduce)
}

var reduceType = map[string]DeviceType{
	"$reduce_and":  DevAndReduce,
	"$reduce_or":   DevOrReduce,
	"$reduce_xor":  DevXorReduce,
	"$reduce_xnor": DevXnorReduce,
	"$reduce_bool": DevOrReduce,
	"$logic_not":   DevNorReduce,
}

// lowerReduce lowers reduce_and/or/xor/xnor/bool and logic_not: the natural
// result is one bit, zero-extended up to Y's width when Y is wider.
// Width-1 reductions degenerate per spec.md §4.3: reduce_xnor and
// logic_not become Not, the rest become Repeater.
func lowerReduce(c *converter, name string, cell *Cell) error {
	a, okA := cell.Connections["A"]
	y, okY := cell.Connections["Y"]
	if !okA || !okY {
		return structuralErr(name, cell, "missing A/Y connection")
	}

	t := reduceType[cell.Type]
	if len(a) == 1 {
		switch cell.Type {
		case "$reduce_xnor", "$logic_not":
			t = DevNot
		default:
			t = DevRepeater
		}
	}

	d := NewDevice(t).Set("bits", len(a))
	id := c.addDevice(d)
	c.target(id, "in", a)
	return c.wireReducedResult(id, "out", y)
}
