package netview

func init() {
	registerLowerer([]string{"$neg", "$pos"}, lowerUnaryArith)
	registerLowerer([]string{"$not"}, lowerBitwiseNot)
}

var unaryArithType = map[string]DeviceType{
	"$neg": DevNegation,
	"$pos": DevUnaryPlus,
}

// lowerUnaryArith lowers $neg/$pos: {bits: {in, out}, signed: A_SIGNED}.
func lowerUnaryArith(c *converter, name string, cell *Cell) error {
	a, okA := cell.Connections["A"]
	y, okY := cell.Connections["Y"]
	if !okA || !okY {
		return structuralErr(name, cell, "missing A/Y connection")
	}
	d := NewDevice(unaryArithType[cell.Type]).
		Set("bits", map[string]int{"in": len(a), "out": len(y)}).
		Set("signed", boolParam(cell, "A_SIGNED"))
	id := c.addDevice(d)
	c.target(id, "in", a)
	return c.source(id, "out", y)
}

// lowerBitwiseNot lowers $not: pads A to Y's width (sign-extending if
// A_SIGNED, else zero-extending), then a 1:1 Not gate over the padded
// value.
func lowerBitwiseNot(c *converter, name string, cell *Cell) error {
	a, okA := cell.Connections["A"]
	y, okY := cell.Connections["Y"]
	if !okA || !okY {
		return structuralErr(name, cell, "missing A/Y connection")
	}
	signed := boolParam(cell, "A_SIGNED")
	padded := c.padToWidth(a, len(y), signed)
	d := NewDevice(DevNot).Set("bits", len(y))
	id := c.addDevice(d)
	c.target(id, "in", padded)
	return c.source(id, "out", y)
}
