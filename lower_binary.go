package netview

func init() {
	registerLowerer([]string{"$add", "$sub", "$mul", "$div", "$mod", "$pow"}, lowerBinaryArith)
	registerLowerer([]string{"$and", "$or", "$xor", "$xnor"}, lowerBitwiseBinary)
}

var binaryArithType = map[string]DeviceType{
	"$add": DevAddition,
	"$sub": DevSubtraction,
	"$mul": DevMultiplication,
	"$div": DevDivision,
	"$mod": DevModulo,
	"$pow": DevPower,
}

// lowerBinaryArith lowers add/sub/mul/div/mod/pow: {bits: {in1, in2, out},
// signed: {in1, in2}}. No input padding.
func lowerBinaryArith(c *converter, name string, cell *Cell) error {
	a, b, y, err := binaryConns(name, cell)
	if err != nil {
		return err
	}
	d := NewDevice(binaryArithType[cell.Type]).
		Set("bits", map[string]int{"in1": len(a), "in2": len(b), "out": len(y)}).
		Set("signed", signedAttr(boolParam(cell, "A_SIGNED"), boolParam(cell, "B_SIGNED")))
	id := c.addDevice(d)
	c.target(id, "in1", a)
	c.target(id, "in2", b)
	return c.source(id, "out", y)
}

var bitwiseBinaryType = map[string]DeviceType{
	"$and":  DevAnd,
	"$or":   DevOr,
	"$xor":  DevXor,
	"$xnor": DevXnor,
}

// lowerBitwiseBinary lowers and/or/xor/xnor: both inputs padded to Y's
// width.
func lowerBitwiseBinary(c *converter, name string, cell *Cell) error {
	a, b, y, err := binaryConns(name, cell)
	if err != nil {
		return err
	}
	pa := c.padToWidth(a, len(y), boolParam(cell, "A_SIGNED"))
	pb := c.padToWidth(b, len(y), boolParam(cell, "B_SIGNED"))
	d := NewDevice(bitwiseBinaryType[cell.Type]).Set("bits", len(y))
	id := c.addDevice(d)
	c.target(id, "in1", pa)
	c.target(id, "in2", pb)
	return c.source(id, "out", y)
}

func binaryConns(name string, cell *Cell) (a, b, y BitVector, err error) {
	var okA, okB, okY bool
	a, okA = cell.Connections["A"]
	b, okB = cell.Connections["B"]
	y, okY = cell.Connections["Y"]
	if !okA || !okB || !okY {
		return nil, nil, nil, structuralErr(name, cell, "missing A/B/Y connection")
	}
	return a, b, y, nil
}
