package netview

func init() {
	registerLowerer([]string{"$eq", "$ne", "$lt", "$le", "$gt", "$ge", "$eqx", "$nex"}, lowerCompare)
}

var compareType = map[string]DeviceType{
	"$eq": DevEq, "$eqx": DevEq,
	"$ne": DevNe, "$nex": DevNe,
	"$lt": DevLt, "$le": DevLe, "$gt": DevGt, "$ge": DevGe,
}

// lowerCompare lowers eq/ne/lt/le/gt/ge/eqx/nex: {bits: {in1, in2}, signed:
// {in1, in2}}; Y zero-extended from the natural 1-bit result. eqx/nex map
// to Eq/Ne (spec.md §4.3).
func lowerCompare(c *converter, name string, cell *Cell) error {
	a, b, y, err := binaryConns(name, cell)
	if err != nil {
		return err
	}
	d := NewDevice(compareType[cell.Type]).
		Set("bits", map[string]int{"in1": len(a), "in2": len(b)}).
		Set("signed", signedAttr(boolParam(cell, "A_SIGNED"), boolParam(cell, "B_SIGNED")))
	id := c.addDevice(d)
	c.target(id, "in1", a)
	c.target(id, "in2", b)
	return c.wireReducedResult(id, "out", y)
}
