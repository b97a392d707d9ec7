package netview

func init() {
	registerLowerer([]string{"$logic_and", "$logic_or"}, lowerLogical)
}

var logicalType = map[string]DeviceType{
	"$logic_and": DevAnd,
	"$logic_or":  DevOr,
}

// lowerLogical lowers logic_and/logic_or: each operand wider than one bit
// is first reduced to a single bit through an inserted OrReduce device,
// then an And/Or gate combines the two 1-bit operands; Y is zero-extended
// from that natural 1-bit result (spec.md §4.3).
func lowerLogical(c *converter, name string, cell *Cell) error {
	a, b, y, err := binaryConns(name, cell)
	if err != nil {
		return err
	}
	ra := c.reduceToBool(a)
	rb := c.reduceToBool(b)
	d := NewDevice(logicalType[cell.Type]).Set("bits", 1)
	id := c.addDevice(d)
	c.target(id, "in1", ra)
	c.target(id, "in2", rb)
	return c.wireReducedResult(id, "out", y)
}
