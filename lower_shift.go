package netview

func init() {
	registerLowerer([]string{"$shl", "$shr", "$sshl", "$sshr", "$shift", "$shiftx"}, lowerShift)
}

var shiftType = map[string]DeviceType{
	"$shl": DevShiftLeft, "$sshl": DevShiftLeft,
	"$shr": DevShiftRight, "$sshr": DevShiftRight,
	"$shift": DevShiftRight, "$shiftx": DevShiftRight,
}

// lowerShift lowers shl/shr/sshl/sshr/shift/shiftx (spec.md §4.3):
// signed.in2 is set only for shift/shiftx, signed.out only for sshl/sshr
// when A_SIGNED, fillx only for shiftx.
func lowerShift(c *converter, name string, cell *Cell) error {
	a, b, y, err := binaryConns(name, cell)
	if err != nil {
		return err
	}
	aSigned := boolParam(cell, "A_SIGNED")

	signedIn2 := cell.Type == "$shift" || cell.Type == "$shiftx"
	signedOut := (cell.Type == "$sshl" || cell.Type == "$sshr") && aSigned
	fillx := cell.Type == "$shiftx"

	d := NewDevice(shiftType[cell.Type]).
		Set("bits", map[string]int{"in1": len(a), "in2": len(b), "out": len(y)}).
		Set("signed", map[string]interface{}{"in1": aSigned, "in2": signedIn2, "out": signedOut}).
		Set("fillx", fillx)
	id := c.addDevice(d)
	c.target(id, "in1", a)
	c.target(id, "in2", b)
	return c.source(id, "out", y)
}
