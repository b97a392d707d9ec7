package netview

// synthBase is the first synthetic bit id minted for internal wiring (the
// output of an inserted padding/reduction device that has no corresponding
// net in the synthesizer's own IR). Real net ids are always >= 2, so a
// large negative range keeps synthetic ids from ever colliding with them or
// with the four literal constants (Bit0..BitZ).
const synthBase Bit = -1 << 20

// newSyntheticVector mints width fresh, never-before-seen bit values to
// wire an inserted glue device's output into.
func (c *converter) newSyntheticVector(width int) BitVector {
	v := make(BitVector, width)
	for i := range v {
		v[i] = c.nextSynth
		c.nextSynth--
	}
	return v
}

// padToWidth pads conn (the cell's connection bits for one input port) to
// outWidth, sign- or zero-extending per signed. Per the "Open question" in
// spec.md §9: the padding is only materialized as an inserted
// SignExtend/ZeroExtend device when conn is not entirely constant; an
// all-constant input is padded by extending its literal bits in place, with
// no device inserted, since there is nothing for a display device to show.
func (c *converter) padToWidth(conn BitVector, outWidth int, signed bool) BitVector {
	if len(conn) >= outWidth {
		return conn
	}
	if conn.AllConst() {
		pad := Bit0
		if signed && len(conn) > 0 {
			pad = conn[len(conn)-1]
		}
		out := make(BitVector, outWidth)
		copy(out, conn)
		for i := len(conn); i < outWidth; i++ {
			out[i] = pad
		}
		return out
	}
	t := DevZeroExtend
	if signed {
		t = DevSignExtend
	}
	d := NewDevice(t).Set("input", len(conn)).Set("output", outWidth)
	id := c.addDevice(d)
	c.target(id, "in", conn)
	out := c.newSyntheticVector(outWidth)
	_ = c.source(id, "out", out)
	return out
}

// reduceToBool inserts an OrReduce device over conn when conn is wider than
// one bit, returning a 1-bit vector usable where a boolean operand is
// needed (spec.md §4.3 "Logical and/or").
func (c *converter) reduceToBool(conn BitVector) BitVector {
	if len(conn) == 1 {
		return conn
	}
	d := NewDevice(DevOrReduce).Set("bits", len(conn))
	id := c.addDevice(d)
	c.target(id, "in", conn)
	out := c.newSyntheticVector(1)
	_ = c.source(id, "out", out)
	return out
}

// wireReducedResult wires a device's 1-bit logical result (computed on
// port/id) into yBits, inserting a ZeroExtend device when yBits is wider
// than one bit. Used by reductions, comparisons, and the logical and/or
// gates, all of which compute a natural 1-bit result that Y may be wider
// than (spec.md §4.3).
func (c *converter) wireReducedResult(id, port string, yBits BitVector) error {
	if len(yBits) <= 1 {
		return c.source(id, port, yBits)
	}
	one := c.newSyntheticVector(1)
	if err := c.source(id, port, one); err != nil {
		return err
	}
	ext := c.addDevice(NewDevice(DevZeroExtend).Set("input", 1).Set("output", len(yBits)))
	c.target(ext, "in", one)
	return c.source(ext, "out", yBits)
}

func signedAttr(a, b bool) map[string]interface{} {
	return map[string]interface{}{"in1": a, "in2": b}
}
