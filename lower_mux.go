package netview

import "strconv"

func init() {
	registerLowerer([]string{"$mux"}, lowerMux)
	registerLowerer([]string{"$pmux"}, lowerPriorityMux)
}

// lowerMux lowers $mux: {bits: {in: W, sel: 1}}, A->in0, B->in1, S->sel,
// Y->out.
func lowerMux(c *converter, name string, cell *Cell) error {
	a, okA := cell.Connections["A"]
	b, okB := cell.Connections["B"]
	s, okS := cell.Connections["S"]
	y, okY := cell.Connections["Y"]
	if !okA || !okB || !okS || !okY {
		return structuralErr(name, cell, "missing A/B/S/Y connection")
	}
	if len(a) != len(b) || len(a) != len(y) {
		return structuralErr(name, cell, "mux data port width mismatch")
	}
	if len(s) != 1 {
		return structuralErr(name, cell, "mux select must be 1 bit")
	}
	d := NewDevice(DevMux).Set("bits", map[string]int{"in": len(a), "sel": 1})
	id := c.addDevice(d)
	c.target(id, "in0", a)
	c.target(id, "in1", b)
	c.target(id, "sel", s)
	return c.source(id, "out", y)
}

// lowerPriorityMux lowers $pmux: {bits: {in: W, sel: S}}. A feeds in0, the
// select vector is reversed onto sel, Y is the primary output, and B is
// split into W-bit slices indexed from the high end onto in1, in2, ...
// (spec.md §4.3).
func lowerPriorityMux(c *converter, name string, cell *Cell) error {
	a, okA := cell.Connections["A"]
	b, okB := cell.Connections["B"]
	s, okS := cell.Connections["S"]
	y, okY := cell.Connections["Y"]
	if !okA || !okB || !okS || !okY {
		return structuralErr(name, cell, "missing A/B/S/Y connection")
	}
	w := len(a)
	sWidth := len(s)
	if w == 0 || sWidth == 0 {
		return structuralErr(name, cell, "pmux requires non-zero WIDTH and S_WIDTH")
	}
	if len(b) != w*sWidth {
		return structuralErr(name, cell, "pmux B width must be WIDTH*S_WIDTH")
	}
	if len(y) != w {
		return structuralErr(name, cell, "pmux Y width must equal WIDTH")
	}

	d := NewDevice(DevMux1Hot).Set("bits", map[string]int{"in": w, "sel": sWidth})
	id := c.addDevice(d)
	c.target(id, "in0", a)
	c.target(id, "sel", s.Reverse())
	for k := 0; k < sWidth; k++ {
		// slices indexed from the high end of B.
		slice := b.Slice((sWidth-1-k)*w, w)
		c.target(id, muxDataPort(k+1), slice)
	}
	return c.source(id, "out", y)
}

func muxDataPort(k int) string {
	return "in" + strconv.Itoa(k)
}
