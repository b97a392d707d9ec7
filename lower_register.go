package netview

func init() {
	registerLowerer([]string{
		"$dff", "$dffe", "$adff", "$adffe",
		"$sdff", "$sdffe", "$sdffce",
		"$dlatch", "$adlatch",
		"$dffsr", "$dffsre",
		"$aldff", "$aldffe",
		"$sr",
	}, lowerRegister)
}

// lowerRegister lowers every flip-flop/latch/set-reset variant to a single
// Dff device, carrying bits: W, a polarity record over whichever control
// inputs the cell actually wires, and optional arst_value/srst_value
// (spec.md §4.3 "Registers").
func lowerRegister(c *converter, name string, cell *Cell) error {
	d, okD := cell.Connections["D"]
	q, okQ := cell.Connections["Q"]
	noData := cell.Type == "$sr"
	if !noData && (!okD || !okQ) {
		return structuralErr(name, cell, "missing D/Q connection")
	}
	if noData && !okQ {
		return structuralErr(name, cell, "missing Q connection")
	}
	width := len(q)
	if !noData && len(d) != width {
		return structuralErr(name, cell, "D/Q width mismatch")
	}

	polarity := map[string]interface{}{}
	attrs := map[string]interface{}{"bits": width}

	if clk, ok := cell.Connections["CLK"]; ok {
		if len(clk) != 1 {
			return structuralErr(name, cell, "CLK must be 1 bit")
		}
		polarity["clock"] = boolParam(cell, "CLK_POLARITY")
	}
	if _, ok := cell.Connections["EN"]; ok {
		polarity["enable"] = boolParam(cell, "EN_POLARITY")
	}
	if arst, ok := cell.Connections["ARST"]; ok {
		if len(arst) != 1 {
			return structuralErr(name, cell, "ARST must be 1 bit")
		}
		polarity["arst"] = boolParam(cell, "ARST_POLARITY")
		attrs["arst_value"] = paramBitsOr(cell, "ARST_VALUE", width)
	}
	if _, ok := cell.Connections["SRST"]; ok {
		polarity["srst"] = boolParam(cell, "SRST_POLARITY")
		attrs["srst_value"] = paramBitsOr(cell, "SRST_VALUE", width)
	}
	if _, ok := cell.Connections["SET"]; ok {
		polarity["set"] = boolParam(cell, "SET_POLARITY")
	}
	if _, ok := cell.Connections["CLR"]; ok {
		polarity["clr"] = boolParam(cell, "CLR_POLARITY")
	}
	if _, ok := cell.Connections["ALOAD"]; ok {
		polarity["aload"] = boolParam(cell, "ALOAD_POLARITY")
	}
	attrs["polarity"] = polarity

	if cell.Type == "$sdffce" {
		attrs["enable_srst"] = true
	}
	if noData {
		attrs["no_data"] = true
	}

	dev := &Device{Type: DevDff, Attrs: attrs}
	id := c.addDevice(dev)

	pm := wirePinsFor(cell, registerPortMap)
	if err := c.wireGeneric(name, id, cell, pm); err != nil {
		return err
	}

	if init, ok := findInitAttr(c, q); ok {
		dev.Attrs["initial"] = init
	}
	return nil
}

// findInitAttr looks up a netname entry whose bit-vector is exactly q and
// that carries an "init" attribute, decoding it to a width-q binary string
// (spec.md §4.3(c)(5), §8).
func findInitAttr(c *converter, q BitVector) (string, bool) {
	for _, nn := range c.mod.NetNames {
		if !nn.Bits.Equal(q) {
			continue
		}
		if p, ok := nn.Attributes["init"]; ok {
			return p.Bits(len(q)), true
		}
	}
	return "", false
}

func paramBitsOr(cell *Cell, name string, width int) string {
	p, ok := cell.Parameters[name]
	if !ok {
		return ""
	}
	return p.Bits(width)
}
