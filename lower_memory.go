package netview

import (
	"strconv"
	"strings"
)

func init() {
	registerLowerer([]string{"$mem", "$mem_v2"}, lowerMemory)
	registerLowerer([]string{"$lut"}, lowerLUT)
}

// lowerMemory lowers $mem/$mem_v2 to a single Memory device: {bits: W,
// abits: A, words: S, offset: O, memdata, rdports, wrports}. For each read
// and write port, ADDR/DATA/EN/CLK/ARST/SRST are sliced into per-port
// segments and bound to synthetic port names rd<k>addr, rd<k>data, ...,
// wr<k>addr, ... (spec.md §4.3).
func lowerMemory(c *converter, name string, cell *Cell) error {
	width := int(intParam(cell, "WIDTH", 0))
	abits := int(intParam(cell, "ABITS", 0))
	words := int(intParam(cell, "SIZE", 1<<uint(abits)))
	offset := int(intParam(cell, "OFFSET", 0))
	rdPorts := int(intParam(cell, "RD_PORTS", 0))
	wrPorts := int(intParam(cell, "WR_PORTS", 0))
	v2 := cell.Type == "$mem_v2"

	d := NewDevice(DevMemory).
		Set("bits", width).
		Set("abits", abits).
		Set("words", words).
		Set("offset", offset)
	if memdata := buildMemdata(cell, width, words); memdata != nil {
		d.Set("memdata", memdata)
	}

	id := c.addDevice(d)

	rdClkEnable := cell.Parameters["RD_CLK_ENABLE"]
	rdClkPolarity := cell.Parameters["RD_CLK_POLARITY"]
	rdTransparent := cell.Parameters["RD_TRANSPARENT"]

	rdports := make([]map[string]interface{}, rdPorts)
	for k := 0; k < rdPorts; k++ {
		port := map[string]interface{}{}
		hasClock := bitAt(rdClkEnable, k)
		if hasClock {
			port["clock_polarity"] = bitAt(rdClkPolarity, k)
			port["enable_polarity"] = true
			port["transparent"] = bitAt(rdTransparent, k)
		}
		if v2 {
			if arst, ok := cell.Connections["RD_ARST"]; ok && len(arst) > k {
				port["arst_polarity"] = bitAt(cell.Parameters["RD_ARST_POLARITY"], k)
				port["init_value"] = sliceParamBits(cell, "RD_INIT_VALUE", k, width)
				port["arst_value"] = sliceParamBits(cell, "RD_ARST_VALUE", k, width)
				port["srst_value"] = sliceParamBits(cell, "RD_SRST_VALUE", k, width)
			}
		}
		rdports[k] = port

		c.target(id, rdPortName(k, "addr"), sliceConn(cell, "RD_ADDR", k, abits))
		if err := c.source(id, rdPortName(k, "data"), sliceConn(cell, "RD_DATA", k, width)); err != nil {
			return err
		}
		if en, ok := sliceConnOK(cell, "RD_EN", k, 1); ok {
			c.target(id, rdPortName(k, "en"), en)
		}
		if clk, ok := sliceConnOK(cell, "RD_CLK", k, 1); ok {
			c.target(id, rdPortName(k, "clk"), clk)
		}
		if v2 {
			if arst, ok := sliceConnOK(cell, "RD_ARST", k, 1); ok {
				c.target(id, rdPortName(k, "arst"), arst)
			}
			if srst, ok := sliceConnOK(cell, "RD_SRST", k, 1); ok {
				c.target(id, rdPortName(k, "srst"), srst)
			}
		}
	}
	d.Set("rdports", rdports)

	wrClkPolarity := cell.Parameters["WR_CLK_POLARITY"]

	wrports := make([]map[string]interface{}, wrPorts)
	for k := 0; k < wrPorts; k++ {
		port := map[string]interface{}{
			"clock_polarity": bitAt(wrClkPolarity, k),
		}
		if v2 {
			port["transparent"] = bitAt(cell.Parameters["WR_TRANSPARENT_MASK"], k)
			port["collision"] = bitAt(cell.Parameters["WR_COLLISION_X_MASK"], k)
		}
		wrports[k] = port

		c.target(id, wrPortName(k, "addr"), sliceConn(cell, "WR_ADDR", k, abits))
		c.target(id, wrPortName(k, "data"), sliceConn(cell, "WR_DATA", k, width))
		if en, ok := sliceConnOK(cell, "WR_EN", k, width); ok {
			c.target(id, wrPortName(k, "en"), en)
		}
		if clk, ok := sliceConnOK(cell, "WR_CLK", k, 1); ok {
			c.target(id, wrPortName(k, "clk"), clk)
		}
	}
	d.Set("wrports", wrports)
	return nil
}

// lowerLUT lowers $lut as a single-read-port memory whose address width
// equals A's width and whose contents are the LUT_TABLE parameter reversed
// (spec.md §4.3).
func lowerLUT(c *converter, name string, cell *Cell) error {
	a, okA := cell.Connections["A"]
	y, okY := cell.Connections["Y"]
	if !okA || !okY {
		return structuralErr(name, cell, "missing A/Y connection")
	}
	abits := len(a)
	words := 1 << uint(abits)
	lut := cell.Parameters["LUT_TABLE"].Bits(words)
	memdata := make([]string, words)
	for i := 0; i < words; i++ {
		// lut is MSB-first with one bit per word, so word i is the i-th
		// character from the right: memdata is lut reversed.
		memdata[i] = string(lut[len(lut)-1-i])
	}
	d := NewDevice(DevMemory).
		Set("bits", 1).
		Set("abits", abits).
		Set("words", words).
		Set("offset", 0).
		Set("memdata", memdata).
		Set("rdports", []map[string]interface{}{{}})
	id := c.addDevice(d)
	c.target(id, "rd0addr", a)
	return c.source(id, "rd0data", y)
}

func rdPortName(k int, field string) string { return "rd" + strconv.Itoa(k) + field }
func wrPortName(k int, field string) string { return "wr" + strconv.Itoa(k) + field }

func sliceConn(cell *Cell, port string, k, width int) BitVector {
	v, ok := cell.Connections[port]
	if !ok {
		return make(BitVector, width)
	}
	lo, hi := k*width, (k+1)*width
	if hi > len(v) {
		return make(BitVector, width)
	}
	return v[lo:hi]
}

func sliceConnOK(cell *Cell, port string, k, width int) (BitVector, bool) {
	v, ok := cell.Connections[port]
	if !ok {
		return nil, false
	}
	lo, hi := k*width, (k+1)*width
	if hi > len(v) {
		return nil, false
	}
	return v[lo:hi], true
}

// bitAt reports the k-th bit (from the low end) of a bit-string/int
// parameter, used for per-port polarity/enable flags packed one bit per
// port.
func bitAt(p Param, k int) bool {
	v, ok := p.Int()
	if ok {
		return v&(1<<uint(k)) != 0
	}
	s := p.rawBits()
	idx := len(s) - 1 - k
	if idx < 0 || idx >= len(s) {
		return false
	}
	return s[idx] == '1'
}

// sliceParamBits extracts the k-th width-bit group (LSB-first across
// groups) from a flat bit-string/int parameter, rendered MSB-first.
func sliceParamBits(cell *Cell, name string, k, width int) string {
	p, ok := cell.Parameters[name]
	if !ok {
		return ""
	}
	full := p.Bits((k + 1) * width)
	// full is MSB-first and holds groups k..0 from left to right, so the
	// k-th group is its leftmost width characters.
	return full[:width]
}

// buildMemdata slices the INIT parameter (if present) into words entries
// of width bits each, MSB-first after per-word reversal, padding short
// words with '0' or 'x' depending on INIT's trailing character (spec.md
// §4.3).
func buildMemdata(cell *Cell, width, words int) []string {
	p, ok := cell.Parameters["INIT"]
	if !ok {
		return nil
	}
	raw := p.rawBits()
	need := width * words
	switch {
	case len(raw) < need:
		pad := byte('0')
		if len(raw) > 0 {
			if last := raw[len(raw)-1]; last == 'x' || last == 'z' {
				pad = last
			}
		}
		raw = strings.Repeat(string(pad), need-len(raw)) + raw
	case len(raw) > need:
		raw = raw[len(raw)-need:]
	}
	out := make([]string, words)
	for i := 0; i < words; i++ {
		chunk := raw[i*width : (i+1)*width]
		out[i] = reverseBitString(chunk)
	}
	return out
}

func reverseBitString(s string) string {
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		buf[len(s)-1-i] = s[i]
	}
	return string(buf)
}
