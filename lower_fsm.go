package netview

func init() {
	registerLowerer([]string{"$fsm"}, lowerFSM)
}

// FSMTransition is one row of a finite-state machine's transition table,
// decoded from the flat TRANS_TABLE parameter (spec.md §4.3).
type FSMTransition struct {
	StateIn  int    `json:"state_in"`
	CtrlIn   string `json:"ctrl_in"`
	StateOut int    `json:"state_out"`
	CtrlOut  string `json:"ctrl_out"`
}

// lowerFSM lowers $fsm: the flat TRANS_TABLE parameter is cut into
// per-transition records, decoding a '-' don't-care in CTRL_IN to 'x'. If
// TRANS_TABLE arrived as a plain integer it is first rendered as a binary
// string of the required width.
func lowerFSM(c *converter, name string, cell *Cell) error {
	in, okIn := cell.Connections["CTRL_IN"]
	out, okOut := cell.Connections["CTRL_OUT"]
	if !okIn || !okOut {
		return structuralErr(name, cell, "missing CTRL_IN/CTRL_OUT connection")
	}

	stateLog2 := int(intParam(cell, "STATE_NUM_LOG2", 1))
	transNum := int(intParam(cell, "TRANS_NUM", 0))
	ctrlInW := int(intParam(cell, "CTRL_IN_WIDTH", int64(len(in))))
	ctrlOutW := int(intParam(cell, "CTRL_OUT_WIDTH", int64(len(out))))
	rowWidth := 2*stateLog2 + ctrlInW + ctrlOutW

	tableParam := cell.Parameters["TRANS_TABLE"]
	table := tableParam.Bits(rowWidth * transNum)

	transitions := make([]FSMTransition, 0, transNum)
	pos := 0
	for i := 0; i < transNum; i++ {
		stateIn := parseBinInt(table[pos : pos+stateLog2])
		pos += stateLog2
		ctrlIn := dashToX(table[pos : pos+ctrlInW])
		pos += ctrlInW
		stateOut := parseBinInt(table[pos : pos+stateLog2])
		pos += stateLog2
		ctrlOut := table[pos : pos+ctrlOutW]
		pos += ctrlOutW
		transitions = append(transitions, FSMTransition{
			StateIn: stateIn, CtrlIn: ctrlIn, StateOut: stateOut, CtrlOut: ctrlOut,
		})
	}

	states := 1 << uint(stateLog2)
	if n := int(intParam(cell, "STATE_NUM", 0)); n > 0 {
		states = n
	}

	polarity := map[string]interface{}{
		"clock": boolParam(cell, "CLK_POLARITY"),
	}
	if _, ok := cell.Connections["ARST"]; ok {
		polarity["arst"] = boolParam(cell, "ARST_POLARITY")
	}

	wirename := cell.Parameters["NAME"].String()
	if wirename == "" {
		wirename = name
	}

	d := NewDevice(DevFSM).
		Set("polarity", polarity).
		Set("wirename", wirename).
		Set("bits", map[string]int{"in": len(in), "out": len(out)}).
		Set("states", states).
		Set("init_state", int(intParam(cell, "STATE_RST", 0))).
		Set("trans_table", transitions)
	id := c.addDevice(d)
	return c.wireGeneric(name, id, cell, fsmPortMap)
}

func dashToX(s string) string {
	buf := []byte(s)
	for i, c := range buf {
		if c == '-' {
			buf[i] = 'x'
		}
	}
	return string(buf)
}

func parseBinInt(s string) int {
	n := 0
	for _, c := range s {
		n <<= 1
		if c == '1' {
			n |= 1
		}
	}
	return n
}
