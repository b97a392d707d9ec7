package netview

import (
	"fmt"
	"strconv"
)

// groupAndExtend is sub-phase (d): for every net that still has no source
// after cell lowering, partition its bit-vector into runs of "same const-ness
// or same contiguous device+port" bits, then either infer a zero-extension
// or insert a BusGroup (spec.md §4.3(d)).
func (c *converter) groupAndExtend() error {
	for _, n := range c.nets.inOrder() {
		if n.source != nil {
			continue
		}
		runs := computeRuns(c.prov, n.bits)
		if len(runs) <= 1 {
			continue
		}
		c.groupOrExtend(n, runs)
	}
	return nil
}

// groupOrExtend implements one net's grouping decision, recursing on the
// prefix when a trailing all-zero run is peeled off and what remains is
// itself made of multiple runs.
func (c *converter) groupOrExtend(n *net, runs []BitVector) {
	last := runs[len(runs)-1]
	if isAllZeroLiteral(last) {
		prefixLen := len(n.bits) - len(last)
		prefix := n.bits[:prefixLen]
		d := NewDevice(DevZeroExtend).Set("input", prefixLen).Set("output", len(n.bits))
		id := c.addDevice(d)
		_ = c.source(id, "out", n.bits)
		c.target(id, "in", prefix)
		if prefixLen > 0 {
			prefixRuns := computeRuns(c.prov, prefix)
			if len(prefixRuns) > 1 {
				c.groupOrExtend(c.nets.get(prefix), prefixRuns)
			}
		}
		return
	}

	widths := make([]int, len(runs))
	for i, r := range runs {
		widths[i] = len(r)
	}
	d := NewDevice(DevBusGroup).Set("groups", widths)
	id := c.addDevice(d)
	_ = c.source(id, "out", n.bits)
	for k, r := range runs {
		c.target(id, "in"+strconv.Itoa(k), r)
	}
}

// computeRuns partitions bits into maximal runs where consecutive bits
// belong together iff both are literal constants, or both are primary
// outputs of the same device+port at consecutive indices (spec.md §4.3(d)).
func computeRuns(prov provenanceTable, bits BitVector) []BitVector {
	if len(bits) == 0 {
		return nil
	}
	var runs []BitVector
	start := 0
	for i := 1; i <= len(bits); i++ {
		if i < len(bits) && sameRun(prov, bits[i-1], bits[i]) {
			continue
		}
		runs = append(runs, bits[start:i])
		start = i
	}
	return runs
}

func sameRun(prov provenanceTable, a, b Bit) bool {
	if a.IsConst() && b.IsConst() {
		return true
	}
	pa, oka := prov[a]
	pb, okb := prov[b]
	return oka && okb && pa.DeviceID == pb.DeviceID && pa.Port == pb.Port && pb.Index == pa.Index+1
}

func isAllZeroLiteral(v BitVector) bool {
	if len(v) == 0 {
		return false
	}
	for _, b := range v {
		if b != Bit0 {
			return false
		}
	}
	return true
}

// resolveConstantsAndSlices is sub-phase (e): every net still without a
// source is either an all-constant literal, a contiguous slice of a single
// device+port, or genuinely undriven (spec.md §4.3(e), §7 kind 4).
func (c *converter) resolveConstantsAndSlices() {
	for _, n := range c.nets.inOrder() {
		if n.source != nil {
			continue
		}
		if n.bits.AllConst() {
			d := NewDevice(DevConstant).Set("constant", n.bits.ConstString())
			id := c.addDevice(d)
			_ = c.source(id, "out", n.bits)
			continue
		}
		if id, port, offset, ok := c.sliceProvenance(n.bits); ok {
			parent := c.idx[id][port]
			d := NewDevice(DevBusSlice).Set("slice", map[string]int{
				"first": offset,
				"count": len(n.bits),
				"total": len(parent),
			})
			sid := c.addDevice(d)
			c.target(sid, "in", parent)
			_ = c.source(sid, "out", n.bits)
			continue
		}
		c.warnings = append(c.warnings, fmt.Sprintf("netview: net %q is undriven", n.name))
	}
}

// sliceProvenance reports whether every bit of bits is a primary output of
// the same device+port at consecutive indices, i.e. bits is a contiguous
// slice of that port's vector.
func (c *converter) sliceProvenance(bits BitVector) (id, port string, offset int, ok bool) {
	if len(bits) == 0 {
		return "", "", 0, false
	}
	first, exists := c.prov[bits[0]]
	if !exists {
		return "", "", 0, false
	}
	for i, b := range bits {
		p, exists := c.prov[b]
		if !exists || p.DeviceID != first.DeviceID || p.Port != first.Port || p.Index != first.Index+i {
			return "", "", 0, false
		}
	}
	return first.DeviceID, first.Port, first.Index, true
}

// emitConnectors is sub-phase (f): one connector per (net, target) pair in
// net-iteration/target-insertion order. A net sourced from a Constant gets a
// fresh duplicate Constant device for every connector after the first, so
// that no Constant device feeds more than one connector (spec.md §4.3(f)).
func (c *converter) emitConnectors() []Connector {
	var out []Connector
	for _, n := range c.nets.inOrder() {
		if n.source == nil {
			continue
		}
		from := *n.source
		for i, to := range n.targets {
			ep := from
			if i > 0 && c.devices[from.ID].Type == DevConstant {
				ep = Endpoint{ID: c.duplicateConstant(from.ID), Port: from.Port}
			}
			conn := Connector{From: ep, To: to}
			if n.name != "" {
				conn.Name = n.name
			}
			if len(n.sourcePositions) > 0 {
				conn.SourcePositions = n.sourcePositions
			}
			out = append(out, conn)
		}
	}
	return out
}

// duplicateConstant clones the Constant device id into a fresh device with
// the same payload, returning the new device's id.
func (c *converter) duplicateConstant(id string) string {
	src := c.devices[id]
	dup := NewDevice(DevConstant)
	for k, v := range src.Attrs {
		dup.Attrs[k] = v
	}
	return c.addDevice(dup)
}
