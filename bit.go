package netview

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// A Bit is a single connection value: either a literal constant ('0', '1',
// 'x' or 'z') or an opaque net identifier naming a wire shared by every
// other connection carrying the same Bit value within a module.
//
// Literal constants are encoded as small negative numbers so that a Bit can
// be compared and hashed like any other integer while still being
// distinguishable from a net id (net ids are always >= 2, per the
// synthesizer's own convention).
type Bit int32

// Literal constant bits.
const (
	Bit0 Bit = -1 - iota
	Bit1
	BitX
	BitZ
)

// IsConst reports whether b is a literal constant rather than a net id.
func (b Bit) IsConst() bool { return b <= Bit0 && b >= BitZ }

// Char returns the literal character for a constant bit. It panics if b is
// not constant.
func (b Bit) Char() byte {
	switch b {
	case Bit0:
		return '0'
	case Bit1:
		return '1'
	case BitX:
		return 'x'
	case BitZ:
		return 'z'
	default:
		panic("netview: Char called on a non-constant bit")
	}
}

// NetID returns the net identifier carried by b. It panics if b is constant.
func (b Bit) NetID() int {
	if b.IsConst() {
		panic("netview: NetID called on a constant bit")
	}
	return int(b)
}

func bitFromChar(c byte) (Bit, bool) {
	switch c {
	case '0':
		return Bit0, true
	case '1':
		return Bit1, true
	case 'x':
		return BitX, true
	case 'z':
		return BitZ, true
	default:
		return 0, false
	}
}

// UnmarshalJSON decodes a bit as emitted by the synthesizer: either a
// one-character string ("0", "1", "x", "z") or a JSON number naming a net.
func (b *Bit) UnmarshalJSON(data []byte) error {
	if len(data) == 3 && data[0] == '"' && data[2] == '"' {
		c, ok := bitFromChar(data[1])
		if !ok {
			return errors.Errorf("netview: invalid bit literal %q", data)
		}
		*b = c
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 32)
	if err != nil {
		return errors.Wrapf(err, "netview: invalid bit %q", data)
	}
	if n < 0 {
		return errors.Errorf("netview: net id %d out of range", n)
	}
	*b = Bit(n)
	return nil
}

// MarshalJSON encodes a bit the same way the synthesizer does.
func (b Bit) MarshalJSON() ([]byte, error) {
	if b.IsConst() {
		return []byte{'"', b.Char(), '"'}, nil
	}
	return json.Marshal(int32(b))
}

// A BitVector is an ordered sequence of bits; the slice index is the bit
// index (bit 0 is the least significant bit, matching the synthesizer's
// convention).
type BitVector []Bit

// Width returns len(v).
func (v BitVector) Width() int { return len(v) }

// AllConst reports whether every bit in v is a literal constant.
func (v BitVector) AllConst() bool {
	for _, b := range v {
		if !b.IsConst() {
			return false
		}
	}
	return true
}

// ConstString renders v MSB-first as a constant payload string, as used for
// Constant device attributes and register initial values.
func (v BitVector) ConstString() string {
	buf := make([]byte, len(v))
	for i, b := range v {
		var c byte
		if b.IsConst() {
			c = b.Char()
		} else {
			c = 'x'
		}
		buf[len(v)-1-i] = c
	}
	return string(buf)
}

// key returns a value usable as a map key that hashes/compares v
// element-wise, per the "bit-vectors as map keys" design note: two distinct
// vectors with the same bit sequence must collide, and reference identity
// must not matter.
func (v BitVector) key() string {
	buf := make([]byte, 0, len(v)*5)
	for _, b := range v {
		buf = strconv.AppendInt(buf, int64(b), 10)
		buf = append(buf, ',')
	}
	return string(buf)
}

// Equal reports whether v and o carry the same bits in the same order.
func (v BitVector) Equal(o BitVector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Slice returns the sub-vector [first, first+count).
func (v BitVector) Slice(first, count int) BitVector {
	return v[first : first+count]
}

// Reverse returns a new vector with bits in reverse order.
func (v BitVector) Reverse() BitVector {
	r := make(BitVector, len(v))
	for i, b := range v {
		r[len(v)-1-i] = b
	}
	return r
}
