package netview

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Param is a cell parameter or attribute value. The synthesizer emits
// these as either a JSON number or a bit-string (the latter preserves x/z
// values that would not fit in an integer); Param normalizes both into a
// single representation that downstream lowering code can query either way.
type Param struct {
	isString bool
	i        int64
	s        string // MSB-first bit string, only set when isString
}

// ParamInt wraps a plain integer parameter.
func ParamInt(v int64) Param { return Param{i: v} }

// ParamBits wraps an MSB-first bit-string parameter.
func ParamBits(s string) Param { return Param{isString: true, s: s} }

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (p *Param) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "netview: invalid string parameter")
		}
		*p = Param{isString: true, s: s}
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "netview: invalid integer parameter")
	}
	*p = Param{i: n}
	return nil
}

// MarshalJSON re-emits a parameter the way it was decoded.
func (p Param) MarshalJSON() ([]byte, error) {
	if p.isString {
		return json.Marshal(p.s)
	}
	return json.Marshal(p.i)
}

// Int returns p as an integer. Integer parameters are returned unchanged;
// bit-string parameters are parsed as unsigned binary, and an empty string or
// one containing any character other than '0' or '1' yields ok == false.
func (p Param) Int() (v int64, ok bool) {
	if !p.isString {
		return p.i, true
	}
	if p.s == "" {
		return 0, false
	}
	var n int64
	for _, c := range p.s {
		switch c {
		case '0':
			n <<= 1
		case '1':
			n = n<<1 | 1
		default:
			return 0, false
		}
	}
	return n, true
}

// Bits normalizes p to an MSB-first bit string of exactly width characters.
// A shorter value is left-padded with '0' (zero-extension), except that a
// bit-string whose leading character is 'x' or 'z' is padded with that
// character. A value wider than width is truncated from the left (MSB side).
func (p Param) Bits(width int) string {
	var s string
	if p.isString {
		s = p.s
	} else {
		s = strconv.FormatInt(p.i, 2)
	}
	if len(s) >= width {
		return s[len(s)-width:]
	}
	pad := byte('0')
	if p.isString && len(s) > 0 {
		pad = s[0]
		if pad != 'x' && pad != 'z' {
			pad = '0'
		}
	}
	return strings.Repeat(string(pad), width-len(s)) + s
}

// String returns the raw string form when p is a string parameter, or the
// decimal representation of its integer value otherwise.
func (p Param) String() string {
	if p.isString {
		return p.s
	}
	return strconv.FormatInt(p.i, 10)
}

// IsString reports whether p was decoded from a JSON string.
func (p Param) IsString() bool { return p.isString }

// rawBits returns the parameter's bit string with no width padding applied:
// its own string form if it was decoded as one, or the plain binary
// rendering of its integer value otherwise. Used by memory/LUT content
// decoding, which pads on its own terms (spec.md §4.3).
func (p Param) rawBits() string {
	if p.isString {
		return p.s
	}
	return strconv.FormatInt(p.i, 2)
}

// Bool reports the truthiness of an integer parameter (non-zero).
func (p Param) Bool() bool {
	v, _ := p.Int()
	return v != 0
}
