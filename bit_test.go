package netview

import (
	"encoding/json"
	"testing"
)

func TestBitUnmarshal(t *testing.T) {
	data := []struct {
		in   string
		want Bit
	}{
		{`"0"`, Bit0},
		{`"1"`, Bit1},
		{`"x"`, BitX},
		{`"z"`, BitZ},
		{`2`, 2},
		{`17`, 17},
	}
	for _, d := range data {
		var b Bit
		if err := json.Unmarshal([]byte(d.in), &b); err != nil {
			t.Fatalf("%s: %v", d.in, err)
		}
		if b != d.want {
			t.Errorf("%s: got %d, want %d", d.in, b, d.want)
		}
	}
}

func TestBitUnmarshalInvalid(t *testing.T) {
	data := []string{`"w"`, `-1`, `"12"`}
	for _, in := range data {
		var b Bit
		if err := json.Unmarshal([]byte(in), &b); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}

func TestBitVectorKeyEquality(t *testing.T) {
	a := BitVector{Bit0, 4, Bit1}
	b := BitVector{Bit0, 4, Bit1}
	c := BitVector{Bit0, 5, Bit1}
	if a.key() != b.key() {
		t.Errorf("identical vectors produced different keys")
	}
	if a.key() == c.key() {
		t.Errorf("distinct vectors produced the same key")
	}
	if !a.Equal(b) {
		t.Errorf("Equal: expected equal vectors")
	}
	if a.Equal(c) {
		t.Errorf("Equal: expected distinct vectors")
	}
}

func TestBitVectorConstString(t *testing.T) {
	v := BitVector{Bit1, Bit0, Bit1} // bit0=1, bit1=0, bit2=1 -> MSB-first "101"
	if got := v.ConstString(); got != "101" {
		t.Errorf("got %q, want %q", got, "101")
	}
}

func TestBitVectorReverse(t *testing.T) {
	v := BitVector{1, 2, 3}
	r := v.Reverse()
	want := BitVector{3, 2, 1}
	if !r.Equal(want) {
		t.Errorf("got %v, want %v", r, want)
	}
}

func TestBitVectorAllConst(t *testing.T) {
	if !(BitVector{Bit0, Bit1, BitX}).AllConst() {
		t.Errorf("expected all-const vector to report true")
	}
	if (BitVector{Bit0, 5}).AllConst() {
		t.Errorf("expected mixed vector to report false")
	}
}
