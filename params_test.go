package netview

import (
	"encoding/json"
	"testing"
)

func TestParamUnmarshal(t *testing.T) {
	var p Param
	if err := json.Unmarshal([]byte(`7`), &p); err != nil {
		t.Fatal(err)
	}
	if v, ok := p.Int(); !ok || v != 7 {
		t.Errorf("got %v,%v want 7,true", v, ok)
	}
	if err := json.Unmarshal([]byte(`"0110"`), &p); err != nil {
		t.Fatal(err)
	}
	if v, ok := p.Int(); !ok || v != 6 {
		t.Errorf("got %v,%v want 6,true", v, ok)
	}
	if err := json.Unmarshal([]byte(`"1x0"`), &p); err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Int(); ok {
		t.Errorf("expected Int to fail on a string containing x")
	}
}

func TestParamBitsPadding(t *testing.T) {
	p := ParamInt(5)
	if got := p.Bits(8); got != "00000101" {
		t.Errorf("got %q", got)
	}
	p = ParamBits("101")
	if got := p.Bits(5); got != "00101" {
		t.Errorf("got %q", got)
	}
	p = ParamBits("x101")
	if got := p.Bits(6); got != "xxx101" {
		t.Errorf("got %q", got)
	}
	p = ParamBits("10110")
	if got := p.Bits(3); got != "110" {
		t.Errorf("truncation: got %q", got)
	}
}

func TestParamRawBits(t *testing.T) {
	if got := ParamInt(5).rawBits(); got != "101" {
		t.Errorf("got %q", got)
	}
	if got := ParamBits("0110").rawBits(); got != "0110" {
		t.Errorf("got %q", got)
	}
}

func TestParamBool(t *testing.T) {
	if !ParamInt(1).Bool() {
		t.Errorf("expected true")
	}
	if ParamInt(0).Bool() {
		t.Errorf("expected false")
	}
}
