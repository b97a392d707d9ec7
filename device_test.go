package netview

import (
	"encoding/json"
	"testing"
)

func TestDeviceMarshalRoundTrip(t *testing.T) {
	d := NewDevice(DevAnd).Set("bits", 4)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	var got Device
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Type != DevAnd {
		t.Errorf("got type %s, want %s", got.Type, DevAnd)
	}
	if bits, ok := got.Attrs["bits"].(float64); !ok || bits != 4 {
		t.Errorf("got bits %v, want 4", got.Attrs["bits"])
	}
}
