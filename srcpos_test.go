package netview

import "testing"

func TestParseSourcePositions(t *testing.T) {
	raw := "top.v:3.2-3.8|inc.v:10.1-10.4"
	got := parseSourcePositions(raw)
	if len(got) != 2 {
		t.Fatalf("got %d spans, want 2", len(got))
	}
	if got[0].Name != "top.v" || got[0].From != (Pos{3, 2}) || got[0].To != (Pos{3, 8}) {
		t.Errorf("span 0: got %+v", got[0])
	}
	if got[1].Name != "inc.v" || got[1].From != (Pos{10, 1}) || got[1].To != (Pos{10, 4}) {
		t.Errorf("span 1: got %+v", got[1])
	}
}

func TestParseSourcePositionsMalformedDropped(t *testing.T) {
	raw := "good.v:1.1-1.2|garbage|also.v:2.2-2.3"
	got := parseSourcePositions(raw)
	if len(got) != 2 {
		t.Fatalf("got %d spans, want 2 (malformed entry dropped)", len(got))
	}
}

func TestParseSourcePositionsEmpty(t *testing.T) {
	if got := parseSourcePositions(""); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
