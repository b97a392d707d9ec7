package netview

// An Endpoint names one port of one device: either the device producing a
// net (a connector's From) or one of the devices consuming it (a
// connector's To).
type Endpoint struct {
	ID   string `json:"id"`
	Port string `json:"port"`
}

// A Pos is a 1-based line/column location in a source file.
type Pos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// A SourcePos attributes a span of a source file to a net, decoded from the
// synthesizer's "<file>:<line>.<col>-<line>.<col>" strings.
type SourcePos struct {
	Name string `json:"name"`
	From Pos    `json:"from"`
	To   Pos    `json:"to"`
}

// A Connector wires one device's output port to one device's input port,
// optionally carrying the net's human name and the source positions that
// contributed to it.
type Connector struct {
	From            Endpoint    `json:"from"`
	To              Endpoint    `json:"to"`
	Name            string      `json:"name,omitempty"`
	SourcePositions []SourcePos `json:"source_positions,omitempty"`
}
