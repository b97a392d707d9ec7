package netview

import "github.com/pkg/errors"

// StructuralError reports a cell whose connection widths or port
// directions contradict its parameters (spec.md §7, kind 1). It is fatal.
type StructuralError struct {
	CellType string
	CellName string
	Reason   string
}

func (e *StructuralError) Error() string {
	return "netview: cell " + e.CellName + " (" + e.CellType + "): " + e.Reason
}

func structuralErr(cellName string, cell *Cell, reason string) error {
	return &StructuralError{CellType: cell.Type, CellName: cellName, Reason: reason}
}

// MultiDriverError reports two sources wired to the same net (spec.md §7,
// kind 2). It is fatal.
type MultiDriverError struct {
	NetName string
}

func (e *MultiDriverError) Error() string {
	name := e.NetName
	if name == "" {
		name = "<unnamed>"
	}
	return "netview: net " + name + " has more than one source"
}

// UnknownCellError reports a cell type with neither a bespoke lowering rule
// nor a matching user-defined module to fall back to as a Subcircuit
// (spec.md §7, kind 3). It is fatal.
type UnknownCellError struct {
	CellType string
}

func (e *UnknownCellError) Error() string {
	return "netview: unknown cell type " + e.CellType
}

// wrapf attaches cell/net context to an inner error while unwinding out of
// the converter, the same way the teacher wraps wiring errors in chip.go.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
