package loader

import (
	"fmt"

	"github.com/specialistvlad/jspcompile/internal/statemachine"
)

// PatternLookupError is returned when a node references a $pattern that no
// [regex] entry defined.
type PatternLookupError struct {
	Name string
}

func (e *PatternLookupError) Error() string {
	return fmt.Sprintf("pattern %q is not defined", e.Name)
}

// SymbolLookupError is returned when an edge names a node that was never
// defined.
type SymbolLookupError struct {
	Name string
}

func (e *SymbolLookupError) Error() string {
	return fmt.Sprintf("node %q is not defined", e.Name)
}

// IOError wraps a failure of the underlying reader.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading template: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IncompleteError is returned in strict mode when the input ends before the
// [graph] section was reached.
type IncompleteError struct {
	State statemachine.State
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("template ended in %s before the graph section", e.State)
}
