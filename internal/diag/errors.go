package diag

import (
	"fmt"

	"github.com/specialistvlad/jspcompile/internal/statemachine"
)

// LineError locates a load failure. Line is 1-based, Text is the raw line
// without its terminator, and State is the machine state the line was read
// in. Err is the underlying cause and stays reachable through errors.As.
type LineError struct {
	Line  int
	Text  string
	State statemachine.State
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.State, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
