package statemachine

import (
	"github.com/specialistvlad/jspcompile/internal/grammar"
)

// grammars selects the grammar used to read a line in each parsing state.
var grammars = map[State]*grammar.Grammar{
	Start:        grammar.StartGrammar,
	RegexSection: grammar.RegexGrammar,
	NodeSection:  grammar.NodeGrammar,
	EdgeSection:  grammar.EdgeGrammar,
}

// Machine tracks the section of a template being read. A Machine is used for
// a single load and is not safe for concurrent use.
type Machine struct {
	state State
}

// New returns a machine in the Start state.
func New() *Machine {
	return &Machine{state: Start}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Grammar returns the grammar for the current state, or nil in a terminal
// state.
func (m *Machine) Grammar() *grammar.Grammar {
	return grammars[m.state]
}

// Parse reads one line with the grammar of the current state. A header record
// moves the machine along the transition table; any failure leaves the
// machine in Error, where every later call fails with ErrStateInError.
func (m *Machine) Parse(line string) (grammar.Record, error) {
	switch m.state {
	case Done:
		return nil, ErrStateFinished
	case Error:
		return nil, ErrStateInError
	}

	rec, err := grammars[m.state].Parse(line)
	if err != nil {
		m.state = Error
		return nil, err
	}

	if h, ok := rec.(grammar.Header); ok {
		next, err := Next(m.state, h.Kind)
		if err != nil {
			m.state = Error
			return nil, err
		}
		m.state = next
	}
	return rec, nil
}

// Fail moves the machine to Error. The loader calls it when a line parsed
// fine but could not be resolved.
func (m *Machine) Fail() {
	m.state = Error
}

// Finish is called at end of input. A machine in EdgeSection has read a
// complete template and moves to Done; any other state is left as is and
// returned so the caller can decide whether a short template is acceptable.
func (m *Machine) Finish() State {
	if m.state == EdgeSection {
		m.state = successors[EdgeSection]
	}
	return m.state
}

// Complete reports whether the machine reached Done.
func (m *Machine) Complete() bool {
	return m.state == Done
}
