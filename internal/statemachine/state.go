package statemachine

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/jspcompile/internal/grammar"
)

// State is the section of the template the machine is currently reading.
type State int

const (
	// Start is the initial state, before any header.
	Start State = iota
	// RegexSection follows the [regex] header.
	RegexSection
	// NodeSection follows the [nodes] header.
	NodeSection
	// EdgeSection follows the [graph] header.
	EdgeSection
	// Done is the terminal success state.
	Done
	// Error is the terminal failure state.
	Error
)

func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case RegexSection:
		return "RegexSection"
	case NodeSection:
		return "NodeSection"
	case EdgeSection:
		return "EdgeSection"
	case Done:
		return "Done"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further input can be parsed in s.
func (s State) Terminal() bool {
	return s == Done || s == Error
}

// transition is one row key of the transition table.
type transition struct {
	from State
	kind grammar.HeaderKind
}

// transitions is the complete set of legal header transitions. Anything not
// listed is rejected.
var transitions = map[transition]State{
	{Start, grammar.HeaderRegex}:       RegexSection,
	{RegexSection, grammar.HeaderNode}: NodeSection,
	{NodeSection, grammar.HeaderEdge}:  EdgeSection,
}

// successors holds the positional successor of every non-terminal state. It
// is used at end of input; EdgeSection -> Done is only reachable this way.
var successors = map[State]State{
	Start:        RegexSection,
	RegexSection: NodeSection,
	NodeSection:  EdgeSection,
	EdgeSection:  Done,
}

// headerTargets is the state each header kind asks to enter.
var headerTargets = map[grammar.HeaderKind]State{
	grammar.HeaderRegex: RegexSection,
	grammar.HeaderNode:  NodeSection,
	grammar.HeaderEdge:  EdgeSection,
}

// Next looks up the state reached from 'from' when a header of the given kind
// is read. It has no side effects.
func Next(from State, kind grammar.HeaderKind) (State, error) {
	if from.Terminal() {
		return Error, &NoValidNextStateError{State: from}
	}
	if to, ok := transitions[transition{from, kind}]; ok {
		return to, nil
	}
	to, known := headerTargets[kind]
	if !known {
		to = Error
	}
	return Error, &InvalidTransitionError{From: from, To: to}
}

// InvalidTransitionError is returned when a header appears out of order or
// names an unknown section (in which case To is Error).
type InvalidTransitionError struct {
	From State
	To   State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// NoValidNextStateError is returned when a header is seen in a terminal state.
type NoValidNextStateError struct {
	State State
}

func (e *NoValidNextStateError) Error() string {
	return fmt.Sprintf("no valid next state from %s", e.State)
}

var (
	// ErrStateFinished is returned for input parsed after the machine is Done.
	ErrStateFinished = errors.New("state already finished")
	// ErrStateInError is returned for input parsed after a failure.
	ErrStateInError = errors.New("state in error")
)
