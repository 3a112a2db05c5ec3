// Package statemachine enforces the section order of a template:
//
//	Start -> RegexSection -> NodeSection -> EdgeSection -> Done
//
// Each non-terminal state owns one grammar from the grammar package. Only
// header lines move the machine, and only along the table in Next; any other
// header, an unknown section name, or a parse failure puts the machine in the
// terminal Error state. Done is reached by Finish at end of input.
package statemachine
