// Package grammar parses the lines of a template file.
//
// A template is line oriented: every line is a comment, a section header, a
// blank line, or one content construct that depends on the section it
// appears in:
//
//	[regex]
//	num = "[0-9]+"
//	lower = "[a-z]+" "(foo|bar)"
//
//	[nodes]
//	show = $lower [volume, owner: jgerber, perms: 751, varname: JG_SHOW]
//	rd = RD
//	shot = "[a-z]+[0-9]+"
//
//	[graph]
//	root -> show -> rd -> shot
//
// Each section has its own Grammar (StartGrammar, RegexGrammar, NodeGrammar,
// EdgeGrammar). A Grammar is
// an ordered alternation of construct parsers; the first alternative that
// consumes the entire line wins, which is what resolves the overlapping node
// shapes. Parsing is all-or-nothing and produces exactly one Record.
//
// Deciding which grammar applies to a line is the job of the statemachine
// package.
package grammar
