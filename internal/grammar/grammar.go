package grammar

import "fmt"

// Grammar is the set of line shapes accepted within one section of a
// template. Grammars are stateless and safe for concurrent use.
type Grammar struct {
	name  string
	parse parser
}

func newGrammar(name string, alternatives ...parser) *Grammar {
	return &Grammar{name: name, parse: alt(alternatives...)}
}

// Name identifies the grammar in diagnostics.
func (g *Grammar) Name() string {
	return g.name
}

// Parse turns one line into a Record. The whole line must match one
// alternative; there is no partial result.
func (g *Grammar) Parse(line string) (Record, error) {
	c := newCursor(line)
	rec, ok := g.parse(c)
	if !ok {
		return nil, &SyntaxError{Grammar: g.name, Line: line, Column: c.far + 1}
	}
	return rec, nil
}

// The four section grammars. Content lines are not allowed before the first
// header, and the graph section offers no pattern or node shapes.
var (
	StartGrammar = newGrammar("start", comment, header, empty)
	RegexGrammar = newGrammar("regex", patternDef, comment, header, empty)
	NodeGrammar  = newGrammar("node", nodeDef, comment, header, empty)
	EdgeGrammar  = newGrammar("edge", edgeChain, header, comment, empty)
)

// SyntaxError is returned when no alternative of a grammar matches a line.
type SyntaxError struct {
	Grammar string
	Line    string
	// Column is the 1-based position of the furthest character any
	// alternative got to before failing.
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line does not match the %s grammar (stopped at column %d)", e.Grammar, e.Column)
}
