package grammar

import "github.com/specialistvlad/jspcompile/internal/node"

// Record is the structured result of parsing one line. The set of
// implementations is closed; consumers switch over the concrete types.
type Record interface {
	isRecord()
}

// HeaderKind identifies the section a header introduces.
type HeaderKind int

const (
	// HeaderUnknown is any bracketed identifier that names no section.
	HeaderUnknown HeaderKind = iota
	// HeaderRegex introduces the [regex] section.
	HeaderRegex
	// HeaderNode introduces the [nodes] section.
	HeaderNode
	// HeaderEdge introduces the [graph] section.
	HeaderEdge
)

func (k HeaderKind) String() string {
	switch k {
	case HeaderRegex:
		return "Regex"
	case HeaderNode:
		return "Node"
	case HeaderEdge:
		return "Edge"
	default:
		return "Unknown"
	}
}

// headerKinds maps section names to their kind. Lookup is case-sensitive.
var headerKinds = map[string]HeaderKind{
	"regex":  HeaderRegex,
	"regexp": HeaderRegex,
	"nodes":  HeaderNode,
	"node":   HeaderNode,
	"graph":  HeaderEdge,
}

// Header is a section header line such as "[nodes]".
type Header struct {
	Kind HeaderKind
	// Name is the identifier between the brackets, as written.
	Name string
}

// PatternDef is a named pattern in the [regex] section.
type PatternDef interface {
	Record
	PatternName() string
}

// SimplePattern is `name = "pattern"`.
type SimplePattern struct {
	Name    string
	Pattern string
}

// ComplexPattern is `name = "positive" "negative"`.
type ComplexPattern struct {
	Name     string
	Positive string
	Negative string
}

// NodeDef is a line of the [nodes] section.
type NodeDef interface {
	Record
	NodeName() string
	NodeMetadata() *node.Metadata
}

// SimpleNode is `name`; the node label is the name itself.
type SimpleNode struct {
	Name     string
	Metadata *node.Metadata
}

// PairNode is `name = value`; the node label is value.
type PairNode struct {
	Name     string
	Value    string
	Metadata *node.Metadata
}

// PatternRefNode is `name = $pattern`, referencing the [regex] section.
type PatternRefNode struct {
	Name     string
	Pattern  string
	Metadata *node.Metadata
}

// InlinePatternNode is `name = "pattern"`.
type InlinePatternNode struct {
	Name     string
	Pattern  string
	Metadata *node.Metadata
}

// InlineComplexNode is `name = "positive" "negative"`.
type InlineComplexNode struct {
	Name     string
	Positive string
	Negative string
	Metadata *node.Metadata
}

// Edge links two node names.
type Edge struct {
	From string
	To   string
}

// EdgeChain is `a -> b -> c`, holding one Edge per arrow in source order.
type EdgeChain struct {
	Edges []Edge
}

// Comment holds everything after the '#', verbatim.
type Comment struct {
	Text string
}

// Empty is a blank or whitespace-only line.
type Empty struct{}

func (Header) isRecord()            {}
func (SimplePattern) isRecord()     {}
func (ComplexPattern) isRecord()    {}
func (SimpleNode) isRecord()        {}
func (PairNode) isRecord()          {}
func (PatternRefNode) isRecord()    {}
func (InlinePatternNode) isRecord() {}
func (InlineComplexNode) isRecord() {}
func (EdgeChain) isRecord()         {}
func (Comment) isRecord()           {}
func (Empty) isRecord()             {}

func (p SimplePattern) PatternName() string  { return p.Name }
func (p ComplexPattern) PatternName() string { return p.Name }

func (n SimpleNode) NodeName() string        { return n.Name }
func (n PairNode) NodeName() string          { return n.Name }
func (n PatternRefNode) NodeName() string    { return n.Name }
func (n InlinePatternNode) NodeName() string { return n.Name }
func (n InlineComplexNode) NodeName() string { return n.Name }

func (n SimpleNode) NodeMetadata() *node.Metadata        { return n.Metadata }
func (n PairNode) NodeMetadata() *node.Metadata          { return n.Metadata }
func (n PatternRefNode) NodeMetadata() *node.Metadata    { return n.Metadata }
func (n InlinePatternNode) NodeMetadata() *node.Metadata { return n.Metadata }
func (n InlineComplexNode) NodeMetadata() *node.Metadata { return n.Metadata }
