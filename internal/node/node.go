package node

import (
	"github.com/specialistvlad/jspcompile/internal/pattern"
)

// Node is a single vertex in the template graph, representing one level of a
// directory hierarchy. A node either carries a fixed label or a matcher that
// accepts a family of directory names.
type Node struct {
	// Name is the symbol-table key the template used for this node.
	// Example: "shot"
	Name string
	// Label is the literal directory name. It is empty for matcher nodes.
	Label string
	// Matcher accepts candidate directory names. It is nil for labeled nodes.
	Matcher pattern.Matcher
	// Kind distinguishes the root, plain directories and volumes.
	Kind EntryKind
	// Metadata holds the filesystem annotations from the template.
	Metadata Metadata
}

// EntryKind distinguishes between different kinds of entries in the graph.
type EntryKind int

const (
	// Directory is a regular directory level.
	Directory EntryKind = iota
	// Volume marks a directory that is a mount point.
	Volume
	// Root is the implicit top of every template graph.
	Root
)

// String returns the lowercase name of the kind.
func (k EntryKind) String() string {
	switch k {
	case Directory:
		return "directory"
	case Volume:
		return "volume"
	case Root:
		return "root"
	default:
		return "unknown"
	}
}

// RootName is the symbol under which the implicit root node is registered.
const RootName = "root"

// NewRoot creates the implicit root node.
func NewRoot() *Node {
	return &Node{
		Name:  RootName,
		Label: RootName,
		Kind:  Root,
	}
}

// NewLabeled creates a node whose directory name is the fixed label.
func NewLabeled(name, label string, md *Metadata) *Node {
	n := &Node{Name: name, Label: label}
	n.apply(md)
	return n
}

// NewMatching creates a node whose directory names are accepted by m.
func NewMatching(name string, m pattern.Matcher, md *Metadata) *Node {
	n := &Node{Name: name, Matcher: m}
	n.apply(md)
	return n
}

func (n *Node) apply(md *Metadata) {
	if md != nil {
		n.Metadata = *md
	}
	if n.Metadata.Volume {
		n.Kind = Volume
	} else {
		n.Kind = Directory
	}
}

// Display returns the label, or the matcher source for matcher nodes.
func (n *Node) Display() string {
	if n.Matcher != nil {
		return n.Matcher.String()
	}
	return n.Label
}

// Accepts reports whether a directory called name satisfies this node.
func (n *Node) Accepts(name string) bool {
	if n.Matcher != nil {
		return n.Matcher.Match(name)
	}
	return n.Label == name
}
