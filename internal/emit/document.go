package emit

import (
	"context"
	"sort"

	"github.com/specialistvlad/jspcompile/internal/node"
	"github.com/specialistvlad/jspcompile/internal/pattern"
	"github.com/specialistvlad/jspcompile/internal/topologystore"
)

// Document is the serializable form of a template graph.
type Document struct {
	Nodes   []Node   `yaml:"nodes"`
	Edges   []Edge   `yaml:"edges"`
	Symbols []Symbol `yaml:"symbols"`
}

// Node is one vertex. Exactly one of Label and Pattern is set.
type Node struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"`
	Label    string    `yaml:"label,omitempty"`
	Pattern  string    `yaml:"pattern,omitempty"`
	Exclude  string    `yaml:"exclude,omitempty"`
	Metadata *Metadata `yaml:"metadata,omitempty"`
}

// Metadata mirrors node.Metadata with serializer field names.
type Metadata struct {
	Volume      bool   `yaml:"volume,omitempty"`
	Owner       string `yaml:"owner,omitempty"`
	Permissions string `yaml:"perms,omitempty"`
	EnvVarName  string `yaml:"varname,omitempty"`
}

// Edge references nodes by ID.
type Edge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Symbol is one entry of the node symbol table.
type Symbol struct {
	Name string `yaml:"name"`
	Node string `yaml:"node"`
}

// Build snapshots store. symbols is the loader's node table; it may be nil.
func Build(ctx context.Context, store topologystore.Store, symbols map[string]topologystore.Handle) *Document {
	doc := &Document{
		Nodes:   []Node{},
		Edges:   []Edge{},
		Symbols: []Symbol{},
	}

	for i, n := range store.Nodes(ctx) {
		doc.Nodes = append(doc.Nodes, newNode(topologystore.Handle(i), n))
	}
	for _, e := range store.Edges(ctx) {
		doc.Edges = append(doc.Edges, Edge{From: e.From.String(), To: e.To.String()})
	}

	names := make([]string, 0, len(symbols))
	for name := range symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		doc.Symbols = append(doc.Symbols, Symbol{Name: name, Node: symbols[name].String()})
	}
	return doc
}

func newNode(h topologystore.Handle, n *node.Node) Node {
	out := Node{
		ID:   h.String(),
		Name: n.Name,
		Kind: n.Kind.String(),
	}

	switch m := n.Matcher.(type) {
	case nil:
		out.Label = n.Label
	case *pattern.Complex:
		out.Pattern = m.Positive()
		out.Exclude = m.Negative()
	default:
		out.Pattern = m.String()
	}

	if !n.Metadata.IsZero() {
		out.Metadata = &Metadata{
			Volume:      n.Metadata.Volume,
			Owner:       n.Metadata.Owner,
			Permissions: n.Metadata.Permissions,
			EnvVarName:  n.Metadata.EnvVarName,
		}
	}
	return out
}
