package emit

import (
	"github.com/zclconf/go-cty/cty"
)

// value converts the document into a cty object. Empty optional fields are
// left out, so node objects do not all share one type and are kept in a
// tuple.
func (d *Document) value() cty.Value {
	nodes := make([]cty.Value, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		nodes = append(nodes, n.value())
	}
	edges := make([]cty.Value, 0, len(d.Edges))
	for _, e := range d.Edges {
		edges = append(edges, e.value())
	}

	return cty.ObjectVal(map[string]cty.Value{
		"nodes":   tupleOrEmpty(nodes),
		"edges":   tupleOrEmpty(edges),
		"symbols": d.symbolsValue(),
	})
}

func (n Node) attributes() map[string]cty.Value {
	attrs := map[string]cty.Value{
		"name": cty.StringVal(n.Name),
		"kind": cty.StringVal(n.Kind),
	}
	if n.Label != "" {
		attrs["label"] = cty.StringVal(n.Label)
	}
	if n.Pattern != "" {
		attrs["pattern"] = cty.StringVal(n.Pattern)
	}
	if n.Exclude != "" {
		attrs["exclude"] = cty.StringVal(n.Exclude)
	}
	return attrs
}

func (n Node) value() cty.Value {
	attrs := n.attributes()
	attrs["id"] = cty.StringVal(n.ID)
	if n.Metadata != nil {
		attrs["metadata"] = cty.ObjectVal(n.Metadata.attributes())
	}
	return cty.ObjectVal(attrs)
}

func (m *Metadata) attributes() map[string]cty.Value {
	attrs := map[string]cty.Value{}
	if m.Volume {
		attrs["volume"] = cty.True
	}
	if m.Owner != "" {
		attrs["owner"] = cty.StringVal(m.Owner)
	}
	if m.Permissions != "" {
		attrs["perms"] = cty.StringVal(m.Permissions)
	}
	if m.EnvVarName != "" {
		attrs["varname"] = cty.StringVal(m.EnvVarName)
	}
	return attrs
}

func (e Edge) value() cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"from": cty.StringVal(e.From),
		"to":   cty.StringVal(e.To),
	})
}

func (d *Document) symbolsValue() cty.Value {
	if len(d.Symbols) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	m := make(map[string]cty.Value, len(d.Symbols))
	for _, s := range d.Symbols {
		m[s.Name] = cty.StringVal(s.Node)
	}
	return cty.MapVal(m)
}

func tupleOrEmpty(vals []cty.Value) cty.Value {
	if len(vals) == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(vals)
}
