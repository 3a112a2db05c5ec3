package grammar

import "github.com/specialistvlad/jspcompile/internal/node"

// comment parses `# anything`.
func comment(c *cursor) (Record, bool) {
	if !c.token("#") {
		return nil, false
	}
	return Comment{Text: c.rest()}, true
}

// header parses `[ name ]`.
func header(c *cursor) (Record, bool) {
	if !c.token("[") {
		return nil, false
	}
	name, ok := c.ident()
	if !ok {
		return nil, false
	}
	if !c.token("]") {
		return nil, false
	}
	kind, known := headerKinds[name]
	if !known {
		kind = HeaderUnknown
	}
	return Header{Kind: kind, Name: name}, true
}

// empty accepts a line made only of whitespace; alt checks the end.
func empty(c *cursor) (Record, bool) {
	return Empty{}, true
}

// assignment parses the `name =` prefix shared by patterns and nodes.
func assignment(c *cursor) (string, bool) {
	name, ok := c.ident()
	if !ok {
		return "", false
	}
	if !c.token("=") {
		return "", false
	}
	return name, true
}

func simplePattern(c *cursor) (Record, bool) {
	name, ok := assignment(c)
	if !ok {
		return nil, false
	}
	pat, ok := c.quoted()
	if !ok {
		return nil, false
	}
	return SimplePattern{Name: name, Pattern: pat}, true
}

func complexPattern(c *cursor) (Record, bool) {
	name, ok := assignment(c)
	if !ok {
		return nil, false
	}
	pos, ok := c.quoted()
	if !ok {
		return nil, false
	}
	neg, ok := c.quoted()
	if !ok {
		return nil, false
	}
	return ComplexPattern{Name: name, Positive: pos, Negative: neg}, true
}

// patternDef is a line of the [regex] section.
var patternDef = alt(complexPattern, simplePattern)

func pairNode(c *cursor) (Record, bool) {
	name, ok := assignment(c)
	if !ok {
		return nil, false
	}
	value, ok := c.ident()
	if !ok {
		return nil, false
	}
	md, ok := metadata(c)
	if !ok {
		return nil, false
	}
	return PairNode{Name: name, Value: value, Metadata: md}, true
}

func patternRefNode(c *cursor) (Record, bool) {
	name, ok := assignment(c)
	if !ok {
		return nil, false
	}
	if !c.token("$") {
		return nil, false
	}
	// The pattern name follows the sigil directly.
	ref, ok := c.name()
	if !ok {
		return nil, false
	}
	md, ok := metadata(c)
	if !ok {
		return nil, false
	}
	return PatternRefNode{Name: name, Pattern: ref, Metadata: md}, true
}

func inlineComplexNode(c *cursor) (Record, bool) {
	name, ok := assignment(c)
	if !ok {
		return nil, false
	}
	pos, ok := c.quoted()
	if !ok {
		return nil, false
	}
	neg, ok := c.quoted()
	if !ok {
		return nil, false
	}
	md, ok := metadata(c)
	if !ok {
		return nil, false
	}
	return InlineComplexNode{Name: name, Positive: pos, Negative: neg, Metadata: md}, true
}

func inlinePatternNode(c *cursor) (Record, bool) {
	name, ok := assignment(c)
	if !ok {
		return nil, false
	}
	pat, ok := c.quoted()
	if !ok {
		return nil, false
	}
	md, ok := metadata(c)
	if !ok {
		return nil, false
	}
	return InlinePatternNode{Name: name, Pattern: pat, Metadata: md}, true
}

func simpleNode(c *cursor) (Record, bool) {
	name, ok := c.ident()
	if !ok {
		return nil, false
	}
	md, ok := metadata(c)
	if !ok {
		return nil, false
	}
	return SimpleNode{Name: name, Metadata: md}, true
}

// nodeDef is a line of the [nodes] section. The shapes overlap, so the order
// below is the priority order.
var nodeDef = alt(pairNode, patternRefNode, inlineComplexNode, inlinePatternNode, simpleNode)

// edgeChain parses `a -> b [-> c ...]`.
func edgeChain(c *cursor) (Record, bool) {
	from, ok := c.ident()
	if !ok {
		return nil, false
	}
	var edges []Edge
	for {
		next := *c
		if !next.token("->") {
			break
		}
		to, ok := next.ident()
		if !ok {
			c.far = max(c.far, next.pos)
			return nil, false
		}
		*c = next
		edges = append(edges, Edge{From: from, To: to})
		from = to
	}
	if len(edges) == 0 {
		return nil, false
	}
	return EdgeChain{Edges: edges}, true
}

// metadata parses the optional `[component, ...]` suffix of a node line. It
// returns nil metadata when no suffix is present and false when a suffix is
// present but malformed.
func metadata(c *cursor) (*node.Metadata, bool) {
	probe := *c
	if !probe.token("[") {
		return nil, true
	}
	*c = probe

	md := &node.Metadata{}
	for {
		if !component(c, md) {
			return nil, false
		}
		if c.token(",") {
			continue
		}
		if c.token("]") {
			return md, true
		}
		return nil, false
	}
}

// component parses one metadata entry: volume, owner: x, perms: 751 or
// varname: X. Repeated entries overwrite earlier ones.
func component(c *cursor, md *node.Metadata) bool {
	key, ok := c.ident()
	if !ok {
		return false
	}
	if key == "volume" {
		md.Volume = true
		return true
	}

	if !c.token(":") {
		return false
	}
	c.space()
	switch key {
	case "owner":
		v, ok := c.name()
		md.Owner = v
		return ok
	case "perms":
		v, ok := c.span(isOctal)
		md.Permissions = v
		return ok
	case "varname":
		v, ok := c.name()
		md.EnvVarName = v
		return ok
	default:
		return false
	}
}
