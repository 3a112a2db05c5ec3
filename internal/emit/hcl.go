package emit

import (
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// writeHCL renders one labeled node block per vertex, one edge block per
// edge and a symbols map attribute.
func writeHCL(w io.Writer, doc *Document) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, n := range doc.Nodes {
		if i > 0 {
			body.AppendNewline()
		}
		blk := body.AppendNewBlock("node", []string{n.ID}).Body()
		setSorted(blk, n.attributes(), "name", "kind")
		if n.Metadata != nil {
			setSorted(blk.AppendNewBlock("metadata", nil).Body(), n.Metadata.attributes())
		}
	}

	for _, e := range doc.Edges {
		body.AppendNewline()
		blk := body.AppendNewBlock("edge", nil).Body()
		blk.SetAttributeValue("from", cty.StringVal(e.From))
		blk.SetAttributeValue("to", cty.StringVal(e.To))
	}

	body.AppendNewline()
	body.SetAttributeValue("symbols", doc.symbolsValue())

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing hcl: %w", err)
	}
	return nil
}

// setSorted writes the leading attributes in the given order and the rest
// alphabetically, so output is stable across runs.
func setSorted(body *hclwrite.Body, attrs map[string]cty.Value, leading ...string) {
	seen := make(map[string]bool, len(leading))
	for _, name := range leading {
		if v, ok := attrs[name]; ok {
			body.SetAttributeValue(name, v)
			seen[name] = true
		}
	}
	rest := make([]string, 0, len(attrs))
	for name := range attrs {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		body.SetAttributeValue(name, attrs[name])
	}
}
