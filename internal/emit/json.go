package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	ctyjson "github.com/zclconf/go-cty/cty/json"
)

func writeJSON(w io.Writer, doc *Document) error {
	val := doc.value()
	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("indenting json: %w", err)
	}
	out.WriteByte('\n')

	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}
