package emit

import (
	"fmt"
	"io"
	"strings"
)

// Format names an output encoding.
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in the order they are documented.
var Formats = []Format{FormatHCL, FormatJSON, FormatYAML}

// ParseFormat accepts a format name case-insensitively; "yml" is an alias for
// YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hcl":
		return FormatHCL, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want one of hcl, json, yaml)", s)
	}
}

// Write renders doc to w.
func Write(w io.Writer, f Format, doc *Document) error {
	switch f {
	case FormatHCL:
		return writeHCL(w, doc)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	default:
		return fmt.Errorf("unknown output format %q", string(f))
	}
}
