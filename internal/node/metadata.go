package node

import "strings"

// Metadata holds the optional filesystem annotations of a node. They are not
// interpreted by the compiler; downstream tooling uses them when it
// materializes directories. An empty string means the attribute is absent.
type Metadata struct {
	Volume      bool
	Permissions string
	Owner       string
	EnvVarName  string
}

// IsZero reports whether no attribute is set.
func (m Metadata) IsZero() bool {
	return !m.Volume && m.Permissions == "" && m.Owner == "" && m.EnvVarName == ""
}

// String renders the metadata in template syntax, e.g.
// "[volume, owner: jgerber, perms: 751]". The zero value renders as "".
func (m Metadata) String() string {
	if m.IsZero() {
		return ""
	}
	var parts []string
	if m.Volume {
		parts = append(parts, "volume")
	}
	if m.Owner != "" {
		parts = append(parts, "owner: "+m.Owner)
	}
	if m.Permissions != "" {
		parts = append(parts, "perms: "+m.Permissions)
	}
	if m.EnvVarName != "" {
		parts = append(parts, "varname: "+m.EnvVarName)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
