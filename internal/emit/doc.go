// Package emit serializes a compiled template graph.
//
// Build flattens a topology store and the loader's node symbol table into a
// Document. Write renders a Document as HCL, JSON or YAML. All three formats
// carry the same content: every node in handle order, every edge in insertion
// order, and the name each symbol resolves to. Nodes are referenced by their
// handle string ("n0", "n1", ...) so that redefined names stay unambiguous.
package emit
