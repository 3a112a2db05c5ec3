// Package node defines the vertex payload stored in the template graph: a
// named directory level that either has a fixed label or matches names with
// a pattern, together with its filesystem metadata.
package node
