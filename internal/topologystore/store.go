// Package topologystore defines the interface for storing and retrieving the
// structure of a compiled template graph.
//
// # Why Topology Store Exists
//
// The loader only needs two mutations, "add node" and "add edge", and the
// serializers only need to walk nodes and edges. Keeping that contract in its
// own package lets the loader stay ignorant of how vertices are kept, and lets
// tests assert on a finished graph without going through the loader.
//
// # Handles
//
// AddNode returns a Handle. Handles are stable for the lifetime of the store
// and are assigned densely in insertion order, starting at zero. The loader's
// node symbol table maps template names to these handles.
//
// # Lifecycle and Usage
//
// The store is:
//  1. **Created** by the caller of a load.
//  2. **Populated** by exactly one loader, line by line.
//  3. **Read** by serializers and downstream lookups once the load returns.
//
// A failed load leaves the store partially populated; the caller discards it.
package topologystore

import (
	"context"
	"fmt"

	"github.com/specialistvlad/jspcompile/internal/node"
)

// Handle identifies a node within one Store.
type Handle int

// String renders the handle the way serializers reference nodes.
func (h Handle) String() string {
	return fmt.Sprintf("n%d", int(h))
}

// Edge is a directed link between two nodes of the same store.
type Edge struct {
	From Handle
	To   Handle
}

// Store is the interface for managing the topology of a template graph.
//
// Unlike a scheduling DAG, a template graph may contain self-loops (a
// directory level that nests itself) and parallel edges; the store records
// exactly what it is given.
//
// # Thread-Safety Requirements
//
// A single loader populates a store, but implementations MUST allow concurrent
// reads once population has finished.
type Store interface {
	// AddNode registers a new node and returns its handle. Adding the same
	// *node.Node twice creates two vertices.
	AddNode(ctx context.Context, n *node.Node) Handle

	// AddEdge creates a directed edge from 'from' to 'to'. Both handles must
	// have been returned by AddNode on this store.
	AddEdge(ctx context.Context, from, to Handle) error

	// Node retrieves a node by handle.
	Node(ctx context.Context, h Handle) (*node.Node, bool)

	// Nodes returns all nodes ordered by handle.
	Nodes(ctx context.Context) []*node.Node

	// Edges returns all edges in insertion order.
	Edges(ctx context.Context) []Edge

	// Children returns the targets of the edges leaving h, in insertion order.
	Children(ctx context.Context, h Handle) ([]Handle, error)
}
