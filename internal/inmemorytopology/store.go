package inmemorytopology

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/jspcompile/internal/node"
	"github.com/specialistvlad/jspcompile/internal/topologystore"
)

// Store implements the topologystore.Store interface using slices and a mutex.
// A handle is the node's index in the nodes slice.
type Store struct {
	mu       sync.RWMutex
	nodes    []*node.Node
	edges    []topologystore.Edge
	children map[topologystore.Handle][]topologystore.Handle
}

// New creates a new, empty in-memory topology store.
func New() *Store {
	return &Store{
		children: make(map[topologystore.Handle][]topologystore.Handle),
	}
}

// AddNode appends a node and returns its handle.
func (s *Store) AddNode(ctx context.Context, n *node.Node) topologystore.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes = append(s.nodes, n)
	return topologystore.Handle(len(s.nodes) - 1)
}

// AddEdge records a directed edge between two existing nodes.
func (s *Store) AddEdge(ctx context.Context, from, to topologystore.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.valid(from) {
		return fmt.Errorf("edge source node '%s' not found in topology", from)
	}
	if !s.valid(to) {
		return fmt.Errorf("edge target node '%s' not found in topology", to)
	}

	s.edges = append(s.edges, topologystore.Edge{From: from, To: to})
	s.children[from] = append(s.children[from], to)
	return nil
}

// Node retrieves a single node by its handle.
func (s *Store) Node(ctx context.Context, h topologystore.Handle) (*node.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.valid(h) {
		return nil, false
	}
	return s.nodes[h], true
}

// Nodes returns a snapshot of all nodes, ordered by handle.
func (s *Store) Nodes(ctx context.Context) []*node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]*node.Node, len(s.nodes))
	copy(nodes, s.nodes)
	return nodes
}

// Edges returns a snapshot of all edges in insertion order.
func (s *Store) Edges(ctx context.Context) []topologystore.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := make([]topologystore.Edge, len(s.edges))
	copy(edges, s.edges)
	return edges
}

// Children returns the handles reachable over one outgoing edge of h.
func (s *Store) Children(ctx context.Context, h topologystore.Handle) ([]topologystore.Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.valid(h) {
		return nil, fmt.Errorf("node '%s' not found in topology", h)
	}

	out := s.children[h]
	children := make([]topologystore.Handle, len(out))
	copy(children, out)
	return children, nil
}

// valid must be called with the lock held.
func (s *Store) valid(h topologystore.Handle) bool {
	return h >= 0 && int(h) < len(s.nodes)
}
