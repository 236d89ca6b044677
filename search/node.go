package search

import "nogoagent/placement"

// NodeHandle addresses a Node within an Arena. Handles count up from 0 in
// creation order; use NoNode for "no node."
type NodeHandle int

// NoNode is the invalid handle.
const NoNode NodeHandle = -1

// Node is one explored tree state. Parent->child references are unique and
// stored only as handles in Children; no back-edges are kept, so the
// traversal path is reconstructed during each simulation instead.
type Node struct {
	Visits            int
	ValueSum          float64
	RaveVisits        float64
	RaveValueSum      float64
	Prior             float64
	IncomingPlacement placement.Placement
	Children          []NodeHandle
	Expanded          bool
}

// Arena owns every node of the live tree, addressed by integer handle
// rather than by pointer. Subtrees are freed by building a fresh arena
// containing only the reachable nodes (see MCTS.rebuildFrom) instead of
// walking pointers to deallocate them.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewNode appends a node seeded with the given RAVE virtual priors and
// returns its handle.
func (a *Arena) NewNode(incoming placement.Placement, raveVisits, raveValueSum float64) NodeHandle {
	a.nodes = append(a.nodes, Node{
		IncomingPlacement: incoming,
		RaveVisits:        raveVisits,
		RaveValueSum:      raveValueSum,
	})
	return NodeHandle(len(a.nodes) - 1)
}

// Node returns a mutable pointer to the node at h.
func (a *Arena) Node(h NodeHandle) *Node {
	return &a.nodes[h]
}

// Len reports how many nodes the arena currently holds.
func (a *Arena) Len() int {
	return len(a.nodes)
}
