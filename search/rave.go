package search

import "nogoagent/placement"

// RAVEIndex maps a placement identity to every live node created by that
// placement: for every reachable node N with IncomingPlacement p, the entry
// for p contains N exactly once.
type RAVEIndex struct {
	byPlacement map[placement.Placement][]NodeHandle
}

// NewRAVEIndex returns an empty index.
func NewRAVEIndex() *RAVEIndex {
	return &RAVEIndex{byPlacement: make(map[placement.Placement][]NodeHandle)}
}

// Register records that handle h was created by placement p.
func (r *RAVEIndex) Register(p placement.Placement, h NodeHandle) {
	r.byPlacement[p] = append(r.byPlacement[p], h)
}

// Lookup returns every live node created by placement p.
func (r *RAVEIndex) Lookup(p placement.Placement) []NodeHandle {
	return r.byPlacement[p]
}
