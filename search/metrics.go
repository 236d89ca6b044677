package search

import (
	"sync/atomic"
	"time"
)

// SearchReport summarizes one Move call: how many simulations ran, how many
// reached a genuine terminal state, how long the call took, and whether the
// retained tree was reused rather than rebuilt from scratch.
type SearchReport struct {
	Episodes     int64
	FullPlayouts int64
	Duration     time.Duration
	TreeReused   bool
}

// Collector accumulates per-move search statistics. A single Collector is
// reused across Move calls; Start resets it at the beginning of each call.
type Collector interface {
	Start()
	AddEpisode()
	AddFullPlayout()
	SetTreeReused(bool)
	Complete() SearchReport
}

type atomicCollector struct {
	startTime    time.Time
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
	treeReused   atomic.Bool
}

// NewCollector returns a Collector backed by atomic counters.
func NewCollector() Collector {
	return &atomicCollector{}
}

func (c *atomicCollector) Start() {
	c.startTime = time.Now()
	c.episodes.Store(0)
	c.fullPlayouts.Store(0)
	c.treeReused.Store(false)
}

func (c *atomicCollector) AddEpisode()          { c.episodes.Add(1) }
func (c *atomicCollector) AddFullPlayout()      { c.fullPlayouts.Add(1) }
func (c *atomicCollector) SetTreeReused(v bool) { c.treeReused.Store(v) }

func (c *atomicCollector) Complete() SearchReport {
	return SearchReport{
		Episodes:     c.episodes.Load(),
		FullPlayouts: c.fullPlayouts.Load(),
		Duration:     time.Since(c.startTime),
		TreeReused:   c.treeReused.Load(),
	}
}

type noopCollector struct{}

// NewNoopCollector returns a Collector that discards every update, for
// callers that do not need search diagnostics.
func NewNoopCollector() Collector { return &noopCollector{} }

func (noopCollector) Start()                 {}
func (noopCollector) AddEpisode()            {}
func (noopCollector) AddFullPlayout()        {}
func (noopCollector) SetTreeReused(bool)     {}
func (noopCollector) Complete() SearchReport { return SearchReport{} }
