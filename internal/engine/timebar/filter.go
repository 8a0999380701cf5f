package timebar

import (
	"context"

	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
)

// RangeChangeFunc receives the inclusive date bounds of every filter pass in
// place of automatic filtering.
type RangeChangeFunc func(graph ports.GraphDataSource, minDate, maxDate string)

// ValueChangeFunc receives the upper date bound of every filter pass in place
// of automatic filtering.
type ValueChangeFunc func(graph ports.GraphDataSource, value string)

// FilterMode reports how a filter pass was handled.
type FilterMode int

const (
	// ModeFiltered means the induced subgraph replaced the graph's data.
	ModeFiltered FilterMode = iota
	// ModeRangeCallback means the range callback handled the pass.
	ModeRangeCallback
	// ModeValueCallback means the value callback handled the pass.
	ModeValueCallback
)

// String returns the lowercase name of the mode.
func (m FilterMode) String() string {
	switch m {
	case ModeRangeCallback:
		return "range-callback"
	case ModeValueCallback:
		return "value-callback"
	default:
		return "filtered"
	}
}

// Outcome describes a completed filter pass.
type Outcome struct {
	Dates domain.DateRange
	Mode  FilterMode
	// Nodes and Edges count what survived. Both are zero for callback passes.
	Nodes int
	Edges int
}

// Cache retains the original, unfiltered graph snapshot.
type Cache struct {
	snapshot domain.GraphSnapshot
	seeded   bool
}

// Seed fills the cache from graph.Save when it is empty or holds zero nodes,
// and returns the cached snapshot. A seeded cache is never refreshed otherwise.
func (c *Cache) Seed(graph ports.GraphDataSource) domain.GraphSnapshot {
	if !c.seeded || c.snapshot.Empty() {
		c.snapshot = graph.Save()
		c.seeded = true
	}
	return c.snapshot
}

// Snapshot returns the cached snapshot and whether the cache was seeded.
func (c *Cache) Snapshot() (domain.GraphSnapshot, bool) {
	return c.snapshot, c.seeded
}

// Reset drops the cached snapshot so the next pass seeds again.
func (c *Cache) Reset() {
	c.snapshot = domain.GraphSnapshot{}
	c.seeded = false
}

// InducedSubgraph keeps the nodes dated within dates and the edges whose
// endpoints both survive. The input snapshot is not modified.
func InducedSubgraph(snapshot domain.GraphSnapshot, dates domain.DateRange) domain.GraphSnapshot {
	nodes := make([]domain.Node, 0, len(snapshot.Nodes))
	ids := make(map[string]struct{}, len(snapshot.Nodes))
	for _, n := range snapshot.Nodes {
		if dates.Contains(n.Date) {
			nodes = append(nodes, n)
			ids[n.ID] = struct{}{}
		}
	}

	edges := make([]domain.Edge, 0, len(snapshot.Edges))
	for _, e := range snapshot.Edges {
		_, src := ids[e.Source]
		_, dst := ids[e.Target]
		if src && dst {
			edges = append(edges, e)
		}
	}

	return domain.GraphSnapshot{Nodes: nodes, Edges: edges}
}

// DataFilterer applies date ranges to a graph. It holds no state of its own
// besides the cache it is handed.
type DataFilterer struct {
	Cache       *Cache
	RangeChange RangeChangeFunc
	ValueChange ValueChangeFunc
	Tracer      ports.Tracer
}

// Apply runs one filter pass. A configured RangeChange, then ValueChange,
// takes over the pass; otherwise the cached snapshot is filtered and pushed
// to the graph with ChangeData.
func (f *DataFilterer) Apply(ctx context.Context, graph ports.GraphDataSource, dates domain.DateRange) Outcome {
	tracer := f.Tracer
	if tracer == nil {
		tracer = nopTracer{}
	}
	_, span := tracer.Start(ctx, "timebar.filter")
	defer span.End()

	span.SetAttribute("timebar.min_date", dates.Min)
	span.SetAttribute("timebar.max_date", dates.Max)

	out := Outcome{Dates: dates}

	switch {
	case f.RangeChange != nil:
		out.Mode = ModeRangeCallback
		f.RangeChange(graph, dates.Min, dates.Max)
	case f.ValueChange != nil:
		out.Mode = ModeValueCallback
		f.ValueChange(graph, dates.Max)
	default:
		if f.Cache == nil {
			f.Cache = &Cache{}
		}
		filtered := InducedSubgraph(f.Cache.Seed(graph), dates)
		graph.ChangeData(filtered)

		out.Mode = ModeFiltered
		out.Nodes = len(filtered.Nodes)
		out.Edges = len(filtered.Edges)
		span.SetAttribute("timebar.nodes", out.Nodes)
		span.SetAttribute("timebar.edges", out.Edges)
	}

	span.SetAttribute("timebar.mode", out.Mode.String())
	return out
}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End()                     {}
func (nopSpan) RecordError(error)        {}
func (nopSpan) SetAttribute(string, any) {}
