// Package layout turns the static catalog into node boxes and edge curves
// for a renderer. The heavy lifting is delegated to an Engine; the adapter
// translates the engine's center-anchored output into top-left-anchored
// boxes and synthesizes the connector curves.
//
// The catalog never changes at runtime, so the layout is computed at most
// once per Adapter and cached; only completion state varies between
// interactions, never position.
package layout

import (
	"sync"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/catalog"
)

// Adapter wraps an Engine and caches its one-time result for a catalog.
type Adapter struct {
	cat    catalog.Catalog
	engine Engine
	opts   Options

	once   sync.Once
	cached *Layout
}

// New builds an adapter for the given catalog. A nil engine selects the
// default Hierarchical engine; zero options select DefaultOptions.
func New(cat catalog.Catalog, engine Engine, opts Options) *Adapter {
	if engine == nil {
		engine = Hierarchical{}
	}
	if opts == (Options{}) {
		opts = DefaultOptions
	}
	return &Adapter{cat: cat, engine: engine, opts: opts}
}

// Layout returns the laid-out catalog, invoking the engine on first call
// only. Callers must treat the result as read-only.
func (a *Adapter) Layout() *Layout {
	a.once.Do(func() {
		a.cached = a.compute()
	})
	return a.cached
}

func (a *Adapter) compute() *Layout {
	// The engine sees the catalog flattened; tier boundaries are a
	// sorter artifact, not a layout input.
	var ids []string
	for _, q := range a.cat.Quests() {
		ids = append(ids, q.ID)
	}
	edges := a.cat.Edges()

	centers := a.engine.Arrange(ids, edges, a.opts)

	nodes := make(map[string]NodeBox, len(centers))
	for id, c := range centers {
		nodes[id] = NodeBox{
			ID:     id,
			X:      c.X - a.opts.NodeWidth/2,
			Y:      c.Y - a.opts.NodeHeight/2,
			Width:  a.opts.NodeWidth,
			Height: a.opts.NodeHeight,
		}
	}

	curves := make([]Curve, 0, len(edges))
	for _, e := range edges {
		from, okFrom := nodes[e.From]
		to, okTo := nodes[e.To]
		if !okFrom || !okTo {
			continue
		}
		curves = append(curves, connector(e, from, to))
	}

	return &Layout{Nodes: nodes, Curves: curves}
}

// connector builds the S-curve for one edge: exit at the prerequisite's
// bottom-center, enter at the dependent's top-center, both control
// points at the vertical midpoint.
func connector(e catalog.Edge, from, to NodeBox) Curve {
	start := Point{X: from.X + from.Width/2, Y: from.Y + from.Height}
	end := Point{X: to.X + to.Width/2, Y: to.Y}
	midY := (start.Y + end.Y) / 2

	return Curve{
		From:  e.From,
		To:    e.To,
		Start: start,
		C1:    Point{X: start.X, Y: midY},
		C2:    Point{X: end.X, Y: midY},
		End:   end,
	}
}
