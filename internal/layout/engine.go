package layout

import (
	"sort"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/catalog"
)

// Engine is the hierarchical layout collaborator. Arrange places every
// node and returns center-anchored coordinates keyed by node id; the
// adapter translates those into the top-left-anchored boxes the caller
// consumes.
type Engine interface {
	Arrange(nodes []string, edges []catalog.Edge, opts Options) map[string]Point
}

// Hierarchical is the default top-down layered engine.
//
// Rows are assigned by longest path from the roots: every node sits one
// row below its deepest prerequisite, so edges always point downward.
// Within a row, nodes are ordered by the mean x of their prerequisites
// (ties broken by id) and packed left to right with fixed spacing.
type Hierarchical struct{}

func (Hierarchical) Arrange(nodes []string, edges []catalog.Edge, opts Options) map[string]Point {
	rows := assignRows(nodes, edges)

	parents := make(map[string][]string)
	for _, e := range edges {
		parents[e.To] = append(parents[e.To], e.From)
	}

	byRow := make(map[int][]string)
	maxRow := 0
	for _, id := range nodes {
		r := rows[id]
		byRow[r] = append(byRow[r], id)
		if r > maxRow {
			maxRow = r
		}
	}

	centers := make(map[string]Point, len(nodes))
	for r := 0; r <= maxRow; r++ {
		ids := byRow[r]
		orderRow(ids, parents, centers)
		for i, id := range ids {
			centers[id] = Point{
				X: float64(i)*(opts.NodeWidth+opts.GapX) + opts.NodeWidth/2,
				Y: float64(r)*(opts.NodeHeight+opts.GapY) + opts.NodeHeight/2,
			}
		}
	}

	return centers
}

// assignRows computes longest-path rows via Kahn's algorithm. Roots land
// on row 0; every other node lands one past its deepest parent.
func assignRows(nodes []string, edges []catalog.Edge) map[string]int {
	inDegree := make(map[string]int, len(nodes))
	children := make(map[string][]string)
	for _, id := range nodes {
		inDegree[id] = 0
	}
	for _, e := range edges {
		children[e.From] = append(children[e.From], e.To)
		inDegree[e.To]++
	}

	rows := make(map[string]int, len(nodes))
	var queue []string
	for _, id := range nodes {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, child := range children[curr] {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	return rows
}

// orderRow sorts a row by the mean x of each node's already-placed
// parents, so children tend to sit under their prerequisites. Rootless
// rows and ties fall back to id order.
func orderRow(ids []string, parents map[string][]string, centers map[string]Point) {
	bary := make(map[string]float64, len(ids))
	for _, id := range ids {
		sum, n := 0.0, 0
		for _, p := range parents[id] {
			if c, ok := centers[p]; ok {
				sum += c.X
				n++
			}
		}
		if n > 0 {
			bary[id] = sum / float64(n)
		}
	}

	sort.Slice(ids, func(i, j int) bool {
		bi, bj := bary[ids[i]], bary[ids[j]]
		if bi != bj {
			return bi < bj
		}
		return ids[i] < ids[j]
	})
}
