package layout

// Point is a 2D coordinate in layout space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeBox is a laid-out quest node, anchored at its top-left corner.
type NodeBox struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Curve is the connector drawn for one dependency edge: a vertical cubic
// S-curve from the bottom-center of the prerequisite node to the
// top-center of the dependent node. Both control points sit at the
// vertical midpoint between start and end.
type Curve struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Start Point  `json:"start"`
	C1    Point  `json:"c1"`
	C2    Point  `json:"c2"`
	End   Point  `json:"end"`
}

// Layout is the immutable result of laying out a catalog once.
type Layout struct {
	Nodes  map[string]NodeBox `json:"nodes"`
	Curves []Curve            `json:"curves"`
}

// Options sizes the nodes and the gaps between them.
type Options struct {
	NodeWidth  float64
	NodeHeight float64
	GapX       float64
	GapY       float64
}

// DefaultOptions match the dimensions the original tracker renders with.
var DefaultOptions = Options{
	NodeWidth:  180,
	NodeHeight: 60,
	GapX:       40,
	GapY:       80,
}
