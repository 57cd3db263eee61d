package geometry

// Kind is the coarse classification of a stencil coordinate.
type Kind int

const (
	// KindInterior marks a free unknown of the linear system.
	KindInterior Kind = iota
	// KindOutside marks a coordinate one step beyond a box edge.
	KindOutside
	// KindCircle marks a node inside a fixed-value circle.
	KindCircle
)

// Class is the result of classifying a stencil coordinate. Side is
// meaningful only for KindOutside, Circle only for KindCircle.
type Class struct {
	Kind   Kind
	Side   Side
	Circle int
}

// Classifier decides how each grid coordinate participates in the
// discretized system. Classification is total over the stencil
// neighbor domain [-1,Nx] x [-1,Ny]; there is no error path.
type Classifier struct {
	grid    Grid
	circles []Circle
}

// NewClassifier builds a classifier over a grid and an ordered circle
// list. The list order is a tie-break: when circles overlap, the first
// circle containing a node wins.
func NewClassifier(grid Grid, circles []Circle) *Classifier {
	return &Classifier{grid: grid, circles: circles}
}

// Classify maps a coordinate to exactly one class. The edge tests run
// before any circle test, so out-of-range coordinates are never
// eligible for circle classification regardless of circle geometry.
func (c *Classifier) Classify(i, j int) Class {
	switch {
	case i == -1:
		return Class{Kind: KindOutside, Side: SideLeft}
	case i == c.grid.Nx:
		return Class{Kind: KindOutside, Side: SideRight}
	case j == -1:
		return Class{Kind: KindOutside, Side: SideTop}
	case j == c.grid.Ny:
		return Class{Kind: KindOutside, Side: SideBottom}
	}
	x, y := c.grid.X(i), c.grid.Y(j)
	for k, circ := range c.circles {
		if circ.Contains(x, y) {
			return Class{Kind: KindCircle, Circle: k}
		}
	}
	return Class{Kind: KindInterior}
}

// CircleValue returns the fixed value of circle k.
func (c *Classifier) CircleValue(k int) float64 { return c.circles[k].Value }
