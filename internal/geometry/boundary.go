package geometry

// Side names one of the four outer box edges.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// BoxBoundary holds the Dirichlet values applied along the outer box
// edges.
type BoxBoundary struct {
	Top, Bottom, Left, Right float64
}

// Value returns the boundary value for a side.
func (b BoxBoundary) Value(s Side) float64 {
	switch s {
	case SideTop:
		return b.Top
	case SideBottom:
		return b.Bottom
	case SideLeft:
		return b.Left
	case SideRight:
		return b.Right
	}
	return 0
}

// Circle is a region of fixed Dirichlet value. Any node within R of the
// center takes Value exactly. R == 0 degenerates to a single-point
// condition and is legal.
type Circle struct {
	CX, CY float64
	R      float64
	Value  float64
}

// Contains reports whether the physical point (x,y) lies in the circle.
// The boundary itself is inside.
func (c Circle) Contains(x, y float64) bool {
	dx := x - c.CX
	dy := y - c.CY
	return dx*dx+dy*dy <= c.R*c.R
}
