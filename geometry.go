package fieldreport

// Point is a position on the page in points, origin at the top-left corner.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in points.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in points. It is used both for the area
// available to a layout and for the area a layout actually drew into.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// PageGeometry describes the fixed page size and uniform margin of a document.
type PageGeometry struct {
	Width, Height float64
	Margin        float64
}

// Letter is US Letter (612×792pt) with 36pt margins on all sides.
var Letter = PageGeometry{Width: 612, Height: 792, Margin: 36}

// ContentWidth is the page width minus the left and right margins.
func (g PageGeometry) ContentWidth() float64 {
	return g.Width - 2*g.Margin
}

// ContentHeight is the page height minus the top and bottom margins. It is the
// tallest atomic block a page can hold.
func (g PageGeometry) ContentHeight() float64 {
	return g.Height - 2*g.Margin
}

// Bottom is the lowest y coordinate a block may reach.
func (g PageGeometry) Bottom() float64 {
	return g.Height - g.Margin
}
