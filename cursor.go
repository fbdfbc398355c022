package fieldreport

import "fmt"

// PageCursor owns the current page and the vertical write position of one
// document. It is the single authority for page-break decisions and must not
// be shared between generations.
type PageCursor struct {
	canvas  Canvas
	geo     PageGeometry
	spacing float64
	page    int
	y       float64
}

// NewPageCursor begins the first page on c and positions the cursor at the
// top margin.
func NewPageCursor(c Canvas, opts ...CursorOption) *PageCursor {
	cfg := &cursorConfig{
		geometry: Letter,
		spacing:  DefaultSpacing,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	pc := &PageCursor{
		canvas:  c,
		geo:     cfg.geometry,
		spacing: cfg.spacing,
	}
	pc.breakPage()
	return pc
}

func (pc *PageCursor) breakPage() {
	pc.canvas.BeginPage()
	pc.page++
	pc.y = pc.geo.Margin
}

// EnsureSpace makes room for a block of height h. If the block would end
// below the bottom margin a new page is begun and y is reset to the top
// margin. It reports whether a page break happened.
//
// A block taller than a whole page's content area can never fit and fails
// with ErrBlockTooLarge.
func (pc *PageCursor) EnsureSpace(h float64) (bool, error) {
	if h > pc.geo.ContentHeight()+epsilon {
		return false, NewLayoutError("EnsureSpace",
			fmt.Errorf("%w: need %.2fpt, page holds %.2fpt", ErrBlockTooLarge, h, pc.geo.ContentHeight()))
	}
	if pc.y+h <= pc.geo.Bottom()+epsilon {
		return false, nil
	}
	pc.breakPage()
	return true, nil
}

// epsilon absorbs floating point noise in accumulated heights.
const epsilon = 1e-6

// Advance moves the write position down by h.
func (pc *PageCursor) Advance(h float64) {
	pc.y += h
}

// Space advances by the configured vertical spacing.
func (pc *PageCursor) Space() {
	pc.y += pc.spacing
}

// Spacing returns the configured vertical spacing.
func (pc *PageCursor) Spacing() float64 { return pc.spacing }

// Y returns the current vertical write position.
func (pc *PageCursor) Y() float64 { return pc.y }

// Page returns the 1-based index of the current page.
func (pc *PageCursor) Page() int { return pc.page }

// Left returns the x coordinate of the left margin.
func (pc *PageCursor) Left() float64 { return pc.geo.Margin }

// ContentWidth returns the width available between the margins.
func (pc *PageCursor) ContentWidth() float64 { return pc.geo.ContentWidth() }

// Geometry returns the page geometry.
func (pc *PageCursor) Geometry() PageGeometry { return pc.geo }

// Remaining returns the distance from y to the bottom margin.
func (pc *PageCursor) Remaining() float64 { return pc.geo.Bottom() - pc.y }

// Canvas returns the canvas the cursor draws on.
func (pc *PageCursor) Canvas() Canvas { return pc.canvas }

// Frame returns the full-width rectangle of height h at the write position.
func (pc *PageCursor) Frame(h float64) Rect {
	return Rect{X: pc.geo.Margin, Y: pc.y, W: pc.geo.ContentWidth(), H: h}
}
