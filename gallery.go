package fieldreport

import "math"

// Gallery row height bounds and defaults, in points.
const (
	MinGalleryRowHeight     = 120.0
	MaxGalleryRowHeight     = 240.0
	DefaultGalleryRowHeight = 180.0
	DefaultGalleryGap       = 8.0
)

// Gallery wraps images into rows of a common height that fit the available
// width. The same placement drives measurement and drawing.
type Gallery struct {
	Images     []Image
	RowHeight  float64 // common row height; clamped to [Min, Max]GalleryRowHeight
	Gap        float64 // horizontal gap between images in a row
	RowSpacing float64 // vertical gap between rows
}

// GalleryRow is one line of placed images. Rects are relative to the row
// origin: X from the left edge, Y always 0.
type GalleryRow struct {
	Height float64
	Items  []GalleryItem
}

// GalleryItem is an image and the rectangle it occupies in its row.
type GalleryItem struct {
	Image Image
	Rect  Rect
}

func (g Gallery) rowHeight() float64 {
	h := g.RowHeight
	if h == 0 {
		h = DefaultGalleryRowHeight
	}
	return math.Max(MinGalleryRowHeight, math.Min(MaxGalleryRowHeight, h))
}

// Rows places the images for width. Images without a usable bitmap are
// skipped. An image wider than width after scaling is shrunk to fit.
func (g Gallery) Rows(width float64) []GalleryRow {
	if width <= 0 {
		return nil
	}
	h := g.rowHeight()

	var rows []GalleryRow
	var cur GalleryRow
	x := 0.0
	for _, img := range g.Images {
		if !img.Valid() {
			continue
		}
		px := img.Size()
		w, ih := px.W*h/px.H, h
		if w > width {
			ih = ih * width / w
			w = width
		}
		if x > 0 && x+w > width+epsilon {
			rows = append(rows, cur)
			cur = GalleryRow{}
			x = 0
		}
		cur.Items = append(cur.Items, GalleryItem{Image: img, Rect: Rect{X: x, W: w, H: ih}})
		cur.Height = math.Max(cur.Height, ih)
		x += w + g.Gap
	}
	if len(cur.Items) > 0 {
		rows = append(rows, cur)
	}
	return rows
}

// Measure implements Block. It returns the summed row heights plus the row
// spacing between rows; an empty gallery measures zero.
func (g Gallery) Measure(_ Measurer, width float64) float64 {
	total := 0.0
	for i, row := range g.Rows(width) {
		if i > 0 {
			total += g.RowSpacing
		}
		total += row.Height
	}
	return total
}

// Draw implements Block, drawing every row into r without page breaks.
func (g Gallery) Draw(c Canvas, r Rect) {
	y := r.Y
	for i, row := range g.Rows(r.W) {
		if i > 0 {
			y += g.RowSpacing
		}
		drawGalleryRow(c, row, r.X, y)
		y += row.Height
	}
}

// Render draws the gallery at the cursor. Each row is atomic: a row that does
// not fit moves to the next page. Rendering an empty gallery draws nothing and
// does not move the cursor.
func (g Gallery) Render(pc *PageCursor) error {
	for i, row := range g.Rows(pc.ContentWidth()) {
		if i > 0 {
			pc.Advance(g.RowSpacing)
		}
		if _, err := pc.EnsureSpace(row.Height); err != nil {
			return err
		}
		drawGalleryRow(pc.Canvas(), row, pc.Left(), pc.Y())
		pc.Advance(row.Height)
	}
	return nil
}

func drawGalleryRow(c Canvas, row GalleryRow, x, y float64) {
	for _, it := range row.Items {
		r := it.Rect
		r.X += x
		r.Y = y
		c.DrawImage(it.Image, r)
	}
}
