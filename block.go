package fieldreport

// Block is an atomic unit of layout: it is measured once for a width and then
// drawn into a rectangle of exactly the measured height.
type Block interface {
	Measure(m Measurer, width float64) float64
	Draw(c Canvas, r Rect)
}

// Measured pairs a Block with the height it needs at a given width.
type Measured struct {
	Block  Block
	Width  float64
	Height float64
}

// Measure computes the height of b at width.
func Measure(m Measurer, b Block, width float64) Measured {
	return Measured{Block: b, Width: width, Height: b.Measure(m, width)}
}

// Place draws a measured block at the cursor, starting a new page first if the
// block does not fit, and advances past it. Zero-height blocks draw nothing.
func Place(pc *PageCursor, mb Measured) error {
	if mb.Height <= 0 {
		return nil
	}
	if _, err := pc.EnsureSpace(mb.Height); err != nil {
		return err
	}
	r := pc.Frame(mb.Height)
	r.W = mb.Width
	mb.Block.Draw(pc.Canvas(), r)
	pc.Advance(mb.Height)
	return nil
}

// PlaceAll measures each block at the content width and places it followed by
// the cursor's vertical spacing. Blocks measuring zero add no spacing.
func PlaceAll(pc *PageCursor, blocks ...Block) error {
	for _, b := range blocks {
		mb := Measure(pc.Canvas(), b, pc.ContentWidth())
		if mb.Height <= 0 {
			continue
		}
		if err := Place(pc, mb); err != nil {
			return err
		}
		pc.Space()
	}
	return nil
}
