package fieldreport

// Text is a single uniformly styled paragraph.
type Text struct {
	Content string
	Font    Font
	Color   Color
	Align   Align
}

// Measure implements Block.
func (t Text) Measure(m Measurer, width float64) float64 {
	if t.Content == "" {
		return 0
	}
	return m.MeasureText(t.Content, t.Font, width)
}

// Draw implements Block.
func (t Text) Draw(c Canvas, r Rect) {
	if t.Content == "" {
		return
	}
	align := t.Align
	if align == "" {
		align = AlignLeft
	}
	c.DrawText(t.Content, t.Font, r, align, t.Color)
}

// Rule is a horizontal line drawn across the middle of its frame.
type Rule struct {
	Color Color
	Width float64 // line width
	Pad   float64 // space above and below the line
}

// Measure implements Block.
func (r Rule) Measure(_ Measurer, _ float64) float64 {
	return 2*r.Pad + r.Width
}

// Draw implements Block.
func (r Rule) Draw(c Canvas, frame Rect) {
	y := frame.Y + r.Pad + r.Width/2
	c.DrawLine(Point{frame.X, y}, Point{frame.Right(), y}, r.Color, r.Width)
}
