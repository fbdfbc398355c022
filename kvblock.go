package fieldreport

import "math"

// KeyValue is one labelled value.
type KeyValue struct {
	Label string
	Value string
}

// labelShare is the fraction of the block width given to labels.
const labelShare = 0.4

// KeyValueBlock lays out label/value pairs as rows with the label at the left
// edge and the value right-aligned at the right edge. The whole block is one
// atomic unit.
type KeyValueBlock struct {
	Pairs      []KeyValue
	Font       Font
	Spacing    float64 // half of it separates rows, all of it follows the block
	LabelColor Color
	ValueColor Color
}

func (kv KeyValueBlock) widths(width float64) (label, value float64) {
	label = width * labelShare
	return label, width - label
}

func (kv KeyValueBlock) rowHeights(m Measurer, width float64) []float64 {
	lw, vw := kv.widths(width)
	heights := make([]float64, len(kv.Pairs))
	for i, p := range kv.Pairs {
		h := m.MeasureText(p.Value, kv.Font, vw)
		if lh := m.MeasureText(p.Label, kv.Font, lw); lh > h {
			h = lh
		}
		heights[i] = h
	}
	return heights
}

// Measure implements Block.
func (kv KeyValueBlock) Measure(m Measurer, width float64) float64 {
	if len(kv.Pairs) == 0 {
		return 0
	}
	total := kv.Spacing
	for i, h := range kv.rowHeights(m, width) {
		if i > 0 {
			total += kv.Spacing / 2
		}
		total += h
	}
	return total
}

// Draw implements Block.
func (kv KeyValueBlock) Draw(c Canvas, r Rect) {
	lw, vw := kv.widths(r.W)
	y := r.Y
	for i, h := range kv.rowHeights(c, r.W) {
		if i > 0 {
			y += kv.Spacing / 2
		}
		p := kv.Pairs[i]
		lh := c.MeasureText(p.Label, kv.Font, lw)
		vh := c.MeasureText(p.Value, kv.Font, vw)
		if p.Label != "" {
			c.DrawText(p.Label, kv.Font, Rect{X: r.X, Y: y + centerOffset(h, lh), W: lw, H: lh}, AlignLeft, kv.LabelColor)
		}
		if p.Value != "" {
			c.DrawText(p.Value, kv.Font, Rect{X: r.X + lw, Y: y + centerOffset(h, vh), W: vw, H: vh}, AlignRight, kv.ValueColor)
		}
		y += h
	}
}

func centerOffset(outer, inner float64) float64 {
	return math.Max(0, (outer-inner)/2)
}
