package fieldreport

import "math"

// Card is an item of a two-column grid. DrawCard receives the frame of the
// whole grid row, which may be taller than the card's measured height.
type Card interface {
	Measure(m Measurer, width float64) float64
	DrawCard(c Canvas, frame Rect)
}

// DefaultCardSpacing separates the two columns and consecutive rows.
const DefaultCardSpacing = 12.0

// CardGrid lays out cards two per row. Both cards of a row share the height of
// the taller one.
type CardGrid struct {
	Spacing float64
}

// ColumnWidth returns the width of one column for a content width.
func (g CardGrid) ColumnWidth(contentWidth float64) float64 {
	return (contentWidth - g.Spacing) / 2
}

// RowHeight returns the height of a grid row holding a and, when non-nil, b.
func (g CardGrid) RowHeight(m Measurer, width float64, a, b Card) float64 {
	h := a.Measure(m, width)
	if b != nil {
		h = math.Max(h, b.Measure(m, width))
	}
	return h
}

// Render draws the cards at the cursor, moving to a new page for any row that
// does not fit.
func (g CardGrid) Render(pc *PageCursor, cards []Card) error {
	c := pc.Canvas()
	w := g.ColumnWidth(pc.ContentWidth())
	for i := 0; i < len(cards); i += 2 {
		a := cards[i]
		var b Card
		if i+1 < len(cards) {
			b = cards[i+1]
		}
		h := g.RowHeight(c, w, a, b)
		if _, err := pc.EnsureSpace(h); err != nil {
			return err
		}
		frame := Rect{X: pc.Left(), Y: pc.Y(), W: w, H: h}
		a.DrawCard(c, frame)
		if b != nil {
			frame.X += w + g.Spacing
			b.DrawCard(c, frame)
		}
		pc.Advance(h + g.Spacing)
	}
	return nil
}

// Task card metrics, in points.
const (
	cardPadding     = 10.0
	cardRadius      = 6.0
	cardBorderWidth = 0.8
	thumbSize       = 64.0
	thumbGap        = 6.0
	maxThumbs       = 2
)

// TaskCard is the card of one task: up to two thumbnails, the title, the
// description and the task details, inside a rounded border.
type TaskCard struct {
	Task       TaskRecord
	Images     []Image
	Font       Font // body font; the title uses its bold variant
	DateLayout string
}

// blocks returns the card content in drawing order.
func (tc TaskCard) blocks() []Block {
	var thumbs []Image
	for _, img := range tc.Images {
		if len(thumbs) == maxThumbs {
			break
		}
		if img.Valid() {
			thumbs = append(thumbs, img)
		}
	}
	small := tc.Font.WithSize(math.Max(tc.Font.Size-1, 6))
	return []Block{
		thumbStrip(thumbs),
		Text{Content: tc.Task.Title, Font: tc.Font.Bold().WithSize(tc.Font.Size + 1), Color: Black},
		Text{Content: tc.Task.Description, Font: tc.Font, Color: Secondary},
		KeyValueBlock{
			Pairs:      tc.Task.Details(tc.DateLayout),
			Font:       small,
			Spacing:    thumbGap,
			LabelColor: Secondary,
			ValueColor: Black,
		},
	}
}

// Measure implements Card. The natural height is the padded sum of the
// non-empty sections separated by thumbGap.
func (tc TaskCard) Measure(m Measurer, width float64) float64 {
	inner := width - 2*cardPadding
	total := 2 * cardPadding
	n := 0
	for _, b := range tc.blocks() {
		h := b.Measure(m, inner)
		if h <= 0 {
			continue
		}
		if n > 0 {
			total += thumbGap
		}
		total += h
		n++
	}
	return total
}

// DrawCard implements Card. The border always spans the full frame height.
func (tc TaskCard) DrawCard(c Canvas, frame Rect) {
	inner := frame.Inset(cardPadding)
	y := inner.Y
	n := 0
	for _, b := range tc.blocks() {
		h := b.Measure(c, inner.W)
		if h <= 0 {
			continue
		}
		if n > 0 {
			y += thumbGap
		}
		b.Draw(c, Rect{X: inner.X, Y: y, W: inner.W, H: h})
		y += h
		n++
	}
	c.StrokeRoundedRect(frame, cardRadius, RuleColor, cardBorderWidth)
}

// thumbStrip draws up to two images side by side, each fitted into a square
// slot of thumbSize.
type thumbStrip []Image

func (ts thumbStrip) Measure(_ Measurer, _ float64) float64 {
	if len(ts) == 0 {
		return 0
	}
	return thumbSize
}

func (ts thumbStrip) Draw(c Canvas, r Rect) {
	x := r.X
	for _, img := range ts {
		c.DrawImage(img, fitInto(img.Size(), Rect{X: x, Y: r.Y, W: thumbSize, H: thumbSize}))
		x += thumbSize + thumbGap
	}
}

// fitInto scales s to fit inside slot keeping its aspect ratio, centered.
func fitInto(s Size, slot Rect) Rect {
	if s.W <= 0 || s.H <= 0 {
		return slot
	}
	k := math.Min(slot.W/s.W, slot.H/s.H)
	w, h := s.W*k, s.H*k
	return Rect{X: slot.X + (slot.W-w)/2, Y: slot.Y + (slot.H-h)/2, W: w, H: h}
}
