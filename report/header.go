package report

import (
	"math"

	"github.com/lvillar/fieldreport"
)

// Header metrics, in points.
const (
	logoHeight   = 48.0
	logoMaxWidth = 120.0
	codeSide     = 56.0
	headerGap    = 10.0
)

// headerRow is the top line of the header: logo, title and subtitle, and the
// reference code at the right edge.
type headerRow struct {
	logo     fieldreport.Image
	code     fieldreport.Image
	title    fieldreport.Text
	subtitle fieldreport.Text
}

func (h headerRow) logoSize() fieldreport.Size {
	if !h.logo.Valid() {
		return fieldreport.Size{}
	}
	px := h.logo.Size()
	w := px.W * logoHeight / px.H
	if w > logoMaxWidth {
		return fieldreport.Size{W: logoMaxWidth, H: logoHeight * logoMaxWidth / w}
	}
	return fieldreport.Size{W: w, H: logoHeight}
}

func (h headerRow) codeSize() fieldreport.Size {
	if !h.code.Valid() {
		return fieldreport.Size{}
	}
	px := h.code.Size()
	if px.W > px.H {
		// linear codes are laid out wide
		return fieldreport.Size{W: codeSide * 2.5, H: codeSide * 2.5 * px.H / px.W}
	}
	return fieldreport.Size{W: codeSide * px.W / px.H, H: codeSide}
}

// textColumn returns the x offset and width left for the title column.
func (h headerRow) textColumn(width float64) (x, w float64) {
	if ls := h.logoSize(); ls.W > 0 {
		x = ls.W + headerGap
	}
	w = width - x
	if cs := h.codeSize(); cs.W > 0 {
		w -= cs.W + headerGap
	}
	return x, math.Max(w, 1)
}

func (h headerRow) Measure(m fieldreport.Measurer, width float64) float64 {
	_, tw := h.textColumn(width)
	text := h.title.Measure(m, tw) + h.subtitle.Measure(m, tw)
	return math.Max(text, math.Max(h.logoSize().H, h.codeSize().H))
}

func (h headerRow) Draw(c fieldreport.Canvas, r fieldreport.Rect) {
	if ls := h.logoSize(); ls.W > 0 {
		c.DrawImage(h.logo, fieldreport.Rect{X: r.X, Y: r.Y, W: ls.W, H: ls.H})
	}
	if cs := h.codeSize(); cs.W > 0 {
		c.DrawImage(h.code, fieldreport.Rect{X: r.Right() - cs.W, Y: r.Y, W: cs.W, H: cs.H})
	}
	x, tw := h.textColumn(r.W)
	th := h.title.Measure(c, tw)
	h.title.Draw(c, fieldreport.Rect{X: r.X + x, Y: r.Y, W: tw, H: th})
	h.subtitle.Draw(c, fieldreport.Rect{X: r.X + x, Y: r.Y + th, W: tw, H: h.subtitle.Measure(c, tw)})
}

// header draws the document header: the title row between two horizontal
// rules with the metadata block in between.
func (cp *Composer) header(pc *fieldreport.PageCursor, hd Header) error {
	ref := hd.Reference
	if ref == "" {
		ref = cp.cfg.documentID
	}
	code, err := fieldreport.ReferenceCode(ref, cp.cfg.symbology)
	if err != nil {
		return fieldreport.NewLayoutError("Compose.header", err)
	}

	row := headerRow{
		logo:     hd.Logo,
		code:     code,
		title:    fieldreport.Text{Content: hd.Title, Font: cp.titleFont(8), Color: fieldreport.Black},
		subtitle: fieldreport.Text{Content: hd.Subtitle, Font: cp.cfg.font.WithSize(cp.cfg.font.Size + 1), Color: fieldreport.Secondary},
	}
	rule := fieldreport.Rule{Color: fieldreport.RuleColor, Width: 0.8, Pad: cp.cfg.spacing / 2}
	meta := fieldreport.KeyValueBlock{
		Pairs:      hd.Metadata,
		Font:       smaller(cp.cfg.font, 1),
		Spacing:    cp.cfg.spacing / 2,
		LabelColor: fieldreport.Secondary,
		ValueColor: fieldreport.Black,
	}

	w := pc.ContentWidth()
	for _, b := range []fieldreport.Block{row, rule, meta, rule} {
		if err := fieldreport.Place(pc, fieldreport.Measure(pc.Canvas(), b, w)); err != nil {
			return err
		}
	}
	pc.Space()
	return nil
}
