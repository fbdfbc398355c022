package report

import (
	"github.com/lvillar/fieldreport"
)

// DefaultSignatureParties name the signers when a request leaves them empty.
var DefaultSignatureParties = [2]string{"Inspector", "Responsible party"}

func signatureParties(p [2]string) [2]string {
	for i := range p {
		if p[i] == "" {
			p[i] = DefaultSignatureParties[i]
		}
	}
	return p
}

// Signature template metrics, in points.
const (
	signatureBlank = 36.0 // room to sign above each line
	signatureLine  = 0.6
)

// signatureBlock is a two-column template: each column names a party and
// offers blank signature and date lines with captions.
type signatureBlock struct {
	parties [2]string
	font    fieldreport.Font
	gap     float64
}

func (s signatureBlock) columnWidth(width float64) float64 {
	return (width - s.gap) / 2
}

func (s signatureBlock) caption() fieldreport.Font {
	return smaller(s.font, 2)
}

// columnHeight measures one column: party name, then two blank lines, each
// followed by its caption.
func (s signatureBlock) columnHeight(m fieldreport.Measurer, party string, w float64) float64 {
	h := m.MeasureText(party, s.font.Bold(), w)
	for _, c := range []string{"Signature", "Date"} {
		h += signatureBlank + signatureLine + m.MeasureText(c, s.caption(), w)
	}
	return h
}

func (s signatureBlock) Measure(m fieldreport.Measurer, width float64) float64 {
	w := s.columnWidth(width)
	a := s.columnHeight(m, s.parties[0], w)
	if b := s.columnHeight(m, s.parties[1], w); b > a {
		return b
	}
	return a
}

func (s signatureBlock) Draw(c fieldreport.Canvas, r fieldreport.Rect) {
	w := s.columnWidth(r.W)
	for i, party := range s.parties {
		x := r.X + float64(i)*(w+s.gap)
		y := r.Y
		ph := c.MeasureText(party, s.font.Bold(), w)
		c.DrawText(party, s.font.Bold(), fieldreport.Rect{X: x, Y: y, W: w, H: ph}, fieldreport.AlignLeft, fieldreport.Black)
		y += ph
		for _, label := range []string{"Signature", "Date"} {
			y += signatureBlank
			c.DrawLine(fieldreport.Point{X: x, Y: y}, fieldreport.Point{X: x + w, Y: y}, fieldreport.Black, signatureLine)
			y += signatureLine
			ch := c.MeasureText(label, s.caption(), w)
			c.DrawText(label, s.caption(), fieldreport.Rect{X: x, Y: y, W: w, H: ch}, fieldreport.AlignLeft, fieldreport.Secondary)
			y += ch
		}
	}
}
