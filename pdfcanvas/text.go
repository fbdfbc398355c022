package pdfcanvas

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/lvillar/fieldreport"
)

// winAnsi converts s to the Windows-1252 bytes the core fonts expect. Runes
// outside the code page become '?'.
func winAnsi(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == utf8.RuneError {
			out = append(out, '?')
			continue
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}

// textLine is one wrapped line. last marks the final line of a paragraph.
type textLine struct {
	text []byte
	last bool
}

// lines wraps text for font and width, one paragraph per source line. It is
// the only line breaker used by both MeasureText and DrawText.
func (c *Canvas) lines(text string, font fieldreport.Font, maxWidth float64) []textLine {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	c.setFont(font)
	var out []textLine
	src := bytes.TrimRight(winAnsi(text), "\n")
	for _, para := range bytes.Split(src, []byte{'\n'}) {
		split := c.pdf.SplitLines(para, maxWidth)
		if len(split) == 0 {
			split = [][]byte{nil}
		}
		for i, l := range split {
			out = append(out, textLine{text: l, last: i == len(split)-1})
		}
	}
	return out
}

func (c *Canvas) lineHeightFor(font fieldreport.Font) float64 {
	return font.Size * c.lineHeight
}

// MeasureText implements fieldreport.Measurer.
func (c *Canvas) MeasureText(text string, font fieldreport.Font, maxWidth float64) float64 {
	return float64(len(c.lines(text, font, maxWidth))) * c.lineHeightFor(font)
}

// DrawText implements fieldreport.Canvas. Lines are drawn one cell each from
// the top of r; justified text stretches every line but the last of each
// paragraph.
func (c *Canvas) DrawText(text string, font fieldreport.Font, r fieldreport.Rect, align fieldreport.Align, col fieldreport.Color) {
	lines := c.lines(text, font, r.W)
	if len(lines) == 0 {
		return
	}
	lh := c.lineHeightFor(font)
	c.pdf.SetTextColor(col.R, col.G, col.B)
	for i, tl := range lines {
		line := bytes.TrimRight(tl.text, " ")
		cellAlign := string(align)
		if align == fieldreport.AlignJustify {
			cellAlign = string(fieldreport.AlignLeft)
			if !tl.last {
				c.justify(line, r.W)
			}
		}
		c.pdf.SetXY(r.X, r.Y+float64(i)*lh)
		c.pdf.CellFormat(r.W, lh, string(line), "", 0, cellAlign, false, 0, "")
		c.pdf.SetWordSpacing(0)
	}
}

// justify sets the word spacing that stretches line to width.
func (c *Canvas) justify(line []byte, width float64) {
	spaces := bytes.Count(line, []byte{' '})
	if spaces == 0 {
		return
	}
	slack := width - c.pdf.GetStringWidth(string(line))
	if slack <= 0 {
		return
	}
	c.pdf.SetWordSpacing(slack / float64(spaces))
}
