package pdfcanvas

import (
	"fmt"

	"github.com/lvillar/fieldreport"
)

// Watermark is text stamped diagonally across every page once the document
// is finished.
type Watermark struct {
	Text     string
	FontSize float64 // default 60
	Color    fieldreport.Color
	Opacity  float64 // 0 to 1, default 0.3
	Angle    float64 // degrees, default 45
}

func (wm Watermark) withDefaults() Watermark {
	if wm.FontSize <= 0 {
		wm.FontSize = 60
	}
	if wm.Opacity <= 0 || wm.Opacity > 1 {
		wm.Opacity = 0.3
	}
	if wm.Angle == 0 {
		wm.Angle = 45
	}
	if wm.Color == (fieldreport.Color{}) {
		wm.Color = fieldreport.Color{R: 200, G: 200, B: 200}
	}
	return wm
}

// stamp revisits every page to draw the page numbers and the watermark. Both
// sit outside the layout: numbers go in the bottom margin and the watermark
// overlays the content.
func (c *Canvas) stamp() {
	if c.stamped {
		return
	}
	c.stamped = true
	n := c.pdf.PageCount()
	if n == 0 || (c.pageNumbers == "" && c.watermark.Text == "") {
		return
	}
	for i := 1; i <= n; i++ {
		c.pdf.SetPage(i)
		if c.pageNumbers != "" {
			c.drawPageNumber(fmt.Sprintf(c.pageNumbers, i, n))
		}
		if c.watermark.Text != "" {
			c.drawWatermark(c.watermark.withDefaults())
		}
	}
	c.pdf.SetPage(n)
}

func (c *Canvas) drawPageNumber(text string) {
	const size = 8
	c.pdf.SetFont(defaultFamily, "", size)
	c.pdf.SetTextColor(fieldreport.Black.R, fieldreport.Black.G, fieldreport.Black.B)
	s := string(winAnsi(text))
	x := (c.geo.Width - c.pdf.GetStringWidth(s)) / 2
	c.pdf.Text(x, c.geo.Height-c.geo.Margin/2, s)
}

func (c *Canvas) drawWatermark(wm Watermark) {
	c.pdf.SetFont(defaultFamily, "B", wm.FontSize)
	c.pdf.SetTextColor(wm.Color.R, wm.Color.G, wm.Color.B)
	c.pdf.SetAlpha(wm.Opacity, "Normal")

	s := string(winAnsi(wm.Text))
	cx, cy := c.geo.Width/2, c.geo.Height/2
	c.pdf.TransformBegin()
	c.pdf.TransformRotate(wm.Angle, cx, cy)
	c.pdf.Text(cx-c.pdf.GetStringWidth(s)/2, cy+wm.FontSize/3, s)
	c.pdf.TransformEnd()

	c.pdf.SetAlpha(1, "Normal")
}
