// Package recorder provides a Canvas that records draw calls instead of
// rendering them, with a deterministic text measurer so layout tests can
// assert exact coordinates.
package recorder

import (
	"math"
	"strings"

	"github.com/lvillar/fieldreport"
)

// Kind identifies a recorded call.
type Kind string

// Recorded call kinds.
const (
	BeginPage   Kind = "page"
	Text        Kind = "text"
	Image       Kind = "image"
	Line        Kind = "line"
	Fill        Kind = "fill"
	RoundedRect Kind = "rounded"
)

// Op is one recorded call. Page is the 1-based page the call landed on.
type Op struct {
	Kind  Kind
	Page  int
	Rect  fieldreport.Rect
	Text  string
	Font  fieldreport.Font
	Align fieldreport.Align
	Color fieldreport.Color
	Name  string // image name
}

// LineHeightFactor multiplies the font size to get one line's height.
const LineHeightFactor = 1.2

// CharWidthFactor multiplies the font size to get one character's width.
const CharWidthFactor = 0.5

// Canvas records every call. The zero value is ready to use.
type Canvas struct {
	Ops  []Op
	page int
}

// BeginPage implements fieldreport.Canvas.
func (c *Canvas) BeginPage() {
	c.page++
	c.Ops = append(c.Ops, Op{Kind: BeginPage, Page: c.page})
}

// Pages returns the number of pages begun.
func (c *Canvas) Pages() int { return c.page }

// MeasureText implements fieldreport.Measurer.
func (c *Canvas) MeasureText(text string, font fieldreport.Font, maxWidth float64) float64 {
	n := len(Wrap(text, font, maxWidth))
	return float64(n) * font.Size * LineHeightFactor
}

// DrawText implements fieldreport.Canvas.
func (c *Canvas) DrawText(text string, font fieldreport.Font, r fieldreport.Rect, align fieldreport.Align, col fieldreport.Color) {
	c.Ops = append(c.Ops, Op{Kind: Text, Page: c.page, Rect: r, Text: text, Font: font, Align: align, Color: col})
}

// DrawImage implements fieldreport.Canvas.
func (c *Canvas) DrawImage(img fieldreport.Image, r fieldreport.Rect) {
	c.Ops = append(c.Ops, Op{Kind: Image, Page: c.page, Rect: r, Name: img.Name})
}

// DrawLine implements fieldreport.Canvas. The recorded Rect spans from the
// start point to the end point.
func (c *Canvas) DrawLine(from, to fieldreport.Point, col fieldreport.Color, width float64) {
	r := fieldreport.Rect{X: from.X, Y: from.Y, W: to.X - from.X, H: to.Y - from.Y}
	c.Ops = append(c.Ops, Op{Kind: Line, Page: c.page, Rect: r, Color: col})
}

// FillRect implements fieldreport.Canvas.
func (c *Canvas) FillRect(r fieldreport.Rect, col fieldreport.Color) {
	c.Ops = append(c.Ops, Op{Kind: Fill, Page: c.page, Rect: r, Color: col})
}

// StrokeRoundedRect implements fieldreport.Canvas.
func (c *Canvas) StrokeRoundedRect(r fieldreport.Rect, radius float64, col fieldreport.Color, lineWidth float64) {
	c.Ops = append(c.Ops, Op{Kind: RoundedRect, Page: c.page, Rect: r, Color: col})
}

// Filter returns the recorded ops of kind k.
func (c *Canvas) Filter(k Kind) []Op {
	var out []Op
	for _, op := range c.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Reset discards all recorded ops and pages.
func (c *Canvas) Reset() {
	c.Ops = nil
	c.page = 0
}

// Wrap breaks text into lines no wider than maxWidth, with every character
// CharWidthFactor·size wide. Words longer than a line are split. Explicit
// newlines always break.
func Wrap(text string, font fieldreport.Font, maxWidth float64) []string {
	if text == "" {
		return nil
	}
	perLine := int(math.Floor(maxWidth / (font.Size * CharWidthFactor)))
	if perLine < 1 {
		perLine = 1
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := ""
		for _, w := range words {
			for len(w) > perLine {
				if cur != "" {
					lines = append(lines, cur)
					cur = ""
				}
				lines = append(lines, w[:perLine])
				w = w[perLine:]
			}
			if w == "" {
				continue
			}
			switch {
			case cur == "":
				cur = w
			case len(cur)+1+len(w) <= perLine:
				cur += " " + w
			default:
				lines = append(lines, cur)
				cur = w
			}
		}
		if cur != "" {
			lines = append(lines, cur)
		}
	}
	return lines
}
