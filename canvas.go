// Package fieldreport is a measure-then-draw layout engine for paged reports.
//
// The engine composes text, image galleries, key-value blocks and card grids
// onto an abstract Canvas. Every atomic block is measured first and placed
// through a PageCursor, which is the only place page-break decisions are made.
// The table subpackage adds a paginated table with a repeating header, and the
// report subpackage sequences the primitives into concrete documents.
//
// A concrete PDF Canvas lives in the pdfcanvas subpackage; tests use the
// recording canvas in internal/recorder.
package fieldreport

import "image"

// Align is a horizontal text alignment.
type Align string

// Text alignments accepted by Canvas.DrawText.
const (
	AlignLeft    Align = "L"
	AlignCenter  Align = "C"
	AlignRight   Align = "R"
	AlignJustify Align = "J"
)

// Font describes a text face.
type Font struct {
	Family string
	Style  string  // "", "B", "I", "BI"
	Size   float64 // in points
}

// Bold returns f with the bold style.
func (f Font) Bold() Font {
	f.Style = "B"
	return f
}

// WithSize returns f at the given point size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// Color is an RGB color value.
type Color struct {
	R, G, B int
}

// Common colors.
var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	Secondary = Color{102, 102, 102}
	RuleColor = Color{190, 190, 190}
	Shade     = Color{230, 234, 240}
)

// Image is a decoded bitmap ready to be placed on a page.
//
// Name identifies the bitmap within one document so a backend can embed it
// once and reference it from every placement. Raw and Format optionally carry
// the original encoded bytes ("jpeg" or "png") so a backend can embed them
// without re-encoding.
type Image struct {
	Name   string
	Src    image.Image
	Raw    []byte
	Format string
}

// Size returns the pixel dimensions of the bitmap, or a zero Size when there
// is nothing to draw.
func (img Image) Size() Size {
	if img.Src == nil {
		return Size{}
	}
	b := img.Src.Bounds()
	return Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Valid reports whether the image has a bitmap with non-zero dimensions.
func (img Image) Valid() bool {
	s := img.Size()
	return s.W > 0 && s.H > 0
}

// Measurer computes the height of text wrapped to a maximum width.
// Implementations must be side-effect free and wrap exactly as the matching
// Canvas.DrawText does.
type Measurer interface {
	MeasureText(text string, font Font, maxWidth float64) float64
}

// Canvas is the drawing surface one document is generated onto.
type Canvas interface {
	Measurer

	// BeginPage appends a new page and makes it current.
	BeginPage()
	// DrawText draws text wrapped to r.W starting at the top of r.
	DrawText(text string, font Font, r Rect, align Align, c Color)
	// DrawImage scales img into r.
	DrawImage(img Image, r Rect)
	DrawLine(from, to Point, c Color, width float64)
	FillRect(r Rect, c Color)
	StrokeRoundedRect(r Rect, radius float64, c Color, lineWidth float64)
}
