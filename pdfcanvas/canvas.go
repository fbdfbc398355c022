// Package pdfcanvas implements fieldreport.Canvas on top of go-pdf/fpdf.
//
// The canvas works in points on US Letter pages and uses the PDF core fonts.
// Text is transcoded to Windows-1252 before it is measured or drawn, and both
// operations share one line-breaking routine so measured heights always match
// what is drawn.
package pdfcanvas

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"

	"github.com/lvillar/fieldreport"
)

// DefaultLineHeight is the line height as a multiple of the font size.
const DefaultLineHeight = 1.2

// defaultFamily is used when a Font carries no family.
const defaultFamily = "Helvetica"

// Canvas draws onto a single PDF document.
type Canvas struct {
	pdf        *fpdf.Fpdf
	geo        fieldreport.PageGeometry
	lineHeight float64
	images     map[string]bool
	anon       int

	letterhead *gofpdi.Importer
	tplID      int

	pageNumbers string
	watermark   Watermark
	stamped     bool
}

// New creates a Canvas backed by a fresh Letter document. No page exists
// until BeginPage is called.
func New(opts ...Option) *Canvas {
	cfg := &canvasConfig{
		compress:   true,
		creator:    "fieldreport",
		lineHeight: DefaultLineHeight,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	geo := fieldreport.Letter
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: geo.Width, Ht: geo.Height},
	})
	pdf.SetMargins(geo.Margin, geo.Margin, geo.Margin)
	pdf.SetAutoPageBreak(false, geo.Margin)
	pdf.SetCellMargin(0)
	pdf.SetCompression(cfg.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreator(cfg.creator, true)
	if cfg.title != "" {
		pdf.SetTitle(cfg.title, true)
	}
	if cfg.author != "" {
		pdf.SetAuthor(cfg.author, true)
	}
	if cfg.subject != "" {
		pdf.SetSubject(cfg.subject, true)
	}
	if cfg.documentID != "" {
		pdf.SetKeywords("document-id:"+cfg.documentID, true)
	}
	if !cfg.created.IsZero() {
		pdf.SetCreationDate(cfg.created)
		pdf.SetModificationDate(cfg.created)
	}
	pdf.SetFont(defaultFamily, "", 10)

	c := &Canvas{
		pdf:        pdf,
		geo:        geo,
		lineHeight: cfg.lineHeight,
		images:     make(map[string]bool),
		tplID:      -1,

		pageNumbers: cfg.pageNumbers,
		watermark:   cfg.watermark,
	}
	if cfg.letterhead != nil {
		c.importLetterhead(cfg.letterhead, cfg.letterheadPage)
	}
	return c
}

// BeginPage implements fieldreport.Canvas.
func (c *Canvas) BeginPage() {
	c.pdf.AddPage()
	if c.tplID >= 0 {
		c.letterhead.UseImportedTemplate(c.pdf, c.tplID, 0, 0, c.geo.Width, c.geo.Height)
	}
}

// DrawLine implements fieldreport.Canvas.
func (c *Canvas) DrawLine(from, to fieldreport.Point, col fieldreport.Color, width float64) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(width)
	c.pdf.Line(from.X, from.Y, to.X, to.Y)
}

// FillRect implements fieldreport.Canvas.
func (c *Canvas) FillRect(r fieldreport.Rect, col fieldreport.Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Rect(r.X, r.Y, r.W, r.H, "F")
}

// StrokeRoundedRect implements fieldreport.Canvas.
func (c *Canvas) StrokeRoundedRect(r fieldreport.Rect, radius float64, col fieldreport.Color, lineWidth float64) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(lineWidth)
	c.pdf.RoundedRect(r.X, r.Y, r.W, r.H, radius, "1234", "D")
}

// PageCount returns the number of pages begun so far.
func (c *Canvas) PageCount() int {
	return c.pdf.PageCount()
}

// Err returns the first error recorded by the PDF writer, if any.
func (c *Canvas) Err() error {
	if c.pdf.Err() {
		return c.pdf.Error()
	}
	return nil
}

// Output stamps page numbers and the watermark, then writes the finished
// document to w. No page may be begun afterwards.
func (c *Canvas) Output(w io.Writer) error {
	if err := c.Err(); err != nil {
		return fmt.Errorf("pdfcanvas: %w", err)
	}
	c.stamp()
	if err := c.Err(); err != nil {
		return fmt.Errorf("pdfcanvas: %w", err)
	}
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("pdfcanvas: writing document: %w", err)
	}
	return nil
}

// Bytes returns the finished document.
func (c *Canvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Canvas) setFont(f fieldreport.Font) {
	family := f.Family
	if family == "" {
		family = defaultFamily
	}
	c.pdf.SetFont(family, strings.ToUpper(f.Style), f.Size)
}
