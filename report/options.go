package report

import (
	"bytes"
	"time"

	"github.com/lvillar/fieldreport"
	"github.com/lvillar/fieldreport/pdfcanvas"
)

// Option is a functional option for configuring a Composer or Generate.
type Option func(*config)

type config struct {
	spacing          float64
	galleryRowHeight float64
	font             fieldreport.Font
	dateLayout       string
	documentID       string
	symbology        fieldreport.Symbology
	author           string
	created          time.Time
	letterhead       []byte
	letterheadPage   int
	pageNumbers      string
	watermark        string
}

func newConfig(opts []Option) *config {
	cfg := &config{
		spacing:          fieldreport.DefaultSpacing,
		galleryRowHeight: fieldreport.DefaultGalleryRowHeight,
		font:             fieldreport.Font{Family: "Helvetica", Size: 10},
		dateLayout:       fieldreport.DefaultDateLayout,
		symbology:        fieldreport.SymbologyQR,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSpacing sets the vertical gap between blocks and between card rows.
func WithSpacing(pt float64) Option {
	return func(c *config) {
		if pt >= 0 {
			c.spacing = pt
		}
	}
}

// WithGalleryRowHeight sets the common image height of reminder galleries.
// Values are clamped to the gallery bounds.
func WithGalleryRowHeight(pt float64) Option {
	return func(c *config) {
		c.galleryRowHeight = pt
	}
}

// WithFontFamily sets the core font family ("Helvetica", "Times", "Courier").
func WithFontFamily(family string) Option {
	return func(c *config) {
		if family != "" {
			c.font.Family = family
		}
	}
}

// WithBaseFontSize sets the body font size; headings scale from it.
func WithBaseFontSize(size float64) Option {
	return func(c *config) {
		if size > 0 {
			c.font.Size = size
		}
	}
}

// WithDateLayout sets the time layout used for due and close dates.
func WithDateLayout(layout string) Option {
	return func(c *config) {
		if layout != "" {
			c.dateLayout = layout
		}
	}
}

// WithDocumentID sets the document identifier. It is recorded in the PDF
// metadata and encoded in the header code when the request has no reference.
func WithDocumentID(id string) Option {
	return func(c *config) {
		c.documentID = id
	}
}

// WithCodeSymbology selects the header code symbology; SymbologyNone hides it.
func WithCodeSymbology(sym fieldreport.Symbology) Option {
	return func(c *config) {
		c.symbology = sym
	}
}

// WithAuthor sets the document author recorded in the PDF metadata.
func WithAuthor(author string) Option {
	return func(c *config) {
		c.author = author
	}
}

// WithCreationDate pins the document dates so identical input yields
// identical bytes.
func WithCreationDate(t time.Time) Option {
	return func(c *config) {
		c.created = t
	}
}

// WithLetterhead draws page n of the given PDF under every page.
func WithLetterhead(pdf []byte, n int) Option {
	return func(c *config) {
		c.letterhead = pdf
		c.letterheadPage = n
	}
}

// WithPageNumbers prints "format" in the bottom margin of every page; it
// receives the page number and the page count.
func WithPageNumbers(format string) Option {
	return func(c *config) {
		c.pageNumbers = format
	}
}

// WithWatermark stamps text diagonally across every page, e.g. "DRAFT".
func WithWatermark(text string) Option {
	return func(c *config) {
		c.watermark = text
	}
}

// canvasOptions translates the configuration for a PDF canvas.
func (c *config) canvasOptions(req Request) []pdfcanvas.Option {
	opts := []pdfcanvas.Option{
		pdfcanvas.WithMetadata(req.Header.Title, c.author, string(req.Kind)),
		pdfcanvas.WithDocumentID(c.documentID),
	}
	if !c.created.IsZero() {
		opts = append(opts, pdfcanvas.WithCreationDate(c.created))
	}
	if c.pageNumbers != "" {
		opts = append(opts, pdfcanvas.WithPageNumbers(c.pageNumbers))
	}
	if c.watermark != "" {
		opts = append(opts, pdfcanvas.WithWatermark(pdfcanvas.Watermark{Text: c.watermark}))
	}
	if len(c.letterhead) > 0 {
		opts = append(opts, pdfcanvas.WithLetterhead(bytes.NewReader(c.letterhead), c.letterheadPage))
	}
	return opts
}
