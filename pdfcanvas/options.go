package pdfcanvas

import (
	"io"
	"time"
)

// Option is a functional option for configuring a Canvas via New.
type Option func(*canvasConfig)

type canvasConfig struct {
	title, author, subject string
	documentID             string
	creator                string
	created                time.Time
	compress               bool
	letterhead             io.ReadSeeker
	letterheadPage         int
	lineHeight             float64
	pageNumbers            string
	watermark              Watermark
}

// WithMetadata sets the document information dictionary entries.
func WithMetadata(title, author, subject string) Option {
	return func(c *canvasConfig) {
		c.title = title
		c.author = author
		c.subject = subject
	}
}

// WithDocumentID records id in the document keywords.
func WithDocumentID(id string) Option {
	return func(c *canvasConfig) {
		c.documentID = id
	}
}

// WithCreator sets the creator entry.
func WithCreator(creator string) Option {
	return func(c *canvasConfig) {
		c.creator = creator
	}
}

// WithCreationDate pins the creation and modification dates. Pinning the date
// makes the output byte-for-byte reproducible.
func WithCreationDate(t time.Time) Option {
	return func(c *canvasConfig) {
		c.created = t
	}
}

// WithCompression enables or disables stream compression.
func WithCompression(on bool) Option {
	return func(c *canvasConfig) {
		c.compress = on
	}
}

// WithLetterhead imports page n (1-based) of the PDF read from rs and draws it
// as the background of every page.
func WithLetterhead(rs io.ReadSeeker, n int) Option {
	return func(c *canvasConfig) {
		c.letterhead = rs
		if n < 1 {
			n = 1
		}
		c.letterheadPage = n
	}
}

// WithLineHeight sets the line height as a multiple of the font size.
func WithLineHeight(factor float64) Option {
	return func(c *canvasConfig) {
		if factor > 0 {
			c.lineHeight = factor
		}
	}
}

// WithPageNumbers prints a number centred in the bottom margin of every page.
// format receives the page number and the page count, e.g. "Page %d of %d".
func WithPageNumbers(format string) Option {
	return func(c *canvasConfig) {
		c.pageNumbers = format
	}
}

// WithWatermark stamps wm across every page.
func WithWatermark(wm Watermark) Option {
	return func(c *canvasConfig) {
		c.watermark = wm
	}
}
