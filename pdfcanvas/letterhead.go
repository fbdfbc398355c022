package pdfcanvas

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

// importLetterhead imports page n of the PDF in rs as a template drawn under
// every page. The importer panics on malformed input, so failures are turned
// into a document error.
func (c *Canvas) importLetterhead(rs io.ReadSeeker, n int) {
	defer func() {
		if r := recover(); r != nil {
			c.letterhead = nil
			c.tplID = -1
			c.pdf.SetError(fmt.Errorf("pdfcanvas: importing letterhead page %d: %v", n, r))
		}
	}()

	imp := gofpdi.NewImporter()
	tpl := imp.ImportPageFromStream(c.pdf, &rs, n, "/MediaBox")
	c.letterhead = imp
	c.tplID = tpl
}
