package report

import (
	"fmt"
	"io"

	"github.com/lvillar/fieldreport"
	"github.com/lvillar/fieldreport/pdfcanvas"
)

// Generate composes req onto a new PDF document and returns its bytes.
func Generate(req Request, opts ...Option) ([]byte, Summary, error) {
	cv, sum, err := compose(req, opts)
	if err != nil {
		return nil, Summary{}, err
	}
	data, err := cv.Bytes()
	if err != nil {
		return nil, Summary{}, fmt.Errorf("report: %w", err)
	}
	return data, sum, nil
}

// Write composes req and writes the PDF to w.
func Write(w io.Writer, req Request, opts ...Option) (Summary, error) {
	cv, sum, err := compose(req, opts)
	if err != nil {
		return Summary{}, err
	}
	if err := cv.Output(w); err != nil {
		return Summary{}, fmt.Errorf("report: %w", err)
	}
	return sum, nil
}

func compose(req Request, opts []Option) (*pdfcanvas.Canvas, Summary, error) {
	// Reject bad requests before a document exists.
	if err := req.Validate(); err != nil {
		return nil, Summary{}, fieldreport.NewLayoutError("Generate", err)
	}
	cfg := newConfig(opts)
	cv := pdfcanvas.New(cfg.canvasOptions(req)...)
	if err := cv.Err(); err != nil {
		return nil, Summary{}, fmt.Errorf("report: %w", err)
	}
	sum, err := New(cv, opts...).Compose(req)
	if err != nil {
		return nil, Summary{}, err
	}
	return cv, sum, nil
}
