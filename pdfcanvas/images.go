package pdfcanvas

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/fieldreport"
)

// DrawImage implements fieldreport.Canvas. Each named image is embedded once.
// Images the writer cannot embed are skipped like missing ones.
func (c *Canvas) DrawImage(img fieldreport.Image, r fieldreport.Rect) {
	if !img.Valid() || r.W <= 0 || r.H <= 0 {
		return
	}
	name, opts, ok := c.register(img)
	if !ok {
		return
	}
	c.pdf.ImageOptions(name, r.X, r.Y, r.W, r.H, false, opts, 0, "")
}

// register embeds img in the document and returns the name to place it by.
// JPEG sources are embedded as is; everything else is re-encoded as 8-bit PNG.
func (c *Canvas) register(img fieldreport.Image) (string, fpdf.ImageOptions, bool) {
	name := img.Name
	if name == "" {
		c.anon++
		name = fmt.Sprintf("anon-%d", c.anon)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	raw := img.Format == "jpeg" && len(img.Raw) > 0
	if raw {
		opts.ImageType = "JPG"
	}
	if c.images[name] {
		return name, opts, true
	}
	if c.pdf.Err() {
		return "", opts, false
	}

	data := img.Raw
	if !raw {
		var err error
		if data, err = encodePNG(img.Src); err != nil {
			return "", opts, false
		}
	}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if c.pdf.Err() {
		c.pdf.ClearError()
		return "", opts, false
	}
	c.images[name] = true
	return name, opts, true
}

func encodePNG(src image.Image) ([]byte, error) {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
