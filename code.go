package fieldreport

import (
	"fmt"
	"image"
	"image/color"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
	pdf417 "github.com/ruudk/golang-pdf417"
)

// Symbology selects the machine-readable code printed in a report header.
type Symbology string

// Supported symbologies.
const (
	SymbologyNone    Symbology = ""
	SymbologyQR      Symbology = "qr"
	SymbologyCode128 Symbology = "code128"
	SymbologyPDF417  Symbology = "pdf417"
)

// codePixels is the rendered pixel size of the longer side of a code bitmap.
const codePixels = 256

// ReferenceCode renders content as a bitmap in the given symbology. The image
// is named after the symbology and content so it is embedded once.
func ReferenceCode(content string, sym Symbology) (Image, error) {
	if content == "" || sym == SymbologyNone {
		return Image{}, nil
	}
	var (
		src image.Image
		err error
	)
	switch sym {
	case SymbologyQR:
		var bc barcode.Barcode
		bc, err = qr.Encode(content, qr.M, qr.Auto)
		if err == nil {
			src, err = barcode.Scale(bc, codePixels, codePixels)
		}
	case SymbologyCode128:
		var bc barcode.Barcode
		bc, err = code128.Encode(content)
		if err == nil {
			// Scale refuses to shrink below one pixel per module.
			w := max(codePixels, bc.Bounds().Dx())
			src, err = barcode.Scale(bc, w, w/4)
		}
	case SymbologyPDF417:
		src = upscale(pdf417.Encode(content, 4, 2), 3)
	default:
		return Image{}, fmt.Errorf("fieldreport: unknown symbology %q", sym)
	}
	if err != nil {
		return Image{}, fmt.Errorf("fieldreport: encoding %s code: %w", sym, err)
	}
	return Image{Name: "code:" + string(sym) + ":" + content, Src: src}, nil
}

// upscale enlarges a module bitmap by an integer factor so each module stays
// a crisp block of pixels.
func upscale(src image.Image, k int) image.Image {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*k, b.Dy()*k))
	for y := 0; y < b.Dy()*k; y++ {
		for x := 0; x < b.Dx()*k; x++ {
			dst.Set(x, y, color.GrayModel.Convert(src.At(b.Min.X+x/k, b.Min.Y+y/k)))
		}
	}
	return dst
}
