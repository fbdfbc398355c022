package fieldreport

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// DecodeImage decodes an encoded bitmap. JPEG and PNG sources keep their raw
// bytes so a backend can embed them unchanged; other formats are re-encoded by
// the backend.
func DecodeImage(name string, data []byte) (Image, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %s: %v", ErrImageDecode, name, err)
	}
	img := Image{Name: name, Src: src}
	if format == "jpeg" || format == "png" {
		img.Raw = data
		img.Format = format
	}
	if !img.Valid() {
		return Image{}, fmt.Errorf("%w: %s: empty bitmap", ErrImageDecode, name)
	}
	return img, nil
}
