package fieldreport_test

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/lvillar/fieldreport"
)

func encode(t *testing.T, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := enc(&buf, image.NewRGBA(image.Rect(0, 0, 8, 4))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantRaw bool
	}{
		{"png", encode(t, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) }), true},
		{"gif", encode(t, func(b *bytes.Buffer, m image.Image) error { return gif.Encode(b, m, nil) }), false},
		{"bmp", encode(t, func(b *bytes.Buffer, m image.Image) error { return bmp.Encode(b, m) }), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := fieldreport.DecodeImage(tt.name, tt.data)
			if err != nil {
				t.Fatalf("DecodeImage: %v", err)
			}
			if s := img.Size(); s.W != 8 || s.H != 4 {
				t.Errorf("size = %+v, want 8x4", s)
			}
			if got := img.Raw != nil; got != tt.wantRaw {
				t.Errorf("raw kept = %v, want %v", got, tt.wantRaw)
			}
			if img.Name != tt.name {
				t.Errorf("name = %q", img.Name)
			}
		})
	}
}

func TestDecodeImageInvalid(t *testing.T) {
	_, err := fieldreport.DecodeImage("junk", []byte("definitely not an image"))
	if !errors.Is(err, fieldreport.ErrImageDecode) {
		t.Fatalf("err = %v, want ErrImageDecode", err)
	}
}

func TestReferenceCode(t *testing.T) {
	tests := []struct {
		sym   fieldreport.Symbology
		shape string // "square", "wide" or "" for any
	}{
		{fieldreport.SymbologyQR, "square"},
		{fieldreport.SymbologyCode128, "wide"},
		{fieldreport.SymbologyPDF417, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.sym), func(t *testing.T) {
			img, err := fieldreport.ReferenceCode("WD-2024-11", tt.sym)
			if err != nil {
				t.Fatalf("ReferenceCode: %v", err)
			}
			if !img.Valid() {
				t.Fatal("code image is empty")
			}
			s := img.Size()
			switch {
			case tt.shape == "square" && s.W != s.H:
				t.Errorf("size %+v, want square", s)
			case tt.shape == "wide" && s.W <= s.H:
				t.Errorf("size %+v, want wide", s)
			}
			if img.Name != "code:"+string(tt.sym)+":WD-2024-11" {
				t.Errorf("name = %q", img.Name)
			}
		})
	}
}

func TestReferenceCodeLongCode128(t *testing.T) {
	img, err := fieldreport.ReferenceCode("FIELD-REPORT-2024-NORTH-PLANT-00042", fieldreport.SymbologyCode128)
	if err != nil {
		t.Fatalf("ReferenceCode: %v", err)
	}
	if !img.Valid() {
		t.Fatal("code image is empty")
	}
}

func TestReferenceCodeSkipped(t *testing.T) {
	for _, tt := range []struct {
		content string
		sym     fieldreport.Symbology
	}{
		{"", fieldreport.SymbologyQR},
		{"REF", fieldreport.SymbologyNone},
	} {
		img, err := fieldreport.ReferenceCode(tt.content, tt.sym)
		if err != nil || img.Valid() {
			t.Errorf("ReferenceCode(%q, %q) = valid %v, %v", tt.content, tt.sym, img.Valid(), err)
		}
	}
	if _, err := fieldreport.ReferenceCode("REF", "aztec"); err == nil {
		t.Error("expected error for unknown symbology")
	}
}
