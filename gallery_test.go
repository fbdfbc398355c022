package fieldreport_test

import (
	"fmt"
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lvillar/fieldreport"
	"github.com/lvillar/fieldreport/internal/recorder"
)

func bitmap(name string, w, h int) fieldreport.Image {
	return fieldreport.Image{Name: name, Src: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func squares(n int) []fieldreport.Image {
	imgs := make([]fieldreport.Image, n)
	for i := range imgs {
		imgs[i] = bitmap(fmt.Sprintf("sq%d", i), 100, 100)
	}
	return imgs
}

func rowSizes(rows []fieldreport.GalleryRow) []int {
	var n []int
	for _, r := range rows {
		n = append(n, len(r.Items))
	}
	return n
}

func TestGalleryRowsWrap(t *testing.T) {
	g := fieldreport.Gallery{Images: squares(5), RowHeight: 240, Gap: 8, RowSpacing: 12}

	rows := g.Rows(540)
	if diff := cmp.Diff([]int{2, 2, 1}, rowSizes(rows)); diff != "" {
		t.Fatalf("row sizes mismatch (-want +got):\n%s", diff)
	}
	for _, r := range rows {
		if r.Height != 240 {
			t.Errorf("row height = %v, want 240", r.Height)
		}
		last := r.Items[len(r.Items)-1].Rect
		if last.Right() > 540 {
			t.Errorf("row overflows: right edge %v", last.Right())
		}
	}
	if x := rows[0].Items[1].Rect.X; x != 248 {
		t.Errorf("second image x = %v, want 248", x)
	}

	if h := g.Measure(nil, 540); h != 3*240+2*12 {
		t.Errorf("Measure = %v, want %v", h, 3*240+2*12)
	}
}

func TestGalleryMeasureIdempotent(t *testing.T) {
	g := fieldreport.Gallery{Images: []fieldreport.Image{
		bitmap("a", 400, 300), bitmap("b", 100, 300), bitmap("c", 300, 100), bitmap("d", 50, 50),
	}, Gap: 8, RowSpacing: 8}
	first := g.Measure(nil, 540)
	for i := 0; i < 3; i++ {
		if h := g.Measure(nil, 540); h != first {
			t.Fatalf("Measure changed from %v to %v", first, h)
		}
	}
}

func TestGalleryEmpty(t *testing.T) {
	g := fieldreport.Gallery{Images: []fieldreport.Image{{Name: "broken"}}, RowSpacing: 12}
	if h := g.Measure(nil, 540); h != 0 {
		t.Errorf("Measure = %v, want 0", h)
	}

	var rec recorder.Canvas
	pc := fieldreport.NewPageCursor(&rec)
	if err := g.Render(pc); err != nil {
		t.Fatal(err)
	}
	if len(rec.Filter(recorder.Image)) != 0 || pc.Y() != 36 {
		t.Errorf("empty gallery drew %d images and moved y to %v", len(rec.Filter(recorder.Image)), pc.Y())
	}
}

func TestGalleryRowHeightClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, fieldreport.DefaultGalleryRowHeight},
		{50, fieldreport.MinGalleryRowHeight},
		{500, fieldreport.MaxGalleryRowHeight},
		{150, 150},
	}
	for _, tt := range tests {
		g := fieldreport.Gallery{Images: squares(1), RowHeight: tt.in}
		if h := g.Rows(540)[0].Height; h != tt.want {
			t.Errorf("RowHeight %v: row height = %v, want %v", tt.in, h, tt.want)
		}
	}
}

func TestGalleryShrinksWideImage(t *testing.T) {
	g := fieldreport.Gallery{Images: []fieldreport.Image{bitmap("pano", 1000, 100), bitmap("sq", 10, 10)}, RowHeight: 180, Gap: 8}
	rows := g.Rows(540)
	if diff := cmp.Diff([]int{1, 1}, rowSizes(rows)); diff != "" {
		t.Fatalf("row sizes mismatch (-want +got):\n%s", diff)
	}
	want := fieldreport.Rect{W: 540, H: 54}
	if diff := cmp.Diff(want, rows[0].Items[0].Rect); diff != "" {
		t.Errorf("panorama rect mismatch (-want +got):\n%s", diff)
	}
	if rows[0].Height != 54 {
		t.Errorf("row height = %v, want 54", rows[0].Height)
	}
}

func TestGalleryDrawMatchesMeasure(t *testing.T) {
	g := fieldreport.Gallery{Images: squares(5), RowHeight: 200, Gap: 8, RowSpacing: 8}
	var rec recorder.Canvas
	r := fieldreport.Rect{X: 36, Y: 100, W: 540}
	r.H = g.Measure(&rec, r.W)
	g.Draw(&rec, r)

	bottom := 0.0
	for _, op := range rec.Filter(recorder.Image) {
		bottom = math.Max(bottom, op.Rect.Bottom())
		if op.Rect.X < r.X || op.Rect.Right() > r.Right() {
			t.Errorf("image %s outside frame: %+v", op.Name, op.Rect)
		}
	}
	if bottom != r.Bottom() {
		t.Errorf("drawn bottom = %v, measured bottom = %v", bottom, r.Bottom())
	}
}

func TestGalleryRenderBreaksBetweenRows(t *testing.T) {
	var rec recorder.Canvas
	pc := fieldreport.NewPageCursor(&rec)
	pc.Advance(400) // y = 436; one 240pt row fits, the next does not

	g := fieldreport.Gallery{Images: squares(4), RowHeight: 240, Gap: 8, RowSpacing: 8}
	if err := g.Render(pc); err != nil {
		t.Fatal(err)
	}

	var pages []int
	var ys []float64
	for _, op := range rec.Filter(recorder.Image) {
		pages = append(pages, op.Page)
		ys = append(ys, op.Rect.Y)
	}
	if diff := cmp.Diff([]int{1, 1, 2, 2}, pages); diff != "" {
		t.Errorf("image pages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{436, 436, 36, 36}, ys); diff != "" {
		t.Errorf("image y mismatch (-want +got):\n%s", diff)
	}
	if pc.Y() != 276 {
		t.Errorf("y = %v, want 276", pc.Y())
	}
}
