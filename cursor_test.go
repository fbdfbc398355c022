package fieldreport_test

import (
	"errors"
	"testing"

	"github.com/lvillar/fieldreport"
	"github.com/lvillar/fieldreport/internal/recorder"
)

func TestNewPageCursor(t *testing.T) {
	var rec recorder.Canvas
	pc := fieldreport.NewPageCursor(&rec)

	if pc.Page() != 1 || rec.Pages() != 1 {
		t.Fatalf("page = %d, canvas pages = %d, want 1", pc.Page(), rec.Pages())
	}
	if pc.Y() != 36 {
		t.Errorf("y = %v, want top margin 36", pc.Y())
	}
	if pc.ContentWidth() != 540 || pc.Left() != 36 {
		t.Errorf("content width = %v, left = %v", pc.ContentWidth(), pc.Left())
	}
	if pc.Spacing() != fieldreport.DefaultSpacing {
		t.Errorf("spacing = %v", pc.Spacing())
	}
}

func TestEnsureSpace(t *testing.T) {
	tests := []struct {
		name      string
		advance   float64
		need      float64
		wantBreak bool
		wantY     float64
	}{
		{"fits", 0, 100, false, 136},
		{"exactly fills page", 0, 720, false, 756},
		{"ends on bottom margin", 620, 100, false, 756},
		{"overflows", 621, 100, true, 136},
		{"zero height at bottom", 720, 0, false, 756},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec recorder.Canvas
			pc := fieldreport.NewPageCursor(&rec)
			pc.Advance(tt.advance)

			broke, err := pc.EnsureSpace(tt.need)
			if err != nil {
				t.Fatalf("EnsureSpace: %v", err)
			}
			if broke != tt.wantBreak {
				t.Errorf("break = %v, want %v", broke, tt.wantBreak)
			}
			if broke && pc.Y() != 36 {
				t.Errorf("y after break = %v, want 36", pc.Y())
			}
			pc.Advance(tt.need)
			if pc.Y() != tt.wantY {
				t.Errorf("y after block = %v, want %v", pc.Y(), tt.wantY)
			}
			if pc.Y() > pc.Geometry().Bottom()+1e-9 {
				t.Errorf("block ends at %v, below bottom margin", pc.Y())
			}
		})
	}
}

func TestEnsureSpaceBlockTooLarge(t *testing.T) {
	var rec recorder.Canvas
	pc := fieldreport.NewPageCursor(&rec)
	pc.Advance(300)

	_, err := pc.EnsureSpace(720.5)
	if !errors.Is(err, fieldreport.ErrBlockTooLarge) {
		t.Fatalf("err = %v, want ErrBlockTooLarge", err)
	}
	var le *fieldreport.LayoutError
	if !errors.As(err, &le) || le.Op != "EnsureSpace" {
		t.Errorf("err = %#v, want *LayoutError{Op: EnsureSpace}", err)
	}
	if rec.Pages() != 1 || pc.Y() != 336 {
		t.Errorf("cursor moved on failure: pages = %d, y = %v", rec.Pages(), pc.Y())
	}
}

func TestPageIndexMonotonic(t *testing.T) {
	var rec recorder.Canvas
	pc := fieldreport.NewPageCursor(&rec, fieldreport.WithSpacing(5))

	prev := pc.Page()
	heights := []float64{100, 250, 33, 400, 720, 12, 600, 150, 150, 150, 150}
	for _, h := range heights {
		if _, err := pc.EnsureSpace(h); err != nil {
			t.Fatal(err)
		}
		if pc.Page() < prev {
			t.Fatalf("page went from %d to %d", prev, pc.Page())
		}
		if pc.Y()+h > pc.Geometry().Bottom()+1e-9 {
			t.Fatalf("block of %v at y=%v crosses the bottom margin", h, pc.Y())
		}
		prev = pc.Page()
		pc.Advance(h)
		pc.Space()
	}
	if rec.Pages() != pc.Page() {
		t.Errorf("canvas pages = %d, cursor page = %d", rec.Pages(), pc.Page())
	}
}

func TestCursorOptions(t *testing.T) {
	var rec recorder.Canvas
	geo := fieldreport.PageGeometry{Width: 300, Height: 400, Margin: 20}
	pc := fieldreport.NewPageCursor(&rec, fieldreport.WithGeometry(geo), fieldreport.WithSpacing(4))

	if pc.ContentWidth() != 260 || pc.Y() != 20 || pc.Remaining() != 360 {
		t.Errorf("width = %v, y = %v, remaining = %v", pc.ContentWidth(), pc.Y(), pc.Remaining())
	}
	pc.Space()
	if pc.Y() != 24 {
		t.Errorf("y after Space = %v, want 24", pc.Y())
	}
	if _, err := pc.EnsureSpace(361); !errors.Is(err, fieldreport.ErrBlockTooLarge) {
		t.Errorf("err = %v, want ErrBlockTooLarge", err)
	}
}

func TestPlaceAll(t *testing.T) {
	var rec recorder.Canvas
	pc := fieldreport.NewPageCursor(&rec)
	font := fieldreport.Font{Family: "Helvetica", Size: 10}

	err := fieldreport.PlaceAll(pc,
		fieldreport.Text{Content: "first", Font: font},
		fieldreport.Text{}, // empty: no height, no spacing
		fieldreport.Text{Content: "second", Font: font, Align: fieldreport.AlignCenter},
	)
	if err != nil {
		t.Fatal(err)
	}

	texts := rec.Filter(recorder.Text)
	if len(texts) != 2 {
		t.Fatalf("got %d text ops, want 2", len(texts))
	}
	if texts[0].Rect.Y != 36 || texts[0].Align != fieldreport.AlignLeft {
		t.Errorf("first = %+v", texts[0])
	}
	// 36 + line height 12 + spacing 12
	if texts[1].Rect.Y != 60 || texts[1].Align != fieldreport.AlignCenter {
		t.Errorf("second = %+v", texts[1])
	}
	if pc.Y() != 84 {
		t.Errorf("y = %v, want 84", pc.Y())
	}
}

func TestPlaceMovesBlockToNextPage(t *testing.T) {
	var rec recorder.Canvas
	pc := fieldreport.NewPageCursor(&rec)
	pc.Advance(700)

	rule := fieldreport.Rule{Color: fieldreport.RuleColor, Width: 1, Pad: 20}
	if err := fieldreport.Place(pc, fieldreport.Measure(&rec, rule, pc.ContentWidth())); err != nil {
		t.Fatal(err)
	}
	lines := rec.Filter(recorder.Line)
	if len(lines) != 1 || lines[0].Page != 2 {
		t.Fatalf("lines = %+v, want one line on page 2", lines)
	}
	if lines[0].Rect.Y != 36+20.5 || lines[0].Rect.W != 540 || lines[0].Rect.H != 0 {
		t.Errorf("line = %+v", lines[0].Rect)
	}
}
