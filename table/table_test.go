package table_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lvillar/fieldreport"
	"github.com/lvillar/fieldreport/internal/recorder"
	"github.com/lvillar/fieldreport/table"
)

var ratios = []float64{0.05, 0.35, 0.15, 0.15, 0.15, 0.15}

func newTable(rec *recorder.Canvas) (*fieldreport.PageCursor, *table.Table) {
	pc := fieldreport.NewPageCursor(rec)
	tbl := table.New(pc)
	tbl.SetColumnRatios(ratios...)
	tbl.SetHeader("#", "Task", "Plant", "Due", "Closed", "Fine")
	return pc, tbl
}

func addRows(tbl *table.Table, n int) {
	for i := 1; i <= n; i++ {
		tbl.AddRowCells(fmt.Sprint(i), "task", "P", "2024-01-01", "", "")
	}
}

// headerPages returns, per page, whether a header cell fill starts at the top
// margin.
func headerPages(rec *recorder.Canvas) []int {
	var pages []int
	for _, op := range rec.Filter(recorder.Fill) {
		if op.Rect.X == 36 && op.Rect.Y == 36 {
			pages = append(pages, op.Page)
		}
	}
	return pages
}

func TestRenderRepeatsHeaderOnEveryPage(t *testing.T) {
	var rec recorder.Canvas
	pc, tbl := newTable(&rec)
	addRows(tbl, 100)

	if err := tbl.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// 31 rows of 22pt fit under a 24pt header on each page.
	if rec.Pages() != 4 {
		t.Fatalf("pages = %d, want 4", rec.Pages())
	}
	if tbl.HeadersDrawn() != rec.Pages() {
		t.Errorf("headers drawn = %d, pages = %d", tbl.HeadersDrawn(), rec.Pages())
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, headerPages(&rec)); diff != "" {
		t.Errorf("header pages mismatch (-want +got):\n%s", diff)
	}
	if pc.Y() != 60+7*22 {
		t.Errorf("y = %v, want %v", pc.Y(), 60+7*22)
	}

	// every body row sits fully inside the content area
	for _, op := range rec.Filter(recorder.Text) {
		if op.Rect.Bottom() > 756 {
			t.Errorf("text %q ends at %v, below the bottom margin", op.Text, op.Rect.Bottom())
		}
	}
}

func TestRenderZeroRows(t *testing.T) {
	var rec recorder.Canvas
	pc, tbl := newTable(&rec)
	tbl.Footer().AddCell("Total: 0").SetColspan(6)

	h, err := tbl.Measure()
	if err != nil {
		t.Fatal(err)
	}
	if h != 24 {
		t.Errorf("Measure = %v, want header height 24", h)
	}
	if err := tbl.Render(); err != nil {
		t.Fatal(err)
	}
	if tbl.HeadersDrawn() != 1 {
		t.Errorf("headers drawn = %d, want 1", tbl.HeadersDrawn())
	}
	if n := len(rec.Filter(recorder.Line)); n != 0 {
		t.Errorf("drew %d lines, want none", n)
	}
	if n := len(rec.Filter(recorder.Text)); n != 6 {
		t.Errorf("drew %d texts, want the 6 header titles", n)
	}
	if pc.Y() != 60 {
		t.Errorf("y = %v, want 60", pc.Y())
	}
}

func TestRenderHeaderNotOrphaned(t *testing.T) {
	var rec recorder.Canvas
	pc, tbl := newTable(&rec)
	addRows(tbl, 2)
	pc.Advance(700) // y = 736: the header fits, header plus a row does not

	if err := tbl.Render(); err != nil {
		t.Fatal(err)
	}
	for _, op := range rec.Filter(recorder.Fill) {
		if op.Page != 2 {
			t.Fatalf("header fill on page %d, want 2", op.Page)
		}
	}
	if tbl.HeadersDrawn() != 1 {
		t.Errorf("headers drawn = %d, want 1", tbl.HeadersDrawn())
	}
}

func TestMeasureAndFooter(t *testing.T) {
	var rec recorder.Canvas
	pc, tbl := newTable(&rec)
	addRows(tbl, 3)
	tbl.Footer().AddCell("Total: 3").SetColspan(5)
	tbl.Footer().AddCell("")

	h, err := tbl.Measure()
	if err != nil {
		t.Fatal(err)
	}
	if h != 24+3*22+22 {
		t.Errorf("Measure = %v, want %v", h, 24+3*22+22)
	}

	start := pc.Y()
	if err := tbl.Render(); err != nil {
		t.Fatal(err)
	}
	if pc.Y()-start != h {
		t.Errorf("rendered height = %v, measured %v", pc.Y()-start, h)
	}

	lines := rec.Filter(recorder.Line)
	// a rule under each body row, then the closing rule
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	if closing := lines[3]; closing.Color != fieldreport.Black || closing.Rect.Y != 36+24+3*22 {
		t.Errorf("closing rule = %+v", closing)
	}
	texts := rec.Filter(recorder.Text)
	if last := texts[len(texts)-1]; last.Text != "Total: 3" || math.Abs(last.Rect.W-451) > 1e-9 {
		t.Errorf("footer cell = %+v", last)
	}
}

func TestRenderFooterStaysWithLastRow(t *testing.T) {
	var rec recorder.Canvas
	_, tbl := newTable(&rec)
	// 31 rows fill the first page exactly; the footer does not fit after them.
	addRows(tbl, 31)
	tbl.Footer().AddCell("Total: 31").SetColspan(6)

	if err := tbl.Render(); err != nil {
		t.Fatal(err)
	}
	if rec.Pages() != 2 || tbl.HeadersDrawn() != 2 {
		t.Fatalf("pages = %d, headers = %d, want 2 and 2", rec.Pages(), tbl.HeadersDrawn())
	}

	rowPage := map[string]int{}
	for _, op := range rec.Filter(recorder.Text) {
		rowPage[op.Text] = op.Page
	}
	if rowPage["30"] != 1 || rowPage["31"] != 2 {
		t.Errorf("row 30 on page %d, row 31 on page %d, want 1 and 2", rowPage["30"], rowPage["31"])
	}
	if rowPage["Total: 31"] != 2 {
		t.Errorf("footer on page %d, want 2 with the last row", rowPage["Total: 31"])
	}
}

func TestRowHeightGrowsWithText(t *testing.T) {
	var rec recorder.Canvas
	_, tbl := newTable(&rec)
	// the task column is 189pt: 40 characters per line at 9pt
	tbl.AddRowCells("1", strings.Repeat("abcd ", 24), "P", "", "", "")

	h, err := tbl.Measure()
	if err != nil {
		t.Fatal(err)
	}
	// 24 words of 4 characters, 8 per line: 3 lines of 10.8pt plus padding
	want := 24 + 3*10.8 + 8
	if math.Abs(h-want) > 1e-9 {
		t.Errorf("Measure = %v, want %v", h, want)
	}
}

func TestRenderRowTooLarge(t *testing.T) {
	var rec recorder.Canvas
	_, tbl := newTable(&rec)
	addRows(tbl, 1)
	tbl.AddRowCells("2", strings.Repeat("abcd ", 2000), "", "", "", "")

	err := tbl.Render()
	if !errors.Is(err, fieldreport.ErrBlockTooLarge) {
		t.Fatalf("err = %v, want ErrBlockTooLarge", err)
	}
	if n := len(rec.Ops); n != 1 {
		t.Errorf("recorded %d ops, want only the first page", n)
	}
}

func TestInvalidColumns(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*table.Table)
	}{
		{"no ratios", func(tb *table.Table) { tb.SetColumnRatios() }},
		{"sum below one", func(tb *table.Table) { tb.SetColumnRatios(0.5, 0.4) }},
		{"negative", func(tb *table.Table) { tb.SetColumnRatios(1.2, -0.2) }},
		{"header mismatch", func(tb *table.Table) { tb.SetColumnRatios(0.5, 0.5) }},
		{"row too wide", func(tb *table.Table) {
			tb.AddRow().AddCell("x").SetColspan(7)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec recorder.Canvas
			_, tbl := newTable(&rec)
			tt.setup(tbl)
			if _, err := tbl.ColumnWidths(); !errors.Is(err, table.ErrInvalidColumns) {
				t.Errorf("ColumnWidths err = %v, want ErrInvalidColumns", err)
			}
			if err := tbl.Render(); !errors.Is(err, table.ErrInvalidColumns) {
				t.Errorf("Render err = %v, want ErrInvalidColumns", err)
			}
		})
	}
}

func TestAlternateRowsAndCellStyle(t *testing.T) {
	var rec recorder.Canvas
	_, tbl := newTable(&rec)
	st := table.DefaultStyle()
	odd := fieldreport.Color{R: 245, G: 245, B: 245}
	st.AlternateRows = &table.AlternateStyle{Odd: table.CellStyle{FillColor: &odd}}
	tbl.SetStyle(st)
	addRows(tbl, 2)
	tbl.AddRowCells("3", "flagged", "", "", "", "").Cells()[1].SetFillColor(255, 0, 0).SetAlign(fieldreport.AlignRight)

	if err := tbl.Render(); err != nil {
		t.Fatal(err)
	}

	var fills []fieldreport.Color
	for _, op := range rec.Filter(recorder.Fill) {
		if op.Color != fieldreport.Shade {
			fills = append(fills, op.Color)
		}
	}
	want := append(make([]fieldreport.Color, 0, 7), odd, odd, odd, odd, odd, odd, fieldreport.Color{R: 255})
	if diff := cmp.Diff(want, fills); diff != "" {
		t.Errorf("body fills mismatch (-want +got):\n%s", diff)
	}

	for _, op := range rec.Filter(recorder.Text) {
		if op.Text == "flagged" && op.Align != fieldreport.AlignRight {
			t.Errorf("flagged cell align = %q", op.Align)
		}
	}

	widths, _ := tbl.ColumnWidths()
	if diff := cmp.Diff([]float64{27, 189, 81, 81, 81, 81}, widths, cmpApprox); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

var cmpApprox = cmp.Comparer(func(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
})
