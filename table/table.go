package table

import (
	"errors"
	"fmt"
	"math"

	"github.com/lvillar/fieldreport"
)

// ErrInvalidColumns is returned when the column ratios do not describe the
// table rows.
var ErrInvalidColumns = errors.New("table: invalid column definition")

// ratioTolerance bounds how far the ratio sum may drift from 1.
const ratioTolerance = 1e-6

// Table is a paginated table drawn through a PageCursor. Every page holding
// table rows begins with the header row.
type Table struct {
	pc           *fieldreport.PageCursor
	ratios       []float64
	header       *Row
	rows         []*Row
	footer       *Row
	style        Style
	headersDrawn int
}

// New creates a Table that draws at the cursor.
func New(pc *fieldreport.PageCursor) *Table {
	return &Table{
		pc:    pc,
		style: DefaultStyle(),
	}
}

// SetColumnRatios sets the share of the content width given to each column.
// Ratios must be positive and sum to 1.
func (t *Table) SetColumnRatios(ratios ...float64) *Table {
	t.ratios = append([]float64(nil), ratios...)
	return t
}

// SetHeader sets the header row titles and returns the row for styling.
func (t *Table) SetHeader(titles ...string) *Row {
	r := &Row{}
	for _, s := range titles {
		r.AddCell(s)
	}
	t.header = r
	return r
}

// SetStyle sets the table-wide style.
func (t *Table) SetStyle(s Style) *Table {
	t.style = s
	return t
}

// AddRow adds a new body row and returns it for chaining.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.rows = append(t.rows, r)
	return r
}

// AddRowCells adds a body row holding texts, one per column.
func (t *Table) AddRowCells(texts ...string) *Row {
	r := t.AddRow()
	for _, s := range texts {
		r.AddCell(s)
	}
	return r
}

// Footer returns the footer row drawn below a rule after the last body row,
// creating it on first use.
func (t *Table) Footer() *Row {
	if t.footer == nil {
		t.footer = &Row{}
	}
	return t.footer
}

// Rows returns the number of body rows.
func (t *Table) Rows() int { return len(t.rows) }

// HeadersDrawn returns how many header rows the last Render drew.
func (t *Table) HeadersDrawn() int { return t.headersDrawn }

// ColumnWidths returns the column widths for the cursor's content width.
func (t *Table) ColumnWidths() ([]float64, error) {
	if len(t.ratios) == 0 {
		return nil, fmt.Errorf("%w: no column ratios", ErrInvalidColumns)
	}
	sum := 0.0
	for i, r := range t.ratios {
		if r <= 0 {
			return nil, fmt.Errorf("%w: ratio %d is %g", ErrInvalidColumns, i, r)
		}
		sum += r
	}
	if math.Abs(sum-1) > ratioTolerance {
		return nil, fmt.Errorf("%w: ratios sum to %g", ErrInvalidColumns, sum)
	}
	if t.header == nil {
		return nil, fmt.Errorf("%w: no header row", ErrInvalidColumns)
	}
	if n := t.header.span(); n != len(t.ratios) {
		return nil, fmt.Errorf("%w: header spans %d columns, have %d", ErrInvalidColumns, n, len(t.ratios))
	}
	for i, r := range t.rows {
		if r.span() > len(t.ratios) {
			return nil, fmt.Errorf("%w: row %d spans %d columns, have %d", ErrInvalidColumns, i, r.span(), len(t.ratios))
		}
	}

	total := t.pc.ContentWidth()
	widths := make([]float64, len(t.ratios))
	for i, r := range t.ratios {
		widths[i] = r * total
	}
	return widths, nil
}

// Measure returns the height of the table when drawn on a single page:
// header, body rows and footer. A table without rows measures as its header.
func (t *Table) Measure() (float64, error) {
	widths, err := t.ColumnWidths()
	if err != nil {
		return 0, err
	}
	h := t.headerHeight(widths)
	for i, r := range t.rows {
		h += t.rowHeight(r, widths, i, false)
	}
	if len(t.rows) > 0 {
		h += t.footerHeight(widths)
	}
	return h, nil
}

// Render draws the table at the cursor.
func (t *Table) Render() error {
	t.headersDrawn = 0
	widths, err := t.ColumnWidths()
	if err != nil {
		return err
	}

	hh := t.headerHeight(widths)
	limit := t.pc.Geometry().ContentHeight()
	for i, r := range t.rows {
		if h := t.rowHeight(r, widths, i, false); hh+h > limit {
			return fieldreport.NewLayoutError("Table.Render",
				fmt.Errorf("%w: row %d with header needs %.2fpt", fieldreport.ErrBlockTooLarge, i, hh+h))
		}
	}

	// The header never sits alone at the bottom of a page.
	need := hh
	if len(t.rows) > 0 {
		need += t.rowHeight(t.rows[0], widths, 0, false)
	}
	if _, err := t.pc.EnsureSpace(need); err != nil {
		return err
	}
	t.drawHeader(widths, hh)

	fh := t.footerHeight(widths)
	last := len(t.rows) - 1
	for i, r := range t.rows {
		h := t.rowHeight(r, widths, i, false)
		need := h
		// The footer stays with the last row when both fit under a header.
		if i == last && hh+h+fh <= limit {
			need += fh
		}
		if err := t.ensureRow(need, widths, hh); err != nil {
			return err
		}
		t.drawRow(r, widths, h, i, false)
	}

	if len(t.rows) > 0 {
		// A footer that breaks on its own starts the page without a header.
		if _, err := t.pc.EnsureSpace(fh); err != nil {
			return err
		}
		t.drawFooter(widths, fh)
	}
	return nil
}

// ensureRow makes room for a row of height h, repeating the header when the
// row starts a new page.
func (t *Table) ensureRow(h float64, widths []float64, hh float64) error {
	broke, err := t.pc.EnsureSpace(h)
	if err != nil {
		return err
	}
	if broke {
		t.drawHeader(widths, hh)
	}
	return nil
}

func (t *Table) headerHeight(widths []float64) float64 {
	return t.rowHeight(t.header, widths, -1, true)
}

func (t *Table) footerHeight(widths []float64) float64 {
	if t.footer == nil || len(t.footer.cells) == 0 {
		return 0
	}
	return t.rowHeight(t.footer, widths, -1, false)
}

// rowHeight computes the height needed for a row: the style minimum or the
// tallest wrapped cell plus padding.
func (t *Table) rowHeight(r *Row, widths []float64, bodyIdx int, isHeader bool) float64 {
	maxH := t.style.BodyRowHeight
	if isHeader {
		maxH = t.style.HeaderHeight
	}
	pad := t.style.CellPadding
	m := t.pc.Canvas()
	col := 0
	for _, cell := range r.cells {
		cellW := spanWidth(widths, col, cell.colspan)
		col += cell.colspan
		style := t.resolveCellStyle(cell, r, bodyIdx, isHeader)
		h := m.MeasureText(cell.text, *style.Font, contentWidth(cellW, pad)) + pad.Top + pad.Bottom
		if h > maxH {
			maxH = h
		}
	}
	return maxH
}

func (t *Table) drawHeader(widths []float64, h float64) {
	t.drawCells(t.header, widths, h, -1, true)
	t.pc.Advance(h)
	t.headersDrawn++
}

func (t *Table) drawRow(r *Row, widths []float64, h float64, bodyIdx int, isHeader bool) {
	t.drawCells(r, widths, h, bodyIdx, isHeader)
	y := t.pc.Y() + h
	left := t.pc.Left()
	t.pc.Canvas().DrawLine(fieldreport.Point{X: left, Y: y}, fieldreport.Point{X: left + sum(widths), Y: y},
		t.style.RuleColor, t.style.RuleWidth)
	t.pc.Advance(h)
}

// drawFooter draws the closing rule and, when set, the footer cells below it.
func (t *Table) drawFooter(widths []float64, h float64) {
	left := t.pc.Left()
	y := t.pc.Y()
	t.pc.Canvas().DrawLine(fieldreport.Point{X: left, Y: y}, fieldreport.Point{X: left + sum(widths), Y: y},
		fieldreport.Black, t.style.RuleWidth*2)
	if h > 0 {
		t.drawCells(t.footer, widths, h, -1, false)
		t.pc.Advance(h)
	}
}

// drawCells draws the background and text of every cell of r at the cursor.
func (t *Table) drawCells(r *Row, widths []float64, h float64, bodyIdx int, isHeader bool) {
	c := t.pc.Canvas()
	pad := t.style.CellPadding
	x := t.pc.Left()
	y := t.pc.Y()
	col := 0
	for _, cell := range r.cells {
		cellW := spanWidth(widths, col, cell.colspan)
		col += cell.colspan
		style := t.resolveCellStyle(cell, r, bodyIdx, isHeader)

		if style.FillColor != nil {
			c.FillRect(fieldreport.Rect{X: x, Y: y, W: cellW, H: h}, *style.FillColor)
		}
		if cell.text != "" {
			tw := contentWidth(cellW, pad)
			th := c.MeasureText(cell.text, *style.Font, tw)
			ty := y + pad.Top + math.Max(0, (h-pad.Top-pad.Bottom-th)/2)
			align := style.Align
			if align == "" {
				align = fieldreport.AlignLeft
			}
			color := fieldreport.Black
			if style.TextColor != nil {
				color = *style.TextColor
			}
			c.DrawText(cell.text, *style.Font, fieldreport.Rect{X: x + pad.Left, Y: ty, W: tw, H: th}, align, color)
		}
		x += cellW
	}
}

// resolveCellStyle determines the effective style for a cell by merging
// table, header, alternate row, row, and cell-level styles.
func (t *Table) resolveCellStyle(cell *Cell, row *Row, bodyIdx int, isHeader bool) CellStyle {
	font := t.style.CellFont
	result := CellStyle{Font: &font}

	if isHeader {
		mergeStyle(&result, &t.style.HeaderStyle)
	}

	if !isHeader && t.style.AlternateRows != nil && bodyIdx >= 0 {
		if bodyIdx%2 == 0 {
			mergeStyle(&result, &t.style.AlternateRows.Even)
		} else {
			mergeStyle(&result, &t.style.AlternateRows.Odd)
		}
	}

	if row.style != nil {
		mergeStyle(&result, row.style)
	}

	if cell.style != nil {
		mergeStyle(&result, cell.style)
	}

	return result
}

func spanWidth(widths []float64, col, span int) float64 {
	w := 0.0
	for j := 0; j < span && col+j < len(widths); j++ {
		w += widths[col+j]
	}
	return w
}

func contentWidth(cellW float64, pad Padding) float64 {
	return math.Max(1, cellW-pad.Left-pad.Right)
}

func sum(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}
	return s
}
