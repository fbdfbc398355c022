package table

import (
	"fmt"

	"github.com/lvillar/fieldreport"
)

// Cell represents a single text cell in a table row.
type Cell struct {
	text    string
	colspan int
	style   *CellStyle
}

// Text returns the cell text.
func (c *Cell) Text() string { return c.text }

// SetColspan sets the number of columns this cell spans.
func (c *Cell) SetColspan(n int) *Cell {
	if n > 0 {
		c.colspan = n
	}
	return c
}

// SetStyle sets the style for this cell, overriding table and row defaults.
func (c *Cell) SetStyle(s CellStyle) *Cell {
	c.style = &s
	return c
}

// SetAlign sets the horizontal alignment for this cell.
func (c *Cell) SetAlign(align fieldreport.Align) *Cell {
	if c.style == nil {
		c.style = &CellStyle{}
	}
	c.style.Align = align
	return c
}

// SetFillColor sets the background color for this cell.
func (c *Cell) SetFillColor(r, g, b int) *Cell {
	if c.style == nil {
		c.style = &CellStyle{}
	}
	c.style.FillColor = &fieldreport.Color{R: r, G: g, B: b}
	return c
}

// Row represents a single row in a table.
type Row struct {
	cells []*Cell
	style *CellStyle
}

// AddCell adds a text cell to the row and returns the cell for chaining.
func (r *Row) AddCell(text string) *Cell {
	c := &Cell{text: text, colspan: 1}
	r.cells = append(r.cells, c)
	return c
}

// AddCellf adds a formatted text cell to the row.
func (r *Row) AddCellf(format string, args ...any) *Cell {
	return r.AddCell(fmt.Sprintf(format, args...))
}

// SetStyle sets the style for all cells in this row.
func (r *Row) SetStyle(s CellStyle) *Row {
	r.style = &s
	return r
}

// Cells returns the cells of the row.
func (r *Row) Cells() []*Cell { return r.cells }

// span returns the number of columns the row covers.
func (r *Row) span() int {
	n := 0
	for _, c := range r.cells {
		n += c.colspan
	}
	return n
}
