// Package table provides a paginated table layout for fieldreport documents.
//
// Columns are proportional ratios of the content width that stay constant for
// the whole table, so the header row can be redrawn identically at the top of
// every page the table spans. Rows are atomic: a row that does not fit moves
// to the next page together with a fresh header.
package table

import "github.com/lvillar/fieldreport"

// Padding defines spacing inside a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// CellStyle defines the visual appearance of a cell. Nil fields inherit.
type CellStyle struct {
	FillColor *fieldreport.Color
	TextColor *fieldreport.Color
	Font      *fieldreport.Font
	Align     fieldreport.Align
}

// AlternateStyle defines alternating body row styles.
type AlternateStyle struct {
	Even CellStyle
	Odd  CellStyle
}

// Style defines the overall appearance and metrics of a table.
type Style struct {
	CellFont      fieldreport.Font
	CellPadding   Padding
	HeaderHeight  float64 // minimum header row height
	BodyRowHeight float64 // minimum body row height
	HeaderStyle   CellStyle
	AlternateRows *AlternateStyle
	RuleColor     fieldreport.Color
	RuleWidth     float64
}

// DefaultStyle returns the style used when none is set: a shaded header with
// bold titles and thin rules under every row.
func DefaultStyle() Style {
	shade := fieldreport.Shade
	bold := fieldreport.Font{Family: "Helvetica", Style: "B", Size: 9}
	return Style{
		CellFont:      fieldreport.Font{Family: "Helvetica", Size: 9},
		CellPadding:   Padding{Top: 4, Right: 4, Bottom: 4, Left: 4},
		HeaderHeight:  24,
		BodyRowHeight: 22,
		HeaderStyle: CellStyle{
			FillColor: &shade,
			Font:      &bold,
		},
		RuleColor: fieldreport.RuleColor,
		RuleWidth: 0.5,
	}
}

// mergeStyle copies non-nil fields from src to dst.
func mergeStyle(dst, src *CellStyle) {
	if src.FillColor != nil {
		dst.FillColor = src.FillColor
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.Font != nil {
		dst.Font = src.Font
	}
	if src.Align != "" {
		dst.Align = src.Align
	}
}
