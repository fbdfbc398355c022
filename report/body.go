package report

import (
	"fmt"
	"time"

	"github.com/lvillar/fieldreport"
	"github.com/lvillar/fieldreport/table"
)

// FineColumnRatios are the fines table column shares: index, task, plant, due,
// closed, fine.
var FineColumnRatios = []float64{0.05, 0.35, 0.15, 0.15, 0.15, 0.15}

// FineColumns are the fines table header titles.
var FineColumns = []string{"#", "Task", "Plant", "Due", "Closed", "Fine"}

// checklist lays out every task as a card, two per row.
func (cp *Composer) checklist(pc *fieldreport.PageCursor, req Request) error {
	cards := make([]fieldreport.Card, len(req.Tasks))
	for i, t := range req.Tasks {
		cards[i] = fieldreport.TaskCard{
			Task:       t,
			Images:     req.imagesFor(t),
			Font:       cp.cfg.font,
			DateLayout: cp.cfg.dateLayout,
		}
	}
	grid := fieldreport.CardGrid{Spacing: cp.cfg.spacing}
	return grid.Render(pc, cards)
}

// fines draws the fines table. The fine amount column is left blank: its
// calculation is not defined by the task data.
func (cp *Composer) fines(pc *fieldreport.PageCursor, req Request) error {
	tbl := table.New(pc).SetColumnRatios(FineColumnRatios...)
	style := table.DefaultStyle()
	style.CellFont = smaller(cp.cfg.font, 1)
	bold := style.CellFont.Bold()
	style.HeaderStyle.Font = &bold
	tbl.SetStyle(style)

	header := tbl.SetHeader(FineColumns...)
	header.Cells()[0].SetAlign(fieldreport.AlignCenter)

	for i, t := range req.Tasks {
		row := tbl.AddRow()
		row.AddCellf("%d", i+1).SetAlign(fieldreport.AlignCenter)
		row.AddCell(t.Title)
		row.AddCell(t.Plant)
		row.AddCell(cp.formatDate(&t.Due))
		row.AddCell(cp.formatDate(t.Closed))
		row.AddCell("")
	}
	footer := tbl.Footer()
	footer.AddCell(fmt.Sprintf("Total: %d", len(req.Tasks))).SetColspan(5)
	footer.AddCell("")

	if err := tbl.Render(); err != nil {
		return err
	}
	pc.Space()
	if len(req.Tasks) == 0 {
		note := fieldreport.Text{Content: "No tasks to report.", Font: cp.cfg.font, Color: fieldreport.Secondary}
		return fieldreport.PlaceAll(pc, note)
	}
	return nil
}

func (cp *Composer) formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(cp.cfg.dateLayout)
}

// reminder lays out one task full width: title, gallery, description, details
// and the optional signature template.
func (cp *Composer) reminder(pc *fieldreport.PageCursor, req Request) error {
	t := req.Tasks[0]
	title := fieldreport.Text{Content: t.Title, Font: cp.titleFont(6), Color: fieldreport.Black}
	if err := fieldreport.PlaceAll(pc, title); err != nil {
		return err
	}

	gallery := fieldreport.Gallery{
		Images:     req.imagesFor(t),
		RowHeight:  cp.cfg.galleryRowHeight,
		Gap:        fieldreport.DefaultGalleryGap,
		RowSpacing: fieldreport.DefaultGalleryGap,
	}
	if len(gallery.Rows(pc.ContentWidth())) > 0 {
		if err := gallery.Render(pc); err != nil {
			return err
		}
		pc.Space()
	}

	para := fieldreport.Text{Content: t.Description, Font: cp.cfg.font, Color: fieldreport.Black, Align: fieldreport.AlignJustify}
	if err := fieldreport.PlaceAll(pc, para); err != nil {
		return err
	}
	// The details block carries its own trailing spacing.
	if err := fieldreport.Place(pc, fieldreport.Measure(pc.Canvas(), cp.details(t), pc.ContentWidth())); err != nil {
		return err
	}

	if req.Signature {
		sig := signatureBlock{
			parties: signatureParties(req.SignatureParties),
			font:    cp.cfg.font,
			gap:     cp.cfg.spacing,
		}
		return fieldreport.PlaceAll(pc, sig)
	}
	return nil
}
