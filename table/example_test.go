package table_test

import (
	"fmt"

	"github.com/lvillar/fieldreport"
	"github.com/lvillar/fieldreport/internal/recorder"
	"github.com/lvillar/fieldreport/table"
)

func ExampleTable() {
	var canvas recorder.Canvas
	pc := fieldreport.NewPageCursor(&canvas)

	tbl := table.New(pc)
	tbl.SetColumnRatios(0.1, 0.6, 0.3)
	tbl.SetHeader("#", "Task", "Due").SetStyle(table.CellStyle{Align: fieldreport.AlignCenter})
	for i := 1; i <= 40; i++ {
		tbl.AddRowCells(fmt.Sprint(i), "Inspect extinguisher", "2024-04-01")
	}
	tbl.Footer().AddCell("40 tasks").SetColspan(3)

	if err := tbl.Render(); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("pages: %d, headers: %d\n", canvas.Pages(), tbl.HeadersDrawn())
	// Output: pages: 2, headers: 2
}
