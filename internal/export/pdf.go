package export

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/theirongolddev/exptrack/internal/model"
	"github.com/theirongolddev/exptrack/internal/pipeline"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders records as a one-table report followed by a per-category
// breakdown and the grand total.
func WritePDF(w io.Writer, records []model.Expense, title string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	widths := []float64{20, 35, 70, 55}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range Header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	for _, e := range records {
		pdf.CellFormat(widths[0], 6, strconv.FormatInt(e.ID, 10), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, e.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, e.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, e.Date, "1", 0, "L", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(6)

	cats := pipeline.AggregateCategories(records)
	if len(cats) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "By Category")
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 11)
		for _, c := range cats {
			pdf.Cell(70, 7, c.Category)
			pdf.Cell(40, 7, c.Total.StringFixed(2))
			pdf.Cell(30, 7, fmt.Sprintf("%.1f%%", c.SharePercent))
			pdf.Ln(7)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s (%d records)", pipeline.Sum(records).StringFixed(2), len(records)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return err
	}
	return writeAll(w, buf.Bytes())
}
