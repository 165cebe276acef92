package export

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/talentpipe/talentpipe/pkg/models"
)

// ReportMeta describes the header block of a PDF report.
type ReportMeta struct {
	Title       string
	Subtitle    string
	Filters     []string
	GeneratedAt time.Time
}

// WriteCandidatesPDF writes the candidate list as a tabular PDF report with
// a header block and page-number footers.
func WriteCandidatesPDF(path string, meta ReportMeta, views []*models.CandidateView) error {
	if len(views) == 0 {
		return ErrNothingToExport
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, meta.Title, "", 1, "L", false, 0, "")
	if meta.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, meta.Subtitle, "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, "Generated "+meta.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	for _, f := range meta.Filters {
		pdf.CellFormat(0, 5, "Filter: "+f, "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	widths := []float64{50, 55, 30, 30, 25}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(37, 99, 235)
	pdf.SetTextColor(255, 255, 255)
	for i, title := range []string{"Name", "Email", "Position", "Status", "Created"} {
		pdf.CellFormat(widths[i], 7, title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	pdf.SetFillColor(240, 244, 255)
	for _, v := range views {
		cells := []string{v.Name, v.Email, v.Position, string(v.Status), v.CreatedAt.Format("2006-01-02")}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	return pdf.OutputFileAndClose(path)
}

// WritePipelinePDF writes a pipeline snapshot as a stage-by-stage report.
func WritePipelinePDF(path string, meta ReportMeta, p *models.Pipeline) error {
	if p == nil || p.TotalApplications == 0 {
		return ErrNothingToExport
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, meta.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s, %d applications",
		meta.GeneratedAt.Format("2006-01-02 15:04"), p.TotalApplications), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	for _, stage := range p.Stages {
		col := p.Columns[stage.ID]
		count := 0
		if col != nil {
			count = len(col.Applications)
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, fmt.Sprintf("%s (%d)", stage.Name, count), "", 1, "L", false, 0, "")
		if count == 0 {
			continue
		}
		pdf.SetFont("Helvetica", "", 9)
		for _, a := range col.Applications {
			row := applicationRow(a, stage)
			pdf.CellFormat(0, 6, fmt.Sprintf("%s  -  %s  (%s)", row[0], row[1], row[3]), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	return pdf.OutputFileAndClose(path)
}
