package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/talentpipe/talentpipe/pkg/models"
)

const candidateSheet = "Candidates"

// WriteCandidatesExcel writes the candidate list as an .xlsx workbook with a
// styled header row, frozen so it stays visible while scrolling, and an
// autofilter over the data range.
func WriteCandidatesExcel(path string, views []*models.CandidateView) error {
	if len(views) == 0 {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", candidateSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2563EB"}},
	})
	if err != nil {
		return err
	}

	for col, title := range candidateHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(candidateSheet, cell, title); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(candidateHeader), 1)
	if err := f.SetCellStyle(candidateSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, v := range views {
		row := i + 2
		values := []any{v.Name, v.Email, v.Phone, v.Position, string(v.Status), v.CreatedAt.Format("2006-01-02")}
		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(candidateSheet, cell, val); err != nil {
				return err
			}
		}
	}

	if err := f.SetPanes(candidateSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	filterRange := fmt.Sprintf("A1:%s", lastHeader)
	if err := f.AutoFilter(candidateSheet, filterRange, nil); err != nil {
		return err
	}
	if err := f.SetColWidth(candidateSheet, "A", "F", 24); err != nil {
		return err
	}

	return f.SaveAs(path)
}
