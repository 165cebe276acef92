package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/talentpipe/talentpipe/pkg/models"
)

var jobHeader = []string{"Title", "Company", "Location", "Type", "Level", "Status", "Salary Min", "Salary Max", "Deadline"}

func jobRow(j *models.JobView) []string {
	salaryMin, salaryMax := "", ""
	if j.SalaryMin != nil {
		salaryMin = strconv.FormatFloat(*j.SalaryMin, 'f', 0, 64)
	}
	if j.SalaryMax != nil {
		salaryMax = strconv.FormatFloat(*j.SalaryMax, 'f', 0, 64)
	}
	deadline := ""
	if j.Deadline != nil {
		deadline = j.Deadline.Format("2006-01-02")
	}
	return []string{
		j.Title, j.Company, j.Location,
		string(j.EmploymentType), string(j.ExperienceLevel), string(j.Status),
		salaryMin, salaryMax, deadline,
	}
}

// WriteJobsCSV writes the job list as UTF-8 CSV with a BOM and a header row.
func WriteJobsCSV(path string, views []*models.JobView) error {
	if len(views) == 0 {
		return ErrNothingToExport
	}
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(jobHeader); err != nil {
		return err
	}
	for _, j := range views {
		if err := w.Write(jobRow(j)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}

const jobSheet = "Jobs"

// WriteJobsExcel writes the job list as an .xlsx workbook, styled like the
// candidate export.
func WriteJobsExcel(path string, views []*models.JobView) error {
	if len(views) == 0 {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", jobSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2563EB"}},
	})
	if err != nil {
		return err
	}

	for col, title := range jobHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(jobSheet, cell, title); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(jobHeader), 1)
	if err := f.SetCellStyle(jobSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, j := range views {
		for col, val := range jobRow(j) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(jobSheet, cell, val); err != nil {
				return err
			}
		}
	}

	if err := f.SetPanes(jobSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	if err := f.AutoFilter(jobSheet, fmt.Sprintf("A1:%s", lastHeader), nil); err != nil {
		return err
	}
	if err := f.SetColWidth(jobSheet, "A", "I", 20); err != nil {
		return err
	}

	return f.SaveAs(path)
}
