package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	"github.com/talentpipe/talentpipe/pkg/models"
)

// ErrNothingToExport is returned when the filtered data set is empty. No
// file is created in that case.
var ErrNothingToExport = errors.New("nothing to export")

// utf8BOM makes spreadsheet tools detect the encoding of accented names.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var candidateHeader = []string{"Name", "Email", "Phone", "Position", "Status", "Created At"}

// WriteCandidatesCSV writes the candidate list as UTF-8 CSV with a BOM and a
// header row. An empty list is an error and produces no file.
func WriteCandidatesCSV(path string, views []*models.CandidateView) error {
	if len(views) == 0 {
		return ErrNothingToExport
	}
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(candidateHeader); err != nil {
		return err
	}
	for _, v := range views {
		row := []string{
			v.Name,
			v.Email,
			v.Phone,
			v.Position,
			string(v.Status),
			v.CreatedAt.Format("2006-01-02"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}

var applicationHeader = []string{"Candidate", "Job", "Stage", "Status", "Applied At"}

// WriteApplicationsCSV writes a pipeline snapshot as CSV, one row per
// application, walking the stages in board order.
func WriteApplicationsCSV(path string, p *models.Pipeline) error {
	if p == nil || p.TotalApplications == 0 {
		return ErrNothingToExport
	}
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(applicationHeader); err != nil {
		return err
	}
	for _, stage := range p.Stages {
		col := p.Columns[stage.ID]
		if col == nil {
			continue
		}
		for _, a := range col.Applications {
			if err := w.Write(applicationRow(a, stage)); err != nil {
				return err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}

func applicationRow(a *models.Application, stage *models.RecruitmentStage) []string {
	candidate := strconv.Itoa(a.CandidateID)
	if a.Candidate != nil {
		candidate = a.Candidate.FirstName + " " + a.Candidate.LastName
	}
	job := strconv.Itoa(a.JobID)
	if a.Job != nil {
		job = a.Job.Title
	}
	applied := ""
	if !a.AppliedAt.IsZero() {
		applied = a.AppliedAt.Format(time.DateOnly)
	}
	return []string{candidate, job, stage.Name, a.Status, applied}
}
