package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/talentpipe/talentpipe/pkg/models"
)

func sampleCandidates() []*models.CandidateView {
	created := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	return []*models.CandidateView{
		{Name: "José Álvares", Email: "jose@example.com", Phone: "11 98888-7777", Position: "Developer", Status: models.CandidatePending, CreatedAt: created},
		{Name: "Grace Hopper", Email: "grace@example.com", Phone: "11 97777-6666", Position: "Manager", Status: models.CandidateApproved, CreatedAt: created},
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Relatório de Candidatos", "relatorio_de_candidatos"},
		{"Q3 / 2025 * report?", "q3_2025_report"},
		{"  ", "export"},
		{"___", "export"},
		{"Désenvolvedor Sênior", "desenvolvedor_senior"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilenameHasTimestamp(t *testing.T) {
	now := time.Date(2025, 4, 10, 14, 30, 0, 0, time.UTC)
	got := Filename("Candidate Report", "csv", now)
	want := "candidate_report_2025-04-10_14-30.csv"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}

func TestWriteCandidatesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCandidatesCSV(path, sampleCandidates()); err != nil {
		t.Fatalf("WriteCandidatesCSV: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(raw, utf8BOM) {
		t.Error("output missing UTF-8 BOM")
	}
	lines := strings.Split(strings.TrimSpace(string(bytes.TrimPrefix(raw, utf8BOM))), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Name,Email,Phone") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "José Álvares") {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestWriteCandidatesCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteCandidatesCSV(path, nil)
	if !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("err = %v, want ErrNothingToExport", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("file was created for an empty export")
	}
}

func TestWriteApplicationsCSVWalksStageOrder(t *testing.T) {
	stages := []*models.RecruitmentStage{
		{ID: 1, Name: "Application Received", OrderPosition: 1},
		{ID: 2, Name: "Resume Screening", OrderPosition: 2},
	}
	p := &models.Pipeline{
		Stages: stages,
		Columns: map[int]*models.PipelineColumn{
			1: {Stage: stages[0], Applications: []*models.Application{
				{ID: 1, CandidateID: 10, JobID: 20, Status: models.AppStatusApplied,
					Candidate: &models.Candidate{FirstName: "Ada", LastName: "Lovelace"},
					Job:       &models.Job{Title: "Platform Engineer"}},
			}},
			2: {Stage: stages[1], Applications: []*models.Application{
				{ID: 2, CandidateID: 11, JobID: 20, Status: models.AppStatusInProgress},
			}},
		},
		TotalApplications: 2,
	}
	path := filepath.Join(t.TempDir(), "pipeline.csv")
	if err := WriteApplicationsCSV(path, p); err != nil {
		t.Fatalf("WriteApplicationsCSV: %v", err)
	}
	raw, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSpace(string(bytes.TrimPrefix(raw, utf8BOM))), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "Ada Lovelace") || !strings.Contains(lines[1], "Platform Engineer") {
		t.Errorf("row 1 = %q", lines[1])
	}
	// The enriched record renders names; the bare one falls back to IDs.
	if !strings.Contains(lines[2], "11") {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWriteCandidatesExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteCandidatesExcel(path, sampleCandidates()); err != nil {
		t.Fatalf("WriteCandidatesExcel: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(candidateSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Name" || rows[1][0] != "José Álvares" {
		t.Errorf("rows = %v", rows[:2])
	}
}

func TestWriteCandidatesExcelEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteCandidatesExcel(path, nil); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("err = %v", err)
	}
}

func TestWriteCandidatesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	meta := ReportMeta{
		Title:       "Candidate Report",
		Subtitle:    "All statuses",
		Filters:     []string{"status: any"},
		GeneratedAt: time.Date(2025, 4, 10, 14, 30, 0, 0, time.UTC),
	}
	if err := WriteCandidatesPDF(path, meta, sampleCandidates()); err != nil {
		t.Fatalf("WriteCandidatesPDF: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestWriteCandidatesPDFEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := WriteCandidatesPDF(path, ReportMeta{}, nil); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("err = %v", err)
	}
}

func TestWriteJobsCSV(t *testing.T) {
	min, max := 8000.0, 12000.0
	deadline := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	views := []*models.JobView{
		{Title: "Platform Engineer", Company: "Acme", Location: "Remote",
			EmploymentType: models.FullTime, ExperienceLevel: models.SeniorLevel,
			Status: models.JobActive, SalaryMin: &min, SalaryMax: &max, Deadline: &deadline},
		{Title: "UX Designer", Company: "Initech", Location: "São Paulo",
			EmploymentType: models.Contract, ExperienceLevel: models.MidLevel,
			Status: models.JobDraft},
	}
	path := filepath.Join(t.TempDir(), "jobs.csv")
	if err := WriteJobsCSV(path, views); err != nil {
		t.Fatalf("WriteJobsCSV: %v", err)
	}
	raw, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSpace(string(bytes.TrimPrefix(raw, utf8BOM))), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "8000") || !strings.Contains(lines[1], "2025-12-01") {
		t.Errorf("row 1 = %q", lines[1])
	}
	// Optional fields render empty, not zero.
	if strings.Contains(lines[2], ",0,") {
		t.Errorf("row 2 = %q", lines[2])
	}

	if err := WriteJobsCSV(filepath.Join(t.TempDir(), "none.csv"), nil); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("empty err = %v", err)
	}
}

func TestWriteJobsExcel(t *testing.T) {
	views := []*models.JobView{{Title: "Platform Engineer", Company: "Acme", Location: "Remote",
		EmploymentType: models.FullTime, ExperienceLevel: models.MidLevel, Status: models.JobActive}}
	path := filepath.Join(t.TempDir(), "jobs.xlsx")
	if err := WriteJobsExcel(path, views); err != nil {
		t.Fatalf("WriteJobsExcel: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(jobSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "Platform Engineer" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestChartEmptyDistribution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	err := WriteStatusChartPNG(context.Background(), path, &models.DashboardMetrics{})
	if !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("err = %v", err)
	}
}
