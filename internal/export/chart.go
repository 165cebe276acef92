package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/jung-kurt/gofpdf"

	"github.com/talentpipe/talentpipe/pkg/models"
)

// chartElementID is the DOM node captured by the screenshot.
const chartElementID = "chart"

const chartCaptureTimeout = 30 * time.Second

var chartTmpl = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 0; background: #fff; }
  #chart { width: 900px; padding: 24px; }
  h1 { font-size: 20px; margin: 0 0 4px; color: #111827; }
  .meta { font-size: 12px; color: #6b7280; margin-bottom: 16px; }
  .row { display: flex; align-items: center; margin: 6px 0; }
  .label { width: 180px; font-size: 13px; color: #374151; }
  .bar { height: 18px; background: #2563eb; border-radius: 3px; }
  .count { margin-left: 8px; font-size: 13px; color: #111827; }
</style>
</head>
<body>
<div id="chart">
  <h1>{{.Title}}</h1>
  <div class="meta">Generated {{.Generated}}</div>
  {{range .Bars}}
  <div class="row">
    <div class="label">{{.Label}}</div>
    <div class="bar" style="width: {{.Width}}px"></div>
    <div class="count">{{.Count}}</div>
  </div>
  {{end}}
</div>
</body>
</html>`))

type chartBar struct {
	Label string
	Width int
	Count int
}

type chartData struct {
	Title     string
	Generated string
	Bars      []chartBar
}

// WriteStatusChartPNG renders the dashboard status distribution as a bar
// chart and captures it to a PNG using a headless browser.
func WriteStatusChartPNG(ctx context.Context, path string, m *models.DashboardMetrics) error {
	png, err := statusChartPNG(ctx, m)
	if err != nil {
		return err
	}
	return writeAtomic(path, png)
}

// WriteStatusChartPDF captures the same chart and embeds it in a one-page
// PDF report.
func WriteStatusChartPDF(ctx context.Context, path string, m *models.DashboardMetrics) error {
	png, err := statusChartPNG(ctx, m)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Candidates by Status", "", 1, "L", false, 0, "")
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(png))
	pdf.ImageOptions("chart", 10, 25, 270, 0, false, opts, 0, "")
	return pdf.OutputFileAndClose(path)
}

func statusChartPNG(ctx context.Context, m *models.DashboardMetrics) ([]byte, error) {
	if m == nil || len(m.StatusDistribution) == 0 {
		return nil, ErrNothingToExport
	}

	labels := make([]string, 0, len(m.StatusDistribution))
	for k := range m.StatusDistribution {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	max := 1
	for _, v := range m.StatusDistribution {
		if v > max {
			max = v
		}
	}
	bars := make([]chartBar, 0, len(labels))
	for _, label := range labels {
		count := m.StatusDistribution[label]
		bars = append(bars, chartBar{Label: label, Width: 1 + count*600/max, Count: count})
	}

	data := chartData{
		Title:     "Candidates by Status",
		Generated: m.LastUpdated.Format("2006-01-02 15:04"),
		Bars:      bars,
	}
	return captureChart(ctx, data)
}

// captureChart writes the chart page to a temp file, loads it headless, and
// screenshots the chart element.
func captureChart(ctx context.Context, data chartData) ([]byte, error) {
	dir, err := os.MkdirTemp("", "talentpipe-chart-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	page := filepath.Join(dir, "chart.html")
	f, err := os.Create(page)
	if err != nil {
		return nil, err
	}
	if err := chartTmpl.Execute(f, data); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, chartCaptureTimeout)
	defer cancel()
	browserCtx, cancelBrowser := chromedp.NewContext(ctx)
	defer cancelBrowser()

	var png []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+page),
		chromedp.WaitVisible("#"+chartElementID, chromedp.ByID),
		chromedp.Screenshot("#"+chartElementID, &png, chromedp.NodeVisible, chromedp.ByID),
	)
	if err != nil {
		return nil, fmt.Errorf("chart capture failed (element #%s): %w", chartElementID, err)
	}
	return png, nil
}
