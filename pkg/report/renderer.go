package report

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/flipped-1121/prometheus-notice/pkg/collector"
	"github.com/flipped-1121/prometheus-notice/pkg/config"
	"github.com/flipped-1121/prometheus-notice/pkg/logger/log"
)

// ReportRenderer renders one snapshot into a standalone HTML page.
type ReportRenderer struct {
	config *config.ReportConfig
}

func NewReportRenderer(cfg *config.ReportConfig) *ReportRenderer {
	return &ReportRenderer{config: cfg}
}

type percentCell struct {
	Text    string
	Warning bool
}

type diskRow struct {
	Instance   string
	Device     string
	MountPoint string
	Size       string
	Used       string
	Free       string
	Usage      percentCell
}

type cpuRow struct {
	Instance string
	CoreNum  int
	Usage    percentCell
}

type memRow struct {
	Instance string
	Total    string
	Used     string
	Usage    percentCell
}

// RenderHTML renders the report as HTML.
func (r *ReportRenderer) RenderHTML(ctx context.Context, data *collector.ReportData) ([]byte, error) {
	log.Info("ReportRenderer: rendering HTML report")

	t, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	threshold := r.getWarningThreshold()
	templateData := map[string]interface{}{
		"GeneratedAt": data.GeneratedAt.Format("2006-01-02 15:04:05"),
		"NodeCount":   len(data.Nodes),
		"Disks":       buildDiskRows(data.Disks, threshold),
		"Cpus":        buildCpuRows(data.Cpus, threshold),
		"Mems":        buildMemRows(data.Mems, threshold),
		"Nets":        data.Nets,
		"CompanyName": r.getCompanyName(),
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, templateData); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	log.Info("ReportRenderer: HTML rendering completed")
	return buf.Bytes(), nil
}

// formatPercent pins the two-decimal contract for usage cells. The warning
// flag is set on strict excess only; a cell at exactly the threshold stays
// unflagged.
func formatPercent(value, threshold float64) percentCell {
	return percentCell{
		Text:    fmt.Sprintf("%.2f %%", value),
		Warning: value > threshold,
	}
}

func buildDiskRows(records []collector.DiskUsage, threshold float64) []diskRow {
	rows := make([]diskRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, diskRow{
			Instance:   rec.Instance,
			Device:     rec.Device,
			MountPoint: rec.MountPoint,
			Size:       rec.Size,
			Used:       rec.Used,
			Free:       rec.Free,
			Usage:      formatPercent(rec.UsagePercent, threshold),
		})
	}
	return rows
}

func buildCpuRows(records []collector.CpuUsage, threshold float64) []cpuRow {
	rows := make([]cpuRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, cpuRow{
			Instance: rec.Instance,
			CoreNum:  rec.CoreNum,
			Usage:    formatPercent(rec.UsagePercent, threshold),
		})
	}
	return rows
}

func buildMemRows(records []collector.MemoryUsage, threshold float64) []memRow {
	rows := make([]memRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, memRow{
			Instance: rec.Instance,
			Total:    rec.Total,
			Used:     rec.Used,
			Usage:    formatPercent(rec.UsagePercent, threshold),
		})
	}
	return rows
}

func (r *ReportRenderer) getWarningThreshold() float64 {
	if r.config != nil {
		return r.config.GetWarningThreshold()
	}
	return config.DefaultWarningThreshold
}

func (r *ReportRenderer) getCompanyName() string {
	if r.config != nil && r.config.CompanyName != "" {
		return r.config.CompanyName
	}
	return "Prometheus Notice"
}
