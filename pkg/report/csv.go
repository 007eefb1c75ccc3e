package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/flipped-1121/prometheus-notice/pkg/collector"
)

// RenderCSV renders the snapshot as a flat CSV document for the optional
// mail attachment. Rows keep backend order; the family column separates the
// four tables.
func (r *ReportRenderer) RenderCSV(data *collector.ReportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"family", "instance", "device", "mount_point", "size", "total", "used", "free", "usage_percent", "core_num", "download", "upload"},
	}
	for _, d := range data.Disks {
		records = append(records, []string{
			"disk", d.Instance, d.Device, d.MountPoint, d.Size, "", d.Used, d.Free,
			fmt.Sprintf("%.2f", d.UsagePercent), "", "", "",
		})
	}
	for _, c := range data.Cpus {
		records = append(records, []string{
			"cpu", c.Instance, "", "", "", "", "", "",
			fmt.Sprintf("%.2f", c.UsagePercent), strconv.Itoa(c.CoreNum), "", "",
		})
	}
	for _, m := range data.Mems {
		records = append(records, []string{
			"memory", m.Instance, "", "", "", m.Total, m.Used, "",
			fmt.Sprintf("%.2f", m.UsagePercent), "", "", "",
		})
	}
	for _, n := range data.Nets {
		records = append(records, []string{
			"network", n.Instance, "", "", "", "", "", "", "", "", n.Download, n.Upload,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}
