package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flipped-1121/prometheus-notice/pkg/collector"
	"github.com/flipped-1121/prometheus-notice/pkg/config"
)

func renderToString(t *testing.T, r *ReportRenderer, data *collector.ReportData) string {
	t.Helper()
	out, err := r.RenderHTML(context.Background(), data)
	require.NoError(t, err)
	return string(out)
}

func snapshot() *collector.ReportData {
	return &collector.ReportData{
		Nodes: []string{"node1:9100"},
		Disks: []collector.DiskUsage{
			{Instance: "node1:9100", Device: "sda1", MountPoint: "/", Size: "100.00 GB", Used: "90.00 GB", Free: "10.00 GB", UsagePercent: 90.0},
		},
		Cpus: []collector.CpuUsage{
			{Instance: "node1:9100", CoreNum: 16, UsagePercent: 42.123},
		},
		Mems: []collector.MemoryUsage{
			{Instance: "node1:9100", Total: "32.00 GB", Used: "16.00 GB", UsagePercent: 50.0},
		},
		Nets: []collector.NetworkThroughput{
			{Instance: "node1:9100", Download: "125.00 Mbps", Upload: "2.00 Mbps"},
		},
		GeneratedAt: time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC),
	}
}

func TestRenderHTML(t *testing.T) {
	r := NewReportRenderer(nil)

	t.Run("contains all four sections and the timestamp", func(t *testing.T) {
		html := renderToString(t, r, snapshot())
		assert.Contains(t, html, "<h2>Disk Usage</h2>")
		assert.Contains(t, html, "<h2>CPU Usage</h2>")
		assert.Contains(t, html, "<h2>Memory Usage</h2>")
		assert.Contains(t, html, "<h2>Network Throughput</h2>")
		assert.Contains(t, html, "2026-08-30 08:00:00")
	})

	t.Run("percentages carry exactly two decimals", func(t *testing.T) {
		html := renderToString(t, r, snapshot())
		assert.Contains(t, html, "90.00 %")
		assert.Contains(t, html, "42.12 %")
		assert.Contains(t, html, "50.00 %")
	})

	t.Run("empty families render header-only tables", func(t *testing.T) {
		html := renderToString(t, r, &collector.ReportData{GeneratedAt: time.Now()})
		// one header row per table, zero body rows
		assert.Equal(t, 4, strings.Count(html, "<tr>"))
	})

	t.Run("rows appear in input order", func(t *testing.T) {
		data := snapshot()
		data.Disks = append(data.Disks, collector.DiskUsage{
			Instance: "node2:9100", Device: "sdb1", MountPoint: "/data",
			Size: "1.00 TB", Used: "0.50 TB", Free: "0.50 TB", UsagePercent: 50.0,
		})
		html := renderToString(t, r, data)
		assert.Less(t, strings.Index(html, "sda1"), strings.Index(html, "sdb1"))
	})
}

func TestRenderHTMLWarnings(t *testing.T) {
	r := NewReportRenderer(nil)

	render := func(t *testing.T, usage float64) string {
		data := &collector.ReportData{
			Cpus:        []collector.CpuUsage{{Instance: "node1:9100", CoreNum: 4, UsagePercent: usage}},
			GeneratedAt: time.Now(),
		}
		return renderToString(t, r, data)
	}

	t.Run("above the threshold gets the warning class", func(t *testing.T) {
		assert.Contains(t, render(t, 85.01), `class="warning"`)
		assert.Contains(t, render(t, 99.99), `class="warning"`)
	})

	t.Run("at or below the threshold stays unflagged", func(t *testing.T) {
		assert.NotContains(t, render(t, 85.0), `class="warning"`)
		assert.NotContains(t, render(t, 12.34), `class="warning"`)
	})

	t.Run("network rows never warn", func(t *testing.T) {
		data := &collector.ReportData{
			Nets:        []collector.NetworkThroughput{{Instance: "node1:9100", Download: "99.00 Gbps", Upload: "99.00 Gbps"}},
			GeneratedAt: time.Now(),
		}
		assert.NotContains(t, renderToString(t, r, data), `class="warning"`)
	})

	t.Run("configured threshold overrides the default", func(t *testing.T) {
		threshold := 50.0
		custom := NewReportRenderer(&config.ReportConfig{WarningThreshold: &threshold})
		data := &collector.ReportData{
			Cpus:        []collector.CpuUsage{{Instance: "node1:9100", CoreNum: 4, UsagePercent: 60.0}},
			GeneratedAt: time.Now(),
		}
		assert.Contains(t, renderToString(t, custom, data), `class="warning"`)
	})
}

func TestRenderCSV(t *testing.T) {
	r := NewReportRenderer(nil)
	out, err := r.RenderCSV(snapshot())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 5) // header + one row per family
	assert.True(t, strings.HasPrefix(lines[0], "family,instance"))
	assert.True(t, strings.HasPrefix(lines[1], "disk,node1:9100,sda1"))
	assert.Contains(t, lines[2], "cpu,node1:9100")
	assert.Contains(t, lines[2], "42.12")
	assert.True(t, strings.HasPrefix(lines[3], "memory,"))
	assert.True(t, strings.HasPrefix(lines[4], "network,"))
}
