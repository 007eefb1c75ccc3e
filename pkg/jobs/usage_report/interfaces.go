package usage_report

import (
	"context"

	"github.com/flipped-1121/prometheus-notice/pkg/collector"
	"github.com/flipped-1121/prometheus-notice/pkg/notification/channel"
)

// CollectorInterface defines the interface for metrics collection
type CollectorInterface interface {
	Collect(ctx context.Context) (*collector.ReportData, error)
}

// RendererInterface defines the interface for report rendering
type RendererInterface interface {
	RenderHTML(ctx context.Context, data *collector.ReportData) ([]byte, error)
	RenderCSV(data *collector.ReportData) ([]byte, error)
}

// BackendPinger checks that the metrics backend is reachable
type BackendPinger interface {
	Ping(ctx context.Context) error
}

// Dependencies holds all dependencies for UsageReportJob
type Dependencies struct {
	Pinger    BackendPinger
	Collector CollectorInterface
	Renderer  RendererInterface
	Channel   channel.Channel
}
