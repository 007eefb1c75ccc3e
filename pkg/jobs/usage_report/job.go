package usage_report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flipped-1121/prometheus-notice/pkg/clientsets"
	"github.com/flipped-1121/prometheus-notice/pkg/collector"
	"github.com/flipped-1121/prometheus-notice/pkg/config"
	"github.com/flipped-1121/prometheus-notice/pkg/helper/prom"
	"github.com/flipped-1121/prometheus-notice/pkg/jobs/common"
	"github.com/flipped-1121/prometheus-notice/pkg/logger/log"
	"github.com/flipped-1121/prometheus-notice/pkg/notification/channel"
	"github.com/flipped-1121/prometheus-notice/pkg/notification/model"
	"github.com/flipped-1121/prometheus-notice/pkg/report"
)

// Stage is one step of the pipeline. The sequence is strictly linear; a run
// either reaches StageDone or stops at the stage where it failed.
type Stage string

const (
	StageInit        Stage = "init"
	StageFetching    Stage = "fetching"
	StageNormalizing Stage = "normalizing"
	StageRendering   Stage = "rendering"
	StageSending     Stage = "sending"
	StageDone        Stage = "done"
)

// UsageReportJob runs the full pipeline: fetch all four metric families,
// render the HTML report and mail it to the configured recipients. Any
// stage error aborts the run; no partial report is ever sent.
type UsageReportJob struct {
	config *config.Config
	deps   *Dependencies

	lastStage Stage
}

type promPinger struct {
	clientSets *clientsets.StorageClientSet
}

func (p *promPinger) Ping(ctx context.Context) error {
	return prom.Ping(ctx, p.clientSets)
}

// NewUsageReportJob creates the job with its default wiring.
func NewUsageReportJob(cfg *config.Config, clientSets *clientsets.StorageClientSet) (*UsageReportJob, error) {
	ch, err := newEmailChannel(cfg.Email)
	if err != nil {
		return nil, err
	}
	deps := &Dependencies{
		Pinger:    &promPinger{clientSets: clientSets},
		Collector: collector.NewCollector(clientSets),
		Renderer:  report.NewReportRenderer(&cfg.Report),
		Channel:   ch,
	}
	return NewUsageReportJobWithDeps(cfg, deps), nil
}

// NewUsageReportJobWithDeps creates the job with explicit dependencies.
func NewUsageReportJobWithDeps(cfg *config.Config, deps *Dependencies) *UsageReportJob {
	return &UsageReportJob{
		config:    cfg,
		deps:      deps,
		lastStage: StageInit,
	}
}

// newEmailChannel adapts the top-level email settings into the notification
// channel configuration.
func newEmailChannel(cfg config.EmailConfig) (channel.Channel, error) {
	ch := &channel.EmailChannel{}
	err := ch.Init(channel.Config{
		Email: &channel.EmailConfig{
			SMTPHost: cfg.SMTPServer,
			SMTPPort: cfg.SMTPPort,
			Username: cfg.Username,
			Password: cfg.Password,
			FromName: cfg.FromName,
			UseTLS:   cfg.UseTLS,
		},
	})
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// Run executes one report run.
func (j *UsageReportJob) Run(ctx context.Context) (*common.ExecutionStats, error) {
	startTime := time.Now()
	stats := common.NewExecutionStats()

	reportID := fmt.Sprintf("rpt_%d_%s", time.Now().Unix(), uuid.New().String()[:8])
	log.Infof("UsageReportJob: starting report run %s", reportID)

	j.lastStage = StageFetching
	if err := j.deps.Pinger.Ping(ctx); err != nil {
		log.Errorf("UsageReportJob: metrics backend unreachable: %v", err)
		stats.ErrorCount++
		return stats, err
	}

	queryStart := time.Now()
	data, err := j.deps.Collector.Collect(ctx)
	if err != nil {
		log.Errorf("UsageReportJob: failed to collect metrics: %v", err)
		stats.ErrorCount++
		return stats, err
	}
	stats.QueryDuration = time.Since(queryStart).Seconds()
	stats.RecordsProcessed = int64(len(data.Disks) + len(data.Cpus) + len(data.Mems) + len(data.Nets))

	j.lastStage = StageNormalizing
	if len(data.Nodes) == 0 {
		log.Warn("UsageReportJob: no nodes discovered, report tables will be empty")
		stats.WarningCount++
	}

	j.lastStage = StageRendering
	htmlContent, err := j.deps.Renderer.RenderHTML(ctx, data)
	if err != nil {
		log.Errorf("UsageReportJob: failed to render HTML: %v", err)
		stats.ErrorCount++
		return stats, err
	}

	msg := &model.EmailMessage{
		Title:   j.config.Email.GetSubject(),
		Content: string(htmlContent),
		To:      j.config.Email.Recipients,
	}
	if j.config.Report.AttachCSV {
		csvContent, err := j.deps.Renderer.RenderCSV(data)
		if err != nil {
			log.Errorf("UsageReportJob: failed to render CSV attachment: %v", err)
			stats.ErrorCount++
			return stats, err
		}
		msg.Attachments = append(msg.Attachments, model.Attachment{
			Filename: fmt.Sprintf("%s.csv", reportID),
			Content:  csvContent,
		})
	}

	j.lastStage = StageSending
	if err := j.deps.Channel.Send(ctx, &model.Message{Email: msg}); err != nil {
		log.Errorf("UsageReportJob: failed to send report: %v", err)
		stats.ErrorCount++
		return stats, err
	}

	j.lastStage = StageDone
	stats.ProcessDuration = time.Since(startTime).Seconds()
	stats.CustomMetrics["report_id"] = reportID
	stats.AddMessage(fmt.Sprintf("Successfully sent report %s to %d recipients", reportID, len(j.config.Email.Recipients)))
	log.Infof("UsageReportJob: report run %s completed in %v", reportID, time.Since(startTime))

	return stats, nil
}

// Schedule returns the cron schedule for this job. An empty schedule means
// one-shot execution driven by an external scheduler.
func (j *UsageReportJob) Schedule() string {
	return j.config.Report.Cron
}

// LastStage reports how far the most recent run progressed.
func (j *UsageReportJob) LastStage() Stage {
	return j.lastStage
}
