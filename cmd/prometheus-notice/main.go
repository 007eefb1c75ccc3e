package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/flipped-1121/prometheus-notice/pkg/clientsets"
	"github.com/flipped-1121/prometheus-notice/pkg/config"
	"github.com/flipped-1121/prometheus-notice/pkg/jobs"
	"github.com/flipped-1121/prometheus-notice/pkg/jobs/usage_report"
	"github.com/flipped-1121/prometheus-notice/pkg/logger/log"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Errorf("Failed to load config: %v", err)
		os.Exit(1)
	}
	if cfg.Log != nil {
		if err := log.InitGlobalLogger(cfg.Log); err != nil {
			log.Errorf("Failed to initialize logger: %v", err)
			os.Exit(1)
		}
	}

	clientSets, err := clientsets.InitStorageClients(cfg.Prometheus)
	if err != nil {
		log.Errorf("Failed to initialize metrics backend clients: %v", err)
		os.Exit(1)
	}

	job, err := usage_report.NewUsageReportJob(cfg, clientSets)
	if err != nil {
		log.Errorf("Failed to initialize report job: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if job.Schedule() == "" {
		if _, err := job.Run(ctx); err != nil {
			os.Exit(1)
		}
		return
	}

	runner, err := jobs.Start(ctx, []jobs.Job{job})
	if err != nil {
		log.Errorf("Failed to start job runner: %v", err)
		os.Exit(1)
	}
	log.Infof("Report job scheduled with cron %q", job.Schedule())
	<-ctx.Done()
	<-runner.Stop().Done()
}
