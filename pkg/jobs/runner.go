package jobs

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/flipped-1121/prometheus-notice/pkg/logger/log"
)

// Start schedules the given jobs and leaves them running. Jobs with an empty
// schedule are skipped; the caller runs those once directly.
func Start(ctx context.Context, jobList []Job) (*cron.Cron, error) {
	c := cron.New()
	for _, job := range jobList {
		job := job
		if job.Schedule() == "" {
			continue
		}
		_, err := c.AddFunc(job.Schedule(), func() {
			if _, err := job.Run(ctx); err != nil {
				log.Errorf("Job error %v", err)
			}
		})
		if err != nil {
			return nil, err
		}
	}
	c.Start()
	return c, nil
}
