package jobs

import (
	"context"

	"github.com/flipped-1121/prometheus-notice/pkg/jobs/common"
)

type Job interface {
	Run(ctx context.Context) (*common.ExecutionStats, error)
	Schedule() string
}
