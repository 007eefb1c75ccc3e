package common

// ExecutionStats represents job execution statistics
type ExecutionStats struct {
	// RecordsProcessed is the number of records processed
	RecordsProcessed int64 `json:"records_processed,omitempty"`

	// QueryDuration is the query duration in seconds
	QueryDuration float64 `json:"query_duration,omitempty"`

	// ProcessDuration is the processing duration in seconds
	ProcessDuration float64 `json:"process_duration,omitempty"`

	// ErrorCount is the error count
	ErrorCount int64 `json:"error_count,omitempty"`

	// WarningCount is the warning count
	WarningCount int64 `json:"warning_count,omitempty"`

	// CustomMetrics allows jobs to add specific statistics
	CustomMetrics map[string]interface{} `json:"custom_metrics,omitempty"`

	// Messages is the list of messages during execution
	Messages []string `json:"messages,omitempty"`
}

// NewExecutionStats creates a new execution statistics instance
func NewExecutionStats() *ExecutionStats {
	return &ExecutionStats{
		CustomMetrics: make(map[string]interface{}),
		Messages:      make([]string, 0),
	}
}

// AddMessage appends an execution message
func (s *ExecutionStats) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)
}
