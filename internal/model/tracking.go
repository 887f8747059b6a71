package model

import "time"

// RunSummary represents the outcome of one export run
type RunSummary struct {
	RunID          string
	Variant        string
	DatabasePath   string
	OutputPath     string
	TotalRows      int
	ValidRecords   int
	InvalidRecords int
	WrittenRecords int
	SkippedRecords int
	OutputBytes    int64
	StartTime      time.Time
	Duration       time.Duration
	StageMetrics   map[string]StageMetrics
}

// StageMetrics represents metrics for a specific run stage
type StageMetrics struct {
	StageName        string
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
	RecordsProcessed int
	ErrorCount       int
}

// ExportResult represents the result of an export operation
type ExportResult struct {
	Format      Format
	Path        string
	RecordCount int
	Skipped     int
	Timestamp   time.Time
}
