package pipeline

import (
	"gokz-dump/internal/model"
	"time"

	"github.com/sirupsen/logrus"
)

// Stage names recorded in RunSummary.StageMetrics
const (
	StageConnect   = "connect"
	StageExtract   = "extract"
	StageTransform = "transform"
	StageExport    = "export"
)

// Tracker records per-stage timings and counts of a run
type Tracker struct {
	Summary *model.RunSummary
	now     func() time.Time
	current *model.StageMetrics
}

// NewTracker creates a tracker for a new run
func NewTracker(runID string, v model.Variant, dbPath string, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		Summary: &model.RunSummary{
			RunID:        runID,
			Variant:      v.String(),
			DatabasePath: dbPath,
			StartTime:    now(),
			StageMetrics: make(map[string]model.StageMetrics),
		},
		now: now,
	}
}

// StartStage opens a stage; a stage left open is closed by the next StartStage
func (t *Tracker) StartStage(name string) {
	if t.current != nil {
		t.EndStage(0, 0)
	}
	t.current = &model.StageMetrics{
		StageName: name,
		StartTime: t.now(),
	}
}

// EndStage closes the open stage with its processed and error counts
func (t *Tracker) EndStage(processed, errCount int) {
	if t.current == nil {
		return
	}
	m := *t.current
	m.EndTime = t.now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.RecordsProcessed = processed
	m.ErrorCount = errCount
	t.Summary.StageMetrics[m.StageName] = m
	t.current = nil
}

// Finish stamps the total duration and returns the summary
func (t *Tracker) Finish() *model.RunSummary {
	if t.current != nil {
		t.EndStage(0, 0)
	}
	t.Summary.Duration = t.now().Sub(t.Summary.StartTime)
	return t.Summary
}

// LogSummary writes the run summary as one structured line
func LogSummary(log *logrus.Entry, s *model.RunSummary) {
	fields := logrus.Fields{
		"total_rows":      s.TotalRows,
		"valid_records":   s.ValidRecords,
		"invalid_records": s.InvalidRecords,
		"written_records": s.WrittenRecords,
		"skipped_records": s.SkippedRecords,
		"output":          s.OutputPath,
		"output_bytes":    s.OutputBytes,
		"duration":        s.Duration,
	}
	for name, m := range s.StageMetrics {
		fields[name+"_duration"] = m.Duration
	}
	log.WithFields(fields).Info("Run summary")
}
