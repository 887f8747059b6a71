package pipeline

import (
	"context"
	"gokz-dump/internal/logging"
	"gokz-dump/internal/model"
	"gokz-dump/internal/store"
	"gokz-dump/pkg/utils"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Options configures one export run
type Options struct {
	DatabasePath string
	Variant      model.Variant
	OutputDir    string           // defaults to the working directory
	Now          func() time.Time // defaults to time.Now
}

// Run connects to the database, extracts every time, validates them and
// writes the valid records to a new dump file. Stages run one after another;
// a failure to connect or query returns before any file is created.
func Run(ctx context.Context, opts Options) (*model.RunSummary, error) {
	if opts.DatabasePath == "" {
		opts.DatabasePath = model.DefaultDatabasePath
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	runID := uuid.New().String()
	log := logging.Logger.WithFields(logrus.Fields{
		"run_id":  runID,
		"variant": opts.Variant.Name,
	})
	tracker := NewTracker(runID, opts.Variant, opts.DatabasePath, opts.Now)

	// --- CONNECT ---
	log.Infof("Connecting to `%s`...", opts.DatabasePath)
	tracker.StartStage(StageConnect)
	db, err := store.Open(ctx, opts.DatabasePath)
	if err != nil {
		return tracker.Finish(), err
	}
	defer db.Close()
	tracker.EndStage(0, 0)
	log.Info("Connected!")

	// --- EXTRACT ---
	log.Info("Extracting records...")
	tracker.StartStage(StageExtract)
	rows, err := db.Times(ctx, opts.Variant)
	if err != nil {
		return tracker.Finish(), err
	}
	tracker.EndStage(len(rows), 0)
	tracker.Summary.TotalRows = len(rows)

	// --- TRANSFORM ---
	tracker.StartStage(StageTransform)
	records, errs := TransformAll(opts.Variant, rows, log)
	tracker.EndStage(len(rows), len(errs))
	tracker.Summary.ValidRecords = len(records)
	tracker.Summary.InvalidRecords = len(errs)
	log.Info("Successfully parsed records.")

	// --- EXPORT ---
	tracker.StartStage(StageExport)
	om := utils.NewOutputManager(opts.OutputDir)
	if err := om.EnsureOutputDirExists(); err != nil {
		return tracker.Finish(), err
	}
	path := om.DumpFilePath(opts.Now(), string(opts.Variant.Output))
	tracker.Summary.OutputPath = path

	result, err := NewExportManager(opts.Variant, path, log).Export(records)
	tracker.EndStage(result.RecordCount, result.Skipped)
	tracker.Summary.WrittenRecords = result.RecordCount
	tracker.Summary.SkippedRecords = result.Skipped
	if err != nil {
		return tracker.Finish(), err
	}

	if size, err := om.GetFileSize(path); err == nil {
		tracker.Summary.OutputBytes = size
	}

	log.Infof("Wrote %d records to `%s`.", result.RecordCount, path)

	summary := tracker.Finish()
	LogSummary(log, summary)
	return summary, nil
}
