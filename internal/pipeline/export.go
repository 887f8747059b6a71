package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"gokz-dump/internal/logging"
	"gokz-dump/internal/model"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ExportManager writes a batch of records to one dump file
type ExportManager struct {
	Variant model.Variant
	Path    string
	Log     *logrus.Entry
}

// NewExportManager creates an export manager for the dump file at path
func NewExportManager(v model.Variant, path string, log *logrus.Entry) *ExportManager {
	if log == nil {
		log = logrus.NewEntry(logging.Logger)
	}
	return &ExportManager{
		Variant: v,
		Path:    path,
		Log:     log,
	}
}

// Export writes records in the variant's output format. Failing to create the
// file, to encode the JSON batch or to flush the CSV writer is returned as an
// error; a CSV row that fails to write is logged and skipped.
func (em *ExportManager) Export(records []model.Record) (model.ExportResult, error) {
	result := model.ExportResult{
		Format: em.Variant.Output,
		Path:   em.Path,
	}

	var err error
	switch em.Variant.Output {
	case model.FormatJSON:
		result.RecordCount, err = em.exportToJSON(records)
	case model.FormatCSV:
		result.RecordCount, result.Skipped, err = em.exportToCSV(records)
	default:
		err = errors.Errorf("unsupported output format %q", em.Variant.Output)
	}
	result.Timestamp = time.Now()

	return result, err
}

// exportToCSV streams one row per record after the header row
func (em *ExportManager) exportToCSV(records []model.Record) (int, int, error) {
	file, err := os.Create(em.Path)
	if err != nil {
		return 0, 0, errors.Wrap(err, "Failed to create dump file.")
	}
	defer file.Close()

	written, skipped, err := em.writeCSV(file, records)
	if err != nil {
		return written, skipped, err
	}
	return written, skipped, errors.Wrap(file.Close(), "Failed to close dump file.")
}

func (em *ExportManager) writeCSV(w io.Writer, records []model.Record) (int, int, error) {
	writer := csv.NewWriter(w)

	if err := writer.Write(em.Variant.Header()); err != nil {
		return 0, 0, errors.Wrap(err, "Failed to write CSV header")
	}

	written, skipped := 0, 0
	for _, rec := range records {
		if err := writer.Write(rec.CSVRow()); err != nil {
			em.Log.WithField("time_id", rec.ID).WithError(err).Warn("Failed to serialize record as CSV")
			skipped++
			continue
		}
		written++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return written, skipped, errors.Wrap(err, "Failed to flush CSV")
	}
	return written, skipped, nil
}

// exportToJSON encodes the whole batch before touching the file system, so an
// encoding failure leaves no file behind
func (em *ExportManager) exportToJSON(records []model.Record) (int, error) {
	if records == nil {
		records = []model.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return 0, errors.Wrap(err, "Failed to serialize records as JSON")
	}

	file, err := os.Create(em.Path)
	if err != nil {
		return 0, errors.Wrap(err, "Failed to create dump file.")
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return 0, errors.Wrap(err, "Failed to write dump file.")
	}
	if err := file.Close(); err != nil {
		return 0, errors.Wrap(err, "Failed to close dump file.")
	}
	return len(records), nil
}
