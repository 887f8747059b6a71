package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"gokz-dump/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords(t *testing.T, v model.Variant) []model.Record {
	t.Helper()

	a := joinedRow()
	b := joinedRow()
	b.TimeID, b.Mode, b.RunTime, b.PlayerName = 43, 0, 1234, "comma, \"quoted\"\nname"

	records, errs := TransformAll(v, []model.RawTime{a, b}, nil)
	require.Empty(t, errs)
	return records
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.csv")
	records := sampleRecords(t, model.VariantJoined)

	result, err := NewExportManager(model.VariantJoined, path, nil).Export(records)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordCount)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, model.FormatCSV, result.Format)

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, model.VariantJoined.Header(), rows[0])
	assert.Equal(t, []string{
		"42", "STEAM_1:1:161178172", "AlphaKeks", "1", "kz_lionharder", "1",
		"KZTimer", "5", "3", "2023-01-15 10:30:00",
	}, rows[1])
	assert.Equal(t, "comma, \"quoted\"\nname", rows[2][2])
	assert.Equal(t, "Vanilla", rows[2][6])
	assert.Equal(t, "1.234", rows[2][7])
}

func TestExportCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.csv")

	result, err := NewExportManager(model.VariantJoined, path, nil).Export(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.RecordCount)

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, model.VariantJoined.Header(), rows[0])
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.json")
	records := sampleRecords(t, model.VariantTicks)

	result, err := NewExportManager(model.VariantTicks, path, nil).Export(records)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordCount)
	assert.Equal(t, model.FormatJSON, result.Format)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {\n    \"id\": 42,")

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, 2)
	assert.Equal(t, float64(42), out[0]["id"])
	assert.Equal(t, "Vanilla", out[0]["mode"])
	assert.Equal(t, "KZTimer", out[1]["mode"])
	assert.Equal(t, 1234/128.0, out[1]["time"])
	assert.NotContains(t, out[0], "player_name")
}

func TestExportJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.json")

	_, err := NewExportManager(model.VariantTicks, path, nil).Export(nil)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestExportCreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dump.csv")

	_, err := NewExportManager(model.VariantJoined, path, nil).Export(nil)
	assert.Error(t, err)

	_, err = NewExportManager(model.VariantTicks, path, nil).Export(nil)
	assert.Error(t, err)
}

func TestExportFormatsAgree(t *testing.T) {
	dir := t.TempDir()
	v := model.VariantJoined
	records := sampleRecords(t, v)

	csvPath := filepath.Join(dir, "dump.csv")
	_, err := NewExportManager(v, csvPath, nil).Export(records)
	require.NoError(t, err)

	jsonVariant := v
	jsonVariant.Output = model.FormatJSON
	jsonPath := filepath.Join(dir, "dump.json")
	_, err = NewExportManager(jsonVariant, jsonPath, nil).Export(records)
	require.NoError(t, err)

	rows := readCSV(t, csvPath)
	raw, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var objs []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &objs))

	require.Len(t, objs, len(rows)-1)
	header := rows[0]
	for i, obj := range objs {
		require.Len(t, obj, len(header))
		for j, name := range header {
			cell := rows[i+1][j]
			switch val := obj[name].(type) {
			case string:
				assert.Equal(t, cell, val, name)
			case float64:
				assert.Equal(t, strconv.FormatFloat(val, 'f', -1, 64), cell, name)
			default:
				t.Fatalf("unexpected %T for %s", val, name)
			}
		}
	}
}
