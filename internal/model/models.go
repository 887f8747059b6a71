package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RawTime is one row of the extraction query, before any validation.
// The joined-only columns stay zero for VariantTicks.
type RawTime struct {
	TimeID      int64  `bun:"TimeID"`
	SteamID32   int64  `bun:"SteamID32"`
	MapCourseID int64  `bun:"MapCourseID"`
	Mode        int64  `bun:"Mode"`
	Style       int64  `bun:"Style"`
	RunTime     int64  `bun:"RunTime"`
	Teleports   int64  `bun:"Teleports"`
	Created     string `bun:"Created"`
	MapID       int64  `bun:"MapID"`
	MapName     string `bun:"MapName"`
	Course      int64  `bun:"Course"`
	PlayerName  string `bun:"PlayerName"`
}

// CourseInfo holds the denormalized columns only the joined query returns
type CourseInfo struct {
	PlayerName string
	MapName    string
	Stage      uint8
}

// Record is a validated time. Records are only built by the transformer.
type Record struct {
	ID        uint32
	SteamID   SteamID
	MapID     uint16
	Mode      Mode
	Time      float64 // seconds
	Teleports uint32
	CreatedOn string
	Course    *CourseInfo // nil unless the joined query was used
}

// Field is one named output value of a record
type Field struct {
	Name  string
	Value interface{}
}

// Fields lists the record's output values in column order
func (r Record) Fields() []Field {
	fields := []Field{
		{"id", r.ID},
		{"steam_id", r.SteamID},
	}
	if r.Course != nil {
		fields = append(fields, Field{"player_name", r.Course.PlayerName})
	}
	fields = append(fields, Field{"map_id", r.MapID})
	if r.Course != nil {
		fields = append(fields,
			Field{"map_name", r.Course.MapName},
			Field{"stage", r.Course.Stage},
		)
	}
	return append(fields,
		Field{"mode", r.Mode},
		Field{"time", r.Time},
		Field{"teleports", r.Teleports},
		Field{"created_on", r.CreatedOn},
	)
}

// Header returns the output column names of the record
func (r Record) Header() []string {
	fields := r.Fields()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Name
	}
	return header
}

// CSVRow renders the record's values as CSV cells
func (r Record) CSVRow() []string {
	fields := r.Fields()
	row := make([]string, len(fields))
	for i, f := range fields {
		row[i] = formatCell(f.Value)
	}
	return row
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case SteamID:
		return val.String()
	case Mode:
		return val.String()
	default:
		return ""
	}
}

// MarshalJSON writes the record as an object keyed like the CSV header
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
