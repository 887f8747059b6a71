package model

import "fmt"

// DefaultDatabasePath is used when no database path is given on the command line
const DefaultDatabasePath = "./gokz-sqlite.sq3"

// Format is the output encoding of a dump; its value doubles as the file extension
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Variant describes one source database generation: which query to run,
// how run times are stored and how mode codes are numbered.
type Variant struct {
	Name    string
	Joined  bool    // query joins MapCourses, Maps and Players
	Divisor float64 // raw RunTime units per second
	Modes   [3]Mode // index is the raw mode code
	Output  Format
}

// VariantJoined reads millisecond run times and denormalized map/player names
// and writes CSV.
var VariantJoined = Variant{
	Name:    "joined",
	Joined:  true,
	Divisor: 1000.0,
	Modes:   [3]Mode{ModeVanilla, ModeSimpleKZ, ModeKZTimer},
	Output:  FormatCSV,
}

// VariantTicks reads tick-based run times from the Times table alone and
// writes JSON. Its mode numbering is the reverse of VariantJoined.
var VariantTicks = Variant{
	Name:    "ticks",
	Joined:  false,
	Divisor: 128.0,
	Modes:   [3]Mode{ModeKZTimer, ModeSimpleKZ, ModeVanilla},
	Output:  FormatJSON,
}

// Mode maps a raw mode code to its Mode
func (v Variant) Mode(code int64) (Mode, error) {
	if code < 0 || code >= int64(len(v.Modes)) {
		return 0, &UnknownModeError{Code: code}
	}
	return v.Modes[code], nil
}

// Seconds converts a raw RunTime value to seconds
func (v Variant) Seconds(raw int64) float64 {
	return float64(raw) / v.Divisor
}

// Query returns the fixed extraction query of the variant.
// Created is cast to TEXT so the driver hands back the stored string
// instead of converting TIMESTAMP columns to time.Time.
func (v Variant) Query() string {
	if v.Joined {
		return `
		SELECT
		  t.TimeID AS TimeID,
		  t.SteamID32 AS SteamID32,
		  t.MapCourseID AS MapCourseID,
		  t.Mode AS Mode,
		  t.Style AS Style,
		  t.RunTime AS RunTime,
		  t.Teleports AS Teleports,
		  CAST(t.Created AS TEXT) AS Created,
		  m.MapID AS MapID,
		  m.Name AS MapName,
		  c.Course AS Course,
		  p.Alias AS PlayerName
		FROM Times AS t
		JOIN MapCourses AS c
		ON c.MapCourseID = t.MapCourseID
		JOIN Maps AS m
		ON m.MapID = c.MapID
		JOIN Players AS p
		ON p.SteamID32 = t.SteamID32
		`
	}
	return `
		SELECT
		  TimeID,
		  SteamID32,
		  MapCourseID,
		  Mode,
		  Style,
		  RunTime,
		  Teleports,
		  CAST(Created AS TEXT) AS Created
		FROM Times
		`
}

func (v Variant) String() string {
	return fmt.Sprintf("%s (%s)", v.Name, v.Output)
}

// Header returns the output column names of records built under this variant
func (v Variant) Header() []string {
	var rec Record
	if v.Joined {
		rec.Course = &CourseInfo{}
	}
	return rec.Header()
}
