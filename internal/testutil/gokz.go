package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

const gokzSchema = `
CREATE TABLE Players (
	SteamID32 INTEGER NOT NULL,
	Alias VARCHAR(32),
	Country VARCHAR(45),
	IP VARCHAR(15),
	Cheater INTEGER NOT NULL DEFAULT 0,
	LastPlayed TIMESTAMP NULL DEFAULT CURRENT_TIMESTAMP,
	Created TIMESTAMP NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT PK_Player PRIMARY KEY (SteamID32));
CREATE TABLE Maps (
	MapID INTEGER NOT NULL,
	Name VARCHAR(32) NOT NULL UNIQUE,
	LastPlayed TIMESTAMP NULL DEFAULT CURRENT_TIMESTAMP,
	Created TIMESTAMP NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT PK_Maps PRIMARY KEY (MapID));
CREATE TABLE MapCourses (
	MapCourseID INTEGER NOT NULL,
	MapID INTEGER NOT NULL,
	Course INTEGER NOT NULL,
	Created TIMESTAMP NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT PK_MapCourses PRIMARY KEY (MapCourseID));
CREATE TABLE Times (
	TimeID INTEGER NOT NULL,
	SteamID32 INTEGER NOT NULL,
	MapCourseID INTEGER NOT NULL,
	Mode INTEGER NOT NULL,
	Style INTEGER NOT NULL,
	RunTime INTEGER NOT NULL,
	Teleports INTEGER NOT NULL,
	Created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT PK_Times PRIMARY KEY (TimeID));
`

// Time is one Times row to seed
type Time struct {
	TimeID      int64
	SteamID32   int64
	MapCourseID int64
	Mode        int64
	Style       int64
	RunTime     int64
	Teleports   int64
	Created     string
}

// Seed describes the content of a test database
type Seed struct {
	Players    map[int64]string // SteamID32 -> Alias
	Maps       map[int64]string // MapID -> Name
	MapCourses [][3]int64       // MapCourseID, MapID, Course
	Times      []Time
}

// DefaultSeed holds one player on one map with a main course and a bonus
func DefaultSeed(times ...Time) Seed {
	return Seed{
		Players:    map[int64]string{322356345: "AlphaKeks"},
		Maps:       map[int64]string{1: "kz_lionharder"},
		MapCourses: [][3]int64{{1, 1, 0}, {2, 1, 1}},
		Times:      times,
	}
}

// NewDatabase writes a GOKZ schema database with the seed into a temp dir
// and returns its path
func NewDatabase(t *testing.T, seed Seed) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gokz-sqlite.sq3")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(gokzSchema)
	require.NoError(t, err)

	for id, alias := range seed.Players {
		_, err = db.Exec(`INSERT INTO Players (SteamID32, Alias) VALUES (?, ?)`, id, alias)
		require.NoError(t, err)
	}
	for id, name := range seed.Maps {
		_, err = db.Exec(`INSERT INTO Maps (MapID, Name) VALUES (?, ?)`, id, name)
		require.NoError(t, err)
	}
	for _, mc := range seed.MapCourses {
		_, err = db.Exec(`INSERT INTO MapCourses (MapCourseID, MapID, Course) VALUES (?, ?, ?)`, mc[0], mc[1], mc[2])
		require.NoError(t, err)
	}
	for _, tm := range seed.Times {
		_, err = db.Exec(`INSERT INTO Times (TimeID, SteamID32, MapCourseID, Mode, Style, RunTime, Teleports, Created)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			tm.TimeID, tm.SteamID32, tm.MapCourseID, tm.Mode, tm.Style, tm.RunTime, tm.Teleports, tm.Created)
		require.NoError(t, err)
	}

	return path
}
