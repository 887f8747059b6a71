package store

import (
	"context"
	"database/sql"
	"gokz-dump/internal/model"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Store is a read-only connection to a GOKZ SQLite database
type Store struct {
	db *bun.DB
}

// Open connects to the database file at path. The file must already exist;
// it is opened read-only so a mistyped path never leaves an empty database behind.
func Open(ctx context.Context, path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to connect to database `%s`. Did you specify the file?", path)
	}
	if info.IsDir() {
		return nil, errors.Errorf("Failed to connect to database `%s`: is a directory", path)
	}

	source, err := dsn(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to resolve database path `%s`", path)
	}

	sqldb, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open database `%s`", path)
	}
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "Failed to connect to database `%s`", path)
	}

	return &Store{db: db}, nil
}

// dsn builds a read-only SQLite URI. The path is made absolute and escaped
// so '?', '#' and '%' in file names reach SQLite unchanged.
func dsn(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	q := url.Values{}
	q.Set("mode", "ro")
	u := url.URL{
		Scheme:   "file",
		Path:     p,
		RawQuery: q.Encode(),
	}
	return u.String(), nil
}

// Times runs the variant's extraction query and returns every row in the
// order the database produced them.
func (s *Store) Times(ctx context.Context, v model.Variant) ([]model.RawTime, error) {
	var rows []model.RawTime
	if err := s.db.NewRaw(v.Query()).Scan(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "Failed to get data.")
	}
	return rows, nil
}

// Close releases the connection
func (s *Store) Close() error {
	return s.db.Close()
}
