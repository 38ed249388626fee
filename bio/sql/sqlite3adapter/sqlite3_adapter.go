/*
Package sqlite3adapter provides a bio/sql Adapter for SQLite3 database files.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"

	"github.com/pbanos/cedar/feature"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	biosql "github.com/pbanos/cedar/bio/sql"
)

type dialect struct{}

/*
New takes a path to an SQLite3 database file and a maximum number of open
connections (0 meaning no limit) and returns an Adapter that works on the
file's database or an error if it fails to open as an sqlite3 database.
*/
func New(path string, maxConns int) (*biosql.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
	}
	db.SetMaxOpenConns(maxConns)
	return biosql.NewAdapter(db, dialect{}), nil
}

func (dialect) Placeholder(int) string {
	return "?"
}

func (dialect) IDColumnType() string {
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

func (dialect) ColumnType(f feature.Feature) string {
	if _, ok := f.(*feature.ContinuousFeature); ok {
		return "REAL"
	}
	return "TEXT"
}
