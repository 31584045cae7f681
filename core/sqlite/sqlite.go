// Package sqlite exposes the Spark SQL functions as SQLite user functions.
//
// Build modes:
//   - Default (CGO_ENABLED=0): pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): mattn/go-sqlite3
//
// Both drivers register every function of the default registry under its
// Spark name, so `SELECT substring_index('a.b.c', '.', -1)` behaves the same
// whichever driver is compiled in. Use Open instead of sql.Open so the
// functions are registered before the first connection.
package sqlite

import (
	"database/sql"
	"fmt"

	sferrors "github.com/FocuswithJustin/sparkfn/core/errors"
	"github.com/FocuswithJustin/sparkfn/core/sparksql"
)

// DriverName returns the database/sql driver name with the functions installed.
func DriverName() string {
	return driverName
}

// DriverType returns "cgo" for mattn/go-sqlite3 and "purego" for modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// IsCGO returns true if the CGO implementation is being used.
func IsCGO() bool {
	return driverType == "cgo"
}

// Open registers the functions if needed and opens a database.
func Open(dataSourceName string) (*sql.DB, error) {
	if err := registerFunctions(); err != nil {
		return nil, err
	}
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, sferrors.NewIO("open", dataSourceName, err)
	}
	return db, nil
}

// OpenMemory opens a private in-memory database. The pool is limited to one
// connection because every new connection would see an empty database.
func OpenMemory() (*sql.DB, error) {
	db, err := Open(":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// MustOpen opens a SQLite database and panics on error.
// This is intended for use in tests.
func MustOpen(dataSourceName string) *sql.DB {
	db, err := Open(dataSourceName)
	if err != nil {
		panic(fmt.Sprintf("sqlite: failed to open %s: %v", dataSourceName, err))
	}
	return db
}

// Info contains information about the SQLite driver configuration.
type Info struct {
	DriverName string   `json:"driver_name"`
	DriverType string   `json:"driver_type"`
	IsCGO      bool     `json:"is_cgo"`
	Package    string   `json:"package"`
	Functions  []string `json:"functions"`
}

// GetInfo returns information about the current SQLite configuration.
func GetInfo() Info {
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		IsCGO:      IsCGO(),
		Package:    driverPackage,
		Functions:  sparksql.DefaultRegistry().Names(),
	}
}
