//go:build cgo_sqlite

// CGO SQLite driver using mattn/go-sqlite3.
//
// Build with: go build -tags cgo_sqlite
// Requires: CGO_ENABLED=1
package sqlite

import (
	"database/sql"
	"database/sql/driver"
	"sync"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/FocuswithJustin/sparkfn/core/sparksql"
	"github.com/FocuswithJustin/sparkfn/internal/logging"
)

const (
	driverName    = "sqlite3_sparkfn"
	driverType    = "cgo"
	driverPackage = "github.com/mattn/go-sqlite3"
)

var registerOnce sync.Once

// registerFunctions registers a go-sqlite3 driver whose connect hook installs
// every function on each new connection.
func registerFunctions() error {
	registerOnce.Do(func() {
		fns := sparksql.DefaultRegistry().GetAllFunctions()
		sql.Register(driverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				for _, fn := range fns {
					if err := conn.RegisterFunc(fn.Name(), adapt(fn), true); err != nil {
						return err
					}
				}
				return nil
			},
		})
		logging.DriverRegistration(driverName, len(fns))
	})
	return nil
}

// adapt wraps fn in the variadic shape go-sqlite3 accepts. Arity is checked
// by the function itself.
func adapt(fn sparksql.Function) func(args ...interface{}) (interface{}, error) {
	return func(args ...interface{}) (interface{}, error) {
		vals := make([]driver.Value, len(args))
		for i, a := range args {
			vals[i] = a
		}
		return invoke(fn, vals)
	}
}
