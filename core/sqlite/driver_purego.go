//go:build !cgo_sqlite

package sqlite

import (
	"database/sql/driver"
	"sync"

	msqlite "modernc.org/sqlite"

	"github.com/FocuswithJustin/sparkfn/core/sparksql"
	"github.com/FocuswithJustin/sparkfn/internal/logging"
)

const (
	driverName    = "sqlite"
	driverType    = "purego"
	driverPackage = "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registerFunctions installs the registry into modernc.org/sqlite. The
// registration is process wide and applies to connections opened afterwards.
func registerFunctions() error {
	registerOnce.Do(func() {
		fns := sparksql.DefaultRegistry().GetAllFunctions()
		for _, fn := range fns {
			fn := fn // per-iteration copy; go directive is below 1.22
			registerErr = msqlite.RegisterDeterministicScalarFunction(fn.Name(), int32(fn.NumArgs()),
				func(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
					return invoke(fn, args)
				})
			if registerErr != nil {
				return
			}
		}
		logging.DriverRegistration(driverName, len(fns))
	})
	return registerErr
}
