package sqlite

import (
	"database/sql/driver"
	"fmt"

	sferrors "github.com/FocuswithJustin/sparkfn/core/errors"
	"github.com/FocuswithJustin/sparkfn/core/sparksql"
)

// fromDriver converts a value handed to a user function by SQLite.
func fromDriver(v driver.Value) (sparksql.Value, error) {
	switch x := v.(type) {
	case nil:
		return sparksql.NewNullValue(), nil
	case int64:
		return sparksql.NewIntValue(x), nil
	case float64:
		// REAL arguments are truncated toward zero like a Spark cast to int.
		return sparksql.NewIntValue(int64(x)), nil
	case bool:
		return sparksql.NewBoolValue(x), nil
	case string:
		return sparksql.NewStringValue(x), nil
	case []byte:
		return sparksql.NewBinaryValue(x), nil
	default:
		return nil, sferrors.NewValidation("argument", fmt.Sprintf("unsupported SQLite value %T", v))
	}
}

// toDriver converts a function result for SQLite. Booleans become 0 or 1.
func toDriver(v sparksql.Value) driver.Value {
	if v == nil || v.IsNull() {
		return nil
	}
	switch v.Type() {
	case sparksql.TypeBoolean:
		if v.AsBool() {
			return int64(1)
		}
		return int64(0)
	case sparksql.TypeInteger:
		return v.AsInt64()
	case sparksql.TypeBinary:
		return v.AsBytes()
	default:
		return v.AsString()
	}
}

// invoke runs fn over raw driver arguments.
func invoke(fn sparksql.Function, args []driver.Value) (driver.Value, error) {
	vals := make([]sparksql.Value, len(args))
	for i, a := range args {
		v, err := fromDriver(a)
		if err != nil {
			return nil, sferrors.Wrapf(err, "%s argument %d", fn.Name(), i+1)
		}
		vals[i] = v
	}
	res, err := fn.Call(vals)
	if err != nil {
		return nil, err
	}
	return toDriver(res), nil
}
