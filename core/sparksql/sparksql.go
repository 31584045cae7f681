// Package sparksql exposes the Spark SQL dialect string and digest functions.
//
// The implementations live in internal packages; this package re-exports the
// value model, the registry, and the typed entry points that other packages
// and callers outside the module use.
package sparksql

import (
	"fmt"

	"github.com/FocuswithJustin/sparkfn/core/sparksql/internal/functions"
)

// Value model
type (
	Value      = functions.Value
	ValueType  = functions.ValueType
	Function   = functions.Function
	ScalarFunc = functions.ScalarFunc
	Registry   = functions.Registry
	Algorithm  = functions.Algorithm
	Hasher     = functions.Hasher
)

const (
	TypeNull    = functions.TypeNull
	TypeBoolean = functions.TypeBoolean
	TypeInteger = functions.TypeInteger
	TypeString  = functions.TypeString
	TypeBinary  = functions.TypeBinary
)

// Value constructors
var (
	NewNullValue   = functions.NewNullValue
	NewBoolValue   = functions.NewBoolValue
	NewIntValue    = functions.NewIntValue
	NewStringValue = functions.NewStringValue
	NewBinaryValue = functions.NewBinaryValue
	AsInt32        = functions.AsInt32
)

// DefaultRegistry returns a registry holding every function in the dialect.
func DefaultRegistry() *Registry {
	return functions.DefaultRegistry()
}

// Typed entry points
var (
	Substr         = functions.Substr
	SubstrFrom     = functions.SubstrFrom
	SubstringIndex = functions.SubstringIndex
	Trim           = functions.Trim
	LTrim          = functions.LTrim
	RTrim          = functions.RTrim
	TrimSpace      = functions.TrimSpace
	LTrimSpace     = functions.LTrimSpace
	RTrimSpace     = functions.RTrimSpace
	Ascii          = functions.Ascii
	Chr            = functions.Chr
	Md5Hex         = functions.Md5Hex
	Sha1Hex        = functions.Sha1Hex
	Sha2Hex        = functions.Sha2Hex
	Blake3Hex      = functions.Blake3Hex
	Contains       = functions.Contains
	StartsWith     = functions.StartsWith
	EndsWith       = functions.EndsWith
	Instr          = functions.Instr
	Length         = functions.Length
)

// Format renders v the way spark-sql prints a result cell.
func Format(v Value) string {
	if v == nil || v.IsNull() {
		return "NULL"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v.AsString()
}

// Call looks up name in the default registry and invokes it.
func Call(name string, args ...Value) (Value, error) {
	fn, err := defaultRegistry.Resolve(name)
	if err != nil {
		return nil, err
	}
	return fn.Call(args)
}

var defaultRegistry = functions.DefaultRegistry()
