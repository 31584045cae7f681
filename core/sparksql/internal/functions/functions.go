package functions

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	sferrors "github.com/FocuswithJustin/sparkfn/core/errors"
)

// Value represents a SQL value with its type.
type Value interface {
	// Type returns the type of the value
	Type() ValueType

	// AsInt64 returns the value as int64
	AsInt64() int64

	// AsBool returns the value as a boolean
	AsBool() bool

	// AsString returns the value as string
	AsString() string

	// AsBytes returns the value as byte slice
	AsBytes() []byte

	// IsNull returns true if the value is NULL
	IsNull() bool

	// Bytes returns the number of bytes in the value
	Bytes() int
}

// ValueType represents SQL value types.
type ValueType int

const (
	TypeNull ValueType = iota
	TypeBoolean
	TypeInteger
	TypeString
	TypeBinary
)

// String returns the Spark SQL name of the type
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "void"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "bigint"
	case TypeString:
		return "string"
	case TypeBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Function is the interface for all scalar SQL functions.
type Function interface {
	// Name returns the function name
	Name() string

	// NumArgs returns the number of arguments (-1 when the arity varies)
	NumArgs() int

	// Call executes the function with the given arguments
	Call(args []Value) (Value, error)
}

// ScalarFunc is a Function backed by a Go closure. A NULL in any argument
// makes the result NULL without calling the closure.
type ScalarFunc struct {
	name    string
	minArgs int
	maxArgs int
	fn      func(args []Value) (Value, error)
}

// NewScalarFunc creates a function taking exactly numArgs arguments.
func NewScalarFunc(name string, numArgs int, fn func(args []Value) (Value, error)) *ScalarFunc {
	return NewRangeFunc(name, numArgs, numArgs, fn)
}

// NewRangeFunc creates a function taking between minArgs and maxArgs
// arguments inclusive.
func NewRangeFunc(name string, minArgs, maxArgs int, fn func(args []Value) (Value, error)) *ScalarFunc {
	return &ScalarFunc{
		name:    name,
		minArgs: minArgs,
		maxArgs: maxArgs,
		fn:      fn,
	}
}

func (f *ScalarFunc) Name() string {
	return f.name
}

func (f *ScalarFunc) NumArgs() int {
	if f.minArgs != f.maxArgs {
		return -1
	}
	return f.minArgs
}

// ArgRange returns the accepted argument counts.
func (f *ScalarFunc) ArgRange() (minArgs, maxArgs int) {
	return f.minArgs, f.maxArgs
}

func (f *ScalarFunc) Call(args []Value) (Value, error) {
	if len(args) < f.minArgs || len(args) > f.maxArgs {
		return nil, sferrors.NewValidation(f.name, f.arityMessage(len(args)))
	}
	for _, arg := range args {
		if arg == nil || arg.IsNull() {
			return NewNullValue(), nil
		}
	}
	return f.fn(args)
}

func (f *ScalarFunc) arityMessage(given int) string {
	if f.minArgs == f.maxArgs {
		return fmt.Sprintf("takes exactly %d arguments (%d given)", f.minArgs, given)
	}
	return fmt.Sprintf("takes %d or %d arguments (%d given)", f.minArgs, f.maxArgs, given)
}

// SimpleValue is a basic implementation of the Value interface.
type SimpleValue struct {
	typ     ValueType
	boolVal bool
	intVal  int64
	strVal  string
	binVal  []byte
}

// NewNullValue creates a NULL value
func NewNullValue() Value {
	return &SimpleValue{typ: TypeNull}
}

// NewBoolValue creates a boolean value
func NewBoolValue(v bool) Value {
	return &SimpleValue{typ: TypeBoolean, boolVal: v}
}

// NewIntValue creates an integer value
func NewIntValue(v int64) Value {
	return &SimpleValue{typ: TypeInteger, intVal: v}
}

// NewStringValue creates a string value. The string is held by reference.
func NewStringValue(v string) Value {
	return &SimpleValue{typ: TypeString, strVal: v}
}

// NewBinaryValue creates a binary value. The slice is held by reference and
// must not be modified while the value is in use.
func NewBinaryValue(v []byte) Value {
	return &SimpleValue{typ: TypeBinary, binVal: v}
}

func (v *SimpleValue) Type() ValueType {
	return v.typ
}

func (v *SimpleValue) AsInt64() int64 {
	switch v.typ {
	case TypeInteger:
		return v.intVal
	case TypeBoolean:
		if v.boolVal {
			return 1
		}
		return 0
	case TypeString:
		i, err := strconv.ParseInt(strings.TrimSpace(v.strVal), 10, 64)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

func (v *SimpleValue) AsBool() bool {
	switch v.typ {
	case TypeBoolean:
		return v.boolVal
	case TypeInteger:
		return v.intVal != 0
	case TypeString:
		b, _ := strconv.ParseBool(strings.TrimSpace(v.strVal))
		return b
	default:
		return false
	}
}

func (v *SimpleValue) AsString() string {
	switch v.typ {
	case TypeString:
		return v.strVal
	case TypeInteger:
		return strconv.FormatInt(v.intVal, 10)
	case TypeBoolean:
		return strconv.FormatBool(v.boolVal)
	case TypeBinary:
		return string(v.binVal)
	default:
		return ""
	}
}

func (v *SimpleValue) AsBytes() []byte {
	switch v.typ {
	case TypeBinary:
		return v.binVal
	case TypeString:
		return []byte(v.strVal)
	default:
		return nil
	}
}

func (v *SimpleValue) IsNull() bool {
	return v.typ == TypeNull
}

func (v *SimpleValue) Bytes() int {
	switch v.typ {
	case TypeString:
		return len(v.strVal)
	case TypeBinary:
		return len(v.binVal)
	case TypeInteger:
		return 8
	case TypeBoolean:
		return 1
	default:
		return 0
	}
}

// String formats the value the way spark-sql prints query results.
func (v *SimpleValue) String() string {
	if v.typ == TypeNull {
		return "NULL"
	}
	if v.typ == TypeBinary {
		return fmt.Sprintf("[%s]", strings.ToUpper(fmt.Sprintf("% x", v.binVal)))
	}
	return v.AsString()
}

// AsInt32 returns the integer value of v saturated to the int32 range.
func AsInt32(v Value) int32 {
	n := v.AsInt64()
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	default:
		return int32(n)
	}
}

// Registry holds registered functions keyed by lower-case name. It is safe
// for concurrent lookups once registration is finished.
type Registry struct {
	functions map[string]Function
}

// NewRegistry creates a new function registry.
func NewRegistry() *Registry {
	return &Registry{
		functions: make(map[string]Function),
	}
}

// Register registers a function, replacing any previous one of that name.
func (r *Registry) Register(fn Function) {
	r.functions[strings.ToLower(fn.Name())] = fn
}

// Lookup finds a function by name, ignoring case.
func (r *Registry) Lookup(name string) (Function, bool) {
	fn, ok := r.functions[strings.ToLower(name)]
	return fn, ok
}

// Resolve is Lookup returning a NotFoundError for unknown names.
func (r *Registry) Resolve(name string) (Function, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return nil, sferrors.NewNotFound("function", name)
	}
	return fn, nil
}

// Names returns the registered function names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAllFunctions returns all registered functions sorted by name.
func (r *Registry) GetAllFunctions() []Function {
	names := r.Names()
	result := make([]Function, 0, len(names))
	for _, name := range names {
		result = append(result, r.functions[name])
	}
	return result
}

// DefaultRegistry returns a registry with every Spark SQL function in this
// package.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterScalarFunctions(r)
	return r
}
