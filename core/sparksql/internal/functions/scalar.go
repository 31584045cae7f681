package functions

// RegisterScalarFunctions registers all scalar functions.
func RegisterScalarFunctions(r *Registry) {
	// Code points
	r.Register(NewScalarFunc("ascii", 1, asciiFunc))
	r.Register(NewScalarFunc("chr", 1, chrFunc))

	// Digests
	r.Register(NewScalarFunc("md5", 1, md5Func))
	r.Register(NewScalarFunc("sha1", 1, sha1Func))
	r.Register(NewScalarFunc("sha2", 2, sha2Func))
	r.Register(NewScalarFunc("blake3", 1, blake3Func))

	// Predicates
	r.Register(NewScalarFunc("contains", 2, containsFunc))
	r.Register(NewScalarFunc("startswith", 2, startsWithFunc))
	r.Register(NewScalarFunc("endswith", 2, endsWithFunc))

	// Substrings
	r.Register(NewScalarFunc("substring_index", 3, substringIndexFunc))
	r.Register(NewRangeFunc("substr", 2, 3, substrFunc))
	r.Register(NewRangeFunc("trim", 1, 2, trimFunc))
	r.Register(NewRangeFunc("ltrim", 1, 2, ltrimFunc))
	r.Register(NewRangeFunc("rtrim", 1, 2, rtrimFunc))

	// Search and size
	r.Register(NewScalarFunc("instr", 2, instrFunc))
	r.Register(NewScalarFunc("length", 1, lengthFunc))
}

// asciiFunc implements ascii(str)
func asciiFunc(args []Value) (Value, error) {
	return NewIntValue(int64(Ascii(args[0].AsString()))), nil
}

// chrFunc implements chr(n)
func chrFunc(args []Value) (Value, error) {
	return NewStringValue(Chr(args[0].AsInt64())), nil
}

// md5Func implements md5(binary|string)
func md5Func(args []Value) (Value, error) {
	return NewStringValue(Md5Hex(args[0].AsBytes())), nil
}

// sha1Func implements sha1(binary)
func sha1Func(args []Value) (Value, error) {
	return NewStringValue(Sha1Hex(args[0].AsBytes())), nil
}

// sha2Func implements sha2(binary, bitLength).
// An unsupported bit length yields NULL, not an error.
func sha2Func(args []Value) (Value, error) {
	digest, ok := Sha2Hex(args[0].AsBytes(), AsInt32(args[1]))
	if !ok {
		return NewNullValue(), nil
	}
	return NewStringValue(digest), nil
}

func blake3Func(args []Value) (Value, error) {
	return NewStringValue(Blake3Hex(args[0].AsBytes())), nil
}

func containsFunc(args []Value) (Value, error) {
	return NewBoolValue(Contains(args[0].AsString(), args[1].AsString())), nil
}

func startsWithFunc(args []Value) (Value, error) {
	return NewBoolValue(StartsWith(args[0].AsString(), args[1].AsString())), nil
}

func endsWithFunc(args []Value) (Value, error) {
	return NewBoolValue(EndsWith(args[0].AsString(), args[1].AsString())), nil
}

// substringIndexFunc implements substring_index(str, delim, count)
func substringIndexFunc(args []Value) (Value, error) {
	return NewStringValue(SubstringIndex(args[0].AsString(), args[1].AsString(), AsInt32(args[2]))), nil
}

// substrFunc implements substr(str, start [, length])
func substrFunc(args []Value) (Value, error) {
	s := args[0].AsString()
	start := AsInt32(args[1])
	if len(args) == 2 {
		return NewStringValue(SubstrFrom(s, start)), nil
	}
	return NewStringValue(Substr(s, start, AsInt32(args[2]))), nil
}

// trimFunc implements trim(str) and trim(trimStr, str)
func trimFunc(args []Value) (Value, error) {
	if len(args) == 1 {
		return NewStringValue(TrimSpace(args[0].AsString())), nil
	}
	return NewStringValue(Trim(args[0].AsString(), args[1].AsString())), nil
}

// ltrimFunc implements ltrim(str) and ltrim(trimStr, str)
func ltrimFunc(args []Value) (Value, error) {
	if len(args) == 1 {
		return NewStringValue(LTrimSpace(args[0].AsString())), nil
	}
	return NewStringValue(LTrim(args[0].AsString(), args[1].AsString())), nil
}

// rtrimFunc implements rtrim(str) and rtrim(trimStr, str)
func rtrimFunc(args []Value) (Value, error) {
	if len(args) == 1 {
		return NewStringValue(RTrimSpace(args[0].AsString())), nil
	}
	return NewStringValue(RTrim(args[0].AsString(), args[1].AsString())), nil
}

// instrFunc implements instr(str, substr)
func instrFunc(args []Value) (Value, error) {
	return NewIntValue(int64(Instr(args[0].AsString(), args[1].AsString()))), nil
}

// lengthFunc implements length(str). Binary input counts bytes.
func lengthFunc(args []Value) (Value, error) {
	if args[0].Type() == TypeBinary {
		return NewIntValue(int64(args[0].Bytes())), nil
	}
	return NewIntValue(int64(Length(args[0].AsString()))), nil
}
